// Package classifier deriva metadatos de presentación y banderas de acción a
// partir de los campos canónicos de una solicitud. Todas las funciones son
// puras: sin estado, sin red, sin mutación; llamarlas por render es barato.
package classifier

import (
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
)

// Clasificación de color para insignias de la interfaz
const (
	ColorYellow = "yellow"
	ColorBlue   = "blue"
	ColorPurple = "purple"
	ColorGreen  = "green"
	ColorRed    = "red"
	ColorOrange = "orange"
	ColorGray   = "gray"
)

// Tablas totales sobre cada enum. El camino de respaldo (gray / valor crudo)
// se conserva aunque los valores canónicos nunca deberían activarlo.

var estadoColors = map[model.EstadoSolicitud]string{
	model.EstadoPendiente:  ColorYellow,
	model.EstadoProgramada: ColorBlue,
	model.EstadoEnProgreso: ColorPurple,
	model.EstadoFinalizada: ColorGreen,
	model.EstadoCancelada:  ColorRed,
}

var estadoTexts = map[model.EstadoSolicitud]string{
	model.EstadoPendiente:  "Pendiente",
	model.EstadoProgramada: "Programada",
	model.EstadoEnProgreso: "En Progreso",
	model.EstadoFinalizada: "Finalizada",
	model.EstadoCancelada:  "Cancelada",
}

var prioridadColors = map[model.Prioridad]string{
	model.PrioridadBaja:  ColorGreen,
	model.PrioridadMedia: ColorYellow,
	model.PrioridadAlta:  ColorRed,
}

var prioridadTexts = map[model.Prioridad]string{
	model.PrioridadBaja:  "Baja",
	model.PrioridadMedia: "Media",
	model.PrioridadAlta:  "Alta",
}

var financieroColors = map[model.EstadoFinanciamiento]string{
	model.FinanciamientoAprobado:   ColorGreen,
	model.FinanciamientoRechazado:  ColorRed,
	model.FinanciamientoPendiente:  ColorYellow,
	model.FinanciamientoEnEspera:   ColorOrange,
	model.FinanciamientoFinanciada: ColorBlue,
}

var financieroTexts = map[model.EstadoFinanciamiento]string{
	model.FinanciamientoAprobado:   "Aprobado",
	model.FinanciamientoRechazado:  "Rechazado",
	model.FinanciamientoPendiente:  "Pendiente",
	model.FinanciamientoEnEspera:   "En Espera de Financiamiento",
	model.FinanciamientoFinanciada: "Financiada",
}

// EstadoColor color de insignia para un estado de solicitud
func EstadoColor(estado model.EstadoSolicitud) string {
	if c, ok := estadoColors[estado]; ok {
		return c
	}
	return ColorGray
}

// EstadoText etiqueta localizada para un estado de solicitud
func EstadoText(estado model.EstadoSolicitud) string {
	if t, ok := estadoTexts[estado]; ok {
		return t
	}
	return string(estado)
}

// PrioridadColor color de insignia para una prioridad
func PrioridadColor(p model.Prioridad) string {
	if c, ok := prioridadColors[p]; ok {
		return c
	}
	return ColorGray
}

// PrioridadText etiqueta localizada para una prioridad
func PrioridadText(p model.Prioridad) string {
	if t, ok := prioridadTexts[p]; ok {
		return t
	}
	return string(p)
}

// FinancieroColor color de insignia para un estado financiero
func FinancieroColor(e model.EstadoFinanciamiento) string {
	if c, ok := financieroColors[e]; ok {
		return c
	}
	return ColorGray
}

// FinancieroText etiqueta localizada para un estado financiero
func FinancieroText(e model.EstadoFinanciamiento) string {
	if t, ok := financieroTexts[e]; ok {
		return t
	}
	return string(e)
}

// ── Banderas de disponibilidad de acciones ──
// Ambas son independientes entre sí y de cualquier otro campo.

// PuedeSolicitarFinanciamiento el botón de financiamiento se habilita
// únicamente cuando el estado financiero es exactamente PENDIENTE
func PuedeSolicitarFinanciamiento(s *model.Solicitud) bool {
	return s.EstadoFinanciero == model.FinanciamientoPendiente
}

// PuedeProgramar la programación se habilita únicamente con estado PENDIENTE
// y estado financiero FINANCIADA
func PuedeProgramar(s *model.Solicitud) bool {
	return s.Estado == model.EstadoPendiente && s.EstadoFinanciero == model.FinanciamientoFinanciada
}

// Acciones banderas calculadas para una solicitud, listas para serializar
type Acciones struct {
	PuedeProgramar               bool `json:"puedeProgramar"`
	PuedeSolicitarFinanciamiento bool `json:"puedeSolicitarFinanciamiento"`
}

// AccionesDe calcula las banderas de acción de una solicitud
func AccionesDe(s *model.Solicitud) Acciones {
	return Acciones{
		PuedeProgramar:               PuedeProgramar(s),
		PuedeSolicitarFinanciamiento: PuedeSolicitarFinanciamiento(s),
	}
}
