package dto

import (
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/classifier"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
)

// ── DTO del módulo de solicitudes de mantenimiento ──

// RegistrarSolicitudRequest alta manual de una solicitud desde la consola
type RegistrarSolicitudRequest struct {
	Tipo        string          `json:"tipo"        binding:"required"`
	Descripcion string          `json:"descripcion" binding:"required"`
	Ubicacion   string          `json:"ubicacion"   binding:"required"`
	Prioridad   model.Prioridad `json:"prioridad"`
}

// ProgramarRequest asignación de fecha, cuadrilla y recursos
type ProgramarRequest struct {
	FechaInicio string   `json:"fechaInicio" binding:"required"`
	Cuadrilla   string   `json:"cuadrilla"   binding:"required"`
	Recursos    []string `json:"recursos"`
}

// Presentacion metadatos de presentación derivados para la interfaz
type Presentacion struct {
	EstadoColor     string `json:"estadoColor"`
	EstadoTexto     string `json:"estadoTexto"`
	PrioridadColor  string `json:"prioridadColor"`
	PrioridadTexto  string `json:"prioridadTexto"`
	FinancieroColor string `json:"financieroColor"`
	FinancieroTexto string `json:"financieroTexto"`
}

// SolicitudResponse solicitud canónica más los metadatos derivados que la
// interfaz consume sin recalcular nada
type SolicitudResponse struct {
	model.Solicitud
	Presentacion Presentacion        `json:"presentacion"`
	Acciones     classifier.Acciones `json:"acciones"`
}

// FromSolicitud arma la respuesta de una solicitud con su clasificación
func FromSolicitud(s model.Solicitud) SolicitudResponse {
	return SolicitudResponse{
		Solicitud: s,
		Presentacion: Presentacion{
			EstadoColor:     classifier.EstadoColor(s.Estado),
			EstadoTexto:     classifier.EstadoText(s.Estado),
			PrioridadColor:  classifier.PrioridadColor(s.Prioridad),
			PrioridadTexto:  classifier.PrioridadText(s.Prioridad),
			FinancieroColor: classifier.FinancieroColor(s.EstadoFinanciero),
			FinancieroTexto: classifier.FinancieroText(s.EstadoFinanciero),
		},
		Acciones: classifier.AccionesDe(&s),
	}
}

// FromSolicitudes aplica FromSolicitud conservando el orden
func FromSolicitudes(items []model.Solicitud) []SolicitudResponse {
	out := make([]SolicitudResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSolicitud(s))
	}
	return out
}

// StatsResponse conteos agregados para el tablero
type StatsResponse struct {
	Total       int `json:"total"`
	Pendientes  int `json:"pendientes"`
	Programadas int `json:"programadas"`
	EnProgreso  int `json:"enProgreso"`
	Finalizadas int `json:"finalizadas"`
	Canceladas  int `json:"canceladas"`
}
