// Package importer convierte reportes del sistema de Participación Ciudadana
// en cargas de creación entendidas por el backend de mantenimiento.
package importer

import (
	"regexp"
	"strings"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
)

// Tabla fija de categorías externas conocidas → códigos del backend de
// mantenimiento. Las etiquetas no mapeadas se derivan con DerivarCategoria.
var categoriaMap = map[string]string{
	"Salud Pública":   "SALUD_PUBLICA",
	"Infraestructura": "INFRAESTRUCTURA",
	"Baches":          "INFRAESTRUCTURA",
	"Alumbrado":       "ALUMBRADO",
	"Limpieza":        "LIMPIEZA",
	"Parques":         "PARQUES",
	"Vías":            "VIAS",
}

var espacios = regexp.MustCompile(`\s+`)

// MapCategoria resuelve el código de categoría del backend para una etiqueta
// externa. Una etiqueta desconocida se deriva de forma determinista:
// mayúsculas y corridas de espacios reemplazadas por guion bajo
// (los acentos se conservan).
func MapCategoria(etiqueta string) string {
	if codigo, ok := categoriaMap[etiqueta]; ok {
		return codigo
	}
	return espacios.ReplaceAllString(strings.ToUpper(etiqueta), "_")
}

// CreacionPayload carga de creación de solicitud que espera el backend de
// mantenimiento al registrar un reporte externo.
type CreacionPayload struct {
	Tipo            string                `json:"tipo"`
	Descripcion     string                `json:"descripcion"`
	Ubicacion       string                `json:"ubicacion"`
	Prioridad       model.Prioridad       `json:"prioridad"`
	Fuente          model.FuenteSolicitud `json:"fuente"`
	ReporteIDExtern int                   `json:"reporteIdExtern"`
}

// BuildPayload arma la carga de creación a partir de un reporte externo y la
// prioridad elegida por el personal (MEDIA si no se indica). El id externo se
// arrastra sin cambios y la fuente siempre marca la procedencia.
func BuildPayload(reporte *model.ReporteExterno, prioridad model.Prioridad) CreacionPayload {
	if prioridad == "" {
		prioridad = model.PrioridadMedia
	}
	return CreacionPayload{
		Tipo:            MapCategoria(reporte.Tipo),
		Descripcion:     reporte.Descripcion,
		Ubicacion:       reporte.Ubicacion,
		Prioridad:       prioridad,
		Fuente:          model.FuenteParticipacion,
		ReporteIDExtern: reporte.ID,
	}
}
