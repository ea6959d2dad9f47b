package normalizer

import (
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
)

// Alias del sistema de Participación Ciudadana, que también ha devuelto
// claves en inglés y en español según la versión desplegada.
var (
	aliasReporteID     = []string{"id", "reportId", "reporteId"}
	aliasReporteTipo   = []string{"tipo", "type", "category", "nombre"}
	aliasReporteTitulo = []string{"title", "titulo", "nombre"}
	aliasReporteDesc   = []string{"description", "descripcion", "detalle"}
	aliasReporteUbic   = []string{"location", "ubicacion", "direccion"}
	aliasReporteEstado = []string{"estado", "status"}
	aliasReporteAutor  = []string{"creadoPor", "author", "usuario", "user"}
)

// NormalizeReporte convierte un registro crudo del sistema externo en un
// ReporteExterno. Mismo contrato tolerante que Normalize: nunca falla.
func NormalizeReporte(obj map[string]interface{}) model.ReporteExterno {
	r := model.ReporteExterno{
		Tipo:   "Solicitud",
		Estado: "Pendiente",
	}
	if obj == nil {
		return r
	}

	if v, ok := pick(obj, aliasReporteID); ok {
		r.ID = asInt(v)
	}
	if v, ok := pick(obj, aliasReporteTipo); ok {
		r.Tipo = asString(v)
	}
	if v, ok := pick(obj, aliasReporteTitulo); ok {
		r.Titulo = asString(v)
	}
	if v, ok := pick(obj, aliasReporteDesc); ok {
		r.Descripcion = asString(v)
	}
	if v, ok := pick(obj, aliasReporteUbic); ok {
		r.Ubicacion = asString(v)
	}
	if v, ok := pick(obj, aliasReporteEstado); ok {
		r.Estado = asString(v)
	}
	if v, ok := pick(obj, aliasReporteAutor); ok {
		r.CreadoPor = asString(v)
	}
	// La prioridad queda sin asignar hasta que el sistema externo la envíe;
	// el personal la elige al registrar.

	return r
}

// NormalizeReporteList aplica NormalizeReporte sobre la lista extraída de
// cualquier forma de respuesta del sistema externo.
func NormalizeReporteList(raw interface{}) []model.ReporteExterno {
	items := ExtractItems(raw)
	out := make([]model.ReporteExterno, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]interface{})
		out = append(out, NormalizeReporte(obj))
	}
	return out
}
