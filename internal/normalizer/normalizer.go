// Package normalizer reduce las respuestas heterogéneas de los backends a la
// forma canónica interna de la consola.
//
// Los backends de mantenimiento y financiamiento han cambiado de contrato
// varias veces (claves en español, en inglés, en snake_case, anidadas en
// envoltorios distintos); las tablas de alias de este paquete codifican esa
// compatibilidad real, no un estilo incidental. No extender las listas sin
// confirmar contra el backend.
package normalizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
)

// Tablas de alias por campo canónico, en orden de prioridad.
// Gana la primera clave presente; un valor nulo corta la resolución
// y el campo queda en su valor por defecto.
var (
	aliasID               = []string{"id", "requestId", "request_id", "idSolicitud", "solicitudId"}
	aliasTipo             = []string{"tipo", "type", "category", "categoria", "descripcion", "description"}
	aliasUbicacion        = []string{"ubicacion", "location", "direccion", "address"}
	aliasDescripcion      = []string{"descripcion", "description", "detalle", "reason"}
	aliasEstado           = []string{"estado", "status", "estadoSolicitud", "state"}
	aliasPrioridad        = []string{"prioridad", "priority"}
	aliasFechaRegistro    = []string{"fechaRegistro", "fecha", "date", "requestDate", "fecha_registro", "createdAt"}
	aliasFuente           = []string{"fuente", "source", "origen"}
	aliasReporteExterno   = []string{"reporteIdExtern", "reporteExternoId", "externalReportId", "reporteId"}
	aliasEstadoFinanciero = []string{"estadoFinanciero", "financialStatus", "estado_financiero", "estadoFinanciamiento"}
	aliasIDFinanciamiento = []string{"idFinanciamiento", "financingId", "id_financiamiento"}
	aliasFechaProgramada  = []string{"fechaProgramada", "scheduledDate", "fechaInicio"}
	aliasCuadrilla        = []string{"cuadrillaAsignada", "assignedCrew", "cuadrilla"}
	aliasRecursos         = []string{"recursosAsignados", "assignedResources", "recursos"}
	aliasMonto            = []string{"requestAmount", "request_amount", "monto"}
)

// pick devuelve el valor del primer alias presente. Una clave presente con
// valor nulo termina la resolución sin valor: los alias posteriores no se
// consultan, el campo resuelve a su valor por defecto.
func pick(obj map[string]interface{}, keys []string) (interface{}, bool) {
	if obj == nil {
		return nil, false
	}
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			if v == nil {
				return nil, false
			}
			return v, true
		}
	}
	return nil, false
}

// asInt convierte tolerantemente a entero; lo no numérico resuelve a 0
func asInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int(f)
		}
	}
	return 0
}

// asString convierte tolerantemente a texto
func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}

// NormalizeEstado reduce un estado crudo al enum canónico.
// Coincidencia por subcadena en mayúsculas, con orden fijo de prueba;
// sin coincidencia cae al valor seguro PENDIENTE.
func NormalizeEstado(raw string) model.EstadoSolicitud {
	s := strings.ToUpper(raw)
	switch {
	case strings.Contains(s, "PROGRAM"):
		return model.EstadoProgramada
	case strings.Contains(s, "EN_PROGRESO"), strings.Contains(s, "EN PROGRESO"):
		return model.EstadoEnProgreso
	case strings.Contains(s, "FINAL"):
		return model.EstadoFinalizada
	case strings.Contains(s, "CANCEL"):
		return model.EstadoCancelada
	default:
		return model.EstadoPendiente
	}
}

// NormalizePrioridad reduce una prioridad cruda al enum canónico
func NormalizePrioridad(raw string) model.Prioridad {
	s := strings.ToUpper(raw)
	switch {
	case strings.Contains(s, "ALTA"):
		return model.PrioridadAlta
	case strings.Contains(s, "BAJA"):
		return model.PrioridadBaja
	default:
		return model.PrioridadMedia
	}
}

// NormalizeEstadoFinanciero reduce un estado financiero crudo al enum canónico
func NormalizeEstadoFinanciero(raw string) model.EstadoFinanciamiento {
	s := strings.ToUpper(raw)
	switch {
	case strings.Contains(s, "APROB"):
		return model.FinanciamientoAprobado
	case strings.Contains(s, "RECHAZ"):
		return model.FinanciamientoRechazado
	case strings.Contains(s, "FINANCIADA"):
		return model.FinanciamientoFinanciada
	case strings.Contains(s, "ESPERA"):
		return model.FinanciamientoEnEspera
	default:
		return model.FinanciamientoPendiente
	}
}

// normalizeFuente reduce la fuente cruda al enum canónico.
// PARTICIPACION se prueba primero porque PARTICIPACION_CIUDADANA también
// contiene CIUDADAN; sin coincidencia cae a INTERNO.
func normalizeFuente(raw string) model.FuenteSolicitud {
	s := strings.ToUpper(raw)
	switch {
	case strings.Contains(s, "PARTICIPACION"):
		return model.FuenteParticipacion
	case strings.Contains(s, "CIUDADANO"):
		return model.FuenteCiudadano
	default:
		return model.FuenteInterno
	}
}

// normalizeRecursos conserva una secuencia, envuelve un escalar y
// devuelve nil cuando el campo está ausente
func normalizeRecursos(v interface{}, ok bool) []string {
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, asString(item))
		}
		return out
	default:
		return []string{asString(v)}
	}
}

// Normalize convierte un registro de forma desconocida en exactamente una
// Solicitud canónica. Nunca falla por campos faltantes: cada campo sin alias
// resuelto recibe su valor por defecto documentado (numéricos 0, textos "",
// enums su variante segura, opcionales nil).
func Normalize(obj map[string]interface{}) model.Solicitud {
	s := model.Solicitud{
		Estado:           model.EstadoPendiente,
		Prioridad:        model.PrioridadMedia,
		EstadoFinanciero: model.FinanciamientoPendiente,
		Fuente:           model.FuenteInterno,
	}
	if obj == nil {
		return s
	}

	if v, ok := pick(obj, aliasID); ok {
		s.ID = asInt(v)
	}
	if v, ok := pick(obj, aliasTipo); ok {
		s.Tipo = asString(v)
	}
	if v, ok := pick(obj, aliasUbicacion); ok {
		s.Ubicacion = asString(v)
	}
	if v, ok := pick(obj, aliasDescripcion); ok {
		s.Descripcion = asString(v)
	}
	if v, ok := pick(obj, aliasEstado); ok {
		s.Estado = NormalizeEstado(asString(v))
	}
	if v, ok := pick(obj, aliasPrioridad); ok {
		s.Prioridad = NormalizePrioridad(asString(v))
	}
	if v, ok := pick(obj, aliasFechaRegistro); ok {
		s.FechaRegistro = asString(v)
	}
	if v, ok := pick(obj, aliasFuente); ok {
		s.Fuente = normalizeFuente(asString(v))
	}
	if v, ok := pick(obj, aliasReporteExterno); ok {
		s.ReporteExternoID = asInt(v)
	}
	if v, ok := pick(obj, aliasEstadoFinanciero); ok {
		s.EstadoFinanciero = NormalizeEstadoFinanciero(asString(v))
	}
	if v, ok := pick(obj, aliasIDFinanciamiento); ok {
		n := asInt(v)
		s.IDFinanciamiento = &n
	}
	if v, ok := pick(obj, aliasFechaProgramada); ok {
		str := asString(v)
		s.FechaProgramada = &str
	}
	if v, ok := pick(obj, aliasCuadrilla); ok {
		str := asString(v)
		s.CuadrillaAsignada = &str
	}
	v, ok := pick(obj, aliasRecursos)
	s.RecursosAsignados = normalizeRecursos(v, ok)

	// El monto estimado no amplía la forma canónica: se anexa a la
	// descripción como sufijo etiquetado. Decisión deliberada del contrato.
	if v, ok := pick(obj, aliasMonto); ok {
		s.Descripcion = strings.TrimSpace(s.Descripcion + " [Monto: " + asString(v) + "]")
	}

	return s
}

// NormalizeList aplica Normalize elemento por elemento conservando el orden.
// Una entrada que no es lista no es un error: produce una lista vacía.
func NormalizeList(raw interface{}) []model.Solicitud {
	items, ok := raw.([]interface{})
	if !ok {
		return []model.Solicitud{}
	}
	out := make([]model.Solicitud, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]interface{})
		out = append(out, Normalize(obj))
	}
	return out
}
