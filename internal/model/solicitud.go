package model

// Enumeraciones espejo de las del backend de mantenimiento.
// estado y estadoFinanciero son ejes independientes: una solicitud puede estar
// PENDIENTE de trabajo y a la vez FINANCIADA (justo esa combinación habilita
// la programación).

// EstadoSolicitud ciclo de vida del trabajo de mantenimiento
type EstadoSolicitud string

const (
	EstadoPendiente  EstadoSolicitud = "PENDIENTE"
	EstadoProgramada EstadoSolicitud = "PROGRAMADA"
	EstadoEnProgreso EstadoSolicitud = "EN_PROGRESO"
	EstadoFinalizada EstadoSolicitud = "FINALIZADA"
	EstadoCancelada  EstadoSolicitud = "CANCELADA"
)

// Prioridad prioridad asignada por el personal
type Prioridad string

const (
	PrioridadBaja  Prioridad = "BAJA"
	PrioridadMedia Prioridad = "MEDIA"
	PrioridadAlta  Prioridad = "ALTA"
)

// EstadoFinanciamiento ciclo de vida del subproceso de financiamiento
type EstadoFinanciamiento string

const (
	FinanciamientoPendiente  EstadoFinanciamiento = "PENDIENTE"
	FinanciamientoEnEspera   EstadoFinanciamiento = "EN_ESPERA_FINANCIAMIENTO"
	FinanciamientoFinanciada EstadoFinanciamiento = "FINANCIADA"
	FinanciamientoAprobado   EstadoFinanciamiento = "APROBADO"
	FinanciamientoRechazado  EstadoFinanciamiento = "RECHAZADO"
)

// FuenteSolicitud procedencia de la solicitud
type FuenteSolicitud string

const (
	FuenteCiudadano     FuenteSolicitud = "CIUDADANO"
	FuenteParticipacion FuenteSolicitud = "PARTICIPACION_CIUDADANA"
	FuenteInterno       FuenteSolicitud = "INTERNO"
)

// Solicitud registro canónico de una orden de trabajo de mantenimiento.
// Es la forma interna única a la que el normalizador reduce cualquier
// respuesta del backend; la consola nunca persiste estos registros.
type Solicitud struct {
	ID                int                  `json:"id"`
	Tipo              string               `json:"tipo"`
	Ubicacion         string               `json:"location"`
	Descripcion       string               `json:"description"`
	Estado            EstadoSolicitud      `json:"status"`
	Prioridad         Prioridad            `json:"priority"`
	FechaRegistro     string               `json:"date"`
	Fuente            FuenteSolicitud      `json:"source"`
	ReporteExternoID  int                  `json:"externalReportId"`
	EstadoFinanciero  EstadoFinanciamiento `json:"financialStatus"`
	IDFinanciamiento  *int                 `json:"financingId"`
	FechaProgramada   *string              `json:"scheduledDate"`
	CuadrillaAsignada *string              `json:"assignedCrew"`
	RecursosAsignados []string             `json:"assignedResources"`
}

// EsExterna indica si la solicitud proviene del sistema de participación.
// Cualquiera de las dos señales basta (no se valida la coherencia entre ambas).
func (s *Solicitud) EsExterna() bool {
	return s.ReporteExternoID > 0 || s.Fuente != FuenteInterno
}

// ReporteExterno reporte ciudadano aprobado en el sistema de
// Participación Ciudadana, aún no importado a mantenimiento.
type ReporteExterno struct {
	ID          int        `json:"id"`
	Tipo        string     `json:"tipo"`
	Titulo      string     `json:"titulo"`
	Descripcion string     `json:"descripcion"`
	Ubicacion   string     `json:"ubicacion"`
	Estado      string     `json:"estado"` // texto libre del sistema externo, no es EstadoSolicitud
	CreadoPor   string     `json:"creadoPor"`
	Prioridad   *Prioridad `json:"prioridad,omitempty"` // opcional hasta que el sistema externo lo envíe
}
