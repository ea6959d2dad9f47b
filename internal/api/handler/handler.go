package handler

import "github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/service"

// Handler punto de entrada agregado de todos los handlers
type Handler struct {
	Auth           *AuthHandler
	Solicitud      *SolicitudHandler
	Financiamiento *FinanciamientoHandler
	Reportes       *ReportesHandler
	Export         *ExportHandler
}

// NewHandler crea el agregado de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(svc.Auth),
		Solicitud:      NewSolicitudHandler(svc.Solicitud),
		Financiamiento: NewFinanciamientoHandler(svc.Financiamiento),
		Reportes:       NewReportesHandler(svc.Reportes),
		Export:         NewExportHandler(svc.Export),
	}
}
