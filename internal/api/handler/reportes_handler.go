package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/dto"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/service"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/response"
)

// ReportesHandler handlers HTTP del puente con Participación Ciudadana
type ReportesHandler struct {
	reportesSvc service.ReportesService
}

// NewReportesHandler crea el ReportesHandler
func NewReportesHandler(reportesSvc service.ReportesService) *ReportesHandler {
	return &ReportesHandler{reportesSvc: reportesSvc}
}

// ListarAprobados reportes ciudadanos aprobados pendientes de importar
// GET /api/v1/reportes-externos
func (h *ReportesHandler) ListarAprobados(c *gin.Context) {
	lista, err := h.reportesSvc.ListarAprobados(c.Request.Context())
	if err != nil {
		backendError(c, err)
		return
	}
	response.OK(c, lista)
}

// Registrar importa un reporte aprobado como solicitud de mantenimiento
// POST /api/v1/reportes-externos/:id/registrar
func (h *ReportesHandler) Registrar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	// El cuerpo es opcional: sin prioridad elegida se importa con MEDIA
	var req dto.RegistrarExternoRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, 10001, "parámetros de petición inválidos")
			return
		}
	}

	solicitudID, err := h.reportesSvc.RegistrarDesdeExterno(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReporteNoEncontrado):
			response.NotFound(c, 23001, "el reporte aprobado no existe")
		case errors.Is(err, service.ErrReporteYaImportado):
			response.BadRequest(c, 23002, err.Error())
		default:
			backendError(c, err)
		}
		return
	}
	response.Created(c, gin.H{"id": solicitudID})
}
