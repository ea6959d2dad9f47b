package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/dto"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/service"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/response"
)

// FinanciamientoHandler handlers HTTP del módulo de financiamiento
type FinanciamientoHandler struct {
	finSvc service.FinanciamientoService
}

// NewFinanciamientoHandler crea el FinanciamientoHandler
func NewFinanciamientoHandler(finSvc service.FinanciamientoService) *FinanciamientoHandler {
	return &FinanciamientoHandler{finSvc: finSvc}
}

// Solicitar abre el subproceso de financiamiento de una solicitud
// POST /api/v1/solicitudes/:id/financiamiento
func (h *FinanciamientoHandler) Solicitar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.FinanciamientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros de petición inválidos")
		return
	}

	resultado, err := h.finSvc.Solicitar(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMontoInvalido):
			response.BadRequest(c, 22001, err.Error())
		case errors.Is(err, service.ErrEmailInvalido):
			response.BadRequest(c, 22002, err.Error())
		case errors.Is(err, service.ErrFinanciamientoBloqueado):
			response.BadRequest(c, 22003, err.Error())
		case errors.Is(err, service.ErrSolicitudNoEncontrada):
			response.NotFound(c, 21001, "la solicitud no existe")
		default:
			backendError(c, err)
		}
		return
	}
	response.OK(c, resultado)
}

// Listar vista de financiamiento acotada a los estados donde el trámite aplica
// GET /api/v1/financiamiento
func (h *FinanciamientoHandler) Listar(c *gin.Context) {
	lista, err := h.finSvc.ListarConFinanciamiento(c.Request.Context())
	if err != nil {
		backendError(c, err)
		return
	}
	response.OK(c, lista)
}

// Sincronizar refresca el estado financiero contra el portal de finanzas
// PUT /api/v1/solicitudes/:id/sincronizar-financiamiento
func (h *FinanciamientoHandler) Sincronizar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	s, err := h.finSvc.Sincronizar(c.Request.Context(), id)
	if err != nil {
		backendError(c, err)
		return
	}
	response.OK(c, s)
}
