package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/dto"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/service"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/response"
)

// SolicitudHandler handlers HTTP del módulo de solicitudes
type SolicitudHandler struct {
	solicitudSvc service.SolicitudService
}

// NewSolicitudHandler crea el SolicitudHandler
func NewSolicitudHandler(solicitudSvc service.SolicitudService) *SolicitudHandler {
	return &SolicitudHandler{solicitudSvc: solicitudSvc}
}

// filtrosDeQuery arma los criterios de listado desde la query string
func filtrosDeQuery(c *gin.Context) service.Filtros {
	limite, _ := strconv.Atoi(c.Query("limite"))
	return service.Filtros{
		Estado:    c.Query("estado"),
		Prioridad: c.Query("prioridad"),
		Fuente:    c.Query("fuente"),
		Limite:    limite,
	}
}

// ListarTodas listado completo de solicitudes, ya clasificadas.
// Con ?page= se pagina en memoria sobre la lista normalizada; sin el
// parámetro se devuelve la lista completa, como la consumía la consola.
// GET /api/v1/solicitudes
func (h *SolicitudHandler) ListarTodas(c *gin.Context) {
	lista, err := h.solicitudSvc.ListarTodas(c.Request.Context(), filtrosDeQuery(c))
	if err != nil {
		backendError(c, err)
		return
	}

	if c.Query("page") == "" {
		response.OK(c, lista)
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	total := len(lista)
	inicio := (page - 1) * pageSize
	if inicio > total {
		inicio = total
	}
	fin := inicio + pageSize
	if fin > total {
		fin = total
	}
	response.OKPage(c, lista[inicio:fin], int64(total), page, pageSize)
}

// ListarPendientes solo las solicitudes pendientes de trabajo
// GET /api/v1/solicitudes/pendientes
func (h *SolicitudHandler) ListarPendientes(c *gin.Context) {
	lista, err := h.solicitudSvc.ListarPendientes(c.Request.Context())
	if err != nil {
		backendError(c, err)
		return
	}
	response.OK(c, lista)
}

// Obtener una solicitud puntual
// GET /api/v1/solicitudes/:id
func (h *SolicitudHandler) Obtener(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	s, err := h.solicitudSvc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSolicitudNoEncontrada) {
			response.NotFound(c, 21001, "la solicitud no existe")
			return
		}
		backendError(c, err)
		return
	}
	response.OK(c, s)
}

// Registrar alta manual de una solicitud
// POST /api/v1/solicitudes
func (h *SolicitudHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarSolicitudRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros de petición inválidos")
		return
	}

	id, err := h.solicitudSvc.Registrar(c.Request.Context(), &req)
	if err != nil {
		backendError(c, err)
		return
	}
	response.Created(c, gin.H{"id": id})
}

// Programar asigna fecha, cuadrilla y recursos
// POST /api/v1/solicitudes/:id/programar
func (h *SolicitudHandler) Programar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.ProgramarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros de petición inválidos")
		return
	}

	s, err := h.solicitudSvc.Programar(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSolicitudNoEncontrada):
			response.NotFound(c, 21001, "la solicitud no existe")
		case errors.Is(err, service.ErrProgramacionNoPermitida):
			response.BadRequest(c, 21002, err.Error())
		default:
			backendError(c, err)
		}
		return
	}
	response.OK(c, s)
}

// Stats conteos agregados para el tablero
// GET /api/v1/solicitudes/stats
func (h *SolicitudHandler) Stats(c *gin.Context) {
	stats, err := h.solicitudSvc.Stats(c.Request.Context())
	if err != nil {
		backendError(c, err)
		return
	}
	response.OK(c, stats)
}
