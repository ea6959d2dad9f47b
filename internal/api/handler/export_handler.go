package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/service"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/response"
)

// ExportHandler handlers HTTP del módulo de exportación
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler crea el ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSolicitudes descarga el listado filtrado como .xlsx
// GET /api/v1/export/solicitudes
func (h *ExportHandler) ExportSolicitudes(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportSolicitudes(c.Request.Context(), filtrosDeQuery(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportSinSolicitudes):
			response.NotFound(c, 24001, err.Error())
		case errors.Is(err, service.ErrExportGenerarFallo):
			response.InternalError(c)
		default:
			backendError(c, err)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
