package client

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/normalizer"
)

// ReportesAprobados recupera los reportes ciudadanos aprobados del sistema de
// Participación Ciudadana. Un 404 significa que el módulo aún no está
// desplegado en ese ambiente: se devuelve lista vacía, no error.
func (c *Client) ReportesAprobados(ctx context.Context) ([]model.ReporteExterno, error) {
	var raw interface{}
	url := c.participacionBase + "/participacion/reportes-aprobados"
	if _, err := c.doJSON(ctx, http.MethodGet, url, nil, &raw); err != nil {
		if IsNotFound(err) {
			c.logger.Info("participación ciudadana sin desplegar en este ambiente",
				zap.String("url", url))
			return []model.ReporteExterno{}, nil
		}
		return nil, err
	}
	return normalizer.NormalizeReporteList(raw), nil
}
