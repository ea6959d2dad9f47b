package client

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/normalizer"
)

// ProgramacionPayload cuerpo de la operación de programar trabajo
type ProgramacionPayload struct {
	FechaInicio string   `json:"fechaInicio"`
	Cuadrilla   string   `json:"cuadrilla"`
	Recursos    []string `json:"recursos"`
}

// FinanciamientoPayload cuerpo de la solicitud de financiamiento hacia el
// portal de finanzas. OriginID y Name son constantes del convenio entre
// sistemas; PriorityID cero se omite (prioridad desconocida).
type FinanciamientoPayload struct {
	OriginID      int     `json:"originId"`
	RequestAmount float64 `json:"requestAmount"`
	Name          string  `json:"name"`
	Reason        string  `json:"reason"`
	RequestDate   string  `json:"requestDate"`
	Email         string  `json:"email,omitempty"`
	PriorityID    int     `json:"priorityId,omitempty"`
}

// ListarTodas recupera todas las solicitudes de mantenimiento ya normalizadas
func (c *Client) ListarTodas(ctx context.Context) ([]model.Solicitud, error) {
	var raw interface{}
	url := c.mantenimientoBase + "/mantenimiento/solicitudes/todas"
	if _, err := c.doJSON(ctx, http.MethodGet, url, nil, &raw); err != nil {
		return nil, err
	}
	return normalizer.NormalizeList(raw), nil
}

// ListarPendientes recupera únicamente las solicitudes pendientes
func (c *Client) ListarPendientes(ctx context.Context) ([]model.Solicitud, error) {
	var raw interface{}
	url := c.mantenimientoBase + "/mantenimiento/solicitudes/pendientes"
	if _, err := c.doJSON(ctx, http.MethodGet, url, nil, &raw); err != nil {
		return nil, err
	}
	return normalizer.NormalizeList(raw), nil
}

// Registrar crea una solicitud en el backend de mantenimiento y devuelve el id
// asignado (0 si la respuesta no trae ninguno)
func (c *Client) Registrar(ctx context.Context, payload interface{}) (int, error) {
	var raw map[string]interface{}
	url := c.mantenimientoBase + "/mantenimiento/solicitudes"
	if _, err := c.doJSON(ctx, http.MethodPost, url, payload, &raw); err != nil {
		return 0, err
	}
	creada := normalizer.Normalize(raw)
	return creada.ID, nil
}

// Programar asigna fecha, cuadrilla y recursos a una solicitud y devuelve el
// registro actualizado
func (c *Client) Programar(ctx context.Context, id int, payload ProgramacionPayload) (model.Solicitud, error) {
	var raw map[string]interface{}
	url := fmt.Sprintf("%s/mantenimiento/solicitudes/%d/programar", c.mantenimientoBase, id)
	if _, err := c.doJSON(ctx, http.MethodPost, url, payload, &raw); err != nil {
		return model.Solicitud{}, err
	}
	return normalizer.Normalize(raw), nil
}

// SolicitarFinanciamiento abre el subproceso de financiamiento de una solicitud
func (c *Client) SolicitarFinanciamiento(ctx context.Context, id int, payload FinanciamientoPayload) (map[string]interface{}, error) {
	var raw map[string]interface{}
	url := fmt.Sprintf("%s/mantenimiento/solicitudes/%d/financiamiento", c.mantenimientoBase, id)
	if _, err := c.doJSON(ctx, http.MethodPost, url, payload, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SincronizarFinanciamiento pide al backend refrescar el estado financiero de
// una solicitud contra el portal de finanzas
func (c *Client) SincronizarFinanciamiento(ctx context.Context, id int) (model.Solicitud, error) {
	var raw map[string]interface{}
	url := fmt.Sprintf("%s/mantenimiento/solicitudes/%d/sincronizar-financiamiento", c.mantenimientoBase, id)
	if _, err := c.doJSON(ctx, http.MethodPut, url, nil, &raw); err != nil {
		return model.Solicitud{}, err
	}
	return normalizer.Normalize(raw), nil
}

// ListarFinanciamiento recupera las solicitudes con su vista de financiamiento.
// El backend ha publicado esta lista bajo dos rutas distintas según la versión
// desplegada: se intenta la preferida y, solo ante un 404, se recurre una única
// vez a la heredada. Cualquier otro fallo se propaga de inmediato.
func (c *Client) ListarFinanciamiento(ctx context.Context) ([]model.Solicitud, error) {
	var raw interface{}
	preferida := c.mantenimientoBase + "/mantenimiento/solicitud/financiamiento/todas"
	_, err := c.doJSON(ctx, http.MethodGet, preferida, nil, &raw)
	if err != nil {
		if !IsNotFound(err) {
			return nil, err
		}
		c.logger.Info("ruta preferida de financiamiento no disponible, usando la heredada",
			zap.String("preferida", preferida))
		heredada := c.mantenimientoBase + "/mantenimiento/solicitudes/financiamiento/todas"
		if _, err := c.doJSON(ctx, http.MethodGet, heredada, nil, &raw); err != nil {
			return nil, err
		}
	}
	return normalizer.NormalizeList(normalizer.ExtractItems(raw)), nil
}
