package service

import (
	"context"
	"net/http"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/client"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
)

// ── Mock MantenimientoBackend ──

// errNotFound reproduce el 404 que el cliente real devuelve
func errNotFound() error {
	return &client.APIError{StatusCode: http.StatusNotFound, Message: "no encontrado"}
}

type mockBackend struct {
	solicitudes    []model.Solicitud
	financiamiento []model.Solicitud
	reportes       []model.ReporteExterno

	listarErr    error
	registrarErr error

	registrarID      int
	ultimoRegistrado interface{}
	ultimoPayloadFin *client.FinanciamientoPayload
}

func newMockBackend() *mockBackend {
	return &mockBackend{registrarID: 100}
}

func (m *mockBackend) ListarTodas(_ context.Context) ([]model.Solicitud, error) {
	if m.listarErr != nil {
		return nil, m.listarErr
	}
	return append([]model.Solicitud(nil), m.solicitudes...), nil
}

func (m *mockBackend) ListarPendientes(_ context.Context) ([]model.Solicitud, error) {
	if m.listarErr != nil {
		return nil, m.listarErr
	}
	var out []model.Solicitud
	for _, s := range m.solicitudes {
		if s.Estado == model.EstadoPendiente {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockBackend) Registrar(_ context.Context, payload interface{}) (int, error) {
	if m.registrarErr != nil {
		return 0, m.registrarErr
	}
	m.ultimoRegistrado = payload
	return m.registrarID, nil
}

func (m *mockBackend) Programar(_ context.Context, id int, payload client.ProgramacionPayload) (model.Solicitud, error) {
	for i := range m.solicitudes {
		if m.solicitudes[i].ID == id {
			s := m.solicitudes[i]
			s.Estado = model.EstadoProgramada
			s.FechaProgramada = &payload.FechaInicio
			s.CuadrillaAsignada = &payload.Cuadrilla
			s.RecursosAsignados = payload.Recursos
			m.solicitudes[i] = s
			return s, nil
		}
	}
	return model.Solicitud{}, errNotFound()
}

func (m *mockBackend) SolicitarFinanciamiento(_ context.Context, id int, payload client.FinanciamientoPayload) (map[string]interface{}, error) {
	m.ultimoPayloadFin = &payload
	return map[string]interface{}{"id": id, "estado": "EN_ESPERA_FINANCIAMIENTO"}, nil
}

func (m *mockBackend) SincronizarFinanciamiento(_ context.Context, id int) (model.Solicitud, error) {
	for _, s := range m.solicitudes {
		if s.ID == id {
			s.EstadoFinanciero = model.FinanciamientoFinanciada
			return s, nil
		}
	}
	return model.Solicitud{}, errNotFound()
}

func (m *mockBackend) ListarFinanciamiento(_ context.Context) ([]model.Solicitud, error) {
	if m.listarErr != nil {
		return nil, m.listarErr
	}
	return append([]model.Solicitud(nil), m.financiamiento...), nil
}

func (m *mockBackend) ReportesAprobados(_ context.Context) ([]model.ReporteExterno, error) {
	return append([]model.ReporteExterno(nil), m.reportes...), nil
}
