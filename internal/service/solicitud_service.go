package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/classifier"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/client"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/dto"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
)

// ── Errores de negocio del módulo de solicitudes ──

var (
	ErrSolicitudNoEncontrada   = errors.New("la solicitud no existe")
	ErrProgramacionNoPermitida = errors.New("la solicitud no está lista para programarse: requiere estado pendiente y financiamiento aprobado")
)

// Filtros criterios opcionales de listado. Cadena vacía significa sin filtro;
// Limite 0 significa sin tope.
type Filtros struct {
	Estado    string
	Prioridad string
	Fuente    string
	Limite    int
}

// SolicitudService operaciones de consola sobre solicitudes de mantenimiento.
// El backend remoto es la única fuente de verdad: aquí no se persiste nada,
// solo se normaliza, clasifica y filtra.
type SolicitudService interface {
	ListarTodas(ctx context.Context, f Filtros) ([]dto.SolicitudResponse, error)
	ListarPendientes(ctx context.Context) ([]dto.SolicitudResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.SolicitudResponse, error)
	Registrar(ctx context.Context, req *dto.RegistrarSolicitudRequest) (int, error)
	Programar(ctx context.Context, id int, req *dto.ProgramarRequest) (*dto.SolicitudResponse, error)
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

type solicitudService struct {
	backend MantenimientoBackend
	logger  *zap.Logger
}

// NewSolicitudService crea una instancia de SolicitudService
func NewSolicitudService(backend MantenimientoBackend, logger *zap.Logger) SolicitudService {
	return &solicitudService{backend: backend, logger: logger}
}

// aplicarFiltros filtra y ordena en memoria: el backend no acepta criterios.
// Orden por fecha de registro descendente (las fechas son ISO, el orden
// lexicográfico coincide con el cronológico).
func aplicarFiltros(items []model.Solicitud, f Filtros) []model.Solicitud {
	out := make([]model.Solicitud, 0, len(items))
	for _, s := range items {
		if f.Estado != "" && string(s.Estado) != f.Estado {
			continue
		}
		if f.Prioridad != "" && string(s.Prioridad) != f.Prioridad {
			continue
		}
		if f.Fuente != "" && string(s.Fuente) != f.Fuente {
			continue
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FechaRegistro > out[j].FechaRegistro
	})

	if f.Limite > 0 && len(out) > f.Limite {
		out = out[:f.Limite]
	}
	return out
}

func (s *solicitudService) ListarTodas(ctx context.Context, f Filtros) ([]dto.SolicitudResponse, error) {
	items, err := s.backend.ListarTodas(ctx)
	if err != nil {
		s.logger.Error("error al listar solicitudes", zap.Error(err))
		return nil, err
	}
	return dto.FromSolicitudes(aplicarFiltros(items, f)), nil
}

func (s *solicitudService) ListarPendientes(ctx context.Context) ([]dto.SolicitudResponse, error) {
	items, err := s.backend.ListarPendientes(ctx)
	if err != nil {
		s.logger.Error("error al listar solicitudes pendientes", zap.Error(err))
		return nil, err
	}
	return dto.FromSolicitudes(aplicarFiltros(items, Filtros{})), nil
}

// ObtenerPorID localiza una solicitud dentro del listado completo.
// El backend no publica una consulta individual.
func (s *solicitudService) ObtenerPorID(ctx context.Context, id int) (*dto.SolicitudResponse, error) {
	items, err := s.backend.ListarTodas(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			resp := dto.FromSolicitud(items[i])
			return &resp, nil
		}
	}
	return nil, ErrSolicitudNoEncontrada
}

func (s *solicitudService) Registrar(ctx context.Context, req *dto.RegistrarSolicitudRequest) (int, error) {
	prioridad := req.Prioridad
	if prioridad == "" {
		prioridad = model.PrioridadMedia
	}

	payload := map[string]interface{}{
		"tipo":        req.Tipo,
		"descripcion": req.Descripcion,
		"ubicacion":   req.Ubicacion,
		"prioridad":   prioridad,
		"fuente":      model.FuenteInterno,
	}

	id, err := s.backend.Registrar(ctx, payload)
	if err != nil {
		s.logger.Error("error al registrar solicitud", zap.Error(err))
		return 0, err
	}

	s.logger.Info("solicitud registrada",
		zap.Int("id", id),
		zap.String("tipo", req.Tipo))
	return id, nil
}

// Programar valida la compuerta de programación antes de llamar al backend:
// solo una solicitud pendiente y financiada puede agendarse.
func (s *solicitudService) Programar(ctx context.Context, id int, req *dto.ProgramarRequest) (*dto.SolicitudResponse, error) {
	actual, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !classifier.PuedeProgramar(&actual.Solicitud) {
		return nil, ErrProgramacionNoPermitida
	}

	actualizada, err := s.backend.Programar(ctx, id, client.ProgramacionPayload{
		FechaInicio: req.FechaInicio,
		Cuadrilla:   req.Cuadrilla,
		Recursos:    req.Recursos,
	})
	if err != nil {
		s.logger.Error("error al programar solicitud", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("solicitud programada",
		zap.Int("id", id),
		zap.String("fecha_inicio", req.FechaInicio),
		zap.String("cuadrilla", req.Cuadrilla))
	resp := dto.FromSolicitud(actualizada)
	return &resp, nil
}

func (s *solicitudService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	items, err := s.backend.ListarTodas(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{Total: len(items)}
	for _, item := range items {
		switch item.Estado {
		case model.EstadoPendiente:
			stats.Pendientes++
		case model.EstadoProgramada:
			stats.Programadas++
		case model.EstadoEnProgreso:
			stats.EnProgreso++
		case model.EstadoFinalizada:
			stats.Finalizadas++
		case model.EstadoCancelada:
			stats.Canceladas++
		}
	}
	return stats, nil
}
