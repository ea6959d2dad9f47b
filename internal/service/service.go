package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/config"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/client"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/repository"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/jwt"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/redis"
)

// MantenimientoBackend operaciones remotas que consumen los servicios.
// *client.Client la implementa; los tests usan un doble en memoria.
type MantenimientoBackend interface {
	ListarTodas(ctx context.Context) ([]model.Solicitud, error)
	ListarPendientes(ctx context.Context) ([]model.Solicitud, error)
	Registrar(ctx context.Context, payload interface{}) (int, error)
	Programar(ctx context.Context, id int, payload client.ProgramacionPayload) (model.Solicitud, error)
	SolicitarFinanciamiento(ctx context.Context, id int, payload client.FinanciamientoPayload) (map[string]interface{}, error)
	SincronizarFinanciamiento(ctx context.Context, id int) (model.Solicitud, error)
	ListarFinanciamiento(ctx context.Context) ([]model.Solicitud, error)
	ReportesAprobados(ctx context.Context) ([]model.ReporteExterno, error)
}

// Service punto de entrada agregado de todos los servicios
type Service struct {
	Auth           AuthService
	Solicitud      SolicitudService
	Financiamiento FinanciamientoService
	Reportes       ReportesService
	Export         ExportService
}

// NewService crea el agregado de servicios
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	backend MantenimientoBackend,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:           NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Solicitud:      NewSolicitudService(backend, logger),
		Financiamiento: NewFinanciamientoService(backend, logger),
		Reportes:       NewReportesService(backend, logger),
		Export:         NewExportService(backend, logger),
	}
}
