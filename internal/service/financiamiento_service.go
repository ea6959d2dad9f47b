package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/classifier"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/client"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/dto"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
)

// ── Errores de negocio del módulo de financiamiento ──

var (
	ErrMontoInvalido           = errors.New("el monto estimado debe ser un número mayor que cero")
	ErrEmailInvalido           = errors.New("el correo de notificación no es válido")
	ErrFinanciamientoBloqueado = errors.New("la solicitud ya tiene un proceso de financiamiento en curso")
)

// Convenio con el portal de finanzas: identifican a mantenimiento urbano por
// estos dos valores fijos.
const (
	financiamientoOriginID = 1
	financiamientoNombre   = "MANTENIMIENTO_URBANO"
)

// priorityIDs mapa prioridad → id numérico del portal de finanzas.
// Una prioridad fuera del mapa envía 0 y el portal asume la suya.
var priorityIDs = map[model.Prioridad]int{
	model.PrioridadAlta:  1,
	model.PrioridadMedia: 2,
	model.PrioridadBaja:  3,
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FinanciamientoService subproceso de financiamiento de las solicitudes
type FinanciamientoService interface {
	Solicitar(ctx context.Context, id int, req *dto.FinanciamientoRequest) (map[string]interface{}, error)
	ListarConFinanciamiento(ctx context.Context) ([]dto.SolicitudResponse, error)
	Sincronizar(ctx context.Context, id int) (*dto.SolicitudResponse, error)
}

type financiamientoService struct {
	backend MantenimientoBackend
	logger  *zap.Logger
}

// NewFinanciamientoService crea una instancia de FinanciamientoService
func NewFinanciamientoService(backend MantenimientoBackend, logger *zap.Logger) FinanciamientoService {
	return &financiamientoService{backend: backend, logger: logger}
}

// Solicitar abre el subproceso de financiamiento. Valida la compuerta (solo
// con estado financiero PENDIENTE), el monto y el correo opcional antes de
// tocar el backend.
func (s *financiamientoService) Solicitar(ctx context.Context, id int, req *dto.FinanciamientoRequest) (map[string]interface{}, error) {
	monto, err := strconv.ParseFloat(strings.TrimSpace(req.MontoEstimado), 64)
	if err != nil || monto <= 0 {
		return nil, ErrMontoInvalido
	}
	if req.Email != "" && !emailRe.MatchString(req.Email) {
		return nil, ErrEmailInvalido
	}

	items, err := s.backend.ListarTodas(ctx)
	if err != nil {
		return nil, err
	}
	var solicitud *model.Solicitud
	for i := range items {
		if items[i].ID == id {
			solicitud = &items[i]
			break
		}
	}
	if solicitud == nil {
		return nil, ErrSolicitudNoEncontrada
	}
	if !classifier.PuedeSolicitarFinanciamiento(solicitud) {
		return nil, ErrFinanciamientoBloqueado
	}

	fecha := req.FechaSolicitud
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	}

	payload := client.FinanciamientoPayload{
		OriginID:      financiamientoOriginID,
		RequestAmount: monto,
		Name:          financiamientoNombre,
		Reason:        solicitud.Descripcion,
		RequestDate:   fecha,
		Email:         req.Email,
		PriorityID:    priorityIDs[solicitud.Prioridad],
	}

	resultado, err := s.backend.SolicitarFinanciamiento(ctx, id, payload)
	if err != nil {
		s.logger.Error("error al solicitar financiamiento", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("financiamiento solicitado",
		zap.Int("id", id),
		zap.Float64("monto", monto))
	return resultado, nil
}

// ListarConFinanciamiento devuelve la vista de financiamiento, acotada a las
// solicitudes donde ese trámite aún importa: las pendientes de trabajo y las
// canceladas (estas últimas para poder liberar fondos reservados).
func (s *financiamientoService) ListarConFinanciamiento(ctx context.Context) ([]dto.SolicitudResponse, error) {
	items, err := s.backend.ListarFinanciamiento(ctx)
	if err != nil {
		s.logger.Error("error al listar financiamiento", zap.Error(err))
		return nil, err
	}

	filtradas := make([]model.Solicitud, 0, len(items))
	for _, item := range items {
		if item.Estado == model.EstadoPendiente || item.Estado == model.EstadoCancelada {
			filtradas = append(filtradas, item)
		}
	}
	return dto.FromSolicitudes(filtradas), nil
}

func (s *financiamientoService) Sincronizar(ctx context.Context, id int) (*dto.SolicitudResponse, error) {
	actualizada, err := s.backend.SincronizarFinanciamiento(ctx, id)
	if err != nil {
		s.logger.Error("error al sincronizar financiamiento", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	resp := dto.FromSolicitud(actualizada)
	return &resp, nil
}
