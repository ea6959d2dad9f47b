package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/dto"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
)

func setupFinanciamientoService() (FinanciamientoService, *mockBackend) {
	backend := newMockBackend()
	backend.solicitudes = solicitudesDePrueba()
	return NewFinanciamientoService(backend, zap.NewNop()), backend
}

func TestSolicitar_Exitoso(t *testing.T) {
	svc, backend := setupFinanciamientoService()

	// La solicitud 3 tiene estado financiero PENDIENTE y prioridad BAJA
	_, err := svc.Solicitar(context.Background(), 3, &dto.FinanciamientoRequest{
		MontoEstimado:  "1500.50",
		Email:          "finanzas@muni.gob.gt",
		FechaSolicitud: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("Solicitar debería tener éxito: %v", err)
	}

	p := backend.ultimoPayloadFin
	if p == nil {
		t.Fatal("el payload nunca llegó al backend")
	}
	if p.OriginID != 1 || p.Name != "MANTENIMIENTO_URBANO" {
		t.Errorf("los valores del convenio con finanzas están mal: %+v", p)
	}
	if p.RequestAmount != 1500.50 {
		t.Errorf("monto incorrecto: %v", p.RequestAmount)
	}
	if p.PriorityID != 3 {
		t.Errorf("prioridad BAJA debería enviar priorityId=3, se obtuvo %d", p.PriorityID)
	}
	if p.RequestDate != "2026-09-01" {
		t.Errorf("fecha incorrecta: %s", p.RequestDate)
	}
}

func TestSolicitar_MontoInvalido(t *testing.T) {
	svc, _ := setupFinanciamientoService()

	for _, monto := range []string{"", "abc", "0", "-10", "12..5"} {
		_, err := svc.Solicitar(context.Background(), 3, &dto.FinanciamientoRequest{
			MontoEstimado: monto,
		})
		if !errors.Is(err, ErrMontoInvalido) {
			t.Errorf("monto %q: se esperaba ErrMontoInvalido, se obtuvo %v", monto, err)
		}
	}
}

func TestSolicitar_EmailInvalido(t *testing.T) {
	svc, _ := setupFinanciamientoService()

	for _, email := range []string{"sin-arroba", "dos@@a.com", "a@b", "con espacio@x.com"} {
		_, err := svc.Solicitar(context.Background(), 3, &dto.FinanciamientoRequest{
			MontoEstimado: "100",
			Email:         email,
		})
		if !errors.Is(err, ErrEmailInvalido) {
			t.Errorf("email %q: se esperaba ErrEmailInvalido, se obtuvo %v", email, err)
		}
	}

	// El correo es opcional: vacío no valida nada
	if _, err := svc.Solicitar(context.Background(), 3, &dto.FinanciamientoRequest{
		MontoEstimado: "100",
	}); err != nil {
		t.Errorf("sin correo debería tener éxito: %v", err)
	}
}

func TestSolicitar_CompuertaCerrada(t *testing.T) {
	svc, _ := setupFinanciamientoService()

	// La solicitud 1 ya está FINANCIADA
	_, err := svc.Solicitar(context.Background(), 1, &dto.FinanciamientoRequest{
		MontoEstimado: "100",
	})
	if !errors.Is(err, ErrFinanciamientoBloqueado) {
		t.Errorf("se esperaba ErrFinanciamientoBloqueado, se obtuvo %v", err)
	}
}

func TestSolicitar_SolicitudInexistente(t *testing.T) {
	svc, _ := setupFinanciamientoService()

	_, err := svc.Solicitar(context.Background(), 99, &dto.FinanciamientoRequest{
		MontoEstimado: "100",
	})
	if !errors.Is(err, ErrSolicitudNoEncontrada) {
		t.Errorf("se esperaba ErrSolicitudNoEncontrada, se obtuvo %v", err)
	}
}

func TestListarConFinanciamiento_FiltraEstados(t *testing.T) {
	backend := newMockBackend()
	backend.financiamiento = []model.Solicitud{
		{ID: 1, Estado: model.EstadoPendiente, EstadoFinanciero: model.FinanciamientoEnEspera},
		{ID: 2, Estado: model.EstadoProgramada, EstadoFinanciero: model.FinanciamientoFinanciada},
		{ID: 3, Estado: model.EstadoCancelada, EstadoFinanciero: model.FinanciamientoFinanciada},
		{ID: 4, Estado: model.EstadoFinalizada, EstadoFinanciero: model.FinanciamientoAprobado},
	}
	svc := NewFinanciamientoService(backend, zap.NewNop())

	lista, err := svc.ListarConFinanciamiento(context.Background())
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}

	// Solo pendientes y canceladas pasan el filtro
	if len(lista) != 2 {
		t.Fatalf("se esperaban 2 solicitudes, se obtuvieron %d", len(lista))
	}
	if lista[0].ID != 1 || lista[1].ID != 3 {
		t.Errorf("ids inesperados: %d, %d", lista[0].ID, lista[1].ID)
	}
}

func TestSincronizar(t *testing.T) {
	svc, _ := setupFinanciamientoService()

	s, err := svc.Sincronizar(context.Background(), 3)
	if err != nil {
		t.Fatalf("Sincronizar debería tener éxito: %v", err)
	}
	if s.EstadoFinanciero != model.FinanciamientoFinanciada {
		t.Errorf("el estado financiero no se refrescó: %s", s.EstadoFinanciero)
	}
}
