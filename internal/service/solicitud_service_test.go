package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/dto"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
)

func solicitudesDePrueba() []model.Solicitud {
	return []model.Solicitud{
		{ID: 1, Tipo: "BACHES", Estado: model.EstadoPendiente, Prioridad: model.PrioridadAlta,
			EstadoFinanciero: model.FinanciamientoFinanciada, FechaRegistro: "2026-08-01", Fuente: model.FuenteInterno},
		{ID: 2, Tipo: "ALUMBRADO", Estado: model.EstadoProgramada, Prioridad: model.PrioridadMedia,
			EstadoFinanciero: model.FinanciamientoFinanciada, FechaRegistro: "2026-08-15", Fuente: model.FuenteInterno},
		{ID: 3, Tipo: "LIMPIEZA", Estado: model.EstadoPendiente, Prioridad: model.PrioridadBaja,
			EstadoFinanciero: model.FinanciamientoPendiente, FechaRegistro: "2026-08-10", Fuente: model.FuenteParticipacion,
			ReporteExternoID: 7},
	}
}

func setupSolicitudService() (SolicitudService, *mockBackend) {
	backend := newMockBackend()
	backend.solicitudes = solicitudesDePrueba()
	return NewSolicitudService(backend, zap.NewNop()), backend
}

func TestListarTodas_OrdenYClasificacion(t *testing.T) {
	svc, _ := setupSolicitudService()

	lista, err := svc.ListarTodas(context.Background(), Filtros{})
	if err != nil {
		t.Fatalf("ListarTodas debería tener éxito: %v", err)
	}
	if len(lista) != 3 {
		t.Fatalf("se esperaban 3 solicitudes, se obtuvieron %d", len(lista))
	}

	// Orden por fecha de registro descendente
	if lista[0].ID != 2 || lista[1].ID != 3 || lista[2].ID != 1 {
		t.Errorf("orden incorrecto: %d, %d, %d", lista[0].ID, lista[1].ID, lista[2].ID)
	}

	// La clasificación viaja ya calculada
	if lista[2].Presentacion.EstadoColor != "yellow" || lista[2].Presentacion.EstadoTexto != "Pendiente" {
		t.Errorf("presentación incorrecta: %+v", lista[2].Presentacion)
	}
	if !lista[2].Acciones.PuedeProgramar {
		t.Error("la solicitud 1 (pendiente y financiada) debería poder programarse")
	}
	if lista[0].Acciones.PuedeProgramar {
		t.Error("una solicitud programada no debería poder programarse de nuevo")
	}
}

func TestListarTodas_Filtros(t *testing.T) {
	svc, _ := setupSolicitudService()

	lista, err := svc.ListarTodas(context.Background(), Filtros{Estado: "PENDIENTE"})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(lista) != 2 {
		t.Errorf("se esperaban 2 pendientes, se obtuvieron %d", len(lista))
	}

	lista, _ = svc.ListarTodas(context.Background(), Filtros{Fuente: "PARTICIPACION_CIUDADANA"})
	if len(lista) != 1 || lista[0].ID != 3 {
		t.Errorf("filtro por fuente incorrecto: %+v", lista)
	}

	lista, _ = svc.ListarTodas(context.Background(), Filtros{Limite: 1})
	if len(lista) != 1 || lista[0].ID != 2 {
		t.Errorf("el límite debería conservar la más reciente: %+v", lista)
	}
}

func TestObtenerPorID(t *testing.T) {
	svc, _ := setupSolicitudService()

	s, err := svc.ObtenerPorID(context.Background(), 3)
	if err != nil {
		t.Fatalf("ObtenerPorID debería tener éxito: %v", err)
	}
	if s.Tipo != "LIMPIEZA" || !s.EsExterna() {
		t.Errorf("solicitud incorrecta: %+v", s)
	}

	_, err = svc.ObtenerPorID(context.Background(), 99)
	if !errors.Is(err, ErrSolicitudNoEncontrada) {
		t.Errorf("se esperaba ErrSolicitudNoEncontrada, se obtuvo %v", err)
	}
}

func TestRegistrar_PrioridadPorDefecto(t *testing.T) {
	svc, backend := setupSolicitudService()

	id, err := svc.Registrar(context.Background(), &dto.RegistrarSolicitudRequest{
		Tipo:        "BACHES",
		Descripcion: "Bache en la avenida principal",
		Ubicacion:   "Zona 3",
	})
	if err != nil {
		t.Fatalf("Registrar debería tener éxito: %v", err)
	}
	if id != 100 {
		t.Errorf("se esperaba el id del backend (100), se obtuvo %d", id)
	}

	payload, ok := backend.ultimoRegistrado.(map[string]interface{})
	if !ok {
		t.Fatalf("payload inesperado: %T", backend.ultimoRegistrado)
	}
	if payload["prioridad"] != model.PrioridadMedia {
		t.Errorf("sin prioridad elegida debería enviarse MEDIA, se obtuvo %v", payload["prioridad"])
	}
	if payload["fuente"] != model.FuenteInterno {
		t.Errorf("un alta manual es de fuente interna, se obtuvo %v", payload["fuente"])
	}
}

func TestProgramar_Exitoso(t *testing.T) {
	svc, _ := setupSolicitudService()

	s, err := svc.Programar(context.Background(), 1, &dto.ProgramarRequest{
		FechaInicio: "2026-09-10",
		Cuadrilla:   "Cuadrilla Norte",
		Recursos:    []string{"camión", "asfalto"},
	})
	if err != nil {
		t.Fatalf("Programar debería tener éxito: %v", err)
	}
	if s.Estado != model.EstadoProgramada {
		t.Errorf("se esperaba estado PROGRAMADA, se obtuvo %s", s.Estado)
	}
	if s.CuadrillaAsignada == nil || *s.CuadrillaAsignada != "Cuadrilla Norte" {
		t.Error("la cuadrilla asignada no se reflejó en la respuesta")
	}
}

func TestProgramar_CompuertaCerrada(t *testing.T) {
	svc, _ := setupSolicitudService()

	// La solicitud 3 está pendiente pero sin financiamiento aprobado
	_, err := svc.Programar(context.Background(), 3, &dto.ProgramarRequest{
		FechaInicio: "2026-09-10",
		Cuadrilla:   "Cuadrilla Sur",
	})
	if !errors.Is(err, ErrProgramacionNoPermitida) {
		t.Errorf("se esperaba ErrProgramacionNoPermitida, se obtuvo %v", err)
	}

	// La solicitud 2 ya está programada
	_, err = svc.Programar(context.Background(), 2, &dto.ProgramarRequest{
		FechaInicio: "2026-09-10",
		Cuadrilla:   "Cuadrilla Sur",
	})
	if !errors.Is(err, ErrProgramacionNoPermitida) {
		t.Errorf("se esperaba ErrProgramacionNoPermitida, se obtuvo %v", err)
	}
}

func TestStats(t *testing.T) {
	svc, _ := setupSolicitudService()

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats debería tener éxito: %v", err)
	}
	if stats.Total != 3 || stats.Pendientes != 2 || stats.Programadas != 1 {
		t.Errorf("conteos incorrectos: %+v", stats)
	}
}
