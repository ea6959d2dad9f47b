package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/config"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
)

func newTestClient(baseURL string, opts Options) *Client {
	cfg := &config.BackendsConfig{
		MantenimientoBaseURL: baseURL,
		ParticipacionBaseURL: baseURL,
		Timeout:              5 * time.Second,
	}
	return New(cfg, opts, zap.NewNop())
}

func staticToken(token string) TokenProvider {
	return TokenFunc(func(ctx context.Context) string { return token })
}

func TestInterceptorAdjuntaToken(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, Options{Tokens: staticToken("abc123")})
	if _, err := c.ListarTodas(context.Background()); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("cabecera Authorization = %q, se esperaba el token bearer", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
}

func TestInterceptorSinTokenOmiteCabecera(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, Options{Tokens: staticToken("")})
	if _, err := c.ListarTodas(context.Background()); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("no debería enviarse Authorization sin token, se obtuvo %q", gotAuth)
	}
}

func TestCallback401InvalidaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token vencido"}`))
	}))
	defer srv.Close()

	invalidada := false
	c := newTestClient(srv.URL, Options{OnUnauthorized: func() { invalidada = true }})

	_, err := c.ListarTodas(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("se esperaba APIError 401, se obtuvo %v", err)
	}
	if !invalidada {
		t.Error("un 401 debe disparar el callback de invalidación de sesión")
	}
}

func TestAPIErrorExtraeMensaje(t *testing.T) {
	tests := []struct {
		cuerpo  string
		mensaje string
	}{
		{`{"message":"solicitud no encontrada"}`, "solicitud no encontrada"},
		{`{"msg":"fallo"}`, "fallo"},
		{`{"mensaje":"sin permisos"}`, "sin permisos"},
		{`"texto plano"`, "texto plano"},
		{`{"otro":"campo"}`, `{"otro":"campo"}`},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(tt.cuerpo))
		}))
		c := newTestClient(srv.URL, Options{})
		_, err := c.ListarTodas(context.Background())
		srv.Close()

		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("se esperaba *APIError, se obtuvo %T", err)
		}
		if apiErr.Message != tt.mensaje {
			t.Errorf("cuerpo %s: mensaje = %q, se esperaba %q", tt.cuerpo, apiErr.Message, tt.mensaje)
		}
	}
}

func TestListarTodasNormaliza(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mantenimiento/solicitudes/todas" {
			t.Errorf("ruta inesperada: %s", r.URL.Path)
		}
		w.Write([]byte(`[{"requestId":5,"status":"en progreso","priority":"alta"}]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, Options{})
	lista, err := c.ListarTodas(context.Background())
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(lista) != 1 {
		t.Fatalf("se esperaba 1 solicitud, se obtuvieron %d", len(lista))
	}
	if lista[0].ID != 5 || lista[0].Estado != model.EstadoEnProgreso || lista[0].Prioridad != model.PrioridadAlta {
		t.Errorf("registro mal normalizado: %+v", lista[0])
	}
}

func TestListarFinanciamiento_RespaldoUnaVezAnte404(t *testing.T) {
	llamadasPreferida := 0
	llamadasHeredada := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/mantenimiento/solicitud/financiamiento/todas":
			llamadasPreferida++
			w.WriteHeader(http.StatusNotFound)
		case "/mantenimiento/solicitudes/financiamiento/todas":
			llamadasHeredada++
			w.Write([]byte(`{"data":[{"id":3,"financialStatus":"FINANCIADA"}]}`))
		default:
			t.Errorf("ruta inesperada: %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, Options{})
	lista, err := c.ListarFinanciamiento(context.Background())
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if llamadasPreferida != 1 || llamadasHeredada != 1 {
		t.Errorf("se esperaba exactamente una llamada a cada ruta, preferida=%d heredada=%d",
			llamadasPreferida, llamadasHeredada)
	}
	if len(lista) != 1 || lista[0].ID != 3 || lista[0].EstadoFinanciero != model.FinanciamientoFinanciada {
		t.Errorf("resultado del respaldo mal normalizado: %+v", lista)
	}
}

func TestListarFinanciamiento_500NoActivaRespaldo(t *testing.T) {
	llamadasHeredada := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/mantenimiento/solicitud/financiamiento/todas":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"caído"}`))
		case "/mantenimiento/solicitudes/financiamiento/todas":
			llamadasHeredada++
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, Options{})
	_, err := c.ListarFinanciamiento(context.Background())
	if err == nil {
		t.Fatal("un 500 en la ruta preferida debe propagarse")
	}
	if IsNotFound(err) {
		t.Errorf("el error propagado no debería ser 404: %v", err)
	}
	if llamadasHeredada != 0 {
		t.Error("solo un 404 activa la ruta heredada")
	}
}

func TestProgramarDevuelveActualizada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mantenimiento/solicitudes/7/programar" || r.Method != http.MethodPost {
			t.Errorf("petición inesperada: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"id":7,"status":"PROGRAMADA","scheduledDate":"2026-09-15","assignedCrew":"Cuadrilla Norte","assignedResources":["camión"]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, Options{})
	s, err := c.Programar(context.Background(), 7, ProgramacionPayload{
		FechaInicio: "2026-09-15",
		Cuadrilla:   "Cuadrilla Norte",
		Recursos:    []string{"camión"},
	})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if s.Estado != model.EstadoProgramada || s.FechaProgramada == nil || *s.FechaProgramada != "2026-09-15" {
		t.Errorf("respuesta mal normalizada: %+v", s)
	}
}

func TestReportesAprobados_404DevuelveVacio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, Options{})
	reportes, err := c.ReportesAprobados(context.Background())
	if err != nil {
		t.Fatalf("un 404 del sistema externo no es error: %v", err)
	}
	if len(reportes) != 0 {
		t.Errorf("se esperaba lista vacía, se obtuvieron %d", len(reportes))
	}
}

func TestReportesAprobados_FormaEnvuelta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/participacion/reportes-aprobados" {
			t.Errorf("ruta inesperada: %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":[{"reportId":9,"title":"Bache en 5ta calle","location":"Zona 1"}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, Options{})
	reportes, err := c.ReportesAprobados(context.Background())
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(reportes) != 1 || reportes[0].ID != 9 || reportes[0].Titulo != "Bache en 5ta calle" {
		t.Errorf("reportes mal normalizados: %+v", reportes)
	}
}
