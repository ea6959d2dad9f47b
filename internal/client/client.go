// Package client implementa los clientes REST hacia los servicios
// colaboradores: el backend de mantenimiento (que también expone el portal de
// finanzas) y el sistema de Participación Ciudadana.
//
// El token de sesión se adjunta a cada petición saliente mediante un
// http.RoundTripper interceptor; una respuesta 401 invalida la sesión a través
// del callback configurado. No hay reintentos automáticos: el único camino de
// respaldo es el documentado para la lista de financiamiento.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/config"
)

// TokenProvider entrega el token bearer vigente para las llamadas salientes.
// La capa de sesión lo implementa; un token vacío omite la cabecera.
type TokenProvider interface {
	Token(ctx context.Context) string
}

// TokenFunc adaptador de función a TokenProvider
type TokenFunc func(ctx context.Context) string

// Token implementa TokenProvider
func (f TokenFunc) Token(ctx context.Context) string { return f(ctx) }

type tokenCtxKey struct{}

// WithToken devuelve un contexto que arrastra el token de la sesión entrante.
// El middleware de autenticación lo inyecta para que las llamadas salientes
// viajen con las credenciales del usuario que operó la consola.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// TokenFromContext recupera el token inyectado con WithToken ("" si no hay)
func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(tokenCtxKey{}).(string); ok {
		return token
	}
	return ""
}

// APIError error reportado por un backend con código de estado y mensaje
// legible extraído del cuerpo cuando existe.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// IsNotFound indica si el error es un APIError 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized indica si el error es un APIError 401
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// authTransport interceptor que adjunta el token y detecta sesiones vencidas
type authTransport struct {
	base           http.RoundTripper
	tokens         TokenProvider
	onUnauthorized func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens != nil {
		if token := t.tokens.Token(req.Context()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.onUnauthorized()
	}

	return resp, nil
}

// Client cliente REST hacia los backends colaboradores
type Client struct {
	http              *http.Client
	mantenimientoBase string
	participacionBase string
	logger            *zap.Logger
}

// Options opciones de construcción del cliente
type Options struct {
	Tokens         TokenProvider
	OnUnauthorized func()
}

// New crea el cliente de backends a partir de la configuración
func New(cfg *config.BackendsConfig, opts Options, logger *zap.Logger) *Client {
	transport := &authTransport{
		base:           http.DefaultTransport,
		tokens:         opts.Tokens,
		onUnauthorized: opts.OnUnauthorized,
	}

	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		mantenimientoBase: cfg.MantenimientoBaseURL,
		participacionBase: cfg.ParticipacionBaseURL,
		logger:            logger,
	}
}

// extractMessage busca un mensaje legible en el cuerpo de error del backend
func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return string(body)
	}
	switch v := decoded.(type) {
	case string:
		return v
	case map[string]interface{}:
		for _, key := range []string{"message", "msg", "mensaje"} {
			if s, ok := v[key].(string); ok {
				return s
			}
		}
		return string(body)
	default:
		return string(body)
	}
}

// doJSON ejecuta una petición JSON y decodifica la respuesta en out (si no es
// nil). Los estados >= 400 se devuelven como *APIError; los fallos de
// transporte llegan sin código de estado.
func (c *Client) doJSON(ctx context.Context, method, url string, body interface{}, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("error al serializar cuerpo de petición: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, fmt.Errorf("error al construir petición: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("error de transporte en %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("error al leer respuesta: %w", err)
	}

	if resp.StatusCode >= 400 {
		return resp.StatusCode, &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(raw),
			Body:       raw,
		}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("error al decodificar respuesta de %s: %w", url, err)
		}
	}

	return resp.StatusCode, nil
}
