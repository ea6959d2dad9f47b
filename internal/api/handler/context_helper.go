package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/client"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/response"
)

// MustGetUserID extrae el user_id del contexto de Gin.
// Si el middleware JWT no lo inyectó, escribe un 401 y devuelve false;
// quien llama debe hacer return inmediato.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", false
	}
	return s, true
}

// paramID extrae y valida el parámetro de ruta :id como entero positivo
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "el id de la ruta debe ser un entero positivo")
		return 0, false
	}
	return id, true
}

// backendError traduce un fallo del backend remoto a la respuesta de la
// consola. Un 401 del backend invalida la sesión del operador: se responde
// 401 para que la consola descarte el token en lugar de reintentar. Los
// demás errores HTTP del backend viajan como 502 con su mensaje; cualquier
// otro fallo (red, decodificación) queda como error interno.
func backendError(c *gin.Context, err error) {
	if client.IsUnauthorized(err) {
		response.Unauthorized(c, 30002, "el backend rechazó las credenciales de la sesión")
		return
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		response.ErrorWithDetails(c, http.StatusBadGateway, 30001,
			"el backend de mantenimiento rechazó la operación", apiErr.Message)
		return
	}
	response.InternalError(c)
}
