package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/dto"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/service"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/jwt"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/response"
)

// AuthHandler handlers HTTP del módulo de autenticación
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler crea el AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login inicio de sesión del personal
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros de petición inválidos")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			response.Error(c, http.StatusUnauthorized, 11001, "usuario o contraseña incorrectos")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// RefreshToken renovación del par de tokens
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros de petición inválidos")
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrRefreshInvalido) || errors.Is(err, service.ErrUsuarioNoEncontrado) {
			response.Unauthorized(c, 11002, "refresh token inválido")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout cierre de sesión: pone el token en la lista negra, con lo que todas
// las pestañas que lo comparten quedan fuera a la vez
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "no autenticado")
		return
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "no autenticado")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// GetCurrentUser datos del usuario autenticado
// GET /api/v1/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNoEncontrado) {
			response.NotFound(c, 11003, "el usuario no existe")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
