package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/client"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/jwt"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/redis"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/response"
)

// JWTAuth middleware de autenticación JWT.
// Extrae y verifica el Access Token de Authorization: Bearer <token>; luego
// consulta la lista negra en Redis. Con rdb nil se omite la lista negra
// (modo degradado: los tokens revocados siguen valiendo hasta expirar).
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "falta la cabecera de autenticación")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "formato de cabecera de autenticación inválido")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token inválido o expirado")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "tipo de token inválido")
			c.Abort()
			return
		}

		if rdb != nil {
			bloqueado, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && bloqueado {
				response.Unauthorized(c, 10002, "la sesión fue cerrada")
				c.Abort()
				return
			}
		}

		// Inyectar la identidad en el contexto
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		// El token acompaña al contexto de la petición para que las llamadas
		// salientes a los backends viajen con las credenciales del operador
		c.Request = c.Request.WithContext(client.WithToken(c.Request.Context(), parts[1]))

		c.Next()
	}
}

// RoleAuth middleware de autorización por rol.
// Verifica que el usuario actual tenga alguno de los roles indicados.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "no autenticado")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "sin permiso para acceder")
		c.Abort()
	}
}
