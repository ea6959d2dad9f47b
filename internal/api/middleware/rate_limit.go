package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/redis"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/response"
)

// RateLimit middleware de límite de tasa con ventana deslizante en Redis.
// limit: máximo de peticiones dentro de la ventana
// window: duración de la ventana
// Con rdb nil se deja pasar (la misma política degradada que JWTAuth).
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// Si Redis falla se deja pasar
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "demasiadas peticiones, intente más tarde")
			c.Abort()
			return
		}

		c.Next()
	}
}
