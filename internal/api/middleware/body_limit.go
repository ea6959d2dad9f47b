package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/response"
)

// BodyLimit middleware global de tamaño máximo del cuerpo de petición.
// maxBytes: límite en bytes (1<<20 = 1MB)
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "el cuerpo de la petición es demasiado grande")
				return
			}
		}
	}
}
