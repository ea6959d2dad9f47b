package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/config"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/api/handler"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/api/middleware"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/jwt"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/redis"
)

// Setup inicializa y devuelve el motor de rutas de Gin
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middleware global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── Salud ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Autenticación (sin sesión, con límite de tasa contra fuerza bruta)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Rutas con sesión
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// Solicitudes de mantenimiento
			solicitudes := authorized.Group("/solicitudes")
			{
				solicitudes.GET("", h.Solicitud.ListarTodas)
				solicitudes.GET("/pendientes", h.Solicitud.ListarPendientes)
				solicitudes.GET("/stats", h.Solicitud.Stats)
				solicitudes.GET("/:id", h.Solicitud.Obtener)
				solicitudes.POST("", middleware.RoleAuth(model.RolAdmin, model.RolOperador), h.Solicitud.Registrar)
				solicitudes.POST("/:id/programar", middleware.RoleAuth(model.RolAdmin, model.RolOperador), h.Solicitud.Programar)
				solicitudes.POST("/:id/financiamiento", middleware.RoleAuth(model.RolAdmin, model.RolOperador), h.Financiamiento.Solicitar)
				solicitudes.PUT("/:id/sincronizar-financiamiento", middleware.RoleAuth(model.RolAdmin, model.RolOperador), h.Financiamiento.Sincronizar)
			}

			// Vista de financiamiento
			authorized.GET("/financiamiento", h.Financiamiento.Listar)

			// Reportes de Participación Ciudadana
			reportes := authorized.Group("/reportes-externos")
			{
				reportes.GET("", h.Reportes.ListarAprobados)
				reportes.POST("/:id/registrar", middleware.RoleAuth(model.RolAdmin, model.RolOperador), h.Reportes.Registrar)
			}

			// Exportación
			export := authorized.Group("/export")
			{
				export.GET("/solicitudes", middleware.RoleAuth(model.RolAdmin, model.RolOperador), h.Export.ExportSolicitudes)
			}
		}
	}

	return r
}
