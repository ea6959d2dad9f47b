package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/config"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/api/handler"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/api/router"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/client"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/repository"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/service"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/database"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/jwt"
	applogger "github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/logger"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/redis"
)

func main() {
	// 1. Cargar configuración
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al cargar configuración: %v\n", err)
		os.Exit(1)
	}

	// 2. Inicializar logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al inicializar logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("iniciando la consola de mantenimiento urbano...",
		zap.Int("port", cfg.Server.Port),
		zap.String("mantenimiento", cfg.Backends.MantenimientoBaseURL),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Conectar base de datos (solo cuentas del personal)
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("error al conectar la base de datos", zap.Error(err))
	}
	logger.Info("base de datos conectada")

	// 3.1 Ejecutar migraciones
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("error al obtener sql.DB subyacente", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("error al ejecutar migraciones", zap.Error(err))
	}

	// 4. Conectar Redis (opcional: sin Redis no hay lista negra ni rate limit,
	//    pero la consola arranca igual)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis no disponible, lista negra de tokens deshabilitada", zap.Error(err))
		rdb = nil
	}

	// 5. Administrador JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Cliente hacia los backends colaboradores.
	//    El token del operador viaja en el contexto de cada petición; un 401
	//    del backend queda registrado y el handler lo propaga como 401 de la
	//    consola para que la sesión se descarte.
	backend := client.New(&cfg.Backends, client.Options{
		Tokens: client.TokenFunc(client.TokenFromContext),
		OnUnauthorized: func() {
			logger.Warn("el backend rechazó las credenciales de la sesión del operador")
		},
	}, logger)

	// 7. Inyección de dependencias: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, backend, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 8. Rutas
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 9. Servidor HTTP con apagado ordenado
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP iniciado", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("fallo del servidor HTTP", zap.Error(err))
		}
	}()

	// 10. Señales del sistema y apagado ordenado
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("señal de apagado recibida, cerrando...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error al cerrar el servidor", zap.Error(err))
	}

	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("servidor detenido")
}
