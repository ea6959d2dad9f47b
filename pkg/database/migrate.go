package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations ejecuta las migraciones de base de datos
// Detecta la versión actual y aplica todas las pendientes.
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("error al cargar archivos de migración: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("error al crear driver de migración: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("error al inicializar migraciones: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("error al ejecutar migraciones: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("migraciones en estado dirty", zap.Uint("version", version))
	} else {
		logger.Info("migraciones completadas", zap.Uint("version", version))
	}

	return nil
}
