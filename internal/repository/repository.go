package repository

import "gorm.io/gorm"

// Repository punto de entrada agregado de todos los repositorios.
// La consola solo persiste cuentas del personal; las solicitudes de
// mantenimiento viven en el backend remoto.
type Repository struct {
	User UserRepository
}

// NewRepository crea el agregado de repositorios
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User: NewUserRepo(db),
	}
}
