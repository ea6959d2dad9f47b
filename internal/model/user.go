package model

// Roles del personal de la consola
const (
	RolAdmin    = "ADMIN"
	RolOperador = "OPERADOR"
	RolUsuario  = "USUARIO"
)

// User usuario del personal municipal (tabla users).
// Es el único registro que la consola posee localmente; todo lo demás
// pertenece a los backends remotos.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	Email        string `gorm:"type:varchar(255);not null;default:''"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'USUARIO'"    json:"role"`
	BaseModel
}

// TableName nombre de la tabla
func (User) TableName() string { return "users" }
