package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config estructura global de configuración de la aplicación
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Backends BackendsConfig `mapstructure:"backends"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configuración del servidor HTTP de la consola
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig configuración de orígenes permitidos
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// BackendsConfig URLs de los servicios colaboradores externos
// La consola no es dueña de ningún registro de solicitudes: todos viven en
// el backend de mantenimiento y en el sistema de Participación Ciudadana.
type BackendsConfig struct {
	MantenimientoBaseURL string        `mapstructure:"mantenimiento_base_url"`
	ParticipacionBaseURL string        `mapstructure:"participacion_base_url"`
	Timeout              time.Duration `mapstructure:"timeout"`
}

// DatabaseConfig configuración de PostgreSQL (solo usuarios del personal)
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // minutos
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // minutos
}

// DSN genera la cadena de conexión de PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig configuración de Redis (lista negra de tokens y rate limit)
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig configuración de autenticación JWT
type AuthConfig struct {
	JWTSecret               string        `mapstructure:"jwt_secret"`
	AccessTokenTTL          time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTLDefault  time.Duration `mapstructure:"refresh_token_ttl_default"`
	RefreshTokenTTLRemember time.Duration `mapstructure:"refresh_token_ttl_remember_me"`
}

// LogConfig configuración de logging
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load carga la configuración desde archivo y variables de entorno
// Prioridad: variables de entorno > archivo de configuración > valores por defecto
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── Valores por defecto ──
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.base_url", "http://localhost:8090")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("backends.mantenimiento_base_url", "http://localhost:8080/api")
	v.SetDefault("backends.participacion_base_url", "http://localhost:8080/api")
	v.SetDefault("backends.timeout", "10s")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "consola_mantenimiento")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "America/Guatemala")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)
	v.SetDefault("db.conn_max_idle_time", 30)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.access_token_ttl", "15m")
	v.SetDefault("auth.refresh_token_ttl_default", "24h")
	v.SetDefault("auth.refresh_token_ttl_remember_me", "168h")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── Archivo de configuración ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── Variables de entorno ──
	v.SetEnvPrefix("CONSOLA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error al leer archivo de configuración: %w", err)
		}
		// Sin archivo de configuración se usan defaults y variables de entorno
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error al interpretar configuración: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate verifica los valores críticos de configuración
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("configuración inválida: auth.jwt_secret no puede estar vacío")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("configuración inválida: auth.jwt_secret debe tener al menos 16 caracteres")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("configuración inválida: server.port debe estar entre 1 y 65535")
	}
	if c.Backends.MantenimientoBaseURL == "" {
		return fmt.Errorf("configuración inválida: backends.mantenimiento_base_url no puede estar vacío")
	}
	return nil
}
