package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	API   APIConfig
	Lists ListsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP de la consola.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig describe la API de inventario que consume la consola.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
	// UserPayloadStyle define las claves del alta de usuarios: "snake" (nombre_usuario, email)
	// o "capitalized" (Nombre, Email). El backend no tiene un contrato único.
	UserPayloadStyle string
}

// ListsConfig comportamiento de listados y notificaciones.
type ListsConfig struct {
	NotificationTTL time.Duration
	// DistinguishFailures muestra un estado de error en lugar de "sin registros"
	// cuando el listado no se pudo cargar.
	DistinguishFailures bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-console"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		API: APIConfig{
			BaseURL:          strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:8080"), "/"),
			Timeout:          time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 10)) * time.Second,
			UserPayloadStyle: strings.ToLower(getString(v, "USER_PAYLOAD_STYLE", "snake")),
		},
		Lists: ListsConfig{
			NotificationTTL:     time.Duration(getInt(v, "NOTIFICATION_TTL_SECONDS", 5)) * time.Second,
			DistinguishFailures: getBool(v, "LIST_DISTINGUISH_FAILURES", false),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL vacío")
	}
	switch cfg.API.UserPayloadStyle {
	case "snake", "capitalized":
	default:
		return nil, fmt.Errorf("config: USER_PAYLOAD_STYLE inválido %q (snake|capitalized)", cfg.API.UserPayloadStyle)
	}
	if cfg.Lists.NotificationTTL <= 0 {
		cfg.Lists.NotificationTTL = 5 * time.Second
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
