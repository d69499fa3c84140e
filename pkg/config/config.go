package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Session SessionConfig
	Auth    AuthConfig
	Alerts  AlertsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SessionConfig configuración del almacenamiento local de la sesión.
// Path es el archivo JSON que hace de "local storage" del dispositivo.
type SessionConfig struct {
	Path string
}

// AuthConfig configuración del flujo de login.
// LoginDelay simula la latencia de red del verificador de credenciales demo.
type AuthConfig struct {
	LoginDelay time.Duration
}

// AlertsConfig configuración de la derivación de alertas.
// ExpiryWindowDays es la ventana hacia adelante para expiry-warning (3 por defecto).
// KeepAcknowledged conserva el estado acknowledged por id al regenerar alertas.
type AlertsConfig struct {
	ExpiryWindowDays int
	KeepAcknowledged bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
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
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "emart-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "emart-api"),
		},
		Session: SessionConfig{
			Path: getString(v, "SESSION_STORE_PATH", ".emart-session.json"),
		},
		Auth: AuthConfig{
			LoginDelay: time.Duration(getInt(v, "AUTH_LOGIN_DELAY_MS", 1000)) * time.Millisecond,
		},
		Alerts: AlertsConfig{
			ExpiryWindowDays: getInt(v, "ALERT_EXPIRY_WINDOW_DAYS", 3),
			KeepAcknowledged: v.GetBool("ALERT_KEEP_ACKNOWLEDGED"),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
