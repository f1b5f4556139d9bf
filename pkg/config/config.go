package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env and
// optionally from a file).
type Config struct {
	App  AppConfig
	Auth AuthConfig
	Data DataConfig
	JWT  JWTConfig
	HTTP HTTPConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// AuthConfig dashboard login credentials, compared verbatim at login.
// Supplied externally (env or config file), never stored in the data files.
type AuthConfig struct {
	Username string
	Password string
}

// DataConfig location and shape of the CSV data directory.
type DataConfig struct {
	Dir        string // directory holding the roster and detail CSVs
	RosterFile string // file name of the roster inside Dir
	Encoding   string // "utf-8" (default) or "windows-1251" for legacy exports
}

// JWTConfig session token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads the configuration from environment variables (and optionally
// from a file). Env vars take priority. Expected names: APP_ENV, DATA_DIR,
// AUTH_USERNAME, JWT_SECRET, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore error if absent

	// Also try config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignore error if absent

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "attestation-dashboard"),
		},
		Auth: AuthConfig{
			Username: getString(v, "AUTH_USERNAME", ""),
			Password: getString(v, "AUTH_PASSWORD", ""),
		},
		Data: DataConfig{
			Dir:        getString(v, "DATA_DIR", "./data"),
			RosterFile: getString(v, "ROSTER_FILE", "final.csv"),
			Encoding:   getString(v, "DATA_ENCODING", "utf-8"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "attestation-dashboard"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	if cfg.Auth.Username == "" || cfg.Auth.Password == "" {
		return nil, fmt.Errorf("config: AUTH_USERNAME and AUTH_PASSWORD are required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
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
