package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the YAML config is looked up, relative to the working directory
var DefaultPath = filepath.Join("configs", "config.yaml")

// Identity sources accepted by Auth.Mode
const (
	AuthModeJWT    = "jwt"
	AuthModeHeader = "header"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		URL             string `yaml:"url" env:"DATABASE_URL"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Auth struct {
		Mode       string `yaml:"mode" env:"AUTH_MODE"`
		JWTSecret  string `yaml:"jwt_secret" env:"JWT_SECRET"`
		TokenTTL   string `yaml:"token_ttl" env:"JWT_TOKEN_TTL"`
		Issuer     string `yaml:"issuer" env:"JWT_ISSUER"`
		HeaderName string `yaml:"header_name" env:"AUTH_HEADER_NAME"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	} `yaml:"cors"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; env vars alone are enough on hosted platforms.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "coursehub"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.Auth.Mode = AuthModeJWT
	config.Auth.TokenTTL = "24h"
	config.Auth.Issuer = "coursehub"
	config.Auth.HeaderName = "X-User-Id"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.CORS.AllowedOrigins = []string{"http://localhost:3000"}
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.URL == "" && config.Database.Host == "" {
		return fmt.Errorf("database url or host is required")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid connection max lifetime: %w", err)
	}

	switch config.Auth.Mode {
	case AuthModeJWT:
		if config.Auth.JWTSecret == "" {
			return fmt.Errorf("JWT secret is required when auth mode is %q", AuthModeJWT)
		}
	case AuthModeHeader:
		if config.IsProduction() {
			return fmt.Errorf("auth mode %q is not allowed in production", AuthModeHeader)
		}
	default:
		return fmt.Errorf("unknown auth mode %q", config.Auth.Mode)
	}

	if _, err := time.ParseDuration(config.Auth.TokenTTL); err != nil {
		return fmt.Errorf("invalid token ttl format: %w", err)
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}

// GetPostgresConnectionString returns postgres connection string.
// An explicit DATABASE_URL wins over the discrete fields. SSLMode is added to
// it unless the URL already names an sslmode.
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return withSSLMode(c.Database.URL, c.SSLMode())
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		c.SSLMode(),
	)
}

// withSSLMode appends sslmode to a URL or keyword/value DSN that lacks one
func withSSLMode(dsn, mode string) string {
	if !strings.Contains(dsn, "://") {
		if strings.Contains(dsn, "sslmode=") {
			return dsn
		}
		return strings.TrimSpace(dsn) + " sslmode=" + mode
	}

	u, err := url.Parse(dsn)
	if err != nil {
		// pgx reports the malformed URL when the pool is built
		return dsn
	}
	q := u.Query()
	if q.Get("sslmode") != "" {
		return dsn
	}
	q.Set("sslmode", mode)
	u.RawQuery = q.Encode()
	return u.String()
}

// SSLMode returns the sslmode to negotiate with postgres.
// Production defaults to require, everything else to disable.
func (c *Config) SSLMode() string {
	if c.Database.SSLMode != "" {
		return c.Database.SSLMode
	}
	if c.IsProduction() {
		return "require"
	}
	return "disable"
}

// TokenTTLDuration returns auth.token_ttl, falling back to 24h when unparsable
func (c *Config) TokenTTLDuration() time.Duration {
	ttl, err := time.ParseDuration(c.Auth.TokenTTL)
	if err != nil || ttl <= 0 {
		return 24 * time.Hour
	}
	return ttl
}
