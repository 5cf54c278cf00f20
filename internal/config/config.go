package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Mail     MailConfig
	Static   StaticConfig
	CORS     CORSConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"5000"`
	Env             string        `env:"SERVER_ENV" envDefault:"development"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds database configuration. ConnectionURL, when set, takes
// precedence over the individual postgres parts.
type DatabaseConfig struct {
	Driver        string `env:"DB_DRIVER" envDefault:"postgres"`
	ConnectionURL string `env:"DATABASE_URL"`
	Host          string `env:"DB_HOST" envDefault:"localhost"`
	Port          int    `env:"DB_PORT" envDefault:"5432"`
	User          string `env:"DB_USER" envDefault:"postgres"`
	Password      string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName        string `env:"DB_NAME" envDefault:"solene"`
	SSLMode       string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"solene.db"`
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	if c.ConnectionURL != "" {
		return c.ConnectionURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + strconv.Itoa(c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// RedisConfig holds Redis configuration. An empty URL disables Redis.
type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Password string `env:"REDIS_PASSWORD"`
}

func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.URL) != ""
}

// MailConfig holds SMTP and notification settings. An empty Host disables
// delivery.
type MailConfig struct {
	Host       string        `env:"SMTP_HOST"`
	Port       int           `env:"SMTP_PORT" envDefault:"587"`
	Secure     bool          `env:"SMTP_SECURE" envDefault:"false"`
	User       string        `env:"SMTP_USER"`
	Password   string        `env:"SMTP_PASSWORD"`
	From       string        `env:"SMTP_FROM"`
	Timeout    time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
	AdminEmail string        `env:"ADMIN_EMAIL"`
}

func (c MailConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

// StaticConfig points at the built single-page client.
type StaticConfig struct {
	Dir string `env:"STATIC_DIR" envDefault:"dist/public"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5000,http://localhost:5173,http://127.0.0.1:5173"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// App passwords are often pasted with grouping spaces.
	cfg.Mail.Password = strings.Join(strings.Fields(cfg.Mail.Password), "")
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.User
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return &cfg, nil
}
