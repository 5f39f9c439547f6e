package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int   `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP  `envPrefix:"HTTP_"`
	Store    Store `envPrefix:"STORE_"`
	JWT      JWT   `envPrefix:"JWT_"`
	CORS     CORS  `envPrefix:"CORS_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Store contains persistence parameters. Dir points at the flat-file
// collection directory; a non-empty DSN switches the repositories to
// Postgres instead.
type Store struct {
	Dir string `env:"DIR" envDefault:"data"`
	DSN string `env:"DSN" envDefault:""`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret   string        `env:"SECRET" envDefault:"devsecret"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
}

// CORS contains cross-origin parameters.
type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
