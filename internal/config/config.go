package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the client-side configuration for the admin console SDK.
// All values come from the environment so the same binary can target
// different backend deployments.
type Config struct {
	AppName     string        `env:"APP_NAME" envDefault:"Admin Console"`
	APIBaseURL  string        `env:"API_BASE_URL" envDefault:"http://localhost:8000"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	KeyringDir  string        `env:"KEYRING_DIR"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`

	// Optional sign-in for the demo binary. Leave empty to rely on a
	// previously persisted session.
	Email    string `env:"CONSOLE_EMAIL"`
	Password string `env:"CONSOLE_PASSWORD"`
}

// New parses the configuration from environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
