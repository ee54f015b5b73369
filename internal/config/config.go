package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	carvalue "github.com/carvalue/carvalue-client"
)

// client config - loaded once at startup and shared by every call
type Config struct {
	Environment    string        `env:"CARVALUE_ENVIRONMENT,default=dev"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	APIBaseURL     string        `env:"API_BASE_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
}

func NewConfig() (*Config, error) {
	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// BaseURL returns the backend address for the configured environment.
//
// An explicit API_BASE_URL always wins. Local environments fall back to the development
// backend; other environments have no default (see validateConfig).
// Any trailing slash is removed so that endpoint paths can be appended directly.
func (c *Config) BaseURL() string {
	base := c.APIBaseURL
	if base == "" && carvalue.LocalEnvs[c.Environment] {
		base = carvalue.DefaultDevBaseURL
	}
	return strings.TrimRight(base, "/")
}

func validateConfig(cfg *Config) error {
	if !carvalue.ValidEnvs[cfg.Environment] {
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, staging, prod", cfg.Environment)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", cfg.RequestTimeout)
	}

	if cfg.APIBaseURL == "" && !carvalue.LocalEnvs[cfg.Environment] {
		return fmt.Errorf("API_BASE_URL must be set in the %s environment", cfg.Environment)
	}

	return nil
}
