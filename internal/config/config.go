// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings shared by the server and the CLI.
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`

	// ServiceOrderViewerIDs overrides the built-in allow-list when set.
	ServiceOrderViewerIDs []int `env:"SERVICE_ORDER_VIEWER_IDS" envSeparator:","`
	// AdminEmployeeIDs may list every service order.
	AdminEmployeeIDs []int `env:"ADMIN_EMPLOYEE_IDS" envSeparator:","`

	RateLimit RateLimitOptions `envPrefix:"RATE_LIMIT_"`
}

// RateLimitOptions configures per-client request limits.
type RateLimitOptions struct {
	Enabled         bool          `env:"ENABLED" envDefault:"true"`
	DefaultLimit    int           `env:"DEFAULT" envDefault:"1000"`
	DefaultWindow   time.Duration `env:"WINDOW" envDefault:"1m"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"5m"`
	Whitelist       []string      `env:"WHITELIST" envSeparator:","`
	Blacklist       []string      `env:"BLACKLIST" envSeparator:","`
}

// Validate checks the rate limit configuration for errors
func (r *RateLimitOptions) Validate() error {
	if !r.Enabled {
		return nil
	}
	if r.DefaultLimit < 0 {
		return fmt.Errorf("RATE_LIMIT_DEFAULT must be non-negative, got %d", r.DefaultLimit)
	}
	if r.DefaultLimit > 0 && r.DefaultWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", r.DefaultWindow)
	}
	return nil
}

// LoadEnv loads the given .env files into the process environment, skipping
// files that do not exist. Variables already set are not overridden.
// Returns the number of files loaded.
func LoadEnv(files ...string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return 0, fmt.Errorf("failed to load env files: %w", err)
	}
	return len(existing), nil
}

// Load parses the configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// DATABASE_URL is not required here; commands that need it call RequireDatabase.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT must be between 1 and 65535, got %d", c.Port)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config error: LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	for _, id := range c.ServiceOrderViewerIDs {
		if id <= 0 {
			return fmt.Errorf("config error: SERVICE_ORDER_VIEWER_IDS contains non-positive id %d", id)
		}
	}
	for _, id := range c.AdminEmployeeIDs {
		if id <= 0 {
			return fmt.Errorf("config error: ADMIN_EMPLOYEE_IDS contains non-positive id %d", id)
		}
	}
	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("rate limit configuration error: %w", err)
	}
	return nil
}

// RequireDatabase returns an error when no database URL is configured.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	return nil
}
