// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings. Command-line flags take precedence.
type Config struct {
	Addr            string        `env:"LIXI_ADDR"`                            // Empty picks a free port on localhost
	WebDir          string        `env:"LIXI_WEB_DIR" envDefault:"web"`        // Static assets served under /web/
	ShutdownTimeout time.Duration `env:"LIXI_SHUTDOWN_TIMEOUT" envDefault:"5s"` // Grace period on shutdown
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("LIXI_SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{WebDir: "web", ShutdownTimeout: 5 * time.Second}
}
