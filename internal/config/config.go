// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds the CLI's runtime settings.
type Config struct {
	// CatalogPath points at an alternative catalog document. Empty means the
	// embedded catalog.
	CatalogPath    string `env:"STEEZY_CATALOG"`
	ProgressPath   string `env:"STEEZY_PROGRESS"`
	RecommendLimit int    `env:"STEEZY_RECOMMEND_LIMIT" envDefault:"5"`
	LogLevel       string `env:"STEEZY_LOG_LEVEL" envDefault:"warn"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		RecommendLimit: 5,
		LogLevel:       "warn",
	}
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.RecommendLimit < 1 {
		return nil, fmt.Errorf("STEEZY_RECOMMEND_LIMIT must be at least 1, got %d", cfg.RecommendLimit)
	}
	return &cfg, nil
}

// LoadDotenv reads .env files into the environment. A missing file is not an
// error; variables already set are kept.
func LoadDotenv(files ...string) {
	_ = godotenv.Load(files...)
}
