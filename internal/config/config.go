// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config holds the server settings read at startup
type Config struct {
	StorageType string   `env:"NHL_STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string   `env:"NHL_REDIS_URL"`
	HTTPHost    string   `env:"NHL_HTTP_HOST"`
	HTTPPort    int      `env:"NHL_HTTP_PORT" envDefault:"8080"`
	LogLevel    string   `env:"NHL_LOG_LEVEL" envDefault:"info"`
	FeedFiles   []string `env:"NHL_FEED_FILES" envSeparator:","`
	// AsOf pins the clock used for player ages to a YYYY-MM-DD day
	AsOf        string   `env:"NHL_AS_OF"`
}

// Load parses Config from environment variables and validates it
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings are consistent
func (c Config) Validate() error {
	switch c.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("NHL_REDIS_URL required when NHL_STORAGE_TYPE=%s", StorageTypeRedis)
		}
	default:
		return fmt.Errorf("invalid NHL_STORAGE_TYPE %q: must be %q or %q", c.StorageType, StorageTypeMemory, StorageTypeRedis)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid NHL_HTTP_PORT %d", c.HTTPPort)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if _, _, err := c.AsOfTime(); err != nil {
		return err
	}
	return nil
}

// AsOfTime parses AsOf. The boolean is false when AsOf is unset.
func (c Config) AsOfTime() (time.Time, bool, error) {
	if c.AsOf == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.DateOnly, c.AsOf)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid NHL_AS_OF %q: %w", c.AsOf, err)
	}
	return t, true, nil
}

// SlogLevel converts LogLevel to a slog.Level
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid NHL_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
