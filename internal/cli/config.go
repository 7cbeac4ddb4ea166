package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration. Environment variables set the defaults
// and command line flags override them.
type Config struct {
	ServerURL string `env:"NHL_SERVER" envDefault:"http://localhost:8080"`
	Output    string `env:"NHL_OUTPUT" envDefault:"text"`
}

// LoadConfig reads the CLI configuration from the environment
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks flag and environment values after parsing
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server URL is required")
	}
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be %q or %q", c.Output, OutputText, OutputJSON)
	}
}
