// Package config loads server settings from MUNSELL_MCP_* environment
// variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. MUNSELL_MCP_LOG_LEVEL.
const Prefix = "MUNSELL_MCP"

// Config holds the runtime settings of the MCP server and CLI.
type Config struct {
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	MaxRequestBytes int    `envconfig:"MAX_REQUEST_BYTES" default:"1048576"`
	BatchWorkers    int    `envconfig:"BATCH_WORKERS" default:"4"`
	BatchLimit      int    `envconfig:"BATCH_LIMIT" default:"4096"`
	DominantCount   int    `envconfig:"DOMINANT_COUNT" default:"5"`
	SampleRadius    int    `envconfig:"SAMPLE_RADIUS" default:"0"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the settings used when no variables are set.
func Default() *Config {
	return &Config{
		LogLevel:        "info",
		MaxRequestBytes: 1 << 20,
		BatchWorkers:    4,
		BatchLimit:      4096,
		DominantCount:   5,
		SampleRadius:    0,
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxRequestBytes < 4096 {
		return fmt.Errorf("%s_MAX_REQUEST_BYTES must be at least 4096, got %d", Prefix, c.MaxRequestBytes)
	}
	if c.BatchWorkers < 1 {
		return fmt.Errorf("%s_BATCH_WORKERS must be positive, got %d", Prefix, c.BatchWorkers)
	}
	if c.BatchLimit < 1 {
		return fmt.Errorf("%s_BATCH_LIMIT must be positive, got %d", Prefix, c.BatchLimit)
	}
	if c.DominantCount < 1 {
		return fmt.Errorf("%s_DOMINANT_COUNT must be positive, got %d", Prefix, c.DominantCount)
	}
	if c.SampleRadius < 0 {
		return fmt.Errorf("%s_SAMPLE_RADIUS must not be negative, got %d", Prefix, c.SampleRadius)
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
