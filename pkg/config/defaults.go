package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Default values for configuration.
const (
	DefaultWebhookTimeout = 10 * time.Second

	// DefaultTimestampPattern matches the plain leading datetime written by
	// most file loggers: "2025-01-28 09:03:08 INFO [CAT] msg". No leading
	// whitespace is tolerated.
	DefaultTimestampPattern = `^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`
	DefaultTimestampLayout  = "2006-01-02 15:04:05"

	// DefaultMaxLineBytes is the maximum accepted log line length.
	DefaultMaxLineBytes = 1024 * 1024
)

// Environment variable names.
const (
	EnvTimestampPattern = "LOGORDER_TIMESTAMP_PATTERN"
	EnvTimestampLayout  = "LOGORDER_TIMESTAMP_LAYOUT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		TimestampFormat: TimestampConfig{
			Pattern: DefaultTimestampPattern,
			Layout:  DefaultTimestampLayout,
		},
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the
// config. A .env file in the working directory is honored if present.
func (c *Config) applyEnvironmentOverrides() {
	_ = godotenv.Load()

	if pattern := os.Getenv(EnvTimestampPattern); pattern != "" {
		c.TimestampFormat.Pattern = pattern
	}
	if layout := os.Getenv(EnvTimestampLayout); layout != "" {
		c.TimestampFormat.Layout = layout
	}
}
