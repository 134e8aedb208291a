package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// Env names the environment variables that override logging settings.
type Env struct {
	Level  string
	Format string
}

// DefaultEnv is the service's logging override set: LOGGING_LEVEL and
// LOGGING_FORMAT.
var DefaultEnv = &Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
}

// Config selects the minimum level and output format of the service logger.
// Unset fields default to info level and JSON output, the format expected by
// deployed log collectors; config.toml opts into text for local runs.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Finalize fills defaults, applies overrides from env (nil skips them) and
// rejects unknown levels or formats.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}

	if env != nil {
		if v := os.Getenv(env.Level); v != "" {
			c.Level = Level(v)
		}
		if v := os.Getenv(env.Format); v != "" {
			c.Format = Format(v)
		}
	}

	if err := c.Level.Validate(); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if err := c.Format.Validate(); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}

// Merge copies the fields set in overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

// HandlerOptions returns the slog options for the configured level. Debug
// logging also records the source location of each entry.
func (c *Config) HandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:     c.Level.ToSlogLevel(),
		AddSource: c.Level == LevelDebug,
	}
}
