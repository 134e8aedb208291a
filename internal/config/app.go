package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	EnvAppBasePath = "APP_BASE_PATH"
	EnvAppAPIPath  = "APP_API_PATH"
)

// AppConfig controls where the application shell and its JSON API are mounted.
// Both paths are "/" or a single path segment.
type AppConfig struct {
	BasePath string `toml:"base_path"`
	APIPath  string `toml:"api_path"`
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.APIPath != "" {
		c.APIPath = overlay.APIPath
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/"
	}
	if c.APIPath == "" {
		c.APIPath = "/api"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppAPIPath); v != "" {
		c.APIPath = v
	}
}

func (c *AppConfig) validate() error {
	if err := validateMount(c.BasePath); err != nil {
		return fmt.Errorf("base_path: %w", err)
	}
	if err := validateMount(c.APIPath); err != nil {
		return fmt.Errorf("api_path: %w", err)
	}
	if c.APIPath == "/" {
		return fmt.Errorf("api_path cannot be the root path")
	}
	if c.APIPath == c.BasePath {
		return fmt.Errorf("api_path and base_path must differ")
	}
	return nil
}

func validateMount(p string) error {
	if p == "/" {
		return nil
	}
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("%q must start with /", p)
	}
	if len(p) == 1 || strings.Contains(p[1:], "/") {
		return fmt.Errorf("%q must be / or a single path segment", p)
	}
	return nil
}
