package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	EnvProxyUpstream        = "PROXY_UPSTREAM"
	EnvProxyTimeout         = "PROXY_TIMEOUT"
	EnvProxyBreakerFailures = "PROXY_BREAKER_FAILURES"
	EnvProxyBreakerTimeout  = "PROXY_BREAKER_TIMEOUT"
)

// ProxyConfig configures pass-through of backend API prefixes to an upstream
// service. Proxying is disabled when Upstream is empty. The circuit opens
// after BreakerFailures consecutive transport failures and stays open for
// BreakerTimeout. BreakerFailures defaults to 5 when unset; a negative value
// disables the breaker.
type ProxyConfig struct {
	Upstream        string   `toml:"upstream"`
	Prefixes        []string `toml:"prefixes"`
	Timeout         string   `toml:"timeout"`
	BreakerFailures int      `toml:"breaker_failures"`
	BreakerTimeout  string   `toml:"breaker_timeout"`

	upstreamURL *url.URL
}

// Enabled reports whether an upstream is configured.
func (c *ProxyConfig) Enabled() bool {
	return c.Upstream != ""
}

// UpstreamURL returns the parsed upstream. Valid after Finalize.
func (c *ProxyConfig) UpstreamURL() *url.URL {
	return c.upstreamURL
}

// BreakerEnabled reports whether upstream calls go through a circuit breaker.
func (c *ProxyConfig) BreakerEnabled() bool {
	return c.BreakerFailures > 0
}

// TimeoutDuration returns the upstream response header timeout.
func (c *ProxyConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// BreakerTimeoutDuration returns how long the circuit stays open.
func (c *ProxyConfig) BreakerTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.BreakerTimeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the proxy configuration.
func (c *ProxyConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ProxyConfig) Merge(overlay *ProxyConfig) {
	if overlay.Upstream != "" {
		c.Upstream = overlay.Upstream
	}
	if overlay.Prefixes != nil {
		c.Prefixes = overlay.Prefixes
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.BreakerFailures != 0 {
		c.BreakerFailures = overlay.BreakerFailures
	}
	if overlay.BreakerTimeout != "" {
		c.BreakerTimeout = overlay.BreakerTimeout
	}
}

func (c *ProxyConfig) loadDefaults() {
	if c.Prefixes == nil {
		c.Prefixes = []string{"/graph", "/simulation", "/report"}
	}
	if c.Timeout == "" {
		c.Timeout = "300s"
	}
	if c.BreakerFailures == 0 {
		c.BreakerFailures = 5
	}
	if c.BreakerTimeout == "" {
		c.BreakerTimeout = "30s"
	}
}

func (c *ProxyConfig) loadEnv() {
	if v := os.Getenv(EnvProxyUpstream); v != "" {
		c.Upstream = v
	}
	if v := os.Getenv(EnvProxyTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvProxyBreakerFailures); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.BreakerFailures = n
		}
	}
	if v := os.Getenv(EnvProxyBreakerTimeout); v != "" {
		c.BreakerTimeout = v
	}
}

func (c *ProxyConfig) validate() error {
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.BreakerTimeout); err != nil {
		return fmt.Errorf("invalid breaker_timeout: %w", err)
	}
	for _, p := range c.Prefixes {
		if err := validateMount(p); err != nil || p == "/" {
			return fmt.Errorf("invalid prefix %q", p)
		}
	}

	if !c.Enabled() {
		return nil
	}

	u, err := url.Parse(c.Upstream)
	if err != nil {
		return fmt.Errorf("invalid upstream: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("upstream %q must be an absolute http(s) URL", c.Upstream)
	}
	c.upstreamURL = u
	return nil
}
