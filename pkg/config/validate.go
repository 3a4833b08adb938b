package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for invalid or inconsistent values.
func Validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url must not be empty")
	}
	u, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil {
		return fmt.Errorf("upstream.base_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("upstream.base_url must use http or https, got %q", u.Scheme)
	}

	if cfg.Upstream.Timeout < 0 {
		return fmt.Errorf("upstream.timeout must not be negative")
	}

	switch cfg.Telemetry.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("telemetry.logging.level must be one of debug, info, warn, error; got %q", cfg.Telemetry.Logging.Level)
	}

	switch cfg.Telemetry.Logging.Format {
	case "json", "text", "console":
	default:
		return fmt.Errorf("telemetry.logging.format must be one of json, text, console; got %q", cfg.Telemetry.Logging.Format)
	}

	if cfg.Telemetry.Metrics.Enabled && !strings.HasPrefix(cfg.Telemetry.Metrics.Path, "/") {
		return fmt.Errorf("telemetry.metrics.path must start with /, got %q", cfg.Telemetry.Metrics.Path)
	}

	return nil
}

// ListenAddress returns the address the HTTP server binds to.
func (c *ServerConfig) ListenAddress() string {
	return fmt.Sprintf(":%d", c.Port)
}
