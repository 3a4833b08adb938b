package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load builds the configuration in this order, later stages winning:
//
//  1. Built-in defaults
//  2. YAML config file at path (optional; a missing file is not an error)
//  3. A .env file in the working directory, if present
//  4. Environment variables
//
// The result is validated before being returned. The configuration is read
// once at startup; there is no hot reload.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	// Populate the environment from .env before reading overrides.
	// Existing environment variables take precedence over file entries.
	_ = godotenv.Load()

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. The three upstream-facing variables keep the names the UI
// tooling has always used; everything else is namespaced MESMER_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Server.Port = i
		}
	}
	if val := os.Getenv("LM_STUDIO_BASE_URL"); val != "" {
		cfg.Upstream.BaseURL = val
	}
	if val := os.Getenv("LM_STUDIO_API_KEY"); val != "" {
		cfg.Upstream.APIKey = val
	}

	// Server overrides
	if val := os.Getenv("MESMER_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("MESMER_SERVER_IDLE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.IdleTimeout = d
		}
	}
	if val := os.Getenv("MESMER_SERVER_SHUTDOWN_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}
	if val := os.Getenv("MESMER_CORS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Server.CORS.Enabled = b
		}
	}

	// Upstream overrides
	if val := os.Getenv("MESMER_UPSTREAM_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Upstream.Timeout = d
		}
	}

	// Static overrides
	if val := os.Getenv("MESMER_STATIC_DIR"); val != "" {
		cfg.Static.Dir = val
	}

	// Telemetry overrides
	if val := os.Getenv("MESMER_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("MESMER_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("MESMER_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("MESMER_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}
}
