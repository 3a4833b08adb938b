package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultPort            = 3000
	DefaultReadTimeout     = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB

	// CORS defaults
	DefaultCORSEnabled = true
	DefaultCORSMaxAge  = 3600 // 1 hour

	// Upstream defaults (LM Studio's local server)
	DefaultUpstreamBaseURL = "http://localhost:1234"
	DefaultUpstreamAPIKey  = "lm-studio"

	// Static defaults
	DefaultStaticDir   = "./web"
	DefaultStaticIndex = "index.html"

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "json"
	DefaultMetricsEnabled   = true
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "mesmer"
)

// Default returns a fully-populated configuration with default values.
// Load unmarshals the optional YAML file over this, so booleans that
// default to true survive an absent or partial file.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			ReadTimeout:     DefaultReadTimeout,
			IdleTimeout:     DefaultIdleTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxHeaderBytes:  DefaultMaxHeaderBytes,
			CORS: CORSConfig{
				Enabled:        DefaultCORSEnabled,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
				MaxAge:         DefaultCORSMaxAge,
			},
		},
		Upstream: UpstreamConfig{
			BaseURL: DefaultUpstreamBaseURL,
			APIKey:  DefaultUpstreamAPIKey,
		},
		Static: StaticConfig{
			Dir:   DefaultStaticDir,
			Index: DefaultStaticIndex,
		},
		Telemetry: TelemetryConfig{
			Logging: LoggingConfig{
				Level:  DefaultLoggingLevel,
				Format: DefaultLoggingFormat,
			},
			Metrics: MetricsConfig{
				Enabled:   DefaultMetricsEnabled,
				Path:      DefaultMetricsPath,
				Namespace: DefaultMetricsNamespace,
			},
		},
	}
}
