package config

import "time"

// Config is the root configuration structure for Mesmer.
// It is constructed once at process entry and passed into the components
// that need it; nothing reads it through ambient globals.
type Config struct {
	// Server contains HTTP server configuration including listen port,
	// timeouts, and CORS settings.
	Server ServerConfig `yaml:"server"`

	// Upstream contains configuration for the OpenAI-compatible inference
	// server the relay forwards to (LM Studio by default).
	Upstream UpstreamConfig `yaml:"upstream"`

	// Static contains configuration for the bundled UI assets.
	Static StaticConfig `yaml:"static"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// Port is the TCP port the server listens on.
	// Default: 3000
	Port int `yaml:"port"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body. A zero or negative value means no timeout.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits the size of request headers.
	// It does not limit the size of the request body.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains CORS configuration for the API surface.
type CORSConfig struct {
	// Enabled controls whether CORS headers are emitted.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// AllowedOrigins is a list of allowed origins. Use ["*"] to allow all.
	// Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowedMethods is a list of allowed HTTP methods.
	// Default: ["GET", "POST", "OPTIONS"]
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders is a list of allowed HTTP headers.
	// Default: ["Content-Type", "X-Request-ID"]
	AllowedHeaders []string `yaml:"allowed_headers"`

	// MaxAge is the maximum age (in seconds) for preflight cache.
	// Default: 3600
	MaxAge int `yaml:"max_age"`
}

// UpstreamConfig contains configuration for the inference server.
type UpstreamConfig struct {
	// BaseURL is the base URL of the OpenAI-compatible API.
	// Default: "http://localhost:1234"
	BaseURL string `yaml:"base_url"`

	// APIKey is the bearer token sent with every upstream request.
	// LM Studio accepts any value; the default matches its documentation.
	// Default: "lm-studio"
	APIKey string `yaml:"api_key"`

	// Timeout is the maximum duration for a single upstream request.
	// Zero means no timeout: completions run until the upstream responds,
	// the client disconnects, or the process exits. Streaming responses
	// require this to stay at zero.
	// Default: 0
	Timeout time.Duration `yaml:"timeout"`
}

// StaticConfig contains configuration for serving the UI assets.
type StaticConfig struct {
	// Dir is the directory containing the built UI.
	// Default: "./web"
	Dir string `yaml:"dir"`

	// Index is the entry document served for unmatched paths, which enables
	// client-side routing in the UI.
	// Default: "index.html"
	Index string `yaml:"index"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format ("json", "text", "console").
	// Default: "json"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether the /metrics endpoint is served.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path the exposition endpoint is mounted on.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the prefix applied to all metric names.
	// Default: "mesmer"
	Namespace string `yaml:"namespace"`
}
