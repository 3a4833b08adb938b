// Package server provides the HTTP server that hosts the relay API and the
// static UI.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"mesmer-studio/mesmer/pkg/config"
	"mesmer-studio/mesmer/pkg/relay/handlers"
	"mesmer-studio/mesmer/pkg/relay/middleware"
	"mesmer-studio/mesmer/pkg/telemetry/metrics"
)

// Server hosts the relay endpoints, the metrics endpoint, and the static UI.
type Server struct {
	config       *config.Config
	upstream     handlers.UpstreamClient
	collector    *metrics.Collector
	httpServer   *http.Server
	shutdownOnce sync.Once
}

// New creates a server. collector may be nil when metrics are disabled.
func New(cfg *config.Config, client handlers.UpstreamClient, collector *metrics.Collector) *Server {
	return &Server{
		config:    cfg,
		upstream:  client,
		collector: collector,
	}
}

// Start starts the HTTP server and blocks until the context is cancelled,
// a shutdown signal arrives, or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.config.Server.ListenAddress(),
		Handler: s.Handler(),
		// WriteTimeout is intentionally unset: streaming responses stay
		// open until the upstream finishes or the client disconnects.
		ReadTimeout:    s.config.Server.ReadTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting relay server",
			"address", s.httpServer.Addr,
			"upstream", s.config.Upstream.BaseURL,
			"static_dir", s.config.Static.Dir,
		)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server, waiting up to the configured
// shutdown timeout for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		slog.Info("initiating graceful shutdown",
			"timeout", s.config.Server.ShutdownTimeout.String(),
		)

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		slog.Info("relay server stopped")
	})

	return shutdownErr
}

// Handler returns the fully configured HTTP handler: routes plus the
// middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/api/models", handlers.NewModelsHandler(s.upstream))
	mux.Handle("/api/chat", handlers.NewChatHandler(s.upstream))
	mux.Handle("/api/analyze-style", handlers.NewStyleHandler(s.upstream))
	mux.Handle("/api/analyze-style/stream", handlers.NewStyleStreamHandler(s.upstream, s.collector))
	mux.Handle("/api/generate-script", handlers.NewScriptHandler(s.upstream))
	mux.Handle("/api/generate-script/stream", handlers.NewScriptStreamHandler(s.upstream, s.collector))
	mux.Handle("/healthz", handlers.NewHealthHandler())

	if s.collector != nil && s.config.Telemetry.Metrics.Enabled {
		mux.Handle(s.config.Telemetry.Metrics.Path, s.collector.Handler())
	}

	// Everything else falls through to the UI.
	mux.Handle("/", handlers.NewStaticHandler(s.config.Static.Dir, s.config.Static.Index))

	var handler http.Handler = mux
	handler = middleware.Metrics(s.collector)(handler)
	handler = middleware.CORS(s.config.Server.CORS)(handler)
	handler = middleware.Logging(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(handler)

	return handler
}
