package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"mesmer-studio/mesmer/pkg/config"
	"mesmer-studio/mesmer/pkg/server"
	"mesmer-studio/mesmer/pkg/telemetry/logging"
	"mesmer-studio/mesmer/pkg/telemetry/metrics"
	"mesmer-studio/mesmer/pkg/upstream"
)

var runFlags struct {
	port     int
	logLevel string
	dryRun   bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Mesmer relay server",
	Long: `Start the Mesmer relay server with the specified configuration.

The server listens on the configured port, serves the studio UI, and relays
API requests to the configured inference server.

Examples:
  # Start with defaults
  mesmer run

  # Start with a custom config file
  mesmer run --config /etc/mesmer/config.yaml

  # Override the listen port
  mesmer run --port 8080

  # Validate the configuration without starting
  mesmer run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVarP(&runFlags.port, "port", "p", 0, "override listen port")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting the server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flag overrides win over file and environment.
	if runFlags.port != 0 {
		cfg.Server.Port = runFlags.port
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	if _, err := logging.Init(cfg.Telemetry.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	client := upstream.New(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		APIKey:  cfg.Upstream.APIKey,
		Timeout: cfg.Upstream.Timeout,
	})

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Telemetry.Metrics.Namespace)
	}

	slog.Info("mesmer starting",
		"version", Version,
		"port", cfg.Server.Port,
		"upstream", cfg.Upstream.BaseURL,
	)

	srv := server.New(cfg, client, collector)
	return srv.Start(context.Background())
}
