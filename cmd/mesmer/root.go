package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mesmer",
	Short: "Mesmer - relay server for a local hypnosis script-writing studio",
	Long: `Mesmer relays browser requests to a locally running OpenAI-compatible
inference server (LM Studio by default) and serves the studio UI.

It exposes endpoints for listing models, free-form chat, writing-style
analysis, and hypnosis script generation, with live streaming variants for
the long-running operations.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
