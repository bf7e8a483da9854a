// Package main provides the entry point for the Jinmai AI creation server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	verbose    bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "jinmai_ai",
		Short:         "Jinmai heritage-brand content creation service",
		Long:          "Jinmai AI generates stories, introductions and cultural copy for Tianjin heritage brands, over HTTP or from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.json file (values can be overridden by flags and environment)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Human-readable debug logs and progress output")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (defaults to LOG_LEVEL or info)")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newGenerateCmd(opts),
		newBrandsCmd(),
		newModelsCmd(),
	)
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
