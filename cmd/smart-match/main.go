// Package main provides the smart-match CLI for scoring candidates against jobs.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/smart-match/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "smart-match",
	Short: "Candidate-to-job matching engine",
	Long:  "SmartMatch deterministically scores candidate profiles against job requisitions, producing ranked match results with per-dimension breakdowns via CLI or REST API.",
}

var (
	configPath  string
	verboseMode bool

	// cliConfig holds file-provided defaults, merged before any command runs.
	cliConfig config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file with default paths and options")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "Print formatted match summaries")

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if configPath == "" {
			return nil
		}

		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		cliConfig = loaded.MergeWithDefaults(cliConfig)
		if cliConfig.Verbose {
			verboseMode = true
		}
		return nil
	}
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
