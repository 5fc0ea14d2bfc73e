package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/smart-match/internal/logger"
	"github.com/jonathan/smart-match/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for candidate and job management and match scoring.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Get database URL from environment, falling back to the config file
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = cliConfig.DatabaseURL
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	port := servePort
	if !cmd.Flags().Changed("port") && cliConfig.Port != 0 {
		port = cliConfig.Port
	}

	log, err := logger.New(cliConfig.LogJSON, verboseMode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg := server.Config{
		Port:        port,
		DatabaseURL: databaseURL,
		Logger:      log,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
