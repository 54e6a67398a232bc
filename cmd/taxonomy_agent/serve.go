package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/role-taxonomy/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resolution, role-kit catalog, and admin reprocess endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}
	databaseURL, err := requireDatabaseURL(cfg)
	if err != nil {
		return err
	}

	port := servePort
	if cfg.Port != 0 && port == 8080 {
		port = cfg.Port
	}

	srv, err := server.New(server.Config{
		Port:             port,
		DatabaseURL:      databaseURL,
		ReprocessWorkers: cfg.ReprocessWorkers,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
