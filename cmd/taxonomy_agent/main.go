// Package main provides the entry point for the role taxonomy CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/role-taxonomy/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "taxonomy_agent",
	Short: "Role Taxonomy Resolution Engine",
	Long:  "Role Taxonomy resolves free-text job titles to canonical role kits, generating new kits for genuinely novel roles, via CLI commands and a REST API.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadRuntimeConfig resolves the effective configuration: environment
// variables win, then the config file fills the gaps.
func loadRuntimeConfig() (*config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// requireDatabaseURL returns the configured database URL or an error
// naming the variable to set.
func requireDatabaseURL(cfg *config.Config) (string, error) {
	if cfg.DatabaseURL == "" {
		return "", fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return cfg.DatabaseURL, nil
}
