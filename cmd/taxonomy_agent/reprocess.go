package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/role-taxonomy/internal/db"
	"github.com/jonathan/role-taxonomy/internal/observability"
	"github.com/jonathan/role-taxonomy/internal/resolve"
)

var reprocessCmd = &cobra.Command{
	Use:   "reprocess",
	Short: "Re-resolve all job targets against the current canonical set",
	Long:  "Walk every stored job target, re-run resolution for its raw title, and rewrite stale role-kit references. Per-job failures are recorded, never fatal.",
	RunE:  runReprocess,
}

var reprocessWorkers int

func init() {
	reprocessCmd.Flags().IntVarP(&reprocessWorkers, "workers", "w", 0, "Concurrent workers (0 = default, 1 = sequential)")
	rootCmd.AddCommand(reprocessCmd)
}

func runReprocess(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}
	databaseURL, err := requireDatabaseURL(cfg)
	if err != nil {
		return err
	}

	workers := reprocessWorkers
	if workers == 0 {
		workers = cfg.ReprocessWorkers
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	engine := resolve.NewEngine(database)
	report, err := engine.ReprocessAllJobs(ctx, resolve.ReprocessOptions{Workers: workers})
	if err != nil {
		return fmt.Errorf("failed to reprocess jobs: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintReprocessReport(report)
	return nil
}
