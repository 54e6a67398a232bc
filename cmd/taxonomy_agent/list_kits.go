package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/role-taxonomy/internal/db"
	"github.com/jonathan/role-taxonomy/internal/taxonomy"
)

var listKitsCmd = &cobra.Command{
	Use:   "list-kits",
	Short: "List the active canonical role kits",
	RunE:  runListKits,
}

func init() {
	rootCmd.AddCommand(listKitsCmd)
}

func runListKits(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}
	databaseURL, err := requireDatabaseURL(cfg)
	if err != nil {
		return err
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

	kits, err := database.ListRoleKits(ctx)
	if err != nil {
		return fmt.Errorf("failed to list role kits: %w", err)
	}

	for _, kit := range kits {
		fmt.Fprintf(os.Stdout, "%s  %-50s %-10s %s\n",
			kit.ID, kit.Name, kit.Seniority, taxonomy.DomainLabel(kit.Domain))
	}
	fmt.Fprintf(os.Stdout, "%d role kit(s)\n", len(kits))
	return nil
}
