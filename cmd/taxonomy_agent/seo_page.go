package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/role-taxonomy/internal/db"
	"github.com/jonathan/role-taxonomy/internal/llm"
	"github.com/jonathan/role-taxonomy/internal/seo"
)

var seoPageCmd = &cobra.Command{
	Use:   "seo-page <role-kit-id>",
	Short: "Generate an SEO landing page for a role kit",
	Long:  "Generate a schema-validated SEO landing page JSON document for a stored role kit using the Gemini API.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeoPage,
}

var seoOutDir string

func init() {
	seoPageCmd.Flags().StringVarP(&seoOutDir, "out", "o", ".", "Output directory for the page JSON")
	rootCmd.AddCommand(seoPageCmd)
}

func runSeoPage(cmd *cobra.Command, args []string) error {
	kitID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid role kit ID: %w", err)
	}

	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}
	databaseURL, err := requireDatabaseURL(cfg)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
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

	kit, err := database.GetRoleKitByID(ctx, kitID)
	if err != nil {
		return fmt.Errorf("failed to fetch role kit: %w", err)
	}
	if kit == nil {
		return fmt.Errorf("role kit not found: %s", kitID)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	page, err := seo.GeneratePage(ctx, client, kit)
	if err != nil {
		return fmt.Errorf("failed to generate page: %w", err)
	}

	if err := os.MkdirAll(seoOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	outPath := filepath.Join(seoOutDir, page.Slug+".json")

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s\n", outPath)
	return nil
}
