package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/role-taxonomy/internal/db"
	"github.com/jonathan/role-taxonomy/internal/observability"
	"github.com/jonathan/role-taxonomy/internal/resolve"
	"github.com/jonathan/role-taxonomy/internal/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <raw title>",
	Short: "Resolve a raw job title to a role kit",
	Long:  "Run the matching cascade against the stored canonical set and print the best role kit with confidence and alternatives. With --create, generate a new kit when no confident match exists.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

var (
	resolveHint    string
	resolveJDFile  string
	resolveCompany string
	resolveCreate  bool
	resolveJSON    bool
)

func init() {
	resolveCmd.Flags().StringVar(&resolveHint, "hint", "", "Role family hint (e.g. swe, pm, ux)")
	resolveCmd.Flags().StringVarP(&resolveJDFile, "jd-file", "j", "", "Path to job description text file")
	resolveCmd.Flags().StringVar(&resolveCompany, "company", "", "Company name, used in generated kit descriptions")
	resolveCmd.Flags().BoolVar(&resolveCreate, "create", false, "Generate a role kit when no confident match exists")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}
	databaseURL, err := requireDatabaseURL(cfg)
	if err != nil {
		return err
	}

	jdText := ""
	if resolveJDFile != "" {
		data, err := os.ReadFile(resolveJDFile)
		if err != nil {
			return fmt.Errorf("failed to read JD file: %w", err)
		}
		jdText = string(data)
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

	result, err := engine.Resolve(ctx, args[0], resolveHint, jdText)
	if err != nil {
		return fmt.Errorf("failed to resolve title: %w", err)
	}

	if result == nil && !resolveCreate {
		return fmt.Errorf("no role kits available; run with --create to generate one")
	}
	if resolveCreate && (result == nil || result.Confidence != types.ConfidenceHigh) {
		result, err = engine.EnsureRoleKit(ctx, resolve.EnsureInput{
			RawTitle:    args[0],
			JDText:      jdText,
			CompanyName: resolveCompany,
		})
		if err != nil {
			return fmt.Errorf("failed to ensure role kit: %w", err)
		}
	}

	if resolveJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	observability.NewPrinter(os.Stdout).PrintMatchResult(result)
	return nil
}
