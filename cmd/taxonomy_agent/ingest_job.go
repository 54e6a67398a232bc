package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/role-taxonomy/internal/db"
	"github.com/jonathan/role-taxonomy/internal/fetch"
	"github.com/jonathan/role-taxonomy/internal/ingestion"
	"github.com/jonathan/role-taxonomy/internal/observability"
	"github.com/jonathan/role-taxonomy/internal/resolve"
	"github.com/jonathan/role-taxonomy/internal/types"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Ingest a job posting and resolve its role kit",
	Long:  "Ingest a job posting from an HTML file or URL, extract the title and description, store it as a job target, and resolve (or generate) its role kit.",
	RunE:  runIngestJob,
}

var (
	ingestHTMLFile string
	ingestURL      string
	ingestTitle    string
	ingestCompany  string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestHTMLFile, "html-file", "f", "", "Path to HTML file containing the job posting")
	ingestJobCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the job posting from")
	ingestJobCmd.Flags().StringVar(&ingestTitle, "title", "", "Override the extracted job title")
	ingestJobCmd.Flags().StringVar(&ingestCompany, "company", "", "Override the extracted company name")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(cmd *cobra.Command, _ []string) error {
	// Validate mutually exclusive flags
	if ingestHTMLFile == "" && ingestURL == "" {
		return fmt.Errorf("either --html-file or --url must be provided")
	}
	if ingestHTMLFile != "" && ingestURL != "" {
		return fmt.Errorf("--html-file and --url are mutually exclusive; provide only one")
	}

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

	html, err := loadPostingHTML(ctx)
	if err != nil {
		return err
	}

	posting, err := ingestion.ExtractPosting(html)
	if err != nil {
		return fmt.Errorf("failed to extract posting: %w", err)
	}
	if ingestTitle != "" {
		posting.Title = ingestTitle
	}
	if ingestCompany != "" {
		posting.CompanyName = ingestCompany
	}
	if posting.Title == "" {
		return fmt.Errorf("no job title found; provide one with --title")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	input := types.JobTargetCreateInput{RoleTitle: posting.Title}
	if posting.CompanyName != "" {
		input.CompanyName = &posting.CompanyName
	}
	if posting.Description != "" {
		input.JDText = &posting.Description
	}

	job, err := database.CreateJobTarget(ctx, &input)
	if err != nil {
		return fmt.Errorf("failed to create job target: %w", err)
	}

	engine := resolve.NewEngine(database)
	match, err := engine.EnsureRoleKit(ctx, resolve.EnsureInput{
		RawTitle:    posting.Title,
		JDText:      posting.Description,
		CompanyName: posting.CompanyName,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve role kit: %w", err)
	}
	if err := database.UpdateJobTargetRoleKit(ctx, job.ID, match.RoleKitID); err != nil {
		return fmt.Errorf("failed to assign role kit: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Ingested job target %s (%s)\n", job.ID, posting.Title)
	observability.NewPrinter(os.Stdout).PrintMatchResult(match)
	return nil
}

// loadPostingHTML reads the posting HTML from the file or URL flag, falling
// back to a headless browser render when the static fetch looks empty.
func loadPostingHTML(ctx context.Context) (string, error) {
	if ingestHTMLFile != "" {
		data, err := os.ReadFile(ingestHTMLFile)
		if err != nil {
			return "", fmt.Errorf("failed to read HTML file: %w", err)
		}
		return string(data), nil
	}

	result, err := fetch.URL(ctx, ingestURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}

	posting, extractErr := ingestion.ExtractPosting(result.HTML)
	if extractErr == nil && !fetch.ShouldUseBrowser(posting.Description) {
		return result.HTML, nil
	}

	// JS-heavy page, render it properly
	rendered, err := fetch.WithBrowser(ctx, ingestURL, fetch.DefaultTimeout)
	if err != nil {
		return "", fmt.Errorf("failed to render URL in browser: %w", err)
	}
	return rendered, nil
}
