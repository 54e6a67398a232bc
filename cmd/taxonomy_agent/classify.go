package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/role-taxonomy/internal/classify"
	"github.com/jonathan/role-taxonomy/internal/normalize"
	"github.com/jonathan/role-taxonomy/internal/taxonomy"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <raw title>",
	Short: "Classify a job title's seniority and domain",
	Long:  "Normalize a raw job title and print its six-level seniority, coarse bucket, and domain. Optionally factor in job description text.",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassify,
}

var classifyJDFile string

func init() {
	classifyCmd.Flags().StringVarP(&classifyJDFile, "jd-file", "j", "", "Path to job description text file")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, args []string) error {
	jdText := ""
	if classifyJDFile != "" {
		data, err := os.ReadFile(classifyJDFile)
		if err != nil {
			return fmt.Errorf("failed to read JD file: %w", err)
		}
		jdText = string(data)
	}

	normalized := normalize.Title(args[0])
	seniority := classify.Seniority(normalized, jdText)
	domain := classify.Domain(normalized, jdText)

	fmt.Fprintf(os.Stdout, "Normalized: %s\n", normalized)
	fmt.Fprintf(os.Stdout, "Seniority:  %s (bucket: %s)\n", seniority.Label(), seniority.Bucket())
	fmt.Fprintf(os.Stdout, "Domain:     %s\n", taxonomy.DomainLabel(domain))

	return nil
}
