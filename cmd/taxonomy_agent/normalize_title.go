package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/role-taxonomy/internal/normalize"
)

var normalizeTitleCmd = &cobra.Command{
	Use:   "normalize-title <raw title>",
	Short: "Normalize a raw job title to its canonical form",
	Long:  "Strip company names, team context, and level tokens from a raw job title and print the canonical title-cased form.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalizeTitle,
}

func init() {
	rootCmd.AddCommand(normalizeTitleCmd)
}

func runNormalizeTitle(_ *cobra.Command, args []string) error {
	fmt.Fprintln(os.Stdout, normalize.Title(args[0]))
	return nil
}
