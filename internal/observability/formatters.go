// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/role-taxonomy/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a resolution result.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		p.printBox("Match Result", "no canonical role kits exist yet")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Kit:        %s\n", result.RoleKitName))
	sb.WriteString(fmt.Sprintf("Confidence: %s\n", result.Confidence))
	sb.WriteString(fmt.Sprintf("Match type: %s\n", result.MatchType))
	if result.Category != nil {
		sb.WriteString(fmt.Sprintf("Category:   %s\n", *result.Category))
	}

	if len(result.Alternatives) > 0 {
		sb.WriteString("\nAlternatives:\n")
		count := min(len(result.Alternatives), maxItemsToShow)
		for i := 0; i < count; i++ {
			alt := result.Alternatives[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", alt.RoleKitName, alt.Confidence))
		}
	}

	p.printBox("Match Result", strings.TrimRight(sb.String(), "\n"))
}

// PrintReprocessReport outputs a summary of a batch reprocess pass.
func (p *Printer) PrintReprocessReport(report *types.ReprocessReport) {
	if report == nil {
		return
	}

	unchanged := report.Processed - report.Updated - report.Errors
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Processed: %d\n", report.Processed))
	sb.WriteString(fmt.Sprintf("Updated:   %d\n", report.Updated))
	sb.WriteString(fmt.Sprintf("Unchanged: %d\n", unchanged))
	sb.WriteString(fmt.Sprintf("Errors:    %d\n", report.Errors))

	errorsShown := 0
	for _, detail := range report.Details {
		if detail.Outcome != types.OutcomeError {
			continue
		}
		if errorsShown == 0 {
			sb.WriteString("\nFailed jobs:\n")
		}
		if errorsShown == maxItemsToShow {
			sb.WriteString("  ... and more\n")
			break
		}
		sb.WriteString(fmt.Sprintf("  • %s: %s\n", detail.RoleTitle, detail.Error))
		errorsShown++
	}

	p.printBox("Reprocess Report", strings.TrimRight(sb.String(), "\n"))
}
