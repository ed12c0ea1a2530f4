// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxResultsToShow is the default number of ranked results to display
	maxResultsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
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

// PrintMatchRun outputs a human-readable summary of a completed match run.
func (p *Printer) PrintMatchRun(run *types.MatchRun) {
	if run == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:        %s\n", run.JobID))
	sb.WriteString(fmt.Sprintf("Strategy:   %s\n", run.StrategyUsed))
	sb.WriteString(fmt.Sprintf("Matched:    %d candidates\n", run.CandidatesMatched))
	sb.WriteString(fmt.Sprintf("Duration:   %.3fs\n", run.ProcessingTimeSeconds))
	sb.WriteString("\n")

	count := min(len(run.RankedResults), maxResultsToShow)
	for i := 0; i < count; i++ {
		r := run.RankedResults[i]
		sb.WriteString(fmt.Sprintf("#%-3d %-20s %6.2f\n", r.Rank, r.CandidateID, r.OverallScore))
	}
	if len(run.RankedResults) > maxResultsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(run.RankedResults)-maxResultsToShow))
	}

	if len(run.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range run.Warnings {
			sb.WriteString(fmt.Sprintf("  • %s\n", w))
		}
	}

	p.printBox("Match Run", strings.TrimRight(sb.String(), "\n"))

	if run.BiasReport != nil {
		p.PrintBiasReport(run.BiasReport)
	}
}

// PrintBiasReport outputs a human-readable summary of a bias report.
func (p *Printer) PrintBiasReport(report *types.BiasReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %.2f\n", report.OverallBiasScore))
	sb.WriteString(fmt.Sprintf("Gender:      %.2f\n", report.GenderBias.Score))
	sb.WriteString(fmt.Sprintf("Age:         %.2f\n", report.AgeBias.Score))
	sb.WriteString(fmt.Sprintf("Institution: %.2f\n", report.InstitutionBias.Score))

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("Bias Report", strings.TrimRight(sb.String(), "\n"))
}
