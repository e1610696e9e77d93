// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/pds-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeBucket(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintBackgroundProfile outputs a human-readable summary of a candidate's
// flattened background buckets.
func (p *Printer) PrintBackgroundProfile(name string, analysis *types.BackgroundProfile) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	if name != "" {
		sb.WriteString(fmt.Sprintf("Candidate: %s\n\n", name))
	}
	writeBucket(&sb, "Education Fields", analysis.EducationFields)
	writeBucket(&sb, "Work Experience Areas", analysis.WorkExperienceAreas)
	writeBucket(&sb, "Training Areas", analysis.TrainingAreas)
	writeBucket(&sb, "Key Skills", analysis.KeySkills)

	p.printBox("CANDIDATE BACKGROUND", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAssessment outputs the score breakdown for one (candidate, job) pair.
func (p *Printer) PrintAssessment(jobTitle string, result *types.AssessmentResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if jobTitle != "" {
		sb.WriteString(fmt.Sprintf("Position: %s\n\n", jobTitle))
	}
	if result.Error != "" {
		sb.WriteString(fmt.Sprintf("Error: %s\n", result.Error))
	}
	sb.WriteString(fmt.Sprintf("Total:       %5.1f%%\n", result.TotalScore))
	sb.WriteString(fmt.Sprintf("Education:   %5.1f%%\n", result.EducationScore))
	sb.WriteString(fmt.Sprintf("Experience:  %5.1f%%\n", result.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Training:    %5.1f%%\n", result.TrainingScore))
	sb.WriteString(fmt.Sprintf("Eligibility: %5.1f%%", result.EligibilityScore))

	p.printBox("ASSESSMENT RESULT", sb.String())
}
