// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/smart-match/internal/types"
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

// PrintJob outputs a human-readable summary of a job requisition.
func (p *Printer) PrintJob(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	if job.IsRemote {
		sb.WriteString("Location: remote\n")
	} else if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	sb.WriteString(fmt.Sprintf("Min exp:  %.1f years\n", job.MinExperience))
	if job.SalaryRangeMin != nil && job.SalaryRangeMax != nil {
		sb.WriteString(fmt.Sprintf("Salary:   %.0f - %.0f\n", *job.SalaryRangeMin, *job.SalaryRangeMax))
	}
	sb.WriteString("\n")

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.RequiredSkills[i]))
		}
		if len(job.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(job.PreferredSkills) > 0 {
		sb.WriteString("Preferred Skills:\n")
		count := min(len(job.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.PreferredSkills[i]))
		}
		if len(job.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.PreferredSkills)-3))
		}
	}

	p.printBox("JOB REQUISITION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs a single scored match with its breakdown.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidate: %s\n", result.CandidateID))
	sb.WriteString(fmt.Sprintf("Job:       %s\n", result.JobID))
	sb.WriteString(fmt.Sprintf("Overall:   %d (%s)\n", result.OverallScore, result.Recommendation))
	sb.WriteString("\n")

	sb.WriteString("Breakdown:\n")
	sb.WriteString(fmt.Sprintf("  Skills:     %3d\n", result.Breakdown.SkillMatch))
	sb.WriteString(fmt.Sprintf("  Experience: %3d\n", result.Breakdown.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("  Location:   %3d\n", result.Breakdown.LocationMatch))
	sb.WriteString(fmt.Sprintf("  Salary:     %3d\n", result.Breakdown.SalaryMatch))
	sb.WriteString(fmt.Sprintf("  Culture:    %3d\n", result.Breakdown.CultureFit))

	if len(result.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range result.Strengths {
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", s))
		}
	}

	if len(result.Gaps) > 0 {
		sb.WriteString("\nGaps:\n")
		for _, g := range result.Gaps {
			if len(g) > 50 {
				g = g[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", g))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchList outputs a ranked list of matches, best first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMatchList(title string, results []types.MatchResult) {
	if len(results) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO MATCHES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total matches: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s vs %s\n", i+1, result.CandidateID, result.JobID))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", result.OverallScore, result.Recommendation))
		if len(result.Strengths) > 0 {
			strengths := strings.Join(result.Strengths, ", ")
			if len(strengths) > 40 {
				strengths = strengths[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", strengths))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(results)-maxItemsToShow))
	}

	p.printBox(title, sb.String())
}
