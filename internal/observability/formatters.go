// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidate outputs a human-readable summary of an extracted candidate.
func (p *Printer) PrintCandidate(record *types.CandidateRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", orDash(record.Name)))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", orDash(record.Contacts.Email)))
	sb.WriteString(fmt.Sprintf("Phone:     %s\n", orDash(record.Contacts.Phone)))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", orDash(record.Contacts.Location)))
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", orDash(record.Industry)))
	sb.WriteString(fmt.Sprintf("Title:     %s\n", orDash(record.LastJobTitle)))
	if record.ExperienceYears > 0 {
		sb.WriteString(fmt.Sprintf("Years:     %.2f\n", record.ExperienceYears))
	}
	sb.WriteString("\n")

	if len(record.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(record.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Skills[i]))
		}
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
		}
	}

	if len(record.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("\nExperience entries: %d\n", len(record.Experience)))
		count := min(len(record.Experience), 3)
		for i := 0; i < count; i++ {
			exp := record.Experience[i]
			sb.WriteString(fmt.Sprintf("  %s @ %s (%s - %s)\n",
				orDash(exp.Title), orDash(exp.Employer), orDash(exp.Start), orDash(exp.End)))
		}
	}

	if len(record.Notes) > 0 {
		sb.WriteString("\nNotes:\n")
		for _, note := range record.Notes {
			sb.WriteString(fmt.Sprintf("  ! %s\n", note))
		}
	}

	p.printBox("CANDIDATE RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobProfile outputs a human-readable summary of the resolved profile.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:    %s\n", orDash(profile.Name)))
	sb.WriteString(fmt.Sprintf("Source:  %s\n", orDash(profile.Source)))
	sb.WriteString("\n")

	writeWeightMap(&sb, "Required skills:", profile.RequiredSkills)
	if len(profile.NiceToHaveSkills) > 0 {
		sb.WriteString("\n")
		writeWeightMap(&sb, "Nice-to-haves:", profile.NiceToHaveSkills)
	}

	p.printBox("JOB PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the score result with its per-skill breakdown.
func (p *Printer) PrintScore(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %.1f / 100  (%s)\n", result.Score, result.Band))
	if result.EvidenceBonus > 0 {
		sb.WriteString(fmt.Sprintf("Evidence bonus: +%.1f\n", result.EvidenceBonus))
	}
	sb.WriteString("\n")

	if len(result.Contributions) > 0 {
		sb.WriteString("Breakdown:\n")
		for _, c := range result.Contributions {
			mark := "✗"
			if c.Hit {
				mark = "✓"
			}
			sb.WriteString(fmt.Sprintf("  %s %s (w=%.2f)\n", mark, c.Skill, c.Weight))
		}
	}

	for _, note := range result.Notes {
		sb.WriteString(fmt.Sprintf("\n%s", note))
	}

	p.printBox("SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

func writeWeightMap(sb *strings.Builder, header string, weights map[string]float64) {
	sb.WriteString(header + "\n")
	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)

	count := min(len(names), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s (%.2f)\n", names[i], weights[names[i]]))
	}
	if len(names) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
