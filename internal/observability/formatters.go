// Package observability provides formatted console output for the devmatch CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/devmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out   io.Writer
	limit int
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, limit: maxItemsToShow}
}

// WithLimit returns a Printer that lists up to n items. n <= 0 lists everything.
func (p *Printer) WithLimit(n int) *Printer {
	return &Printer{out: p.out, limit: n}
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintProfile outputs a summary of the developer profile used for scoring.
func (p *Printer) PrintProfile(profile *types.DeveloperProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills:     %s\n", joinList(profile.Skills)))
	sb.WriteString(fmt.Sprintf("Roles:      %s\n", joinList(profile.JobRolesInterested)))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.YearsOfExperience))
	sb.WriteString(fmt.Sprintf("Locations:  %s\n", joinList(profile.PreferredLocations)))
	if profile.WorkMode.IsSet() {
		sb.WriteString(fmt.Sprintf("Work mode:  %s\n", profile.WorkMode))
	}
	if stipend, ok := profile.Stipend(); ok {
		sb.WriteString(fmt.Sprintf("Stipend:    %.0f\n", stipend))
	}

	p.printBox("DEVELOPER PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBreakdown outputs the per-factor scores of one match.
func (p *Printer) PrintBreakdown(job *types.JobPosting, breakdown types.MatchBreakdown) {
	var sb strings.Builder
	if job != nil {
		sb.WriteString(fmt.Sprintf("Job:     %s\n", job.JobTitle))
		if job.CompanyName != "" {
			sb.WriteString(fmt.Sprintf("Company: %s\n", job.CompanyName))
		}
		sb.WriteString("\n")
	}

	rows := []struct {
		label string
		value int
	}{
		{"Skills", breakdown.Skills},
		{"Experience", breakdown.Experience},
		{"Role", breakdown.Role},
		{"Location", breakdown.Location},
		{"Work mode", breakdown.WorkMode},
		{"Compensation", breakdown.Compensation},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-14s %3d\n", row.label, row.value))
	}
	sb.WriteString(fmt.Sprintf("%-14s %3d", "Total", breakdown.Total()))

	p.printBox("MATCH SCORE", sb.String())
}

// PrintRankedJobs outputs the top ranked jobs with their scores.
func (p *Printer) PrintRankedJobs(scored []types.ScoredJob) {
	if len(scored) == 0 {
		p.printBox("RANKED JOBS", "No jobs to rank")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(scored)))

	count := len(scored)
	if p.limit > 0 {
		count = min(count, p.limit)
	}
	for i := 0; i < count; i++ {
		s := scored[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%d)\n", i+1, s.Job.JobTitle, s.Score))
		if s.Job.CompanyName != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", s.Job.CompanyName))
		}
		if !s.Job.RequiredSkills.IsEmpty() {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", joinList(s.Job.RequiredSkills)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(scored) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(scored)-count))
	}

	p.printBox("RANKED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

func joinList(l types.StringList) string {
	if l.IsEmpty() {
		return "-"
	}
	return strings.Join(l.Values, ", ")
}
