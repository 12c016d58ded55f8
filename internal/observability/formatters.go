// Package observability provides logging and formatted output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-editor/internal/types"
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// PrintResume outputs a section-by-section overview of the résumé.
func (p *Printer) PrintResume(r types.Resume) {
	var sb strings.Builder

	name := r.PersonalInfo.FullName
	if name == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if r.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", r.PersonalInfo.Email))
	}
	if r.PersonalInfo.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", r.PersonalInfo.Location))
	}
	if strings.TrimSpace(r.Summary) != "" {
		sb.WriteString(fmt.Sprintf("Summary:  %s\n", r.Summary))
	}

	if len(r.WorkExperience) > 0 {
		sb.WriteString("\nWork Experience:\n")
		count := min(len(r.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := r.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s [%s]\n", exp.Position, exp.Company, exp.ID))
		}
		writeMore(&sb, len(r.WorkExperience))
	}

	if len(r.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(r.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			edu := r.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s [%s]\n", edu.Degree, edu.School, edu.ID))
		}
		writeMore(&sb, len(r.Education))
	}

	if len(r.Projects) > 0 {
		sb.WriteString("\nProjects:\n")
		count := min(len(r.Projects), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s [%s]\n", r.Projects[i].Title, r.Projects[i].ID))
		}
		writeMore(&sb, len(r.Projects))
	}

	if len(r.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkills: %s\n", strings.Join(r.Skills, ", ")))
	}
	if len(r.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(r.Certifications)))
	}
	if len(r.Languages) > 0 {
		sb.WriteString(fmt.Sprintf("Languages: %s\n", strings.Join(r.Languages, ", ")))
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

func writeMore(sb *strings.Builder, total int) {
	if total > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", total-maxItemsToShow))
	}
}

// PrintFeedback outputs analysis feedback, wrapping long lines instead of
// truncating them.
func (p *Printer) PrintFeedback(feedback string) {
	if strings.TrimSpace(feedback) == "" {
		return
	}

	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(feedback), "\n") {
		lines = append(lines, wrap(line, boxWidth-4)...)
	}
	p.printBox("ATS ANALYSIS", strings.Join(lines, "\n"))
}

// wrap breaks a line on spaces so each piece fits in width runes.
func wrap(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var out []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) > width {
			out = append(out, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(out, current)
}

// PrintTemplates outputs the named template set with its tokens.
func (p *Printer) PrintTemplates(templates []types.Template, selected string) {
	var sb strings.Builder
	for _, t := range templates {
		marker := " "
		if t.Key == selected {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %-8s %s / %s / %s\n", marker, t.Key, t.PrimaryColor, t.FontFamily, t.Spacing))
	}
	p.printBox("TEMPLATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCorruptState warns that stored state could not be read and the
// session started empty.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCorruptState(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "⚠ STORED RESUME UNREADABLE, STARTED EMPTY")
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(err.Error(), boxWidth-4))
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}
