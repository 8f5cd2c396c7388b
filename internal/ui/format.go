// ABOUTME: Terminal UI formatting for taglint output.
// ABOUTME: Uses fatih/color for classified tags and glamour for markdown reports.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/fiffu/sd-promptkit/internal/lint"
	"github.com/fiffu/sd-promptkit/internal/models"
)

var (
	faint   = color.New(color.Faint).SprintFunc()
	bold    = color.New(color.Bold).SprintFunc()
	cyan    = color.New(color.FgCyan).SprintFunc()
	yellow  = color.New(color.FgYellow).SprintFunc()
	removed = color.New(color.Faint, color.CrossedOut).SprintFunc()
)

// FormatClassified renders one line per tag. Lint lines show the original
// token after an arrow; removed tags are printed struck through when
// showRemoved is set.
func FormatClassified(results []models.ClassifiedTag, showRemoved bool) string {
	var sb strings.Builder

	for _, r := range results {
		switch r.Action {
		case models.Noop:
			sb.WriteString(fmt.Sprintf("  %s\n", r.Tag.Canonical))
		case models.Lint:
			sb.WriteString(fmt.Sprintf("  %s %s %s\n",
				yellow(r.Tag.Canonical),
				faint("<-"),
				faint(strings.TrimSpace(r.Tag.Original))))
		case models.Remove:
			if !showRemoved {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n",
				removed(strings.TrimSpace(r.Tag.Original)),
				faint("(removed)")))
		}
	}

	return sb.String()
}

func FormatSummary(s lint.Summary) string {
	return fmt.Sprintf("%s %d tags: %d ok, %d linted, %d removed\n",
		faint("Summary:"), s.Total, s.Noop, s.Lint, s.Remove)
}

// FormatTag renders the parts of a single normalized tag.
func FormatTag(tag models.FormattedTag) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Name:     "), cyan(tag.Name)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Weight:   "), lint.FormatWeight(tag.Weight)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Canonical:"), bold(tag.Canonical)))

	return sb.String()
}

// FormatFixed terminates the cleaned prompt with a newline. An empty prompt
// prints nothing.
func FormatFixed(fixed string) string {
	if fixed == "" {
		return ""
	}
	return fixed + "\n"
}

// MarkdownReport builds a markdown table of classified tags.
func MarkdownReport(results []models.ClassifiedTag) string {
	var sb strings.Builder

	sb.WriteString("# Tag lint report\n\n")
	sb.WriteString("| # | Original | Canonical | Action |\n")
	sb.WriteString("|---|----------|-----------|--------|\n")
	for i, r := range results {
		sb.WriteString(fmt.Sprintf("| %d | `%s` | `%s` | %s |\n",
			i+1,
			escapeCell(strings.TrimSpace(r.Tag.Original)),
			escapeCell(r.Tag.Canonical),
			r.Action))
	}

	s := lint.Summarize(results)
	sb.WriteString(fmt.Sprintf("\n**%d** tags: %d ok, %d linted, %d removed\n", s.Total, s.Noop, s.Lint, s.Remove))
	if fixed := lint.Fix(results); fixed != "" {
		sb.WriteString("\n## Cleaned\n\n")
		sb.WriteString("```\n" + fixed + "\n```\n")
	}

	return sb.String()
}

func escapeCell(s string) string {
	return strings.NewReplacer("|", "\\|", "`", "'", "\n", " ").Replace(s)
}

// RenderMarkdownReport renders MarkdownReport for the terminal.
func RenderMarkdownReport(results []models.ClassifiedTag) (string, error) {
	content := MarkdownReport(results)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fallback to raw markdown if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		// Fallback to raw markdown if rendering fails
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
