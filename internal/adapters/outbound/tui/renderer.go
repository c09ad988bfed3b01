package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kclwrap/kclwrap/internal/domain"
)

var (
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	dim     = lipgloss.Color("#6B7280") // muted gray

	passStyle    = lipgloss.NewStyle().Foreground(success)
	failStyle    = lipgloss.NewStyle().Foreground(danger)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// RenderValidationReport renders a report for the terminal. Styling
// degrades to plain text on dumb terminals; the canonical unstyled
// form lives on the report itself.
func RenderValidationReport(report *domain.ValidationReport) string {
	if report.FilesExamined() == 0 {
		return dimStyle.Render(report.Render()) + "\n"
	}

	var b strings.Builder

	if report.AllValid() {
		b.WriteString(summaryStyle.Foreground(success).
			Render(fmt.Sprintf("✅ All %d files are valid", report.FilesExamined())))
	} else {
		b.WriteString(summaryStyle.Foreground(danger).
			Render("❌ Errors found in some files"))
	}
	b.WriteString("\n\n")

	for _, o := range report.Outcomes {
		if o.Valid {
			b.WriteString(passStyle.Render("✅ " + o.File))
		} else {
			b.WriteString(failStyle.Render("❌ " + o.File + ": " + strings.TrimSpace(o.Detail)))
		}
		b.WriteString("\n")
	}

	return b.String()
}
