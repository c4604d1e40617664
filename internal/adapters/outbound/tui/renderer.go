// Package tui renders validation reports for the console.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tfconform/tfconform/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Bold(true).Foreground(success)
	failStyle     = lipgloss.NewStyle().Bold(true).Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Bold(true).Foreground(danger)
	warnTagStyle  = lipgloss.NewStyle().Bold(true).Foreground(warning)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	separatorLine = faintStyle.Render(strings.Repeat("-", 64))
)

// RenderReport renders one validation report for the console.
func RenderReport(r *domain.Report) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("tfconform") + "  " + dimStyle.Render(r.Root) + "\n\n")

	if len(r.Findings) == 0 {
		b.WriteString("  " + passStyle.Render("No findings.") + "\n")
	} else {
		for _, f := range r.Findings {
			renderFinding(&b, f)
		}
	}

	b.WriteString("\n  " + separatorLine + "\n\n")
	b.WriteString(renderSummary(r))
	return b.String()
}

// RenderReports renders a sequence of per-root reports (separate module
// mode), each under its own section header.
func RenderReports(reports []*domain.Report) string {
	if len(reports) == 1 {
		return RenderReport(reports[0])
	}

	var b strings.Builder
	for i, r := range reports {
		b.WriteString("  " + titleStyle.Render(fmt.Sprintf("Report %d/%d", i+1, len(reports))) + "\n\n")
		b.WriteString(RenderReport(r))
		if i < len(reports)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	location := f.File
	if location != "" && f.Line > 0 {
		location = fmt.Sprintf("%s:%d", f.File, f.Line)
	}

	line := "  " + severityTag(f.Severity)
	if location != "" {
		line += " " + fileStyle.Render(location)
	}
	line += " - " + titleStyle.Render(f.Rule) + " - " + f.Message
	b.WriteString(line + "\n")

	if f.Suggestion != "" {
		b.WriteString("         " + dimStyle.Render(f.Suggestion) + "\n")
	}
}

func renderSummary(r *domain.Report) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", r.Errors)))
	b.WriteString("  ")
	b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", r.Warnings)))
	b.WriteString("  ")
	b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", r.Infos)))
	b.WriteString("\n")

	files := fmt.Sprintf("%d files scanned", r.FilesScanned)
	if r.FilesSkipped > 0 {
		files += fmt.Sprintf(", %d skipped due to access errors", r.FilesSkipped)
	}
	b.WriteString("  " + dimStyle.Render(files) + "\n\n")

	if r.Passed {
		b.WriteString("  " + passStyle.Render("PASSED") + "\n")
	} else {
		verdict := "FAILED"
		if r.Strict && r.Errors == 0 {
			verdict = "FAILED (strict)"
		}
		b.WriteString("  " + failStyle.Render(verdict) + "\n")
	}

	return b.String()
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("[ERROR]")
	case domain.SeverityWarning:
		return warnTagStyle.Render("[WARN] ")
	default:
		return infoTagStyle.Render("[INFO] ")
	}
}
