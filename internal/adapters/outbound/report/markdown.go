// Package report writes validation reports as markdown files.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/tfconform/tfconform/internal/domain"
)

// MarkdownWriter implements domain.ReportWriter with a markdown file.
type MarkdownWriter struct{}

// NewMarkdownWriter creates a MarkdownWriter.
func NewMarkdownWriter() *MarkdownWriter { return &MarkdownWriter{} }

// Write renders the reports and writes them to path. The file handle is
// closed even when writing the body fails partway.
func (w *MarkdownWriter) Write(path string, reports []*domain.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	_, writeErr := f.WriteString(Render(reports))
	closeErr := f.Close()

	if writeErr != nil {
		return fmt.Errorf("writing report: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing report file: %w", closeErr)
	}
	return nil
}

// Render produces the markdown body for a set of reports. The output depends
// only on the report contents, so identical inputs render byte-identical
// documents.
func Render(reports []*domain.Report) string {
	var b strings.Builder

	b.WriteString("# Terraform Validation Report\n\n")

	for i, r := range reports {
		if len(reports) > 1 {
			b.WriteString(fmt.Sprintf("## Module: %s\n\n", r.Root))
		}
		renderOne(&b, r)
		if i < len(reports)-1 {
			b.WriteString("\n---\n\n")
		}
	}

	return b.String()
}

func renderOne(b *strings.Builder, r *domain.Report) {
	verdict := "FAILED"
	if r.Passed {
		verdict = "PASSED"
	}

	b.WriteString(fmt.Sprintf("**Path:** `%s`\n\n", r.Root))
	b.WriteString(fmt.Sprintf("**Result:** %s\n\n", verdict))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("| --- | --- |\n")
	b.WriteString(fmt.Sprintf("| Errors | %d |\n", r.Errors))
	b.WriteString(fmt.Sprintf("| Warnings | %d |\n", r.Warnings))
	b.WriteString(fmt.Sprintf("| Info | %d |\n", r.Infos))
	b.WriteString(fmt.Sprintf("| Files scanned | %d |\n", r.FilesScanned))
	b.WriteString(fmt.Sprintf("| Files skipped | %d |\n", r.FilesSkipped))
	b.WriteString(fmt.Sprintf("| Rules run | %d |\n", len(r.RulesRun)))
	b.WriteString("\n")

	if len(r.Findings) == 0 {
		b.WriteString("No findings.\n")
		return
	}

	b.WriteString("## Findings\n\n")
	b.WriteString("| Severity | Location | Rule | Message |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, f := range r.Findings {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			strings.ToUpper(f.Severity), location(f), f.Rule, cell(f.Message)))
	}

	var suggestions []domain.Finding
	for _, f := range r.Findings {
		if f.Suggestion != "" {
			suggestions = append(suggestions, f)
		}
	}
	if len(suggestions) > 0 {
		b.WriteString("\n## Suggestions\n\n")
		for _, f := range suggestions {
			b.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", f.Rule, location(f), cell(f.Suggestion)))
		}
	}
}

func location(f domain.Finding) string {
	if f.File == "" {
		return "project"
	}
	if f.Line > 0 {
		return fmt.Sprintf("`%s:%d`", f.File, f.Line)
	}
	return fmt.Sprintf("`%s`", f.File)
}

// cell escapes pipes so finding text cannot break the table layout.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
