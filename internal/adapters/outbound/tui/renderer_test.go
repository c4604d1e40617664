package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tfconform/tfconform/internal/adapters/outbound/tui"
	"github.com/tfconform/tfconform/internal/domain"
)

func TestRenderReport_Findings(t *testing.T) {
	findings := []domain.Finding{
		{Rule: "missing-sensitive", Severity: domain.SeverityError, File: "variables.tf", Line: 7,
			Message: `variable "db_password" is not marked sensitive`, Suggestion: "add sensitive = true"},
		{Rule: "magic-number", Severity: domain.SeverityWarning, File: "main.tf", Line: 12,
			Message: `well-known port 443 (HTTPS) assigned to "dest"`},
	}
	report := domain.Aggregate("/proj", findings, []string{"missing-sensitive", "magic-number"}, 4, 0, false)

	out := tui.RenderReport(report)

	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "variables.tf:7")
	assert.Contains(t, out, "missing-sensitive")
	assert.Contains(t, out, "add sensitive = true")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "main.tf:12")
	assert.Contains(t, out, "1 errors")
	assert.Contains(t, out, "1 warnings")
	assert.Contains(t, out, "4 files scanned")
	assert.Contains(t, out, "FAILED")
	assert.NotContains(t, out, "PASSED")
}

func TestRenderReport_Passed(t *testing.T) {
	report := domain.Aggregate("/proj", nil, nil, 2, 0, false)
	out := tui.RenderReport(report)

	assert.Contains(t, out, "No findings.")
	assert.Contains(t, out, "PASSED")
	assert.Contains(t, out, "0 errors")
}

func TestRenderReport_StrictFailureOnWarnings(t *testing.T) {
	findings := []domain.Finding{{Rule: "count-not-foreach", Severity: domain.SeverityWarning, File: "main.tf", Line: 3, Message: "m"}}
	report := domain.Aggregate("/proj", findings, nil, 1, 0, true)

	out := tui.RenderReport(report)
	assert.Contains(t, out, "FAILED (strict)")
}

func TestRenderReport_SkippedFiles(t *testing.T) {
	report := domain.Aggregate("/proj", nil, nil, 3, 2, false)
	out := tui.RenderReport(report)
	assert.Contains(t, out, "2 skipped due to access errors")
}

func TestRenderReports_Sections(t *testing.T) {
	a := domain.Aggregate("/proj", nil, nil, 1, 0, false)
	b := domain.Aggregate("/proj/modules/network", nil, nil, 1, 0, false)

	out := tui.RenderReports([]*domain.Report{a, b})
	assert.Contains(t, out, "Report 1/2")
	assert.Contains(t, out, "Report 2/2")
	assert.Contains(t, out, "/proj/modules/network")

	single := tui.RenderReports([]*domain.Report{a})
	assert.NotContains(t, single, "Report 1/1")
}
