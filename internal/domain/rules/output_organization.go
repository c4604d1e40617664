package rules

import (
	"fmt"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/terraform"
)

// OutputOrganizationRule flags output blocks declared outside outputs.tf,
// where operators expect to find them.
type OutputOrganizationRule struct{}

func (r *OutputOrganizationRule) ID() string       { return "output-organization" }
func (r *OutputOrganizationRule) Severity() string { return domain.SeverityWarning }
func (r *OutputOrganizationRule) Description() string {
	return "all output blocks live in outputs.tf"
}

func (r *OutputOrganizationRule) Check(ctx *Context) []domain.Finding {
	var findings []domain.Finding

	for _, f := range ctx.Set.Files {
		if f.Category == domain.CategoryOutputs {
			continue
		}
		for _, b := range terraform.ParseBlocks(f.Content) {
			if b.Kind != "output" || len(b.Labels) == 0 {
				continue
			}
			findings = append(findings, domain.Finding{
				Rule:       r.ID(),
				Severity:   r.Severity(),
				File:       f.RelPath,
				Line:       b.Line,
				Message:    fmt.Sprintf("output %q declared outside outputs.tf", b.Labels[0]),
				Suggestion: "move it to outputs.tf",
			})
		}
	}

	return findings
}
