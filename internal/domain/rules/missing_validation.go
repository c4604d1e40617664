package rules

import (
	"fmt"
	"strings"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/terraform"
)

// MissingValidationRule flags required string or number variables that carry
// no validation block. Variables with a default are exempt, as are blocks
// opted out with a #tfconform:disable marker on the header line.
type MissingValidationRule struct{}

func (r *MissingValidationRule) ID() string       { return "missing-validation" }
func (r *MissingValidationRule) Severity() string { return domain.SeverityWarning }
func (r *MissingValidationRule) Description() string {
	return "required string and number variables should validate their input at plan time"
}

func (r *MissingValidationRule) Check(ctx *Context) []domain.Finding {
	var findings []domain.Finding

	for _, f := range ctx.Set.Files {
		for _, b := range terraform.ParseBlocks(f.Content) {
			if b.Kind != "variable" || len(b.Labels) == 0 {
				continue
			}

			typ, ok := b.Attr("type")
			if !ok {
				continue
			}
			if !strings.Contains(typ.Value, "string") && !strings.Contains(typ.Value, "number") {
				continue
			}

			if _, hasDefault := b.Attr("default"); hasDefault {
				continue
			}
			if b.HasNested("validation") {
				continue
			}

			findings = append(findings, domain.Finding{
				Rule:       r.ID(),
				Severity:   r.Severity(),
				File:       f.RelPath,
				Line:       b.Line,
				Message:    fmt.Sprintf("required variable %q has no validation block", b.Labels[0]),
				Suggestion: "add a validation block, or a default if any value is acceptable",
			})
		}
	}

	return findings
}
