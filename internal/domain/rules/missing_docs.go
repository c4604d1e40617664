package rules

import (
	"fmt"

	"github.com/tfconform/tfconform/internal/domain"
)

// MissingDocsRule flags absent companion documentation: the project README
// and the example variables file new operators copy from.
type MissingDocsRule struct{}

func (r *MissingDocsRule) ID() string       { return "missing-docs" }
func (r *MissingDocsRule) Severity() string { return domain.SeverityWarning }
func (r *MissingDocsRule) Description() string {
	return "README.md and terraform.tfvars.example must exist at the scan root"
}

var requiredDocs = []struct {
	name string
	why  string
}{
	{"README.md", "project documentation"},
	{"terraform.tfvars.example", "example configuration"},
}

func (r *MissingDocsRule) Check(ctx *Context) []domain.Finding {
	var findings []domain.Finding
	for _, doc := range requiredDocs {
		if ctx.Set.HasRootFile(doc.name) {
			continue
		}
		findings = append(findings, domain.Finding{
			Rule:       r.ID(),
			Severity:   r.Severity(),
			Message:    fmt.Sprintf("%s (%s) is missing", doc.name, doc.why),
			Suggestion: fmt.Sprintf("add %s to the project root", doc.name),
		})
	}
	return findings
}
