package rules

import (
	"fmt"

	"github.com/tfconform/tfconform/internal/domain"
)

// FileStructureRule checks the standard file layout: declarations, outputs,
// pinned versions, git exclusions, and the constants file that the
// magic-number rule points at.
type FileStructureRule struct{}

func (r *FileStructureRule) ID() string       { return "file-structure" }
func (r *FileStructureRule) Severity() string { return domain.SeverityWarning }
func (r *FileStructureRule) Description() string {
	return "projects follow the standard file layout (variables.tf, outputs.tf, versions.tf, .gitignore, locals_constants.tf)"
}

func (r *FileStructureRule) Check(ctx *Context) []domain.Finding {
	required := []struct {
		names []string // any one of these satisfies the requirement
		why   string
	}{
		{[]string{"variables.tf"}, "variable declarations"},
		{[]string{"outputs.tf"}, "output definitions"},
		{[]string{"versions.tf", "provider.tf"}, "provider version pins"},
		{[]string{".gitignore"}, "git exclusions"},
		{[]string{"locals_constants.tf"}, "named constants"},
	}

	var findings []domain.Finding
	for _, req := range required {
		found := false
		for _, name := range req.names {
			if ctx.Set.HasRootFile(name) {
				found = true
				break
			}
		}
		if found {
			continue
		}
		findings = append(findings, domain.Finding{
			Rule:       r.ID(),
			Severity:   r.Severity(),
			Message:    fmt.Sprintf("%s (%s) is missing", req.names[0], req.why),
			Suggestion: fmt.Sprintf("add %s to the project root", req.names[0]),
		})
	}
	return findings
}
