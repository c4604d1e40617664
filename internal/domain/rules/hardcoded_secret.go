package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/terraform"
)

// secretAttrRe matches assignments of a quoted literal to a secret-like
// attribute. References (var., local., data.) and interpolations are handled
// separately so only true literals fire.
var secretAttrRe = regexp.MustCompile(`(?i)^\s*([\w-]*(?:password|secret|token|key)[\w-]*)\s*=\s*"([^"]+)"\s*$`)

// HardcodedSecretRule flags credential literals committed into source.
// The missing-sensitive rule covers declarations; this one catches the value
// itself being leaked.
type HardcodedSecretRule struct{}

func (r *HardcodedSecretRule) ID() string       { return "hardcoded-secret-literal" }
func (r *HardcodedSecretRule) Severity() string { return domain.SeverityError }
func (r *HardcodedSecretRule) Description() string {
	return "secret values come from variables or a secrets manager, never literals"
}

func (r *HardcodedSecretRule) Check(ctx *Context) []domain.Finding {
	var findings []domain.Finding

	for _, f := range ctx.Set.Files {
		for i, raw := range strings.Split(f.Content, "\n") {
			line := terraform.StripComments(raw)

			m := secretAttrRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if strings.Contains(line, "${") ||
				strings.Contains(line, "var.") ||
				strings.Contains(line, "local.") ||
				strings.Contains(line, "data.") {
				continue
			}

			findings = append(findings, domain.Finding{
				Rule:       r.ID(),
				Severity:   r.Severity(),
				File:       f.RelPath,
				Line:       i + 1,
				Message:    fmt.Sprintf("attribute %q is assigned a literal secret value", m[1]),
				Suggestion: "reference a sensitive variable or a secrets-manager data source",
			})
		}
	}

	return findings
}
