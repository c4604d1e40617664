package rules

import (
	"regexp"
	"strings"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/terraform"
)

var (
	sourceWildcardRe = regexp.MustCompile(`source_address_prefix(?:es)?\s*=\s*(?:\[\s*)?"\*"`)
	destWildcardRe   = regexp.MustCompile(`destination_address_prefix(?:es)?\s*=\s*(?:\[\s*)?"\*"`)
	allowRe          = regexp.MustCompile(`(?i)(access|effect)\s*=\s*"allow"`)
)

// ruleWindow is how many lines around a wildcard source we search for the
// rest of a rule-shaped object. Security rule objects are small; a window
// avoids parsing arbitrarily nested object literals.
const ruleWindow = 12

// PermissiveSecurityRule flags rule-shaped objects that allow traffic from
// any source to any destination.
type PermissiveSecurityRule struct{}

func (r *PermissiveSecurityRule) ID() string       { return "permissive-security-rule" }
func (r *PermissiveSecurityRule) Severity() string { return domain.SeverityError }
func (r *PermissiveSecurityRule) Description() string {
	return "security rules must not allow wildcard source and destination"
}

func (r *PermissiveSecurityRule) Check(ctx *Context) []domain.Finding {
	var findings []domain.Finding

	for _, f := range ctx.Set.Files {
		lines := strings.Split(f.Content, "\n")
		for i, raw := range lines {
			line := terraform.StripComments(raw)
			if !sourceWildcardRe.MatchString(line) {
				continue
			}

			lo := i - ruleWindow
			if lo < 0 {
				lo = 0
			}
			hi := i + ruleWindow
			if hi >= len(lines) {
				hi = len(lines) - 1
			}

			destWildcard, allows := false, false
			for j := lo; j <= hi; j++ {
				l := terraform.StripComments(lines[j])
				if destWildcardRe.MatchString(l) {
					destWildcard = true
				}
				if allowRe.MatchString(l) {
					allows = true
				}
			}

			if destWildcard && allows {
				findings = append(findings, domain.Finding{
					Rule:       r.ID(),
					Severity:   r.Severity(),
					File:       f.RelPath,
					Line:       i + 1,
					Message:    "security rule allows traffic from any source to any destination",
					Suggestion: "restrict source and destination to specific CIDR ranges or service tags",
				})
			}
		}
	}

	return findings
}
