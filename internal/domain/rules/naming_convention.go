package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/terraform"
)

var snakeCaseRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// NamingConventionRule enforces lower_snake_case identifiers for resources,
// variables, outputs, and modules, and checks that literal resource names
// include the configured deployment-prefix variable.
type NamingConventionRule struct{}

func (r *NamingConventionRule) ID() string       { return "naming-convention" }
func (r *NamingConventionRule) Severity() string { return domain.SeverityWarning }
func (r *NamingConventionRule) Description() string {
	return "identifiers use lower_snake_case; resource names include the deployment prefix"
}

func (r *NamingConventionRule) Check(ctx *Context) []domain.Finding {
	prefixVar := ctx.Config.PrefixVariable
	if prefixVar == "" {
		prefixVar = domain.DefaultConfig().PrefixVariable
	}
	prefixRef := "var." + prefixVar

	var findings []domain.Finding

	for _, f := range ctx.Set.Files {
		for _, b := range terraform.ParseBlocks(f.Content) {
			var ident string
			switch {
			case b.Kind == "resource" && len(b.Labels) == 2:
				ident = b.Labels[1]
			case (b.Kind == "variable" || b.Kind == "output" || b.Kind == "module") && len(b.Labels) == 1:
				ident = b.Labels[0]
			default:
				continue
			}

			if !snakeCaseRe.MatchString(ident) {
				findings = append(findings, domain.Finding{
					Rule:       r.ID(),
					Severity:   r.Severity(),
					File:       f.RelPath,
					Line:       b.Line,
					Message:    fmt.Sprintf("%s %q is not lower_snake_case", b.Kind, ident),
					Suggestion: fmt.Sprintf("rename to %q", toSnakeCase(ident)),
				})
			}

			if b.Kind == "resource" {
				if n, ok := b.Attr("name"); ok && isPlainLiteral(n.Value) && !strings.Contains(n.Value, prefixRef) {
					findings = append(findings, domain.Finding{
						Rule:       r.ID(),
						Severity:   r.Severity(),
						File:       f.RelPath,
						Line:       n.Line,
						Message:    fmt.Sprintf("resource name %s does not include %s", n.Value, prefixRef),
						Suggestion: fmt.Sprintf(`prefix it, e.g. name = "${%s}-..."`, prefixRef),
					})
				}
			}
		}
	}

	return findings
}

// isPlainLiteral reports whether v is a quoted string with no interpolation.
func isPlainLiteral(v string) bool {
	return strings.HasPrefix(v, `"`) && !strings.Contains(v, "${")
}

// toSnakeCase renders an identifier in lower_snake_case, splitting camelCase
// words and normalizing separators.
func toSnakeCase(ident string) string {
	ident = strings.ReplaceAll(ident, "-", "_")
	var words []string
	for _, part := range strings.Split(ident, "_") {
		for _, w := range camelcase.Split(part) {
			if w != "" {
				words = append(words, strings.ToLower(w))
			}
		}
	}
	return strings.Join(words, "_")
}
