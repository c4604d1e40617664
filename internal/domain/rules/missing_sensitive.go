package rules

import (
	"fmt"
	"regexp"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/terraform"
)

// secretNameRe matches identifiers that carry credential material.
var secretNameRe = regexp.MustCompile(`(?i)(password|secret|token|connection_string|(?:^|_)key(?:_|$|s$))`)

// MissingSensitiveRule flags variables and outputs with credential-like names
// that are not marked sensitive = true.
type MissingSensitiveRule struct{}

func (r *MissingSensitiveRule) ID() string       { return "missing-sensitive" }
func (r *MissingSensitiveRule) Severity() string { return domain.SeverityError }
func (r *MissingSensitiveRule) Description() string {
	return "credential-like variables and outputs must set sensitive = true"
}

func (r *MissingSensitiveRule) Check(ctx *Context) []domain.Finding {
	var findings []domain.Finding

	for _, f := range ctx.Set.Files {
		for _, b := range terraform.ParseBlocks(f.Content) {
			if (b.Kind != "variable" && b.Kind != "output") || len(b.Labels) == 0 {
				continue
			}
			name := b.Labels[0]
			if !secretNameRe.MatchString(name) {
				continue
			}

			if s, ok := b.Attr("sensitive"); ok && s.Value == "true" {
				continue
			}

			findings = append(findings, domain.Finding{
				Rule:       r.ID(),
				Severity:   r.Severity(),
				File:       f.RelPath,
				Line:       b.Line,
				Message:    fmt.Sprintf("%s %q is not marked sensitive", b.Kind, name),
				Suggestion: "add sensitive = true",
			})
		}
	}

	return findings
}
