package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/terraform"
)

var (
	yesNoContainsRe     = regexp.MustCompile(`contains\(\s*\[\s*"yes"\s*,\s*"no"\s*\]`)
	trueFalseContainsRe = regexp.MustCompile(`contains\(\s*\[\s*"true"\s*,\s*"false"\s*\]`)

	stringBoolDefaults = map[string]bool{
		`"yes"`: true, `"no"`: true, `"true"`: true, `"false"`: true,
	}
)

// StringBooleanRule flags variables that model booleans as strings
// ("yes"/"no", "true"/"false") instead of the native bool type.
type StringBooleanRule struct{}

func (r *StringBooleanRule) ID() string       { return "string-boolean" }
func (r *StringBooleanRule) Severity() string { return domain.SeverityError }
func (r *StringBooleanRule) Description() string {
	return `boolean variables must use type = bool, not "yes"/"no" strings`
}

func (r *StringBooleanRule) Check(ctx *Context) []domain.Finding {
	var findings []domain.Finding

	for _, f := range ctx.Set.Files {
		for _, b := range terraform.ParseBlocks(f.Content) {
			if b.Kind != "variable" || len(b.Labels) == 0 {
				continue
			}

			typ, ok := b.Attr("type")
			if !ok || !strings.Contains(typ.Value, "string") {
				continue
			}

			if def, ok := b.Attr("default"); ok && stringBoolDefaults[def.Value] {
				findings = append(findings, domain.Finding{
					Rule:       r.ID(),
					Severity:   r.Severity(),
					File:       f.RelPath,
					Line:       def.Line,
					Message:    fmt.Sprintf("variable %q defaults to string boolean %s", b.Labels[0], def.Value),
					Suggestion: "use type = bool with default = true or false",
				})
				continue
			}

			for _, v := range b.Nested("validation") {
				if yesNoContainsRe.MatchString(v.Body) || trueFalseContainsRe.MatchString(v.Body) {
					findings = append(findings, domain.Finding{
						Rule:       r.ID(),
						Severity:   r.Severity(),
						File:       f.RelPath,
						Line:       v.Line,
						Message:    fmt.Sprintf("variable %q validates against string booleans", b.Labels[0]),
						Suggestion: "use type = bool and drop the validation block",
					})
					break
				}
			}
		}
	}

	return findings
}
