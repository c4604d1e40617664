package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/terraform"
)

var providerEntryRe = regexp.MustCompile(`(?m)^\s*([\w-]+)\s*=\s*\{`)

// UnpinnedProviderRule flags terraform blocks without a required_version and
// required_providers entries without an explicit version constraint.
type UnpinnedProviderRule struct{}

func (r *UnpinnedProviderRule) ID() string       { return "unpinned-provider" }
func (r *UnpinnedProviderRule) Severity() string { return domain.SeverityWarning }
func (r *UnpinnedProviderRule) Description() string {
	return "terraform and provider version constraints must be pinned"
}

func (r *UnpinnedProviderRule) Check(ctx *Context) []domain.Finding {
	var findings []domain.Finding

	for _, f := range ctx.Set.Files {
		for _, b := range terraform.ParseBlocks(f.Content) {
			if b.Kind != "terraform" {
				continue
			}

			if _, ok := b.Attr("required_version"); !ok {
				findings = append(findings, domain.Finding{
					Rule:       r.ID(),
					Severity:   r.Severity(),
					File:       f.RelPath,
					Line:       b.Line,
					Message:    "terraform block has no required_version constraint",
					Suggestion: `add required_version = ">= 1.5"`,
				})
			}

			for _, rp := range b.Nested("required_providers") {
				findings = append(findings, r.checkProviderEntries(f, rp)...)
			}
		}
	}

	return findings
}

// checkProviderEntries scans `name = { source = ..., version = ... }` entries
// inside a required_providers block.
func (r *UnpinnedProviderRule) checkProviderEntries(f *domain.SourceFile, rp terraform.Block) []domain.Finding {
	var findings []domain.Finding
	lines := strings.Split(rp.Body, "\n")

	for i, raw := range lines {
		line := terraform.StripComments(raw)
		m := providerEntryRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		// Walk to the entry's closing brace and look for a version pin.
		depth := 0
		hasVersion := false
		for j := i; j < len(lines); j++ {
			l := terraform.StripComments(lines[j])
			if strings.Contains(l, "version") && strings.Contains(l, "=") {
				hasVersion = true
			}
			depth += strings.Count(l, "{") - strings.Count(l, "}")
			if j > i && depth <= 0 {
				break
			}
			if j == i && depth <= 0 { // single-line entry
				break
			}
		}

		if !hasVersion {
			findings = append(findings, domain.Finding{
				Rule:       r.ID(),
				Severity:   r.Severity(),
				File:       f.RelPath,
				Line:       rp.Line + 1 + i,
				Message:    fmt.Sprintf("provider %q has no version constraint", m[1]),
				Suggestion: fmt.Sprintf(`add version = "~> x.y" to the %s entry`, m[1]),
			})
		}
	}

	return findings
}
