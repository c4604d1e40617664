package rules

import (
	"fmt"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/terraform"
)

// CountNotForEachRule flags count meta-arguments on resource or module blocks
// when the file set declares two or more blocks of the same type. Indexed
// addressing over similar resources shifts addresses on every list change;
// for_each keyed by a stable identifier does not.
type CountNotForEachRule struct{}

func (r *CountNotForEachRule) ID() string       { return "count-not-foreach" }
func (r *CountNotForEachRule) Severity() string { return domain.SeverityWarning }
func (r *CountNotForEachRule) Description() string {
	return "repeated resources should use for_each, not count, for stable addressing"
}

type countedBlock struct {
	file *domain.SourceFile
	line int
	name string
}

func (r *CountNotForEachRule) Check(ctx *Context) []domain.Finding {
	// Group resource blocks by type, module blocks by source.
	groupSize := make(map[string]int)
	counted := make(map[string][]countedBlock)

	for _, f := range ctx.Set.Files {
		for _, b := range terraform.ParseBlocks(f.Content) {
			var key, name string
			switch {
			case b.Kind == "resource" && len(b.Labels) == 2:
				key = "resource." + b.Labels[0]
				name = b.Labels[0] + "." + b.Labels[1]
			case b.Kind == "module" && len(b.Labels) == 1:
				src, ok := b.Attr("source")
				if !ok {
					continue
				}
				key = "module." + src.Value
				name = "module." + b.Labels[0]
			default:
				continue
			}

			groupSize[key]++
			if c, ok := b.Attr("count"); ok {
				counted[key] = append(counted[key], countedBlock{file: f, line: c.Line, name: name})
			}
		}
	}

	var findings []domain.Finding
	for key, blocks := range counted {
		if groupSize[key] < 2 {
			continue
		}
		for _, cb := range blocks {
			findings = append(findings, domain.Finding{
				Rule:       r.ID(),
				Severity:   r.Severity(),
				File:       cb.file.RelPath,
				Line:       cb.line,
				Message:    fmt.Sprintf("%s uses count alongside similar blocks of the same type", cb.name),
				Suggestion: "use for_each over a map keyed by a stable identifier",
			})
		}
	}

	return findings
}
