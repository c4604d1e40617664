package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/terraform"
)

// Attribute names whose numeric values should live in locals_constants.tf.
var magicAttrRe = regexp.MustCompile(`(?i)^\s*([\w-]*(?:port|zone|replication|sku|capacity|disk_size)[\w-]*)\s*=\s*"?(\d+)"?\s*$`)

// Any bare numeric assignment matching a well-known network port.
var numericAttrRe = regexp.MustCompile(`^\s*([\w-]+)\s*=\s*(\d+)\s*$`)

var commonPorts = map[string]string{
	"22":   "SSH",
	"80":   "HTTP",
	"443":  "HTTPS",
	"1433": "SQL Server",
	"3306": "MySQL",
	"3389": "RDP",
	"5432": "PostgreSQL",
	"6379": "Redis",
	"8080": "HTTP alt",
	"9200": "Elasticsearch",
}

var wellKnownIPs = map[string]string{
	"168.63.129.16":   "Azure wire server",
	"169.254.169.254": "cloud metadata endpoint",
}

// MagicNumberRule flags inline numeric literals that belong in a named
// constant: port-like attributes, zones, sizes, and well-known IPs.
type MagicNumberRule struct{}

func (r *MagicNumberRule) ID() string       { return "magic-number" }
func (r *MagicNumberRule) Severity() string { return domain.SeverityWarning }
func (r *MagicNumberRule) Description() string {
	return "ports, zones, and sizes should be named constants in locals_constants.tf"
}

func (r *MagicNumberRule) Check(ctx *Context) []domain.Finding {
	var findings []domain.Finding

	for _, f := range ctx.Set.Files {
		// Locals files are where constants are supposed to live.
		if f.Category == domain.CategoryLocals {
			continue
		}

		for i, raw := range strings.Split(f.Content, "\n") {
			line := terraform.StripComments(raw)
			if strings.TrimSpace(line) == "" {
				continue
			}
			// A local. reference means the value already is a constant.
			if strings.Contains(line, "local.") {
				continue
			}

			if m := magicAttrRe.FindStringSubmatch(line); m != nil {
				findings = append(findings, domain.Finding{
					Rule:       r.ID(),
					Severity:   r.Severity(),
					File:       f.RelPath,
					Line:       i + 1,
					Message:    fmt.Sprintf("magic number %s assigned to %q", m[2], m[1]),
					Suggestion: fmt.Sprintf("define it in locals_constants.tf and reference local.%s", m[1]),
				})
				continue
			}

			if m := numericAttrRe.FindStringSubmatch(line); m != nil {
				if svc, ok := commonPorts[m[2]]; ok {
					findings = append(findings, domain.Finding{
						Rule:       r.ID(),
						Severity:   r.Severity(),
						File:       f.RelPath,
						Line:       i + 1,
						Message:    fmt.Sprintf("well-known port %s (%s) assigned to %q", m[2], svc, m[1]),
						Suggestion: "define it in locals_constants.tf and reference it via local.",
					})
					continue
				}
			}

			for ip, desc := range wellKnownIPs {
				if strings.Contains(line, ip) {
					findings = append(findings, domain.Finding{
						Rule:       r.ID(),
						Severity:   r.Severity(),
						File:       f.RelPath,
						Line:       i + 1,
						Message:    fmt.Sprintf("well-known IP %s (%s) hardcoded", ip, desc),
						Suggestion: "define it in locals_constants.tf and reference it via local.",
					})
					break
				}
			}
		}
	}

	return findings
}
