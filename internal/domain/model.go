package domain

import "sort"

// Severity levels for findings, ordered error > warning > info.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// severityRank maps a severity to its sort rank. Higher sorts first.
var severityRank = map[string]int{
	SeverityError:   3,
	SeverityWarning: 2,
	SeverityInfo:    1,
}

// ValidSeverity reports whether s is one of the known severity levels.
func ValidSeverity(s string) bool {
	_, ok := severityRank[s]
	return ok
}

// Finding represents one rule violation. Findings are immutable once created.
type Finding struct {
	Rule       string `json:"rule"`
	Severity   string `json:"severity"`
	File       string `json:"file,omitempty"`
	Line       int    `json:"line,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Report aggregates all findings of a validation run.
type Report struct {
	Root         string    `json:"root"`
	Findings     []Finding `json:"findings"`
	Errors       int       `json:"errors"`
	Warnings     int       `json:"warnings"`
	Infos        int       `json:"infos"`
	RulesRun     []string  `json:"rules_run"`
	FilesScanned int       `json:"files_scanned"`
	FilesSkipped int       `json:"files_skipped"`
	Strict       bool      `json:"strict"`
	Passed       bool      `json:"passed"`
}

// Aggregate builds a Report from raw findings. Findings are sorted by severity
// rank (errors first), then file path, then line, then rule id, so that two
// runs over the same tree render byte-identical output. Passed is false when
// any error exists, or when any warning exists in strict mode.
func Aggregate(root string, findings []Finding, rulesRun []string, filesScanned, filesSkipped int, strict bool) *Report {
	sorted := make([]Finding, len(findings))
	copy(sorted, findings)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if severityRank[a.Severity] != severityRank[b.Severity] {
			return severityRank[a.Severity] > severityRank[b.Severity]
		}
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Rule < b.Rule
	})

	report := &Report{
		Root:         root,
		Findings:     sorted,
		RulesRun:     rulesRun,
		FilesScanned: filesScanned,
		FilesSkipped: filesSkipped,
		Strict:       strict,
	}

	for _, f := range sorted {
		switch f.Severity {
		case SeverityError:
			report.Errors++
		case SeverityWarning:
			report.Warnings++
		default:
			report.Infos++
		}
	}

	report.Passed = report.Errors == 0 && (!strict || report.Warnings == 0)
	return report
}
