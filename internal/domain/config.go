package domain

import "fmt"

// Module report modes.
const (
	ModuleReportsCombined = "combined"
	ModuleReportsSeparate = "separate"
)

// RunConfig carries the CLI inputs for a single validation run. It is built
// once at startup and never mutated afterwards.
type RunConfig struct {
	TargetPath string
	Strict     bool
}

// ProjectConfig is the optional .tfconform.yaml at the scan root. All fields
// have working defaults so the file is never required.
type ProjectConfig struct {
	// Rules overrides the default severity per rule id. The value "off"
	// disables the rule entirely.
	Rules map[string]string `yaml:"rules"`

	// ExcludePaths lists directory names skipped during collection, in
	// addition to hidden directories and .terraform.
	ExcludePaths []string `yaml:"exclude_paths"`

	// ModuleReports selects how nested modules/ directories are reported:
	// "combined" (one report, relative paths) or "separate" (one report
	// section per module root).
	ModuleReports string `yaml:"module_reports"`

	// PrefixVariable is the variable expected to prefix resource names.
	PrefixVariable string `yaml:"prefix_variable"`
}

// RuleOff disables a rule when used as its severity override.
const RuleOff = "off"

// DefaultConfig returns the configuration used when no .tfconform.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		ModuleReports:  ModuleReportsCombined,
		PrefixVariable: "deployment_prefix",
	}
}

// Validate catches typos in user-supplied configuration before a run starts.
func (c ProjectConfig) Validate() error {
	for rule, severity := range c.Rules {
		if severity != RuleOff && !ValidSeverity(severity) {
			return fmt.Errorf("rule %q: unknown severity %q (want error, warning, info, or off)", rule, severity)
		}
	}
	if c.ModuleReports != "" && c.ModuleReports != ModuleReportsCombined && c.ModuleReports != ModuleReportsSeparate {
		return fmt.Errorf("module_reports: unknown mode %q (want combined or separate)", c.ModuleReports)
	}
	return nil
}

// RuleSeverity resolves the effective severity for a rule, applying any
// configured override. The second return is false when the rule is disabled.
func (c ProjectConfig) RuleSeverity(rule, defaultSeverity string) (string, bool) {
	override, ok := c.Rules[rule]
	if !ok {
		return defaultSeverity, true
	}
	if override == RuleOff {
		return "", false
	}
	return override, true
}
