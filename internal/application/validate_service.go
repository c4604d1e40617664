package application

import (
	"fmt"
	"os"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/rules"
	"github.com/tfconform/tfconform/internal/domain/terraform"
)

// FileAccessRule is the finding id used for files skipped during collection.
const FileAccessRule = "file-access"

// ValidateService drives one validation pass: collect source files, run the
// rule catalog, aggregate findings into a report.
type ValidateService struct {
	collector    domain.SourceCollector
	configLoader domain.ConfigLoader
}

// NewValidateService creates a ValidateService with its outbound adapters.
func NewValidateService(collector domain.SourceCollector, configLoader domain.ConfigLoader) *ValidateService {
	return &ValidateService{collector: collector, configLoader: configLoader}
}

// Run validates the configured target directory and returns the report.
// extraExcludes adds directory names skipped during collection on top of the
// project configuration (used by separate module reports to carve out
// modules/ from the root pass).
func (s *ValidateService) Run(cfg domain.RunConfig, extraExcludes ...string) (*domain.Report, error) {
	if _, err := os.Stat(cfg.TargetPath); err != nil {
		return nil, domain.NewConfigurationError(fmt.Sprintf("path does not exist: %s", cfg.TargetPath), err)
	}

	pcfg, err := s.configLoader.Load(cfg.TargetPath)
	if err != nil {
		return nil, domain.NewConfigurationError("loading project configuration", err)
	}

	excludes := append(append([]string{}, pcfg.ExcludePaths...), extraExcludes...)
	set, err := s.collector.Collect(cfg.TargetPath, excludes...)
	if err != nil {
		return nil, domain.NewConfigurationError("collecting source files", err)
	}

	findings, rulesRun := s.runRules(set, pcfg)

	// Unreadable files degrade to warnings so the rest still gets checked.
	for _, skipped := range set.Skipped {
		findings = append(findings, domain.Finding{
			Rule:     FileAccessRule,
			Severity: domain.SeverityWarning,
			File:     skipped,
			Message:  "file unreadable, skipped",
		})
	}

	findings = filterDisabled(set, findings)

	return domain.Aggregate(cfg.TargetPath, findings, rulesRun, len(set.Files), len(set.Skipped), cfg.Strict), nil
}

// RunSeparate validates the target and each nested modules/ root as its own
// report. The first report covers the root with modules/ excluded.
func (s *ValidateService) RunSeparate(cfg domain.RunConfig) ([]*domain.Report, error) {
	rootReport, err := s.Run(cfg, "modules")
	if err != nil {
		return nil, err
	}
	reports := []*domain.Report{rootReport}

	moduleRoots, err := s.collector.ModuleRoots(cfg.TargetPath)
	if err != nil {
		return nil, domain.NewConfigurationError("discovering module roots", err)
	}

	for _, root := range moduleRoots {
		modCfg := cfg
		modCfg.TargetPath = root
		report, err := s.Run(modCfg)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// ModuleReportsMode resolves the effective module report mode for a target,
// letting a CLI flag override the project configuration.
func (s *ValidateService) ModuleReportsMode(targetPath, flagOverride string) (string, error) {
	if flagOverride != "" {
		if flagOverride != domain.ModuleReportsCombined && flagOverride != domain.ModuleReportsSeparate {
			return "", domain.NewConfigurationError(fmt.Sprintf("unknown --modules mode %q", flagOverride), nil)
		}
		return flagOverride, nil
	}
	pcfg, err := s.configLoader.Load(targetPath)
	if err != nil {
		return "", domain.NewConfigurationError("loading project configuration", err)
	}
	if pcfg.ModuleReports == "" {
		return domain.ModuleReportsCombined, nil
	}
	return pcfg.ModuleReports, nil
}

// runRules executes the catalog. A panicking rule is isolated: it becomes an
// error finding attributed to the rule, and the remaining rules still run.
func (s *ValidateService) runRules(set *domain.SourceSet, pcfg domain.ProjectConfig) ([]domain.Finding, []string) {
	ctx := &rules.Context{Set: set, Config: pcfg}

	var findings []domain.Finding
	var rulesRun []string

	for _, rule := range rules.All() {
		severity, enabled := pcfg.RuleSeverity(rule.ID(), rule.Severity())
		if !enabled {
			continue
		}
		rulesRun = append(rulesRun, rule.ID())

		checked, panicked := s.checkRule(rule, ctx)
		for _, f := range checked {
			if !panicked {
				f.Severity = severity
			}
			findings = append(findings, f)
		}
	}

	return findings, rulesRun
}

func (s *ValidateService) checkRule(rule rules.Rule, ctx *rules.Context) (findings []domain.Finding, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			findings = []domain.Finding{{
				Rule:     rule.ID(),
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("rule execution failed: %v", r),
			}}
		}
	}()
	return rule.Check(ctx), false
}

// filterDisabled drops findings whose source line carries a
// #tfconform:disable marker naming the rule.
func filterDisabled(set *domain.SourceSet, findings []domain.Finding) []domain.Finding {
	out := findings[:0]
	for _, f := range findings {
		if f.File != "" && f.Line > 0 {
			if src := set.Lookup(f.File); src != nil {
				line := terraform.Line(src.Content, f.Line)
				if terraform.DisabledRules(line)[f.Rule] {
					continue
				}
			}
		}
		out = append(out, f)
	}
	return out
}
