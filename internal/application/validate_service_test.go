package application_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfconform/tfconform/internal/adapters/outbound/collector"
	"github.com/tfconform/tfconform/internal/adapters/outbound/config"
	"github.com/tfconform/tfconform/internal/application"
	"github.com/tfconform/tfconform/internal/domain"
)

const (
	cleanDir      = "../../testdata/terraform/clean"
	violationsDir = "../../testdata/terraform/violations"
	countDir      = "../../testdata/terraform/count"
	emptyDir      = "../../testdata/terraform/empty"
)

func newService() *application.ValidateService {
	return application.NewValidateService(collector.New(), config.New())
}

func ruleIDs(findings []domain.Finding) map[string]bool {
	ids := make(map[string]bool)
	for _, f := range findings {
		ids[f.Rule] = true
	}
	return ids
}

func TestRun_CleanProjectPasses(t *testing.T) {
	report, err := newService().Run(domain.RunConfig{TargetPath: cleanDir})
	require.NoError(t, err)

	assert.True(t, report.Passed)
	assert.Empty(t, report.Findings)
	assert.Equal(t, 5, report.FilesScanned)
	assert.Len(t, report.RulesRun, 12)
}

func TestRun_ViolationsTriggerEveryRule(t *testing.T) {
	report, err := newService().Run(domain.RunConfig{TargetPath: violationsDir})
	require.NoError(t, err)

	assert.False(t, report.Passed)
	assert.Greater(t, report.Errors, 0)

	ids := ruleIDs(report.Findings)
	for _, want := range []string{
		"magic-number",
		"string-boolean",
		"missing-validation",
		"count-not-foreach",
		"missing-sensitive",
		"permissive-security-rule",
		"naming-convention",
		"missing-docs",
		"unpinned-provider",
		"hardcoded-secret-literal",
		"output-organization",
		"file-structure",
	} {
		assert.True(t, ids[want], "expected a %s finding", want)
	}
}

func TestRun_StrictPromotesWarningsToFailure(t *testing.T) {
	svc := newService()

	report, err := svc.Run(domain.RunConfig{TargetPath: countDir})
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.Equal(t, 0, report.Errors)
	assert.True(t, ruleIDs(report.Findings)["count-not-foreach"])

	strict, err := svc.Run(domain.RunConfig{TargetPath: countDir, Strict: true})
	require.NoError(t, err)
	assert.False(t, strict.Passed)
}

func TestRun_EmptyDirectoryPasses(t *testing.T) {
	report, err := newService().Run(domain.RunConfig{TargetPath: emptyDir})
	require.NoError(t, err)

	assert.True(t, report.Passed)
	assert.Equal(t, 0, report.FilesScanned)
}

func TestRun_NonexistentPathIsConfigurationError(t *testing.T) {
	_, err := newService().Run(domain.RunConfig{TargetPath: "does/not/exist"})
	require.Error(t, err)

	var confErr *domain.ConfigurationError
	assert.True(t, errors.As(err, &confErr))
}

func TestRun_DisableMarkerSuppressesFinding(t *testing.T) {
	dir := t.TempDir()
	src := `resource "azurerm_network_security_group" "app" {
  destination_port_range = "443" #tfconform:disable=magic-number
  backup_port            = "8080"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.tf"), []byte(src), 0o644))

	report, err := newService().Run(domain.RunConfig{TargetPath: dir})
	require.NoError(t, err)

	var magic []domain.Finding
	for _, f := range report.Findings {
		if f.Rule == "magic-number" {
			magic = append(magic, f)
		}
	}
	require.Len(t, magic, 1, "only the unmarked line should be flagged")
	assert.Equal(t, 3, magic[0].Line)
}

func TestRun_ConfigOverridesSeverity(t *testing.T) {
	dir := t.TempDir()
	cfg := `rules:
  magic-number: "off"
  missing-docs: error
`
	src := `resource "azurerm_network_security_group" "app" {
  destination_port_range = "443"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tfconform.yaml"), []byte(cfg), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.tf"), []byte(src), 0o644))

	report, err := newService().Run(domain.RunConfig{TargetPath: dir})
	require.NoError(t, err)

	ids := ruleIDs(report.Findings)
	assert.False(t, ids["magic-number"], "disabled rule must not run")
	assert.NotContains(t, report.RulesRun, "magic-number")

	for _, f := range report.Findings {
		if f.Rule == "missing-docs" {
			assert.Equal(t, domain.SeverityError, f.Severity)
		}
	}
	assert.False(t, report.Passed, "missing-docs promoted to error fails the run")
}

func TestRun_MalformedConfigIsConfigurationError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tfconform.yaml"), []byte("rules: [broken"), 0o644))

	_, err := newService().Run(domain.RunConfig{TargetPath: dir})
	require.Error(t, err)

	var confErr *domain.ConfigurationError
	assert.True(t, errors.As(err, &confErr))
}

func TestRunSeparate_OneReportPerModuleRoot(t *testing.T) {
	dir := t.TempDir()
	moduleDir := filepath.Join(dir, "modules", "network")
	require.NoError(t, os.MkdirAll(moduleDir, 0o755))

	rootSrc := `resource "azurerm_resource_group" "main" {
  name = "${var.deployment_prefix}-rg"
}
`
	moduleSrc := `variable "enable_backup" {
  type    = string
  default = "yes"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.tf"), []byte(rootSrc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(moduleDir, "variables.tf"), []byte(moduleSrc), 0o644))

	reports, err := newService().RunSeparate(domain.RunConfig{TargetPath: dir})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.False(t, ruleIDs(reports[0].Findings)["string-boolean"], "module findings stay out of the root report")
	assert.True(t, ruleIDs(reports[1].Findings)["string-boolean"])
	assert.Equal(t, moduleDir, reports[1].Root)
}

func TestModuleReportsMode(t *testing.T) {
	svc := newService()

	mode, err := svc.ModuleReportsMode(cleanDir, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ModuleReportsCombined, mode)

	mode, err = svc.ModuleReportsMode(cleanDir, "separate")
	require.NoError(t, err)
	assert.Equal(t, domain.ModuleReportsSeparate, mode)

	_, err = svc.ModuleReportsMode(cleanDir, "nested")
	require.Error(t, err)
}
