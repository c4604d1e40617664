package application

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/tfconform/tfconform/internal/adapters/outbound/scaffold"
	"github.com/tfconform/tfconform/internal/domain"
)

var projectNameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// ScaffoldOptions are the CLI inputs for project creation.
type ScaffoldOptions struct {
	Name      string
	Tool      string
	Cloud     string
	Template  string
	OutputDir string
}

// ScaffoldResult reports what was created. Git initialization is best-effort:
// a failure is surfaced as a warning, never as a failed scaffold.
type ScaffoldResult struct {
	Dir            string
	Files          []string
	GitInitialized bool
	GitWarning     string
}

// ScaffoldService creates new IaC project trees that pass validation cleanly.
type ScaffoldService struct{}

// NewScaffoldService creates a ScaffoldService.
func NewScaffoldService() *ScaffoldService { return &ScaffoldService{} }

// Create validates the options, writes the project tree, and initializes git.
func (s *ScaffoldService) Create(opts ScaffoldOptions) (*ScaffoldResult, error) {
	if err := s.validate(opts); err != nil {
		return nil, err
	}

	projectDir := filepath.Join(opts.OutputDir, opts.Name)
	if _, err := os.Stat(projectDir); err == nil {
		return nil, domain.NewConfigurationError(fmt.Sprintf("directory already exists: %s", projectDir), nil)
	}

	files, err := scaffold.Render(scaffold.Options{
		Name:     opts.Name,
		Tool:     opts.Tool,
		Cloud:    opts.Cloud,
		Template: opts.Template,
	})
	if err != nil {
		return nil, domain.NewConfigurationError("rendering templates", err)
	}

	written := make([]string, 0, len(files))
	for rel := range files {
		written = append(written, rel)
	}
	sort.Strings(written)

	for _, rel := range written {
		dest := filepath.Join(projectDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, []byte(files[rel]), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", rel, err)
		}
	}

	result := &ScaffoldResult{Dir: projectDir, Files: written}

	if err := scaffold.InitRepo(projectDir); err != nil {
		result.GitWarning = err.Error()
		return result, nil
	}
	result.GitInitialized = true

	if err := scaffold.InstallPreCommitHook(projectDir); err != nil {
		result.GitWarning = fmt.Sprintf("pre-commit hook not installed: %v", err)
	}

	return result, nil
}

func (s *ScaffoldService) validate(opts ScaffoldOptions) error {
	if !projectNameRe.MatchString(opts.Name) {
		return domain.NewConfigurationError(
			fmt.Sprintf("invalid project name %q (alphanumeric, hyphens, and underscores only)", opts.Name), nil)
	}
	if opts.Tool != scaffold.ToolTerraform {
		return domain.NewConfigurationError(fmt.Sprintf("unsupported tool %q (only terraform)", opts.Tool), nil)
	}
	if !scaffold.ValidCloud(opts.Cloud) {
		return domain.NewConfigurationError(fmt.Sprintf("unsupported cloud %q (want azure, aws, or gcp)", opts.Cloud), nil)
	}
	if !scaffold.ValidTemplate(opts.Template) {
		return domain.NewConfigurationError(fmt.Sprintf("unknown template %q (want minimal, standard, or enterprise)", opts.Template), nil)
	}
	return nil
}
