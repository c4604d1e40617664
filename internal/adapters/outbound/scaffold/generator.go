// Package scaffold renders the file tree for a new IaC project. Terraform
// sources are generated with hclwrite so they are syntactically sound; the
// content is designed to pass the validator's rule catalog with no findings.
package scaffold

import (
	"fmt"
	"path"
)

// Supported clouds.
const (
	CloudAzure = "azure"
	CloudAWS   = "aws"
	CloudGCP   = "gcp"
)

// Template tiers.
const (
	TemplateMinimal    = "minimal"
	TemplateStandard   = "standard"
	TemplateEnterprise = "enterprise"
)

// ToolTerraform is the only IaC tool with templates today.
const ToolTerraform = "terraform"

// Options selects what to scaffold.
type Options struct {
	Name     string
	Tool     string
	Cloud    string
	Template string
}

// ValidCloud reports whether cloud names a supported provider.
func ValidCloud(cloud string) bool {
	_, ok := cloudProviders[cloud]
	return ok
}

// ValidTemplate reports whether template names a known tier.
func ValidTemplate(template string) bool {
	switch template {
	case TemplateMinimal, TemplateStandard, TemplateEnterprise:
		return true
	}
	return false
}

// Render returns the full project tree as a map of project-relative paths to
// file contents. Directories are implied by the paths.
func Render(opts Options) (map[string]string, error) {
	if opts.Tool != ToolTerraform {
		return nil, fmt.Errorf("no templates for tool %q", opts.Tool)
	}
	if !ValidCloud(opts.Cloud) {
		return nil, fmt.Errorf("no templates for cloud %q", opts.Cloud)
	}

	tool := opts.Tool
	files := map[string]string{
		"README.md":  readmeFile(opts.Name, opts.Cloud),
		".gitignore": gitignoreFile(),

		path.Join(tool, "README.md"):                moduleReadmeFile(opts.Name),
		path.Join(tool, ".gitignore"):               gitignoreFile(),
		path.Join(tool, "versions.tf"):              versionsFile(opts.Cloud),
		path.Join(tool, "variables.tf"):             variablesFile(opts.Name),
		path.Join(tool, "outputs.tf"):               outputsFile(opts.Name),
		path.Join(tool, "locals_constants.tf"):      localsConstantsFile(),
		path.Join(tool, "terraform.tfvars.example"): tfvarsExampleFile(opts.Name, opts.Cloud),
	}

	if opts.Template == TemplateStandard || opts.Template == TemplateEnterprise {
		files["CONTRIBUTING.md"] = contributingFile(opts.Name)
		files["docs/architecture.md"] = docsStubFile(opts.Name)
	}

	if opts.Template == TemplateEnterprise {
		files[path.Join(tool, "modules", ".gitkeep")] = ""
		files[".github/workflows/validate.yml"] = workflowFile()
	}

	return files, nil
}
