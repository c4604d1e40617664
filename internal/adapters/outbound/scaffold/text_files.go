package scaffold

import (
	"fmt"
	"strings"
)

func readmeFile(name, cloud string) string {
	upper := strings.ToUpper(cloud)
	return fmt.Sprintf(`# %[1]s

Infrastructure as Code for %[1]s on %[2]s.

## Prerequisites

- Terraform >= 1.5
- %[2]s account with appropriate permissions
- %[2]s CLI authenticated

## Quick Start

1. Configure variables:

   `+"```bash"+`
   cd terraform
   cp terraform.tfvars.example terraform.tfvars
   `+"```"+`

2. Initialize and review:

   `+"```bash"+`
   terraform init
   terraform plan
   `+"```"+`

3. Deploy:

   `+"```bash"+`
   terraform apply
   `+"```"+`

## Configuration

See terraform/terraform.tfvars.example for all available options.

Required variables:

- deployment_prefix - unique prefix for resource names
- location - cloud region for deployment
- environment - one of dev, staging, prod

## Validation

`+"```bash"+`
tfconform validate --path terraform
`+"```"+`
`, name, upper)
}

func moduleReadmeFile(name string) string {
	return fmt.Sprintf(`# %[1]s - Terraform

## Prerequisites

See the project README one level up.

## Quick Start

`+"```bash"+`
cp terraform.tfvars.example terraform.tfvars
terraform init
terraform plan
`+"```"+`

## Configuration

All inputs are declared in variables.tf; starter values live in
terraform.tfvars.example. Constants belong in locals_constants.tf,
outputs in outputs.tf.
`, name)
}

func gitignoreFile() string {
	return `# Terraform files
*.tfstate
*.tfstate.*
*.tfvars
!*.tfvars.example
.terraform/
.terraform.lock.hcl
crash.log
override.tf
override.tf.json

# Sensitive files
*.pem
*.key
*.crt
.env

# OS and editor files
.DS_Store
.vscode/
.idea/
*.swp
`
}

func contributingFile(name string) string {
	return fmt.Sprintf(`# Contributing to %s

## File organization

- locals_*.tf - configuration as data
- resource_*.tf - resource implementations
- variables.tf - all input variables
- outputs.tf - all outputs

## Standards

- Variables, resources, and files use snake_case
- Booleans use the native bool type
- Magic numbers go in locals_constants.tf
- Repeated resources use for_each, not count
- Every required variable has a validation block
- Credential-like variables set sensitive = true

## Before committing

`+"```bash"+`
terraform fmt -recursive
terraform validate
tfconform validate --path terraform --strict
`+"```"+`
`, name)
}

func workflowFile() string {
	return `name: validate

on:
  pull_request:
    paths:
      - "terraform/**"

jobs:
  validate:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: hashicorp/setup-terraform@v3
      - run: terraform fmt -check -recursive terraform/
      - run: tfconform validate --path terraform --strict
`
}

func docsStubFile(name string) string {
	return fmt.Sprintf("# %s architecture\n\nDocument the deployed topology and the decisions behind it here.\n", name)
}

// preCommitHook is installed into .git/hooks/pre-commit on scaffolded repos.
const preCommitHook = `#!/bin/sh
# Validate Terraform structure before every commit.

if git diff --cached --name-only --diff-filter=ACM | grep -q '\.tf$'; then
    echo "Terraform files changed, validating..."
    terraform fmt -check -recursive terraform/ || exit 1
    tfconform validate --path terraform || exit 1
fi

exit 0
`
