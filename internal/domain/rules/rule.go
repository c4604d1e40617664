// Package rules holds the fixed catalog of structural checks applied to a
// collected set of Terraform source files. Every rule is stateless: run
// configuration is injected through the Context, never held in package state.
package rules

import "github.com/tfconform/tfconform/internal/domain"

// Context is the read-only input handed to every rule invocation.
type Context struct {
	Set    *domain.SourceSet
	Config domain.ProjectConfig
}

// Rule is one named check over the collected source files. Implementations
// must be pure: same Context in, same findings out.
type Rule interface {
	ID() string
	Severity() string
	Description() string
	Check(ctx *Context) []domain.Finding
}

// All returns the full rule catalog in registration order. The order has no
// effect on results; the aggregator sorts findings before reporting.
func All() []Rule {
	return []Rule{
		&MagicNumberRule{},
		&StringBooleanRule{},
		&MissingValidationRule{},
		&CountNotForEachRule{},
		&MissingSensitiveRule{},
		&PermissiveSecurityRule{},
		&NamingConventionRule{},
		&MissingDocsRule{},
		&UnpinnedProviderRule{},
		&HardcodedSecretRule{},
		&OutputOrganizationRule{},
		&FileStructureRule{},
	}
}
