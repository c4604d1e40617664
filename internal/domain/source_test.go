package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tfconform/tfconform/internal/domain"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"locals_constants.tf", domain.CategoryLocals},
		{"locals_variables.tf", domain.CategoryLocals},
		{"resource_storage.tf", domain.CategoryResource},
		{"variables.tf", domain.CategoryVariables},
		{"outputs.tf", domain.CategoryOutputs},
		{"data.tf", domain.CategoryData},
		{"versions.tf", domain.CategoryVersions},
		{"main.tf", domain.CategoryOther},
		{"Variables.tf", domain.CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.Categorize(tt.name), "file %s", tt.name)
	}
}

func TestSourceSet_HasRootFile(t *testing.T) {
	set := &domain.SourceSet{RootFiles: []string{"README.md", ".gitignore"}}

	assert.True(t, set.HasRootFile("README.md"))
	assert.True(t, set.HasRootFile(".gitignore"))
	assert.False(t, set.HasRootFile("readme.md"))
	assert.False(t, set.HasRootFile("terraform.tfvars.example"))
}

func TestSourceSet_ByCategoryAndLookup(t *testing.T) {
	a := &domain.SourceFile{RelPath: "variables.tf", Category: domain.CategoryVariables}
	b := &domain.SourceFile{RelPath: "locals_constants.tf", Category: domain.CategoryLocals}
	c := &domain.SourceFile{RelPath: "locals_naming.tf", Category: domain.CategoryLocals}
	set := &domain.SourceSet{Files: []*domain.SourceFile{a, b, c}}

	locals := set.ByCategory(domain.CategoryLocals)
	assert.Equal(t, []*domain.SourceFile{b, c}, locals)

	assert.Same(t, a, set.Lookup("variables.tf"))
	assert.Nil(t, set.Lookup("missing.tf"))
}
