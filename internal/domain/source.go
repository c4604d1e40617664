package domain

import "strings"

// File categories derived from filename convention.
const (
	CategoryLocals    = "locals"
	CategoryResource  = "resource"
	CategoryVariables = "variables"
	CategoryOutputs   = "outputs"
	CategoryData      = "data"
	CategoryVersions  = "versions"
	CategoryOther     = "other"
)

// SourceFile is a Terraform source file loaded from disk. It is immutable once
// collected; rules receive it by reference and never mutate it.
type SourceFile struct {
	Path     string `json:"path"`
	RelPath  string `json:"rel_path"`
	Content  string `json:"-"`
	Category string `json:"category"`
}

// categoryRule pairs a filename predicate with the category it assigns.
type categoryRule struct {
	match    func(name string) bool
	category string
}

// categoryRules are evaluated top to bottom; first match wins. Order matters:
// prefix rules run before exact-name rules so locals_variables.tf stays locals.
var categoryRules = []categoryRule{
	{func(n string) bool { return strings.HasPrefix(n, "locals_") }, CategoryLocals},
	{func(n string) bool { return strings.HasPrefix(n, "resource_") }, CategoryResource},
	{func(n string) bool { return n == "variables.tf" }, CategoryVariables},
	{func(n string) bool { return n == "outputs.tf" }, CategoryOutputs},
	{func(n string) bool { return n == "data.tf" }, CategoryData},
	{func(n string) bool { return n == "versions.tf" }, CategoryVersions},
}

// Categorize derives a file category from its base name. Matching is
// case-sensitive; unmatched names fall through to CategoryOther.
func Categorize(name string) string {
	for _, r := range categoryRules {
		if r.match(name) {
			return r.category
		}
	}
	return CategoryOther
}

// SourceSet is the collector's output: all files discovered under one scan
// root, in stable discovery order, plus the files that could not be read.
type SourceSet struct {
	Root    string        `json:"root"`
	Files   []*SourceFile `json:"files"`
	Skipped []string      `json:"skipped,omitempty"`

	// RootFiles are the names of all regular files sitting directly in the
	// scan root, Terraform or not. Companion-file rules (README, tfvars
	// example, .gitignore) check membership here.
	RootFiles []string `json:"root_files,omitempty"`
}

// HasRootFile reports whether a file with the given name sits in the root.
func (s *SourceSet) HasRootFile(name string) bool {
	for _, f := range s.RootFiles {
		if f == name {
			return true
		}
	}
	return false
}

// ByCategory returns the files of one category, preserving discovery order.
func (s *SourceSet) ByCategory(category string) []*SourceFile {
	var out []*SourceFile
	for _, f := range s.Files {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// Lookup returns the file with the given relative path, or nil.
func (s *SourceSet) Lookup(relPath string) *SourceFile {
	for _, f := range s.Files {
		if f.RelPath == relPath {
			return f
		}
	}
	return nil
}
