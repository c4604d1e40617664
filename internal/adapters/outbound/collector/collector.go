// Package collector implements domain.SourceCollector by walking the
// filesystem for Terraform source files.
package collector

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tfconform/tfconform/internal/domain"
)

// FileCollector walks a directory tree and loads .tf files.
type FileCollector struct{}

// New creates a FileCollector.
func New() *FileCollector { return &FileCollector{} }

// Collect walks root, skipping hidden directories (which covers .terraform
// and .git) and any excluded directory names. Discovery order follows
// filepath.WalkDir's lexical order, so repeated runs see the same sequence.
// Unreadable files are recorded in Skipped instead of failing the walk.
func (c *FileCollector) Collect(root string, excludePaths ...string) (*domain.SourceSet, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	skip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		skip[strings.TrimSuffix(p, "/")] = true
	}

	set := &domain.SourceSet{Root: absRoot}

	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			rel, relErr := filepath.Rel(absRoot, path)
			if relErr != nil {
				rel = path
			}
			set.Skipped = append(set.Skipped, filepath.ToSlash(rel))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") || skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if filepath.Dir(path) == absRoot {
			set.RootFiles = append(set.RootFiles, d.Name())
		}

		if !strings.HasSuffix(d.Name(), ".tf") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			set.Skipped = append(set.Skipped, rel)
			return nil
		}

		set.Files = append(set.Files, &domain.SourceFile{
			Path:     path,
			RelPath:  rel,
			Content:  string(data),
			Category: domain.Categorize(d.Name()),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return set, nil
}

// ModuleRoots lists modules/<name> directories under root that contain at
// least one Terraform file, sorted for stable reporting.
func (c *FileCollector) ModuleRoots(root string) ([]string, error) {
	modulesDir := filepath.Join(root, "modules")
	entries, err := os.ReadDir(modulesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var roots []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		dir := filepath.Join(modulesDir, e.Name())
		if hasTerraformFiles(dir) {
			roots = append(roots, dir)
		}
	}
	sort.Strings(roots)
	return roots, nil
}

func hasTerraformFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".tf") {
			return true
		}
	}
	return false
}
