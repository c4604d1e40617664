// Package config loads the optional .tfconform.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tfconform/tfconform/internal/domain"
)

const fileName = ".tfconform.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .tfconform.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .tfconform.yaml from root. A missing file yields the defaults;
// a malformed or invalid file is an error so typos never silently relax rules.
func (l *YAMLLoader) Load(root string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
