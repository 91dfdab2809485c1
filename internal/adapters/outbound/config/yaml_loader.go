package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maidos/codeqc/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".codeqc.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .codeqc.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .codeqc.yaml from projectPath. Returns DefaultConfig when the
// file does not exist. User values overlay the defaults, so a partial file
// only overrides what it names.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
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
