package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"schoolwidget/internal/models"
)

// YAMLConfig represents the structure of the config.yaml file.
// School content changes more often than deployment settings, so it lives here
// rather than in env vars.
type YAMLConfig struct {
	School models.SchoolInfo `yaml:"school"`
	Chips  []string          `yaml:"chips,omitempty"`
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// SchoolInfo returns the built-in school info with the file's values applied.
func (c *YAMLConfig) SchoolInfo() models.SchoolInfo {
	info := models.DefaultSchoolInfo()
	if c == nil {
		return info
	}
	return info.Merge(c.School)
}

// ChipsOr returns the configured chips, or fallback when none are set.
func (c *YAMLConfig) ChipsOr(fallback []string) []string {
	if c == nil || len(c.Chips) == 0 {
		return fallback
	}
	return c.Chips
}
