package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"diffanalyzer/internal/common"

	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application.
// It is constructed once, validated, and passed by value into the components
// that consume it; there is no global mutable state.
type GlobalConfig struct {
	ClassifierConfig ClassifierConfig `json:"classifier_config,omitempty" yaml:"classifier_config,omitempty"`
	DiffConfig       DiffConfig       `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	ExclusionConfig  ExclusionConfig  `json:"exclusion_config,omitempty" yaml:"exclusion_config,omitempty"`
	GeneratorConfig  GeneratorConfig  `json:"generator_config,omitempty" yaml:"generator_config,omitempty"`
	LogConfig        LogConfig        `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ReporterConfig   ReporterConfig   `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		ClassifierConfig: NewDefaultClassifierConfig(),
		DiffConfig:       NewDefaultDiffConfig(),
		ExclusionConfig:  NewDefaultExclusionConfig(),
		GeneratorConfig:  NewDefaultGeneratorConfig(),
		LogConfig:        NewDefaultLogConfig(),
		ReporterConfig:   NewDefaultReporterConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both
// JSON and YAML formats; YAML is used for .yaml/.yml extensions. When no file
// is found the built-in defaults are returned.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		if providedPath != "" {
			return nil, common.NewValidationError("config_file", providedPath, "config file does not exist")
		}
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to read config file '%s'", filePath)
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}
