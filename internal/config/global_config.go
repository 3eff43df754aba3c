package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/aleister1102/deckdiff/internal/common"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	DiffConfig      DiffConfig      `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	ExtractorConfig ExtractorConfig `json:"extractor_config,omitempty" yaml:"extractor_config,omitempty"`
	ReporterConfig  ReporterConfig  `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
	StorageConfig   StorageConfig   `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	LogConfig       LogConfig       `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DiffConfig:      NewDefaultDiffConfig(),
		ExtractorConfig: NewDefaultExtractorConfig(),
		ReporterConfig:  NewDefaultReporterConfig(),
		StorageConfig:   NewDefaultStorageConfig(),
		LogConfig:       NewDefaultLogConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both
// YAML and JSON formats. A missing config file is not an error: defaults
// apply.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

// parseConfigContent unmarshals the file content over the defaults, picking
// the codec from the file extension. YAML is the preferred format.
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return common.WrapError(err, "failed to parse YAML config: "+filePath)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return common.WrapError(err, "failed to parse JSON config: "+filePath)
		}
	default:
		return common.NewValidationError("config_file", filePath, "unsupported config file extension")
	}
	return nil
}
