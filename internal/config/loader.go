package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"helperkit/internal/common"
)

// GetDefaultConfigPath returns $HELPERKIT_CONFIG or ~/.helperkit/config.yaml
func GetDefaultConfigPath() string {
	if path := os.Getenv(common.ENV_CONFIG_PATH); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigName)
}

// LoadConfig reads and validates configPath. A missing file is not an error:
// the defaults are returned instead.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = GetDefaultConfigPath()
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		common.CLILogger.Debug(common.ERROR_CONFIG_NOT_FOUND, configPath)
		return GetDefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", configPath, err)
	}
	config.applyDefaults()

	if err := ValidateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig validates config and writes it as YAML, creating parent directories
func SaveConfig(config *Config, configPath string) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if configPath == "" {
		configPath = GetDefaultConfigPath()
	}

	if err := ValidateConfig(config); err != nil {
		return fmt.Errorf("cannot save invalid configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %w", configPath, err)
	}

	return nil
}

func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}
