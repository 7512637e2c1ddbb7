package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"patterns/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/patterns"
	projectConfigDir = ".patterns"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user, and project settings.
func LoadConfig() (PatternsConfig, error) {
	config := GetDefaultConfig()

	for _, layer := range []struct {
		name string
		path func() (string, error)
	}{
		{"user", getUserConfigPath},
		{"project", getProjectConfigPath},
	} {
		path, err := layer.path()
		if err != nil {
			// Optional layer; keep going without it.
			logging.Warn("config", "Could not determine %s config path: %v", layer.name, err)
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if err != nil {
			return PatternsConfig{}, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
		logging.Debug("config", "Applied %s config from %s", layer.name, path)
		config = mergeConfigs(config, overlay)
	}

	if err := config.Validate(); err != nil {
		return PatternsConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a PatternsConfig from a YAML file.
func loadConfigFromFile(filePath string) (PatternsConfig, error) {
	var config PatternsConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return PatternsConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return PatternsConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Only non-empty
// overlay values replace base values.
func mergeConfigs(base, overlay PatternsConfig) PatternsConfig {
	merged := base

	override(&merged.GlobalSettings.LogLevel, overlay.GlobalSettings.LogLevel)
	override(&merged.GlobalSettings.Output, overlay.GlobalSettings.Output)
	override(&merged.Adapter.TimeFormat, overlay.Adapter.TimeFormat)
	override(&merged.Bridge.UserMessage, overlay.Bridge.UserMessage)
	override(&merged.Bridge.AlertMessage, overlay.Bridge.AlertMessage)

	return merged
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
