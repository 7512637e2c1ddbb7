package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, path string, content PatternsConfig) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// mockPaths points both layers at files inside dir and restores the originals afterwards.
func mockPaths(t *testing.T, userPath, projectPath string) {
	t.Helper()
	originalUser := getUserConfigPath
	originalProject := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalUser
		getProjectConfigPath = originalProject
	})
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t,
		filepath.Join(tempDir, "non-existent-user-config.yaml"),
		filepath.Join(tempDir, "non-existent-project-config.yaml"))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
}

func TestLoadConfig_UserThenProjectOverride(t *testing.T) {
	tempDir := t.TempDir()
	userPath := filepath.Join(tempDir, "home", userConfigDir, configFileName)
	projectPath := filepath.Join(tempDir, "project", projectConfigDir, configFileName)
	mockPaths(t, userPath, projectPath)

	createTempConfigFile(t, userPath, PatternsConfig{
		GlobalSettings: GlobalSettings{LogLevel: "debug", Output: "yaml"},
		Bridge:         BridgeConfig{UserMessage: "Hello from user"},
	})
	createTempConfigFile(t, projectPath, PatternsConfig{
		GlobalSettings: GlobalSettings{Output: "styled"},
		Adapter:        AdapterConfig{TimeFormat: "15:04"},
	})

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", loaded.GlobalSettings.LogLevel)
	assert.Equal(t, "styled", loaded.GlobalSettings.Output)
	assert.Equal(t, "15:04", loaded.Adapter.TimeFormat)
	assert.Equal(t, "Hello from user", loaded.Bridge.UserMessage)
	assert.Equal(t, "CPU temperature high!", loaded.Bridge.AlertMessage)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	userPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(userPath, []byte("globalSettings: [unclosed"), 0644))
	mockPaths(t, userPath, filepath.Join(tempDir, "missing.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	projectPath := filepath.Join(tempDir, configFileName)
	createTempConfigFile(t, projectPath, PatternsConfig{
		GlobalSettings: GlobalSettings{LogLevel: "loud"},
	})
	mockPaths(t, filepath.Join(tempDir, "missing.yaml"), projectPath)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "globalSettings.logLevel")
}

func TestLoadConfig_UnresolvablePathIsSkipped(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, "", filepath.Join(tempDir, "missing.yaml"))
	getUserConfigPath = func() (string, error) { return "", errors.New("no home") }

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
}

func TestMergeConfigs_EmptyOverlayKeepsBase(t *testing.T) {
	base := GetDefaultConfig()
	assert.Equal(t, base, mergeConfigs(base, PatternsConfig{}))
}

func TestValidate_Output(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.GlobalSettings.Output = "html"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "globalSettings.output")
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config/patterns"), dir)
}
