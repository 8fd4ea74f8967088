package app

import (
	"testing"

	"github.com/agentstation/ctrlmap/pkg/constants"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.SettingsFile != constants.DefaultConfigFile {
		t.Errorf("SettingsFile = %q, want %q", config.SettingsFile, constants.DefaultConfigFile)
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.Viper() == nil {
		t.Error("Viper() returned nil")
	}
}

// TestConfig_EnvironmentVariables verifies CTRLMAP_ prefixed variables.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("CTRLMAP_VERBOSE", "true")
	t.Setenv("CTRLMAP_FORMAT", "json")
	t.Setenv("CTRLMAP_CONFIG", "cjis/config.yaml")
	t.Setenv("CTRLMAP_LOG_LEVEL", "error")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if !config.Verbose {
		t.Error("CTRLMAP_VERBOSE not loaded")
	}
	if config.Format != "json" {
		t.Errorf("Format = %q, want json", config.Format)
	}
	if config.SettingsFile != "cjis/config.yaml" {
		t.Errorf("SettingsFile = %q, want cjis/config.yaml", config.SettingsFile)
	}
	if config.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", config.LogLevel)
	}
}

// TestConfig_LogLevelFallback verifies the unprefixed LOG_LEVEL variable.
func TestConfig_LogLevelFallback(t *testing.T) {
	t.Setenv("CTRLMAP_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "trace")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want trace", config.LogLevel)
	}
}

// TestConfig_UpdateFromFlags verifies that only set flags override values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		Format:       "yaml",
		LogLevel:     "warn",
		SettingsFile: "config.yaml",
	}

	config.UpdateFromFlags(false, false, false, "", "", "")
	if config.Format != "yaml" || config.LogLevel != "warn" || config.SettingsFile != "config.yaml" {
		t.Errorf("empty flags changed config: %+v", config)
	}

	config.UpdateFromFlags(true, false, true, "csv", "debug", "other.yaml")
	if !config.Verbose || !config.NoColor {
		t.Error("boolean flags not applied")
	}
	if config.Format != "csv" || config.LogLevel != "debug" || config.SettingsFile != "other.yaml" {
		t.Errorf("string flags not applied: %+v", config)
	}
}
