package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Override keys understood by ApplyOverrides. They are bound to CLI flags
// and to CTRLMAP_-prefixed environment variables by the app layer.
const (
	KeyIncludeDetails   = "include_details"
	KeyResultsDirectory = "results_directory"
	KeyNISTCISSheet     = "nist_cis_sheet"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(v *viper.Viper, key string) string {
	osValue := os.Getenv(key)
	viperValue := v.GetString(key)

	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// ApplyOverrides copies explicitly set flag or environment values onto
// the settings document values. Paths coming from overrides are used as
// given, relative to the working directory.
func ApplyOverrides(cfg *Config, v *viper.Viper) {
	if cfg == nil || v == nil {
		return
	}
	if v.IsSet(KeyIncludeDetails) {
		cfg.IncludeDetails = v.GetBool(KeyIncludeDetails)
	}
	if dir := strings.TrimSpace(GetString(v, KeyResultsDirectory)); dir != "" {
		cfg.ResultsDirectory = dir
	}
	if sheet := strings.TrimSpace(GetString(v, KeyNISTCISSheet)); sheet != "" {
		cfg.NISTCISSheet = sheet
	}
}
