package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/ctrlmap/pkg/constants"
	"github.com/agentstation/ctrlmap/pkg/errors"
)

// Config holds the application configuration loaded from flags, CTRLMAP_
// environment variables, .env files and ~/.ctrlmap.yaml.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// SettingsFile is the settings document driving a run
	SettingsFile string

	// AppConfigFile is the ~/.ctrlmap.yaml in use, if any
	AppConfigFile string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	viper *viper.Viper
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (CTRLMAP_ prefixed)
// 3. .env files
// 4. Config file (~/.ctrlmap.yaml or ./.ctrlmap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("config", constants.DefaultConfigFile)

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(constants.AppConfigName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("app", "cannot read "+constants.AppConfigName+".yaml", err)
		}
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		SettingsFile:  v.GetString("config"),
		AppConfigFile: v.ConfigFileUsed(),

		LogLevel:  firstNonEmpty(v.GetString("log_level"), os.Getenv("LOG_LEVEL")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),

		viper: v,
	}, nil
}

// Viper returns the viper instance backing the configuration.
func (c *Config) Viper() *viper.Viper {
	if c.viper == nil {
		c.viper = viper.New()
	}
	return c.viper
}

// UpdateFromFlags updates config values from parsed command flags.
// Only flags explicitly set on the command line are passed in as
// non-zero values, so they take precedence over file and environment.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, settingsFile string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if settingsFile != "" {
		c.SettingsFile = settingsFile
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	envFiles := []string{
		".env.local",
		".env",
	}

	// godotenv.Load never overrides variables that are already set,
	// so the more specific file is loaded first
	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
