// Package app provides the application context and dependency management
// for the ctrlmap CLI. It centralizes configuration, logging and command
// registration so commands only depend on application.Application.
package app

import (
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/agentstation/ctrlmap"
	"github.com/agentstation/ctrlmap/cmd/application"
	"github.com/agentstation/ctrlmap/internal/config"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// App represents the ctrlmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = cfg

	logger := NewLogger(cfg)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --format value, empty for auto-detection.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Client loads the settings document, applies flag and environment
// overrides and returns a client for it.
func (a *App) Client(flags *pflag.FlagSet) (ctrlmap.Client, error) {
	v := a.config.Viper()
	if flags != nil {
		bindings := map[string]string{
			config.KeyIncludeDetails:   application.FlagDetails,
			config.KeyResultsDirectory: application.FlagResultsDir,
			config.KeyNISTCISSheet:     application.FlagSafeguardSheet,
		}
		for key, name := range bindings {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, err
				}
			}
		}
	}

	settings, err := config.Load(a.config.SettingsFile)
	if err != nil {
		return nil, err
	}
	config.ApplyOverrides(settings, v)

	a.logger.Debug().
		Str("settings", settings.Path).
		Bool("details", settings.IncludeDetails).
		Str("results", settings.ResultsDirectory).
		Msg("Loaded settings document")

	return ctrlmap.New(ctrlmap.WithConfig(settings))
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
