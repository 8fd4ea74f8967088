package ctrlmap

import (
	"github.com/agentstation/ctrlmap/internal/config"
	"github.com/agentstation/ctrlmap/pkg/constants"
	"github.com/agentstation/ctrlmap/pkg/errors"
	"github.com/agentstation/ctrlmap/pkg/reconciler"
	"github.com/agentstation/ctrlmap/pkg/report"
)

// options holds the client configuration
type options struct {
	config     *config.Config
	configFile string

	// overrides applied on top of the settings document
	details    *bool
	resultsDir string

	reconcilerOptions []reconciler.Option
	reportOptions     []report.Option
}

func defaults() *options {
	return &options{
		configFile: constants.DefaultConfigFile,
	}
}

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Option is a function that configures a Client
type Option func(*options) error

// WithConfig uses an already loaded settings document
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return &errors.ValidationError{Field: "config", Message: "cannot be nil"}
		}
		o.config = cfg
		return nil
	}
}

// WithConfigFile reads the settings document at path (config.yaml by default)
func WithConfigFile(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{Field: "config_file", Message: "cannot be empty"}
		}
		o.configFile = path
		return nil
	}
}

// WithDetails overrides include_details
func WithDetails(enabled bool) Option {
	return func(o *options) error {
		o.details = &enabled
		return nil
	}
}

// WithResultsDir overrides results_directory
func WithResultsDir(dir string) Option {
	return func(o *options) error {
		o.resultsDir = dir
		return nil
	}
}

// WithReconcilerOptions configures the reconciler
func WithReconcilerOptions(opts ...reconciler.Option) Option {
	return func(o *options) error {
		o.reconcilerOptions = append(o.reconcilerOptions, opts...)
		return nil
	}
}

// WithReportOptions configures the report writer
func WithReportOptions(opts ...report.Option) Option {
	return func(o *options) error {
		o.reportOptions = append(o.reportOptions, opts...)
		return nil
	}
}
