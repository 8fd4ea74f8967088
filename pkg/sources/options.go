package sources

import "github.com/agentstation/ctrlmap/pkg/constants"

// Options configures the workbook loaders.
type Options struct {
	// SafeguardSheet is the worksheet read from the NIST to CIS workbook
	SafeguardSheet string
}

// Option is a function that configures loader options.
type Option func(*Options)

// Defaults returns the default loader options.
func Defaults() *Options {
	return &Options{
		SafeguardSheet: constants.SafeguardSheet,
	}
}

// Apply applies the given options and returns the receiver.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithSafeguardSheet reads CIS mappings from the named worksheet.
// An empty name keeps the default.
func WithSafeguardSheet(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.SafeguardSheet = name
		}
	}
}
