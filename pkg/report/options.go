package report

import (
	"os"

	"github.com/agentstation/ctrlmap/pkg/constants"
)

// Options is the configuration for a Writer.
type Options struct {
	comma    rune
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// Comma returns the field delimiter.
func (o *Options) Comma() rune {
	return o.comma
}

// Defaults returns the default writer options.
func Defaults() *Options {
	return &Options{
		comma:    ',',
		dirPerm:  constants.DirPermissions,
		filePerm: constants.FilePermissions,
	}
}

// Apply applies the given options to the writer options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option is a function that configures writer options.
type Option func(*Options)

// WithComma sets the field delimiter, for example '\t' or ';'.
func WithComma(r rune) Option {
	return func(o *Options) {
		o.comma = r
	}
}

// WithFileMode sets the permissions of written reports.
func WithFileMode(mode os.FileMode) Option {
	return func(o *Options) {
		o.filePerm = mode
	}
}
