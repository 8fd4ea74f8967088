package application

import (
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/agentstation/ctrlmap"
)

// Compile-time check that Mock implements Application.
var _ Application = (*Mock)(nil)

// Mock is a configurable Application for command tests. Unset functions
// fall back to harmless defaults.
type Mock struct {
	ClientFunc       func(flags *pflag.FlagSet) (ctrlmap.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionValue     string
}

// Client calls ClientFunc, or creates a client for ./config.yaml.
func (m *Mock) Client(flags *pflag.FlagSet) (ctrlmap.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc(flags)
	}
	return ctrlmap.New()
}

// Logger calls LoggerFunc, or returns a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat calls OutputFormatFunc, or returns "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns VersionValue or "dev".
func (m *Mock) Version() string {
	if m.VersionValue != "" {
		return m.VersionValue
	}
	return "dev"
}

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }
