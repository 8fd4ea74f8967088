package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/ctrlmap/pkg/logging"
)

// cliLevels are the values --log-level accepts.
var cliLevels = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}

// NewLogger installs the process logger for a ctrlmap invocation.
// --log-level beats -v/--verbose, which beats -q/--quiet; with none of them
// CTRLMAP_LOG_LEVEL or LOG_LEVEL applies through config.LogLevel.
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)
	return logging.Install(logging.Options{
		Level:   level,
		Format:  config.LogFormat,
		Output:  config.LogOutput,
		NoColor: config.NoColor,
	})
}

func determineLogLevel(config *Config) string {
	switch {
	case config.LogLevel != "":
		level := validateLogLevel(config.LogLevel)
		if level != config.LogLevel {
			fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using %q\n", config.LogLevel, level)
		}
		return level
	case config.Verbose && config.Quiet:
		fmt.Fprintln(os.Stderr, "Warning: --verbose and --quiet both set, using --quiet")
		return "warn"
	case config.Verbose:
		return "debug"
	case config.Quiet:
		return "warn"
	default:
		return "info"
	}
}

// validateLogLevel returns level when --log-level accepts it and info otherwise.
func validateLogLevel(level string) string {
	if cliLevels[level] {
		return level
	}
	return "info"
}
