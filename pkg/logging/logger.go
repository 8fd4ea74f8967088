// Package logging provides structured logging for ctrlmap using zerolog.
//
// A run reads four inputs and writes two reports; every log line about an
// input carries a "source" field and every line about a report carries a
// "report" field, so a JSON log can be filtered per artifact. Output is a
// console rendering when stderr is a terminal and JSON lines otherwise.
//
//	ctx := logging.WithSource(ctx, "priorities")
//	logging.FromContext(ctx).Info().Int("records", 25).Msg("Loaded source")
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/agentstation/ctrlmap/pkg/constants"
)

// Options selects the level and destination of a logger.
type Options struct {
	// Level is a zerolog level name; "warning" and "off" are accepted too.
	// Anything unrecognised logs at info.
	Level string

	// Format is "json", "console" or "auto". Auto picks console only when
	// the destination is a terminal.
	Format string

	// Output is "stderr", "stdout", "discard" or a file to append to.
	Output string

	NoColor bool

	// Caller adds file:line to every line. Debug and trace imply it.
	Caller bool
}

var defaultLogger = New(Options{
	Level:   os.Getenv("LOG_LEVEL"),
	Format:  os.Getenv("LOG_FORMAT"),
	NoColor: os.Getenv("NO_COLOR") != "",
})

// New builds a logger from opts and makes its level the global minimum.
func New(opts Options) zerolog.Logger {
	level := ParseLevel(opts.Level)
	zerolog.SetGlobalLevel(level)

	logCtx := zerolog.New(writerFor(opts)).Level(level).With().Timestamp()
	if opts.Caller || level <= zerolog.DebugLevel {
		logCtx = logCtx.Caller()
	}
	return logCtx.Logger()
}

// Install replaces the default logger with one built from opts.
func Install(opts Options) zerolog.Logger {
	logger := New(opts)
	SetDefault(logger)
	return logger
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger and zerolog's global one.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	switch name = strings.ToLower(strings.TrimSpace(name)); name {
	case "":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "off", "none":
		return zerolog.Disabled
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func writerFor(opts Options) io.Writer {
	var out io.Writer
	terminal := false
	switch strings.ToLower(opts.Output) {
	case "", "stderr":
		out = os.Stderr
		terminal = isatty.IsTerminal(os.Stderr.Fd())
	case "stdout":
		out = os.Stdout
		terminal = isatty.IsTerminal(os.Stdout.Fd())
	case "discard", "none":
		out = io.Discard
	default:
		file, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
		if err != nil {
			out = os.Stderr
			break
		}
		out = file
	}

	switch strings.ToLower(opts.Format) {
	case "console", "pretty":
	case "", "auto":
		if !terminal {
			return out
		}
	default:
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: opts.NoColor}
}
