package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey int

const (
	loggerKey contextKey = iota
	runIDKey
)

// WithLogger stores logger in ctx. A nil logger stores the default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx is FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithRunID tags every log line of a run with id.
func WithRunID(ctx context.Context, id string) context.Context {
	return tag(context.WithValue(ctx, runIDKey, id), "run_id", id)
}

// RunID returns the ID set by WithRunID.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// WithSource tags log lines with the input being read: allowlist,
// priorities, techniques or safeguards.
func WithSource(ctx context.Context, source string) context.Context {
	return tag(ctx, "source", source)
}

// WithFile tags log lines with an input or report path.
func WithFile(ctx context.Context, path string) context.Context {
	return tag(ctx, "file", path)
}

// WithReport tags log lines with the report being built.
func WithReport(ctx context.Context, report string) context.Context {
	return tag(ctx, "report", report)
}

// WithOperation tags log lines with the pipeline stage.
func WithOperation(ctx context.Context, operation string) context.Context {
	return tag(ctx, "operation", operation)
}

func tag(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, &logger)
}
