package app

import (
	"context"
	"os/signal"
	"syscall"
)

// ContextWithSignals derives the context a run executes under. Ctrl-C or
// SIGTERM cancels it, which stops the pipeline before the next report is
// written so no partially written CSV is left behind.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
