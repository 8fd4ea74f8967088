//go:build unix

package app

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestContextWithSignalsTerminate(t *testing.T) {
	ctx, cancel := ContextWithSignals(context.Background())
	defer cancel()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("kill: %v", err)
	}
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled by SIGTERM")
	}
}
