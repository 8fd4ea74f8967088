package ctrlmap

import (
	"sync"

	"github.com/agentstation/ctrlmap/pkg/report"
	"github.com/agentstation/ctrlmap/pkg/sources"
)

// Hook function types for pipeline events
type (
	// SourceLoadedHook is called after an input catalog has been loaded
	SourceLoadedHook func(src sources.Source)

	// ReportWrittenHook is called after a report has been written
	ReportWrittenHook func(path string, table *report.Table)
)

// Hooks registers callbacks for pipeline events.
type Hooks interface {
	OnSourceLoaded(fn SourceLoadedHook)
	OnReportWritten(fn ReportWrittenHook)
}

// hooks manages event callbacks
type hooks struct {
	mu              sync.RWMutex
	onSourceLoaded  []SourceLoadedHook
	onReportWritten []ReportWrittenHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnSourceLoaded registers a callback for loaded input catalogs
func (h *hooks) OnSourceLoaded(fn SourceLoadedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onSourceLoaded = append(h.onSourceLoaded, fn)
}

// OnReportWritten registers a callback for written reports
func (h *hooks) OnReportWritten(fn ReportWrittenHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onReportWritten = append(h.onReportWritten, fn)
}

func (h *hooks) sourceLoaded(src sources.Source) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onSourceLoaded {
		fn(src)
	}
}

func (h *hooks) reportWritten(path string, table *report.Table) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onReportWritten {
		fn(path, table)
	}
}
