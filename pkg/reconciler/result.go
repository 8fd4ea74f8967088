package reconciler

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"
)

// Result represents the outcome of a reconciliation.
type Result struct {
	// Report tables
	Techniques []TechniqueRow
	Controls   []ControlRow

	// Metadata
	Metadata ResultMetadata
}

// ResultMetadata contains metadata about the reconciliation process.
type ResultMetadata struct {
	// StartTime when reconciliation started
	StartTime utc.Time

	// EndTime when reconciliation completed
	EndTime utc.Time

	// Duration of the reconciliation
	Duration time.Duration

	// Statistics about the reconciliation
	Stats ResultStatistics
}

// ResultStatistics contains statistics about the reconciliation.
type ResultStatistics struct {
	AllowlistedControls int // distinct allow-listed controls
	Priorities          int // ranked techniques, sub-techniques included
	TechniqueMappings   int
	SafeguardMappings   int
	UnmappedTechniques  int // ranked techniques with no allow-listed control
	UnmappedControls    int // allow-listed controls with no technique
}

// NewResult creates a new result started at the given time.
func NewResult(start utc.Time) *Result {
	return &Result{
		Techniques: []TechniqueRow{},
		Controls:   []ControlRow{},
		Metadata: ResultMetadata{
			StartTime: start,
		},
	}
}

func (r *Result) finish(in Inputs, end utc.Time) {
	r.Metadata.EndTime = end
	r.Metadata.Duration = end.Time.Sub(r.Metadata.StartTime.Time)

	unmapped := 0
	for _, row := range r.Controls {
		if row.Count == 0 {
			unmapped++
		}
	}
	r.Metadata.Stats = ResultStatistics{
		AllowlistedControls: len(in.Allowlist.Unique()),
		Priorities:          len(in.Priorities),
		TechniqueMappings:   len(in.Techniques),
		SafeguardMappings:   len(in.Safeguards),
		UnmappedTechniques:  len(in.Priorities) - len(r.Techniques),
		UnmappedControls:    unmapped,
	}
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	return fmt.Sprintf("Reconciled %d ranked techniques against %d controls: %d techniques mapped, %d controls without techniques",
		s.Priorities, s.AllowlistedControls, len(r.Techniques), s.UnmappedControls)
}
