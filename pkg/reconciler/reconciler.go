// Package reconciler joins the loaded catalogs into the two cross-reference
// tables: ranked techniques with the allow-listed controls that mitigate
// them, and allow-listed controls with the techniques and CIS safeguards
// mapped to them.
package reconciler

import (
	"context"

	"github.com/agentstation/utc"

	"github.com/agentstation/ctrlmap/pkg/controls"
	"github.com/agentstation/ctrlmap/pkg/errors"
	"github.com/agentstation/ctrlmap/pkg/logging"
	"github.com/agentstation/ctrlmap/pkg/sources"
)

// Reconciler is the main interface for joining the input catalogs.
type Reconciler interface {
	// Techniques builds the Technique->Control table
	Techniques(ctx context.Context, in Inputs) ([]TechniqueRow, error)

	// Controls builds the Control->Technique table
	Controls(ctx context.Context, in Inputs) ([]ControlRow, error)

	// Reconcile builds both tables
	Reconcile(ctx context.Context, in Inputs) (*Result, error)
}

// Inputs holds the loaded catalogs of one run.
type Inputs struct {
	Allowlist  *controls.Allowlist
	Priorities []sources.Priority
	Techniques []sources.TechniqueMapping
	Safeguards []sources.SafeguardMapping
}

// Validate checks that the inputs can be reconciled.
func (in Inputs) Validate() error {
	if in.Allowlist == nil {
		return &errors.ValidationError{
			Field:   "allowlist",
			Message: "cannot be nil",
		}
	}
	return nil
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	safeguardPrefix string
	now             func() utc.Time
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{
		safeguardPrefix: options.safeguardPrefix,
		now:             options.now,
	}, nil
}

// Techniques builds the Technique->Control table.
func (r *reconciler) Techniques(ctx context.Context, in Inputs) ([]TechniqueRow, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := aggregateTechniques(in.Allowlist, in.Priorities, in.Techniques)
	logging.FromContext(ctx).Debug().
		Int("priorities", len(in.Priorities)).
		Int("rows", len(rows)).
		Msg("Aggregated techniques")
	return rows, nil
}

// Controls builds the Control->Technique table.
func (r *reconciler) Controls(ctx context.Context, in Inputs) ([]ControlRow, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := aggregateControls(in.Allowlist, in.Techniques, in.Safeguards, r.safeguardPrefix)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().
		Int("controls", in.Allowlist.Len()).
		Int("rows", len(rows)).
		Msg("Aggregated controls")
	return rows, nil
}

// Reconcile builds both tables and records run statistics.
func (r *reconciler) Reconcile(ctx context.Context, in Inputs) (*Result, error) {
	result := NewResult(r.now())
	logger := logging.FromContext(ctx)
	logger.Info().
		Int("controls", in.Allowlist.Len()).
		Int("priorities", len(in.Priorities)).
		Int("technique_mappings", len(in.Techniques)).
		Int("safeguard_mappings", len(in.Safeguards)).
		Msg("Starting reconciliation")

	techniques, err := r.Techniques(ctx, in)
	if err != nil {
		return nil, err
	}
	controlRows, err := r.Controls(ctx, in)
	if err != nil {
		return nil, err
	}

	result.Techniques = techniques
	result.Controls = controlRows
	result.finish(in, r.now())

	logger.Info().
		Int("technique_rows", len(techniques)).
		Int("control_rows", len(controlRows)).
		Dur("duration", result.Metadata.Duration).
		Msg("Reconciliation complete")

	return result, nil
}
