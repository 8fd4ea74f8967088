// Package ctrlmap reconciles a ranked list of MITRE ATT&CK techniques, an
// ATT&CK to NIST 800-53 mapping and a NIST 800-53 to CIS mapping against
// an allow-list of controls, and writes two cross-reference reports:
//
//   - ranked techniques with the allow-listed controls that cover them
//   - allow-listed controls with their techniques and related CIS safeguards
//
// A run is driven by a YAML settings document naming the four inputs, the
// results directory and whether the reports carry the joined identifier
// column.
//
// Example usage:
//
//	client, err := ctrlmap.New(ctrlmap.WithConfigFile("config.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client.OnReportWritten(func(path string, t *report.Table) {
//	    fmt.Printf("wrote %d rows to %s\n", len(t.Records), path)
//	})
//
//	run, err := client.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(run.Result.Summary())
//
//	// Or step by step, keeping the tables in memory
//	catalogs, err := client.Load(ctx)
//	result, err := client.Reconcile(ctx, catalogs)
//	for _, row := range result.Controls {
//	    fmt.Println(row.Control, row.Count)
//	}
package ctrlmap

import (
	"context"

	"github.com/agentstation/ctrlmap/internal/config"
	"github.com/agentstation/ctrlmap/pkg/reconciler"
	"github.com/agentstation/ctrlmap/pkg/sources"
)

// Catalogs is the loaded input of one run.
type Catalogs struct {
	reconciler.Inputs

	// Sources lists every input in load order with its record count
	Sources *sources.Sources
}

// RunResult is the outcome of a full run.
type RunResult struct {
	Catalogs *Catalogs
	Result   *reconciler.Result
	Reports  []string // written report paths
}

// Loader reads the input catalogs named by the settings document.
type Loader interface {
	Load(ctx context.Context) (*Catalogs, error)
}

// Reconciler joins loaded catalogs into report tables.
type Reconciler interface {
	Reconcile(ctx context.Context, c *Catalogs) (*reconciler.Result, error)
}

// Writer writes report tables into the results directory.
type Writer interface {
	Write(ctx context.Context, result *reconciler.Result) ([]string, error)
}

// Client runs the reconciliation pipeline for one settings document.
type Client interface {

	// Config returns the effective settings
	Config() *config.Config

	// Loader reads the inputs
	Loader

	// Reconciler builds the tables
	Reconciler

	// Writer emits the reports
	Writer

	// Run loads, reconciles and writes in one call
	Run(ctx context.Context) (*RunResult, error)

	// Hooks provides access to event callback registration
	Hooks
}
