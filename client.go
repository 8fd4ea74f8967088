package ctrlmap

import (
	"context"

	"github.com/agentstation/utc"

	"github.com/agentstation/ctrlmap/internal/config"
	"github.com/agentstation/ctrlmap/pkg/errors"
	"github.com/agentstation/ctrlmap/pkg/logging"
	"github.com/agentstation/ctrlmap/pkg/reconciler"
	"github.com/agentstation/ctrlmap/pkg/report"
	"github.com/agentstation/ctrlmap/pkg/sources"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// client is the internal implementation of the Client interface.
type client struct {
	config     *config.Config
	reconciler reconciler.Reconciler
	writer     *report.Writer
	*hooks
}

// New creates a new Client. Without WithConfig the settings document is
// read from WithConfigFile, or config.yaml in the working directory.
func New(opts ...Option) (Client, error) {
	options, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	cfg := options.config
	if cfg == nil {
		if cfg, err = config.Load(options.configFile); err != nil {
			return nil, err
		}
	}
	// never mutate a caller-owned config
	effective := *cfg
	if options.details != nil {
		effective.IncludeDetails = *options.details
	}
	if options.resultsDir != "" {
		effective.ResultsDirectory = options.resultsDir
	}

	r, err := reconciler.New(options.reconcilerOptions...)
	if err != nil {
		return nil, err
	}

	return &client{
		config:     &effective,
		reconciler: r,
		writer:     report.NewWriter(effective.ResultsDirectory, options.reportOptions...),
		hooks:      newHooks(),
	}, nil
}

// Config returns the effective settings.
func (c *client) Config() *config.Config {
	return c.config
}

// Load reads all four input catalogs. The first failure aborts the load.
func (c *client) Load(ctx context.Context) (*Catalogs, error) {
	allow := sources.NewAllowlistSource(c.config.NewCJISNISTControls)
	priorities := sources.NewPrioritiesSource(c.config.PrioritizedTechniques)
	techniques := sources.NewTechniquesSource(c.config.AttackNISTMappings)
	safeguards := sources.NewSafeguardsSource(c.config.NISTCISMappings,
		sources.WithSafeguardSheet(c.config.NISTCISSheet))

	all := sources.NewSources(allow, priorities, techniques, safeguards)
	for _, src := range all.List() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		srcCtx := logging.WithSource(ctx, src.ID().String())
		if err := src.Load(srcCtx); err != nil {
			return nil, err
		}
		logging.FromContext(srcCtx).Info().
			Str("file", src.Path()).
			Int("records", src.Len()).
			Msg("Loaded source")
		c.sourceLoaded(src)
	}

	return &Catalogs{
		Inputs: reconciler.Inputs{
			Allowlist:  allow.Allowlist(),
			Priorities: priorities.Priorities(),
			Techniques: techniques.Mappings(),
			Safeguards: safeguards.Mappings(),
		},
		Sources: all,
	}, nil
}

// Reconcile builds both tables from loaded catalogs.
func (c *client) Reconcile(ctx context.Context, catalogs *Catalogs) (*reconciler.Result, error) {
	if catalogs == nil {
		return nil, &errors.ValidationError{Field: "catalogs", Message: "cannot be nil"}
	}
	return c.reconciler.Reconcile(logging.WithOperation(ctx, "reconcile"), catalogs.Inputs)
}

// Write writes both reports and returns their paths.
func (c *client) Write(ctx context.Context, result *reconciler.Result) ([]string, error) {
	if result == nil {
		return nil, &errors.ValidationError{Field: "result", Message: "cannot be nil"}
	}
	ctx = logging.WithOperation(ctx, "write")

	details := c.config.IncludeDetails
	tables := []*report.Table{
		report.Techniques(result.Techniques, details),
		report.Controls(result.Controls, details),
	}

	paths := make([]string, 0, len(tables))
	for _, table := range tables {
		path, err := c.writer.Write(ctx, table)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
		c.reportWritten(path, table)
	}
	return paths, nil
}

// Run loads the inputs, reconciles them and writes both reports. No report
// is written when any input fails to load.
func (c *client) Run(ctx context.Context) (*RunResult, error) {
	ctx = logging.WithRunID(ctx, utc.Now().Format("20060102T150405.000Z"))
	logger := logging.FromContext(ctx)
	logger.Info().
		Str("config", c.config.Path).
		Bool("details", c.config.IncludeDetails).
		Str("results", c.config.ResultsDirectory).
		Msg("Starting run")

	catalogs, err := c.Load(logging.WithOperation(ctx, "load"))
	if err != nil {
		return nil, err
	}
	result, err := c.Reconcile(ctx, catalogs)
	if err != nil {
		return nil, err
	}
	paths, err := c.Write(ctx, result)
	if err != nil {
		return nil, err
	}

	logger.Info().Strs("reports", paths).Msg(result.Summary())
	return &RunResult{
		Catalogs: catalogs,
		Result:   result,
		Reports:  paths,
	}, nil
}
