// Package show provides the show command, which prints a report without
// writing it.
package show

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/ctrlmap/cmd/application"
	"github.com/agentstation/ctrlmap/internal/cmd/output"
	"github.com/agentstation/ctrlmap/pkg/reconciler"
	"github.com/agentstation/ctrlmap/pkg/report"
)

// FlagLimit caps the number of printed rows.
const FlagLimit = "limit"

// NewCommand creates the show command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show [report]",
		GroupID: "core",
		Short:   "Print a report without writing it",
		Long: `Show reconciles the inputs and prints one report to stdout.

Available subcommands:
  techniques  - ranked techniques with their allow-listed controls
  controls    - allow-listed controls with techniques and CIS safeguards`,
		Example: `  ctrlmap show techniques                  # Table on a terminal, CSV when piped
  ctrlmap show controls -o json            # Rows as JSON
  ctrlmap show techniques --limit 10       # Ten highest ranked techniques`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown report: %s", args[0])
		},
	}

	cmd.AddCommand(newReportCommand(app, report.KindTechniques,
		"Ranked techniques with their allow-listed controls"))
	cmd.AddCommand(newReportCommand(app, report.KindControls,
		"Allow-listed controls with techniques and CIS safeguards"))

	return cmd
}

func newReportCommand(app application.Application, kind report.Kind, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, err := cmd.Flags().GetInt(FlagLimit)
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("--%s must not be negative", FlagLimit)
			}

			client, err := app.Client(cmd.Flags())
			if err != nil {
				return err
			}
			catalogs, err := client.Load(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.Reconcile(cmd.Context(), catalogs)
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			data := render(result, kind, client.Config().IncludeDetails, format, limit)
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}

	application.AddPipelineFlags(cmd.Flags())
	cmd.Flags().Int(FlagLimit, 0, "print at most this many rows (0 prints all)")

	return cmd
}

// render returns the rows for structured formats and the report layout
// for table and csv output.
func render(result *reconciler.Result, kind report.Kind, details bool, format output.Format, limit int) any {
	techniques := truncate(result.Techniques, limit)
	controls := truncate(result.Controls, limit)

	if format == output.FormatJSON || format == output.FormatYAML {
		if kind == report.KindTechniques {
			return techniques
		}
		return controls
	}

	var table *report.Table
	var align []output.Align
	if kind == report.KindTechniques {
		table = report.Techniques(techniques, details)
		align = []output.Align{output.AlignRight, output.AlignLeft, output.AlignRight}
	} else {
		table = report.Controls(controls, details)
		align = []output.Align{output.AlignLeft, output.AlignRight}
	}
	for len(align) < len(table.Header) {
		align = append(align, output.AlignLeft)
	}

	return output.Data{
		Headers:         table.Header,
		Rows:            table.Records,
		ColumnAlignment: align,
	}
}

func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
