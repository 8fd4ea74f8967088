// Package run provides the run command, which writes both reports.
package run

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/ctrlmap/cmd/application"
	"github.com/agentstation/ctrlmap/internal/cmd/output"
	"github.com/agentstation/ctrlmap/pkg/report"
)

// Written describes one report written by a run.
type Written struct {
	Report string `json:"report" yaml:"report"`
	File   string `json:"file" yaml:"file"`
	Rows   int    `json:"rows" yaml:"rows"`
}

// NewCommand creates the run command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		GroupID: "core",
		Short:   "Reconcile the inputs and write both reports",
		Long: `Run loads the four inputs named by the settings document, reconciles
them against the allow-listed controls and writes the technique and
control reports into the results directory.

Nothing is written when any input fails to load.`,
		Example: `  ctrlmap run                              # Use ./config.yaml
  ctrlmap run --config cjis/config.yaml    # Another settings document
  ctrlmap run --details                    # Add the joined identifier columns`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client(cmd.Flags())
			if err != nil {
				return err
			}

			var written []Written
			client.OnReportWritten(func(path string, table *report.Table) {
				written = append(written, Written{
					Report: table.Kind.String(),
					File:   filepath.ToSlash(path),
					Rows:   len(table.Records),
				})
			})

			result, err := client.Run(cmd.Context())
			if err != nil {
				return err
			}

			app.Logger().Debug().
				Dur("duration", result.Result.Metadata.Duration).
				Int("unmapped_techniques", result.Result.Metadata.Stats.UnmappedTechniques).
				Msg("Run finished")

			format := output.DetectFormat(app.OutputFormat())
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), written)
		},
	}

	application.AddPipelineFlags(cmd.Flags())

	return cmd
}
