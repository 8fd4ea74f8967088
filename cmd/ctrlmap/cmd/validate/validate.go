// Package validate provides the validate command, which loads every input
// without reconciling or writing.
package validate

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/ctrlmap/cmd/application"
	"github.com/agentstation/ctrlmap/internal/cmd/output"
)

// Input describes one loaded input catalog.
type Input struct {
	Source  string `json:"source" yaml:"source"`
	File    string `json:"file" yaml:"file"`
	Records int    `json:"records" yaml:"records"`
}

// NewCommand creates the validate command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Check the settings document and load every input",
		Long: `Validate reads the settings document and parses the allow-list, the
ranked techniques and both mapping workbooks, reporting the number of
records found in each. No report is written.`,
		Example: `  ctrlmap validate
  ctrlmap validate --config cjis/config.yaml --cis-sheet "Controls v8"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client(cmd.Flags())
			if err != nil {
				return err
			}
			catalogs, err := client.Load(cmd.Context())
			if err != nil {
				return err
			}

			inputs := make([]Input, 0, catalogs.Sources.Len())
			for _, src := range catalogs.Sources.List() {
				inputs = append(inputs, Input{
					Source:  src.ID().String(),
					File:    filepath.ToSlash(src.Path()),
					Records: src.Len(),
				})
			}

			app.Logger().Info().
				Str("config", client.Config().Path).
				Int("sources", len(inputs)).
				Msg("All inputs are valid")

			format := output.DetectFormat(app.OutputFormat())
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), inputs)
		},
	}

	application.AddPipelineFlags(cmd.Flags())

	return cmd
}
