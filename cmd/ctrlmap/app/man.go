package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// CreateManCommand creates the hidden man command, which prints the
// ctrlmap(1) man page for packaging.
func (a *App) CreateManCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Long:   `Generate man page for the ctrlmap CLI tool.`,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			header := &doc.GenManHeader{
				Title:   "CTRLMAP",
				Section: "1",
				Source:  "ctrlmap " + a.version,
				Manual:  "ctrlmap Manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
