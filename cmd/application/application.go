// Package application provides the application interface for ctrlmap commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            client, err := app.Client(cmd.Flags())
//	            if err != nil {
//	                return err
//	            }
//	            _, err = client.Run(cmd.Context())
//	            return err
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    ClientFunc: func(*pflag.FlagSet) (ctrlmap.Client, error) {
//	        return ctrlmap.New(ctrlmap.WithConfigFile(path))
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/agentstation/ctrlmap"
)

// Flag names shared by the commands that run the pipeline. Application
// implementations read them from the FlagSet passed to Client.
const (
	FlagDetails        = "details"
	FlagResultsDir     = "results-dir"
	FlagSafeguardSheet = "cis-sheet"
)

// AddPipelineFlags registers the settings overrides on a command.
func AddPipelineFlags(flags *pflag.FlagSet) {
	flags.Bool(FlagDetails, false, "include the joined identifier column (overrides include_details)")
	flags.String(FlagResultsDir, "", "directory for generated reports (overrides results_directory)")
	flags.String(FlagSafeguardSheet, "", "worksheet to read from the NIST to CIS workbook (overrides nist_cis_sheet)")
}

// Application provides the application interface that commands need.
// The App struct from cmd/ctrlmap/app implements this interface.
type Application interface {
	// Client returns a ctrlmap client for the settings document, with
	// overrides from flags set on the given FlagSet and from the environment.
	Client(flags *pflag.FlagSet) (ctrlmap.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, csv, markdown).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
