package run

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ctrlmap"
	"github.com/agentstation/ctrlmap/cmd/application"
	"github.com/agentstation/ctrlmap/internal/testhelper"
	"github.com/agentstation/ctrlmap/pkg/constants"
	"github.com/agentstation/ctrlmap/pkg/errors"
)

func mockApp(ws *testhelper.Workspace, format string) *application.Mock {
	return &application.Mock{
		ClientFunc: func(*pflag.FlagSet) (ctrlmap.Client, error) {
			return ctrlmap.New(ctrlmap.WithConfigFile(ws.ConfigPath()))
		},
		OutputFormatFunc: func() string { return format },
	}
}

func TestRunCommand(t *testing.T) {
	ws := testhelper.NewWorkspace(t, false)

	cmd := NewCommand(mockApp(ws, "csv"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	techniques := filepath.ToSlash(filepath.Join(ws.ResultsPath(), constants.TechniqueReportFile))
	controls := filepath.ToSlash(filepath.Join(ws.ResultsPath(), constants.ControlReportFile))
	assert.Equal(t, "Report,File,Rows\n"+
		"techniques,"+techniques+",4\n"+
		"controls,"+controls+",4\n", out.String())
}

func TestRunCommandFlags(t *testing.T) {
	cmd := NewCommand(&application.Mock{})
	for _, name := range []string{application.FlagDetails, application.FlagResultsDir, application.FlagSafeguardSheet} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestRunCommandLoadFailure(t *testing.T) {
	ws := testhelper.NewWorkspace(t, false)
	ws.Remove(t, testhelper.PrioritiesFile)

	cmd := NewCommand(mockApp(ws, "csv"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.NoDirExists(t, ws.ResultsPath())
}

func TestRunCommandRejectsArgs(t *testing.T) {
	cmd := NewCommand(&application.Mock{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
