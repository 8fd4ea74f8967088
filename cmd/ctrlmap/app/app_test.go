package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ctrlmap/cmd/application"
	"github.com/agentstation/ctrlmap/internal/testhelper"
	"github.com/agentstation/ctrlmap/pkg/constants"
	"github.com/agentstation/ctrlmap/pkg/errors"
)

func newTestApp(t *testing.T, settingsFile string) *App {
	t.Helper()

	logger := zerolog.Nop()
	app, err := New("1.0.0", "abc123", "2024-01-01", "test",
		WithConfig(&Config{
			SettingsFile: settingsFile,
			LogLevel:     "error",
			LogFormat:    "json",
			LogOutput:    "discard",
		}),
		WithLogger(&logger),
	)
	require.NoError(t, err)
	return app
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2024-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
}

func TestApp_Client(t *testing.T) {
	ws := testhelper.NewWorkspace(t, false)
	app := newTestApp(t, ws.ConfigPath())

	client, err := app.Client(nil)
	require.NoError(t, err)
	assert.False(t, client.Config().IncludeDetails)
	assert.Equal(t, constants.SafeguardSheet, client.Config().NISTCISSheet)
}

func TestApp_ClientFlagOverrides(t *testing.T) {
	ws := testhelper.NewWorkspace(t, false)
	app := newTestApp(t, ws.ConfigPath())

	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	application.AddPipelineFlags(flags)
	require.NoError(t, flags.Parse([]string{"--details", "--results-dir", "out", "--cis-sheet", "Controls v8"}))

	client, err := app.Client(flags)
	require.NoError(t, err)
	assert.True(t, client.Config().IncludeDetails)
	assert.Equal(t, "out", client.Config().ResultsDirectory)
	assert.Equal(t, "Controls v8", client.Config().NISTCISSheet)
}

func TestApp_ClientMissingSettings(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := app.Client(nil)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestExecuteRun(t *testing.T) {
	ws := testhelper.NewWorkspace(t, false)
	app := newTestApp(t, "")

	out, err := execute(t, app, "run", "--config", ws.ConfigPath(), "-o", "csv", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Report,File,Rows", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "techniques,"))
	assert.True(t, strings.HasSuffix(lines[1], constants.TechniqueReportFile+",4"))
	assert.True(t, strings.HasSuffix(lines[2], constants.ControlReportFile+",4"))

	assert.NotEmpty(t, ws.ReadResult(t, constants.TechniqueReportFile))
}

func TestExecuteRunDetailsFlag(t *testing.T) {
	ws := testhelper.NewWorkspace(t, false)
	app := newTestApp(t, ws.ConfigPath())

	_, err := execute(t, app, "run", "--details", "-o", "json", "--log-level", "error")
	require.NoError(t, err)

	assert.NotEmpty(t, ws.ReadResult(t, constants.ControlReportDetailedFile))
}

func TestExecuteInvalidFormat(t *testing.T) {
	app := newTestApp(t, "")

	_, err := execute(t, app, "version", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestExecuteVersion(t *testing.T) {
	app := newTestApp(t, "")

	out, err := execute(t, app, "version", "-v", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "ctrlmap 1.0.0")
	assert.Contains(t, out, "commit:   abc123")
}

func TestExecuteMan(t *testing.T) {
	app := newTestApp(t, "")

	out, err := execute(t, app, "man", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "CTRLMAP")
	assert.Contains(t, out, "validate")
}
