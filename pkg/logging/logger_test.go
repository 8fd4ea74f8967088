package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ctrlmap/pkg/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"trace":    zerolog.TraceLevel,
		" DEBUG ":  zerolog.DebugLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"disabled": zerolog.Disabled,
		"chatty":   zerolog.InfoLevel,
	}
	for name, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(name), "level %q", name)
	}
}

func TestNewWritesToFile(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	tests := []struct {
		name     string
		level    string
		contains []string
		excludes []string
	}{
		{
			name:     "debug level",
			level:    "debug",
			contains: []string{"debug line", "info line", "error line", `"caller":`},
		},
		{
			name:     "error level only",
			level:    "error",
			contains: []string{"error line"},
			excludes: []string{"debug line", "info line", `"caller":`},
		},
		{
			name:     "unknown level falls back to info",
			level:    "chatty",
			contains: []string{"info line"},
			excludes: []string{"debug line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ctrlmap.log")
			logger := logging.New(logging.Options{Level: tt.level, Format: "auto", Output: path})

			logger.Debug().Msg("debug line")
			logger.Info().Msg("info line")
			logger.Error().Msg("error line")

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(content), `{"level":`, "files get JSON lines")
			for _, s := range tt.contains {
				assert.Contains(t, string(content), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, string(content), s)
			}
		})
	}
}

func TestNewConsoleFormat(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	path := filepath.Join(t.TempDir(), "console.log")
	logger := logging.New(logging.Options{Format: "console", Output: path, NoColor: true})
	logger.Info().Str("source", "allowlist").Msg("Loaded source")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "INF Loaded source source=allowlist")
	assert.NotContains(t, string(content), `"level"`)
}

func TestInstall(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	})

	path := filepath.Join(t.TempDir(), "install.log")
	logging.Install(logging.Options{Level: "warn", Format: "json", Output: path})
	logging.Default().Info().Msg("hidden")
	logging.Ctx(context.Background()).Warn().Msg("shown")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), "shown")
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRunID(ctx, "run-42")
	ctx = logging.WithSource(ctx, "priorities")
	ctx = logging.WithFile(ctx, "top_techniques.json")
	ctx = logging.WithOperation(ctx, "load")
	ctx = logging.WithReport(ctx, "controls")

	logging.FromContext(ctx).Info().Int("records", 3).Msg("Loaded source")

	assert.True(t, tl.ContainsAll(
		`"run_id":"run-42"`,
		`"source":"priorities"`,
		`"file":"top_techniques.json"`,
		`"operation":"load"`,
		`"report":"controls"`,
		`"records":3`,
	), tl.Output())
	assert.Equal(t, "run-42", logging.RunID(ctx))
	assert.Equal(t, 1, tl.Count())
}

func TestContextFallbacks(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, logging.Default(), logging.FromContext(nil))
	assert.Same(t, logging.Default(), logging.Ctx(context.Background()))
	assert.Same(t, logging.Default(), logging.FromContext(logging.WithLogger(context.Background(), nil)))
	assert.Empty(t, logging.RunID(context.Background()))
}

func TestCaptureDefault(t *testing.T) {
	tl := logging.CaptureDefault(t)
	logging.Default().Info().Str("source", "allowlist").Msg("captured")
	logging.FromContext(logging.WithSource(context.Background(), "safeguards")).Warn().Msg("tagged")

	assert.True(t, tl.ContainsAll("captured", `"source":"safeguards"`), tl.Output())
	assert.Equal(t, 2, tl.Count())
}
