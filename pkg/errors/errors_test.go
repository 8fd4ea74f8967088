package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/ctrlmap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestConfigError(t *testing.T) {
	t.Run("with component", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Component: "settings",
			Message:   "include_details: required key missing",
		}
		assert.Equal(t, "configuration error in settings: include_details: required key missing", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrConfig))
	})

	t.Run("without component", func(t *testing.T) {
		err := pkgerrors.NewConfigError("", "no settings document", nil)
		assert.Equal(t, "configuration error: no settings document", err.Error())
		assert.True(t, pkgerrors.IsConfigError(err))
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("file does not exist")
		err := pkgerrors.NewConfigError("allowlist", "cannot open controls.txt", base)
		assert.Equal(t, base, err.Unwrap())
		assert.True(t, errors.Is(err, base))
	})

	t.Run("wrap helper", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapConfig("settings", nil))
		err := pkgerrors.WrapConfig("settings", errors.New("bad yaml"))
		var cfgErr *pkgerrors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "settings", cfgErr.Component)
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file, row and column", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "xlsx",
			File:    "mappings.xlsx",
			Line:    1,
			Column:  "L",
			Message: "header row too short",
		}
		assert.Equal(t, "parse error in xlsx at mappings.xlsx row 1 column L: header row too short", err.Error())
	})

	t.Run("with file and line", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			File:    "priorities.json",
			Line:    10,
			Message: "unexpected token",
		}
		assert.Contains(t, err.Error(), "priorities.json:10")
	})

	t.Run("with file only", func(t *testing.T) {
		err := pkgerrors.NewParseError("yaml", "config.yaml", "invalid indentation", nil)
		assert.Equal(t, "parse error in yaml file config.yaml: invalid indentation", err.Error())
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "json", Message: "syntax error"}
		assert.Equal(t, "json parse error: syntax error", err.Error())
	})

	t.Run("is and unwrap", func(t *testing.T) {
		base := errors.New("EOF")
		err := pkgerrors.WrapParse("json", "priorities.json", base)
		assert.True(t, pkgerrors.IsParseError(err))
		assert.True(t, errors.Is(err, base))
		assert.False(t, pkgerrors.IsConfigError(err))
	})
}

func TestLookupError(t *testing.T) {
	err := pkgerrors.NewLookupError("control", "AC-99")
	assert.Equal(t, `no control accumulator initialized for "AC-99"`, err.Error())
	assert.True(t, pkgerrors.IsLookupError(err))
	assert.True(t, pkgerrors.IsNotFound(err))

	wrapped := fmt.Errorf("reconcile controls: %w", err)
	assert.True(t, pkgerrors.IsLookupError(wrapped))
}

func TestFormatError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		base := errors.New("invalid syntax")
		err := pkgerrors.NewFormatError("safeguard", "1.1", base)
		assert.Equal(t, `cannot format safeguard value "1.1": invalid syntax`, err.Error())
		assert.True(t, pkgerrors.IsFormatError(err))
		assert.Equal(t, base, errors.Unwrap(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.FormatError{Value: "x", Err: errors.New("bad")}
		assert.Equal(t, `cannot format value "x": bad`, err.Error())
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "format",
			Message: "must be one of: table, json, yaml, csv",
		}
		assert.Equal(t, "validation failed for field format: must be one of: table, json, yaml, csv", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("", nil, "unknown report")
		assert.Equal(t, "validation failed: unknown report", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "write",
			Path:      "/tmp/results/nist_with_techniques.csv",
			Message:   "permission denied",
		}
		assert.Contains(t, err.Error(), "write")
		assert.Contains(t, err.Error(), "/tmp/results/nist_with_techniques.csv")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("without path", func(t *testing.T) {
		err := pkgerrors.NewIOError("flush", "", errors.New("short write"))
		assert.Equal(t, "IO error during flush: short write", err.Error())
	})

	t.Run("wrap helper", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapIO("read", "x", nil))
		baseErr := errors.New("disk full")
		err := pkgerrors.WrapIO("create", "/data/results", baseErr)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "create", ioErr.Operation)
		assert.Equal(t, baseErr, ioErr.Unwrap())
	})
}

func TestErrorsJoin(t *testing.T) {
	joined := errors.Join(
		pkgerrors.NewParseError("json", "p.json", "bad", nil),
		pkgerrors.NewConfigError("settings", "missing", nil),
	)
	assert.True(t, pkgerrors.IsParseError(joined))
	assert.True(t, pkgerrors.IsConfigError(joined))
	assert.False(t, pkgerrors.IsFormatError(joined))
}
