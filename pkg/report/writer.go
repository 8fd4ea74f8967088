package report

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/agentstation/ctrlmap/pkg/errors"
	"github.com/agentstation/ctrlmap/pkg/logging"
)

// Writer writes report tables into a results directory.
type Writer struct {
	dir     string
	options *Options
}

// NewWriter creates a writer for the given results directory.
func NewWriter(dir string, opts ...Option) *Writer {
	return &Writer{
		dir:     dir,
		options: Defaults().Apply(opts...),
	}
}

// Dir returns the results directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write writes one table and returns the path of the report. The
// directory is created when missing. The report is written to a
// temporary file and renamed into place.
func (w *Writer) Write(ctx context.Context, t *Table) (string, error) {
	if t == nil || !t.Kind.IsValid() {
		return "", &errors.ValidationError{Field: "table", Message: "unknown report"}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, w.options.dirPerm); err != nil {
		return "", errors.WrapIO("create", w.dir, err)
	}

	path := filepath.Join(w.dir, t.Filename())
	tempFile, err := os.CreateTemp(w.dir, "."+t.Filename()+".*")
	if err != nil {
		return "", errors.WrapIO("create", "temp file", err)
	}
	tempPath := tempFile.Name()
	defer func() { _ = tempFile.Close() }()

	if err := w.encode(tempFile, t); err != nil {
		_ = os.Remove(tempPath)
		return "", errors.WrapIO("write", path, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return "", errors.WrapIO("write", path, err)
	}
	if err := os.Chmod(tempPath, w.options.filePerm); err != nil {
		_ = os.Remove(tempPath)
		return "", errors.WrapIO("chmod", path, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return "", errors.WrapIO("move", path, err)
	}

	ctx = logging.WithFile(logging.WithReport(ctx, t.Kind.String()), path)
	logging.FromContext(ctx).Info().
		Int("rows", len(t.Records)).
		Msg("Wrote report")

	return path, nil
}

// WriteAll writes each table in order and stops at the first failure.
func (w *Writer) WriteAll(ctx context.Context, tables ...*Table) ([]string, error) {
	paths := make([]string, 0, len(tables))
	for _, t := range tables {
		path, err := w.Write(ctx, t)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (w *Writer) encode(out io.Writer, t *Table) error {
	cw := csv.NewWriter(out)
	cw.Comma = w.options.comma
	return encode(cw, t)
}

// WriteCSV writes a table as comma separated values to out.
func WriteCSV(out io.Writer, t *Table) error {
	return encode(csv.NewWriter(out), t)
}

func encode(cw *csv.Writer, t *Table) error {
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Records); err != nil {
		return err
	}
	return cw.Error()
}
