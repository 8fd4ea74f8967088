package sources

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// sheetFixture is one worksheet of a generated workbook.
type sheetFixture struct {
	name   string
	rows   [][]any
	active bool
}

// writeWorkbook generates an xlsx file in a temp directory.
func writeWorkbook(t *testing.T, sheets ...sheetFixture) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const initial = "Sheet1"
	keepInitial := false
	for _, s := range sheets {
		if s.name == initial {
			keepInitial = true
		}
		idx, err := f.NewSheet(s.name)
		require.NoError(t, err)
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(s.name, cell, &values))
		}
		if s.active {
			f.SetActiveSheet(idx)
		}
	}
	if !keepInitial {
		require.NoError(t, f.DeleteSheet(initial))
	}

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// safeguardHeader is a header row reaching column L.
func safeguardHeader() []any {
	return []any{"CIS Control", "CIS Safeguard", "Asset Type", "Security Function", "Title",
		"Description", "IG1", "IG2", "IG3", "Relationship", "Control Identifier", "NIST"}
}

// safeguardRow places id in column B and mapping in column L.
func safeguardRow(id, mapping any) []any {
	row := make([]any, 12)
	row[1] = id
	row[11] = mapping
	return row
}

// styleCells applies a built-in number format to cells of a saved workbook.
func styleCells(t *testing.T, path, sheet string, numFmt int, cells ...string) {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	style, err := f.NewStyle(&excelize.Style{NumFmt: numFmt})
	require.NoError(t, err)
	for _, cell := range cells {
		require.NoError(t, f.SetCellStyle(sheet, cell, cell, style))
	}
	require.NoError(t, f.Save())
}

// rewriteWorksheets replaces old with replacement in the raw XML of every
// worksheet, producing cells excelize cannot decode.
func rewriteWorksheets(t *testing.T, path, old, replacement string) {
	t.Helper()

	r, err := zip.OpenReader(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	replaced := false
	for _, file := range r.File {
		src, err := file.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(src)
		require.NoError(t, err)
		require.NoError(t, src.Close())

		if strings.HasPrefix(file.Name, "xl/worksheets/") && bytes.Contains(data, []byte(old)) {
			data = bytes.ReplaceAll(data, []byte(old), []byte(replacement))
			replaced = true
		}
		dst, err := w.Create(file.Name)
		require.NoError(t, err)
		_, err = dst.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())
	require.NoError(t, w.Close())
	require.True(t, replaced, "no worksheet contains %q", old)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
}
