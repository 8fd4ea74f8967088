package sources

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/ctrlmap/pkg/errors"
)

// schema is the fixed column layout of a mapping worksheet.
type schema struct {
	id      ID
	sheet   string   // empty selects the active worksheet
	columns []string // column letters, in record field order
}

// width returns the 1-based index of the right-most schema column.
func (s schema) width() (int, error) {
	widest := 0
	for _, col := range s.columns {
		n, err := excelize.ColumnNameToNumber(col)
		if err != nil {
			return 0, err
		}
		widest = max(widest, n)
	}
	return widest, nil
}

// indexes returns the 0-based offsets of the schema columns.
func (s schema) indexes() ([]int, error) {
	idx := make([]int, len(s.columns))
	for i, col := range s.columns {
		n, err := excelize.ColumnNameToNumber(col)
		if err != nil {
			return nil, err
		}
		idx[i] = n - 1
	}
	return idx, nil
}

// rowFunc receives the schema cells of one data row. row is the 1-based
// worksheet row number; cells is nil when the row could not be read.
type rowFunc func(row int, cells []string)

// openWorkbook opens an xlsx file. A missing file is a configuration
// error, anything excelize cannot read is a parse error.
func openWorkbook(id ID, path string) (*excelize.File, error) {
	if err := checkExists(id, path); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParseError("xlsx", path, "cannot open workbook", err)
	}
	return f, nil
}

// readSheet validates the header row against the schema once, then calls
// fn for every data row with the schema cells in column order. Data cells
// are read as stored, not as displayed. Cells past the end of a short row
// are empty.
func readSheet(f *excelize.File, path string, s schema, fn rowFunc) (string, error) {
	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return sheet, errors.NewParseError("xlsx", path, fmt.Sprintf("worksheet %q not found", sheet), err)
	}

	width, err := s.width()
	if err != nil {
		return sheet, errors.NewParseError("xlsx", path, "invalid column schema", err)
	}
	indexes, err := s.indexes()
	if err != nil {
		return sheet, errors.NewParseError("xlsx", path, "invalid column schema", err)
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return sheet, errors.NewParseError("xlsx", path, fmt.Sprintf("cannot read worksheet %q", sheet), err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return sheet, errors.NewParseError("xlsx", path, fmt.Sprintf("worksheet %q is empty", sheet), rows.Error())
	}
	header, err := rows.Columns()
	if err != nil {
		return sheet, errors.NewParseError("xlsx", path, "cannot read header row", err)
	}
	if len(header) < width {
		return sheet, &errors.ParseError{
			Format:  "xlsx",
			File:    path,
			Line:    1,
			Column:  s.columns[len(s.columns)-1],
			Message: fmt.Sprintf("header has %d columns, schema needs %d", len(header), width),
		}
	}

	// Raw values keep number formats out of identifiers: a safeguard
	// stored as 6 with format "0.00" must read "6", not "6.00".
	row := 1
	for rows.Next() {
		row++
		values, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			fn(row, nil)
			continue
		}
		cells := make([]string, len(indexes))
		for i, idx := range indexes {
			if idx < len(values) {
				cells[i] = strings.TrimSpace(values[idx])
			}
		}
		fn(row, cells)
	}
	if err := rows.Error(); err != nil {
		return sheet, errors.NewParseError("xlsx", path, fmt.Sprintf("cannot iterate worksheet %q", sheet), err)
	}
	return sheet, nil
}
