// Package report renders reconciliation tables and writes them as CSV
// files into the results directory.
//
// Example usage:
//
//	w := report.NewWriter("results")
//	paths, err := w.WriteAll(ctx,
//	    report.Techniques(result.Techniques, details),
//	    report.Controls(result.Controls, details),
//	)
package report

import (
	"github.com/agentstation/ctrlmap/pkg/constants"
	"github.com/agentstation/ctrlmap/pkg/reconciler"
)

// Kind identifies one of the two reports.
type Kind string

// Report kinds.
const (
	KindTechniques Kind = "techniques"
	KindControls   Kind = "controls"
)

// String returns the string representation of a report kind.
func (k Kind) String() string {
	return string(k)
}

// Kinds returns every report kind.
func Kinds() []Kind {
	return []Kind{KindTechniques, KindControls}
}

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	return k == KindTechniques || k == KindControls
}

// Filename returns the file a report of this kind is written to.
func (k Kind) Filename(details bool) string {
	switch {
	case k == KindTechniques && details:
		return constants.TechniqueReportDetailedFile
	case k == KindTechniques:
		return constants.TechniqueReportFile
	case k == KindControls && details:
		return constants.ControlReportDetailedFile
	default:
		return constants.ControlReportFile
	}
}

// Table is a rendered report: a header and one record per row.
type Table struct {
	Kind    Kind
	Details bool
	Header  []string
	Records [][]string
}

// Filename returns the file the table is written to.
func (t *Table) Filename() string {
	return t.Kind.Filename(t.Details)
}

// Techniques renders the Technique->Control report.
func Techniques(rows []reconciler.TechniqueRow, details bool) *Table {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = row.Record(details)
	}
	return &Table{
		Kind:    KindTechniques,
		Details: details,
		Header:  reconciler.TechniqueHeader(details),
		Records: records,
	}
}

// Controls renders the Control->Technique report.
func Controls(rows []reconciler.ControlRow, details bool) *Table {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = row.Record(details)
	}
	return &Table{
		Kind:    KindControls,
		Details: details,
		Header:  reconciler.ControlHeader(details),
		Records: records,
	}
}
