// Package testhelper builds complete ctrlmap input sets for tests: an
// allow-list, a ranked technique document, both mapping workbooks and the
// settings document pointing at them.
package testhelper

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/ctrlmap/pkg/constants"
)

// Input file names inside a workspace.
const (
	AllowlistFile  = "cjis_controls.txt"
	PrioritiesFile = "top_techniques.json"
	TechniquesFile = "nist800-53-r5-mappings.xlsx"
	SafeguardsFile = "cis-controls-v8-to-nist.xlsx"
	ConfigFile     = "config.yaml"
	ResultsDir     = "results"
)

// Default fixture content.
const (
	DefaultAllowlist = "AC-02\nIA-2\nSI-4\nPE-3\n"

	DefaultPriorities = `[
  {"rank": 1, "tid": "T1078", "name": "Valid Accounts", "subtechniques": [{"tid": "T1078.001"}]},
  {"rank": 2, "tid": "T1059", "subtechniques": []},
  {"rank": 3, "tid": "T1110", "subtechniques": []},
  {"rank": 4, "tid": "T1486", "subtechniques": []}
]`
)

// DefaultTechniqueRows is the ATT&CK to NIST sheet, header included.
func DefaultTechniqueRows() [][]any {
	return [][]any{
		{"Control ID", "Control Name", "Mapping Type", "Technique ID", "Technique Name"},
		{"AC-2", "Account Management", "protects", "T1078", "Valid Accounts"},
		{"ac-2(1)", "Automated Account Management", "protects", "T1078.001", "Default Accounts"},
		{"IA-2", "Identification and Authentication", "protects", "T1078"},
		{"IA-2", "Identification and Authentication", "protects", "T1110"},
		{"SI-4", "System Monitoring", "protects", "T1059"},
		{"CM-7", "Least Functionality", "protects", "T1059"},
	}
}

// DefaultSafeguardRows is the NIST to CIS sheet, header included.
func DefaultSafeguardRows() [][]any {
	return [][]any{
		SafeguardRow("CIS Safeguard", "NIST Identifier"),
		SafeguardRow("5", "AC-2 (a)"),
		SafeguardRow(6, "AC-2"),
		SafeguardRow("13", "PE-3"),
		SafeguardRow("8", "SI-4"),
		SafeguardRow("1", ""),
		SafeguardRow("2", "CM-7"),
	}
}

// SafeguardRow places id in column B and mapping in column L.
func SafeguardRow(id, mapping any) []any {
	row := make([]any, 12)
	row[1] = id
	row[11] = mapping
	return row
}

// Workspace is a temporary directory holding a full input set.
type Workspace struct {
	Dir string
}

// NewWorkspace writes the default inputs and a settings document with
// the given include_details value.
func NewWorkspace(t testing.TB, details bool) *Workspace {
	t.Helper()

	w := &Workspace{Dir: t.TempDir()}
	w.WriteFile(t, AllowlistFile, DefaultAllowlist)
	w.WriteFile(t, PrioritiesFile, DefaultPriorities)
	w.WriteWorkbook(t, TechniquesFile, "Mappings", DefaultTechniqueRows())
	w.WriteWorkbook(t, SafeguardsFile, constants.SafeguardSheet, DefaultSafeguardRows())
	w.WriteConfig(t, details)
	return w
}

// Path returns the absolute path of a workspace file.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// ConfigPath returns the settings document path.
func (w *Workspace) ConfigPath() string {
	return w.Path(ConfigFile)
}

// ResultsPath returns the results directory path.
func (w *Workspace) ResultsPath() string {
	return w.Path(ResultsDir)
}

// WriteConfig (re)writes the settings document with relative paths.
func (w *Workspace) WriteConfig(t testing.TB, details bool) {
	t.Helper()
	w.WriteFile(t, ConfigFile, fmt.Sprintf(`include_details: %t
prioritized_techniques: %s
attack_nist_mappings: %s
nist_cis_mappings: %s
new_cjis_nist_controls: %s
results_directory: %s
`, details, PrioritiesFile, TechniquesFile, SafeguardsFile, AllowlistFile, ResultsDir))
}

// WriteFile writes content to a workspace file.
func (w *Workspace) WriteFile(t testing.TB, name, content string) {
	t.Helper()
	if err := os.WriteFile(w.Path(name), []byte(content), constants.FilePermissions); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// Remove deletes a workspace file.
func (w *Workspace) Remove(t testing.TB, name string) {
	t.Helper()
	if err := os.Remove(w.Path(name)); err != nil {
		t.Fatalf("remove %s: %v", name, err)
	}
}

// ReadResult returns the content of a generated report.
func (w *Workspace) ReadResult(t testing.TB, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(w.ResultsPath(), name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

// WriteWorkbook writes an xlsx file with a single active worksheet.
func (w *Workspace) WriteWorkbook(t testing.TB, name, sheet string, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("rename sheet: %v", err)
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			t.Fatalf("write row %d: %v", i+1, err)
		}
	}
	if err := f.SaveAs(w.Path(name)); err != nil {
		t.Fatalf("save %s: %v", name, err)
	}
}
