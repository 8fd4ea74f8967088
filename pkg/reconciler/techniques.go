package reconciler

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/agentstation/ctrlmap/pkg/constants"
	"github.com/agentstation/ctrlmap/pkg/controls"
	"github.com/agentstation/ctrlmap/pkg/sources"
)

// TechniqueRow is one line of the Technique->Control report.
// Count is always len(Controls).
type TechniqueRow struct {
	Rank      int                  `json:"rank" yaml:"rank"`
	Technique controls.TechniqueID `json:"technique" yaml:"technique"`
	Count     int                  `json:"count" yaml:"count"`
	Controls  []controls.ControlID `json:"controls" yaml:"controls"`
}

// TechniqueHeader returns the Technique->Control column names.
func TechniqueHeader(details bool) []string {
	if details {
		return []string{"Priority (Assigned by ATT&CK)", "Technique", "Number of Mapped Controls", "Controls"}
	}
	return []string{"Priority (Assigned by ATT&CK)", "Technique", "Number of Mapped Controls (NIST 800-53)"}
}

// Record renders the row as report fields.
func (r TechniqueRow) Record(details bool) []string {
	record := []string{
		strconv.Itoa(r.Rank),
		r.Technique.String(),
		strconv.Itoa(r.Count),
	}
	if details {
		ids := make([]string, len(r.Controls))
		for i, id := range r.Controls {
			ids[i] = id.String()
		}
		record = append(record, strings.Join(ids, constants.JoinSeparator))
	}
	return record
}

// techniqueKey is the comparison form of a technique or control cell.
func techniqueKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// aggregateTechniques maps every ranked technique to the allow-listed
// controls that cover it. A mapping row covers a technique when either of
// its cells equals the technique. Techniques without controls are dropped.
func aggregateTechniques(allow *controls.Allowlist, priorities []sources.Priority, mappings []sources.TechniqueMapping) []TechniqueRow {
	covered := make(map[string]map[controls.ControlID]struct{})
	add := func(key string, control controls.ControlID) {
		if key == "" {
			return
		}
		set, ok := covered[key]
		if !ok {
			set = make(map[controls.ControlID]struct{})
			covered[key] = set
		}
		set[control] = struct{}{}
	}

	for _, m := range mappings {
		if m.Control.IsZero() || !allow.Contains(m.Control) {
			continue
		}
		control := m.Control.Key()
		add(techniqueKey(m.Technique.String()), control)
		add(techniqueKey(m.Control.String()), control)
	}

	rows := make([]TechniqueRow, 0, len(priorities))
	for _, p := range priorities {
		key := techniqueKey(p.Technique.String())
		set := covered[key]
		if key == "" || len(set) == 0 {
			continue
		}
		ids := make([]controls.ControlID, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		rows = append(rows, TechniqueRow{
			Rank:      p.Rank,
			Technique: controls.TechniqueID(key),
			Count:     len(ids),
			Controls:  ids,
		})
	}

	slices.SortStableFunc(rows, func(a, b TechniqueRow) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
	return rows
}
