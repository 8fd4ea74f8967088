package reconciler

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/agentstation/ctrlmap/pkg/constants"
	"github.com/agentstation/ctrlmap/pkg/controls"
	"github.com/agentstation/ctrlmap/pkg/errors"
	"github.com/agentstation/ctrlmap/pkg/sources"
)

// ControlRow is one line of the Control->Technique report.
// Count is always len(Techniques).
type ControlRow struct {
	Control    controls.ControlID     `json:"control" yaml:"control"`
	Count      int                    `json:"count" yaml:"count"`
	Safeguards []string               `json:"safeguards" yaml:"safeguards"`
	Techniques []controls.TechniqueID `json:"techniques" yaml:"techniques"`
}

// ControlHeader returns the Control->Technique column names.
func ControlHeader(details bool) []string {
	header := []string{"Control", "Number of ATT&CK Techniques Mapped", "Related CIS Controls"}
	if details {
		header = append(header, "Techniques")
	}
	return header
}

// Record renders the row as report fields.
func (r ControlRow) Record(details bool) []string {
	record := []string{
		r.Control.String(),
		strconv.Itoa(r.Count),
		strings.Join(r.Safeguards, constants.JoinSeparator),
	}
	if details {
		ids := make([]string, len(r.Techniques))
		for i, id := range r.Techniques {
			ids[i] = id.String()
		}
		record = append(record, strings.Join(ids, constants.JoinSeparator))
	}
	return record
}

// accumulator collects what maps to one allow-listed control.
type accumulator struct {
	techniques map[controls.TechniqueID]struct{}
	safeguards map[int]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{
		techniques: make(map[controls.TechniqueID]struct{}),
		safeguards: make(map[int]struct{}),
	}
}

// accumulators is keyed by control comparison key and seeded from the
// allow-list before any mapping is read.
type accumulators map[controls.ControlID]*accumulator

func (a accumulators) get(key controls.ControlID) (*accumulator, error) {
	acc, ok := a[key]
	if !ok {
		return nil, errors.NewLookupError("control", key.String())
	}
	return acc, nil
}

// aggregateControls builds one row per distinct allow-listed control, in
// allow-list order, then orders rows by technique count, highest first.
func aggregateControls(allow *controls.Allowlist, techniques []sources.TechniqueMapping, safeguards []sources.SafeguardMapping, prefix string) ([]ControlRow, error) {
	order := allow.Unique()
	accs := make(accumulators, len(order))
	for _, key := range order {
		accs[key] = newAccumulator()
	}

	for _, m := range techniques {
		if m.Control.IsZero() || !allow.Contains(m.Control) {
			continue
		}
		technique := techniqueKey(m.Technique.String())
		if technique == "" {
			continue
		}
		acc, err := accs.get(m.Control.Key())
		if err != nil {
			return nil, err
		}
		acc.techniques[controls.TechniqueID(technique)] = struct{}{}
	}

	for _, m := range safeguards {
		if m.Control.IsZero() || !allow.Contains(m.Control) {
			continue
		}
		acc, err := accs.get(m.Control.Key())
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(m.Safeguard))
		if err != nil {
			return nil, errors.NewFormatError("safeguard", m.Safeguard, err)
		}
		acc.safeguards[n] = struct{}{}
	}

	rows := make([]ControlRow, 0, len(order))
	for _, key := range order {
		acc, err := accs.get(key)
		if err != nil {
			return nil, err
		}

		techniqueIDs := make([]controls.TechniqueID, 0, len(acc.techniques))
		for id := range acc.techniques {
			techniqueIDs = append(techniqueIDs, id)
		}
		slices.Sort(techniqueIDs)

		numbers := make([]int, 0, len(acc.safeguards))
		for n := range acc.safeguards {
			numbers = append(numbers, n)
		}
		slices.Sort(numbers)
		labels := make([]string, len(numbers))
		for i, n := range numbers {
			labels[i] = prefix + strconv.Itoa(n)
		}

		rows = append(rows, ControlRow{
			Control:    key,
			Count:      len(techniqueIDs),
			Safeguards: labels,
			Techniques: techniqueIDs,
		})
	}

	slices.SortStableFunc(rows, func(a, b ControlRow) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return rows, nil
}
