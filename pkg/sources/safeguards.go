package sources

import (
	"context"

	"github.com/agentstation/ctrlmap/pkg/constants"
	"github.com/agentstation/ctrlmap/pkg/controls"
	"github.com/agentstation/ctrlmap/pkg/logging"
)

// SafeguardMapping links a CIS safeguard to the NIST 800-53 control it
// maps to. Control keeps the workbook spelling minus any qualifier.
type SafeguardMapping struct {
	Safeguard string             `json:"safeguard"`
	Control   controls.ControlID `json:"control"`
}

// LoadSafeguardMappings reads the NIST to CIS workbook. Rows without a
// NIST mapping are skipped; a short or unreadable row only loses the
// affected cells.
func LoadSafeguardMappings(ctx context.Context, path string, opts ...Option) ([]SafeguardMapping, error) {
	options := Defaults().Apply(opts...)

	f, err := openWorkbook(SafeguardsID, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	s := schema{
		id:      SafeguardsID,
		sheet:   options.SafeguardSheet,
		columns: []string{constants.SafeguardIDColumn, constants.SafeguardControlColumn},
	}

	logger := logging.FromContext(ctx)
	var (
		mappings []SafeguardMapping
		skipped  int
	)
	_, err = readSheet(f, path, s, func(row int, cells []string) {
		if cells == nil {
			logger.Debug().Str("file", path).Int("row", row).Msg("Unreadable row treated as empty")
			skipped++
			return
		}
		control := controls.StripQualifier(cells[1])
		if control == "" {
			skipped++
			return
		}
		mappings = append(mappings, SafeguardMapping{
			Safeguard: cells[0],
			Control:   controls.ControlID(control),
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", SafeguardsID.String()).
		Str("file", path).
		Str("sheet", s.sheet).
		Int("mappings", len(mappings)).
		Int("skipped", skipped).
		Msg("Loaded safeguard mappings")

	return mappings, nil
}

// SafeguardsSource loads the NIST 800-53 to CIS workbook.
type SafeguardsSource struct {
	path     string
	opts     []Option
	mappings []SafeguardMapping
}

// NewSafeguardsSource creates a source reading the workbook at path.
func NewSafeguardsSource(path string, opts ...Option) *SafeguardsSource {
	return &SafeguardsSource{path: path, opts: opts}
}

// ID returns SafeguardsID.
func (s *SafeguardsSource) ID() ID { return SafeguardsID }

// Path returns the workbook path.
func (s *SafeguardsSource) Path() string { return s.path }

// Load reads the workbook.
func (s *SafeguardsSource) Load(ctx context.Context) error {
	mappings, err := LoadSafeguardMappings(ctx, s.path, s.opts...)
	if err != nil {
		return err
	}
	s.mappings = mappings
	return nil
}

// Len returns the number of mapped safeguards.
func (s *SafeguardsSource) Len() int { return len(s.mappings) }

// Mappings returns the loaded records.
func (s *SafeguardsSource) Mappings() []SafeguardMapping { return s.mappings }
