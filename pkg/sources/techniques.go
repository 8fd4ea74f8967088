package sources

import (
	"context"

	"github.com/agentstation/ctrlmap/pkg/constants"
	"github.com/agentstation/ctrlmap/pkg/controls"
	"github.com/agentstation/ctrlmap/pkg/errors"
	"github.com/agentstation/ctrlmap/pkg/logging"
)

// TechniqueMapping is one row of the ATT&CK to NIST 800-53 workbook.
// Either side may be empty when the cell is blank.
type TechniqueMapping struct {
	Control   controls.ControlID   `json:"control"`
	Technique controls.TechniqueID `json:"technique"`
}

var techniqueSchema = schema{
	id:      TechniquesID,
	columns: []string{constants.TechniqueControlColumn, constants.TechniqueIDColumn},
}

// LoadTechniqueMappings reads the active worksheet of the ATT&CK to NIST
// workbook. One record is emitted per data row, blank cells included.
// Control enhancements ("AC-2(1)") are reduced to the base control.
func LoadTechniqueMappings(ctx context.Context, path string) ([]TechniqueMapping, error) {
	f, err := openWorkbook(TechniquesID, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var (
		mappings []TechniqueMapping
		rowErr   error
	)
	sheet, err := readSheet(f, path, techniqueSchema, func(row int, cells []string) {
		if cells == nil {
			if rowErr == nil {
				rowErr = &errors.ParseError{Format: "xlsx", File: path, Line: row, Message: "unreadable row"}
			}
			return
		}
		mappings = append(mappings, TechniqueMapping{
			Control:   controls.ControlID(controls.StripQualifier(cells[0])),
			Technique: controls.TechniqueID(cells[1]),
		})
	})
	if err != nil {
		return nil, err
	}
	if rowErr != nil {
		return nil, rowErr
	}

	logging.FromContext(ctx).Debug().
		Str("source", TechniquesID.String()).
		Str("file", path).
		Str("sheet", sheet).
		Int("mappings", len(mappings)).
		Msg("Loaded technique mappings")

	return mappings, nil
}

// TechniquesSource loads the ATT&CK to NIST 800-53 workbook.
type TechniquesSource struct {
	path     string
	mappings []TechniqueMapping
}

// NewTechniquesSource creates a source reading the workbook at path.
func NewTechniquesSource(path string) *TechniquesSource {
	return &TechniquesSource{path: path}
}

// ID returns TechniquesID.
func (s *TechniquesSource) ID() ID { return TechniquesID }

// Path returns the workbook path.
func (s *TechniquesSource) Path() string { return s.path }

// Load reads the workbook.
func (s *TechniquesSource) Load(ctx context.Context) error {
	mappings, err := LoadTechniqueMappings(ctx, s.path)
	if err != nil {
		return err
	}
	s.mappings = mappings
	return nil
}

// Len returns the number of mapping rows.
func (s *TechniquesSource) Len() int { return len(s.mappings) }

// Mappings returns the loaded records.
func (s *TechniquesSource) Mappings() []TechniqueMapping { return s.mappings }
