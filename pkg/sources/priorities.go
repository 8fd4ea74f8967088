package sources

import (
	"context"
	"fmt"
	"os"

	"github.com/go-json-experiment/json"

	"github.com/agentstation/ctrlmap/pkg/controls"
	"github.com/agentstation/ctrlmap/pkg/errors"
	"github.com/agentstation/ctrlmap/pkg/logging"
)

// Priority is one ranked ATT&CK technique. Sub-techniques carry the rank
// of their parent.
type Priority struct {
	Rank      int                  `json:"rank"`
	Technique controls.TechniqueID `json:"technique"`
}

// priorityEntry mirrors one element of the ranked technique document.
// Pointer fields tell a missing member from a zero value.
type priorityEntry struct {
	Rank          *int                 `json:"rank"`
	TID           *string              `json:"tid"`
	Subtechniques *[]subtechniqueEntry `json:"subtechniques"`
}

type subtechniqueEntry struct {
	TID *string `json:"tid"`
}

// LoadPriorities reads the ranked technique document: a JSON array of
// {rank, tid, subtechniques: [{tid}]} objects. One Priority is emitted per
// technique followed by one per sub-technique, in document order.
func LoadPriorities(ctx context.Context, path string) ([]Priority, error) {
	if err := checkExists(PrioritiesID, path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	priorities, err := parsePriorities(data, path)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("source", PrioritiesID.String()).
		Str("file", path).
		Int("techniques", len(priorities)).
		Msg("Loaded ranked techniques")

	return priorities, nil
}

// ParsePriorities decodes a ranked technique document.
func ParsePriorities(data []byte) ([]Priority, error) {
	return parsePriorities(data, "")
}

func parsePriorities(data []byte, file string) ([]Priority, error) {
	var entries []priorityEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.NewParseError("json", file, "invalid ranked technique document", err)
	}

	priorities := make([]Priority, 0, len(entries))
	for i, entry := range entries {
		switch {
		case entry.Rank == nil:
			return nil, missingMember(file, i, "rank")
		case entry.TID == nil:
			return nil, missingMember(file, i, "tid")
		case entry.Subtechniques == nil:
			return nil, missingMember(file, i, "subtechniques")
		}

		rank := *entry.Rank
		priorities = append(priorities, Priority{
			Rank:      rank,
			Technique: controls.TechniqueID(*entry.TID),
		})
		for j, sub := range *entry.Subtechniques {
			if sub.TID == nil {
				return nil, missingMember(file, i, fmt.Sprintf("subtechniques[%d].tid", j))
			}
			priorities = append(priorities, Priority{
				Rank:      rank,
				Technique: controls.TechniqueID(*sub.TID),
			})
		}
	}
	return priorities, nil
}

func missingMember(file string, index int, member string) error {
	return errors.NewParseError("json", file, fmt.Sprintf("entry %d: missing %s", index, member), nil)
}

// PrioritiesSource loads the ranked technique document.
type PrioritiesSource struct {
	path       string
	priorities []Priority
}

// NewPrioritiesSource creates a source reading the ranked techniques at path.
func NewPrioritiesSource(path string) *PrioritiesSource {
	return &PrioritiesSource{path: path}
}

// ID returns PrioritiesID.
func (s *PrioritiesSource) ID() ID { return PrioritiesID }

// Path returns the ranked technique document.
func (s *PrioritiesSource) Path() string { return s.path }

// Load reads the ranked techniques.
func (s *PrioritiesSource) Load(ctx context.Context) error {
	priorities, err := LoadPriorities(ctx, s.path)
	if err != nil {
		return err
	}
	s.priorities = priorities
	return nil
}

// Len returns the number of priority records, sub-techniques included.
func (s *PrioritiesSource) Len() int { return len(s.priorities) }

// Priorities returns the loaded records.
func (s *PrioritiesSource) Priorities() []Priority { return s.priorities }
