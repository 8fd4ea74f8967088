// Package sources loads the input catalogs of a reconciliation run: the
// allow-listed controls, the ranked ATT&CK techniques, the ATT&CK to
// NIST 800-53 workbook and the NIST 800-53 to CIS workbook.
//
// Each catalog can be loaded directly with its Load function or through a
// Source, which records the path and the parsed records so a caller can
// report on every input uniformly.
//
// Example usage:
//
//	allow, err := sources.LoadAllowlist(ctx, "inputs/cjis_controls.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src := sources.NewPrioritiesSource("inputs/top_techniques.json")
//	if err := src.Load(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(src.Len(), "ranked techniques")
package sources

import (
	"context"
	"os"
	"slices"

	"github.com/agentstation/ctrlmap/pkg/errors"
)

// ID represents the identifier of an input catalog.
type ID string

// String returns the string representation of a source name.
func (id ID) String() string {
	return string(id)
}

// Input catalog names. They match the settings document keys.
const (
	AllowlistID  ID = "new_cjis_nist_controls"
	PrioritiesID ID = "prioritized_techniques"
	TechniquesID ID = "attack_nist_mappings"
	SafeguardsID ID = "nist_cis_mappings"
)

// IDs returns all input catalogs in load order.
func IDs() []ID {
	return []ID{
		AllowlistID,
		PrioritiesID,
		TechniquesID,
		SafeguardsID,
	}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Source represents one input catalog.
type Source interface {
	// ID returns the catalog this source reads
	ID() ID

	// Path returns the file the catalog is read from
	Path() string

	// Load reads and parses the file, replacing previously loaded records
	Load(ctx context.Context) error

	// Len returns the number of records loaded
	Len() int
}

// Sources is an ordered collection of input catalogs.
type Sources struct {
	sources []Source
}

// NewSources creates a collection from the given sources.
func NewSources(srcs ...Source) *Sources {
	return &Sources{sources: srcs}
}

// Get returns a source by ID.
func (s *Sources) Get(id ID) (Source, bool) {
	for _, src := range s.sources {
		if src.ID() == id {
			return src, true
		}
	}
	return nil, false
}

// Len returns the number of sources.
func (s *Sources) Len() int {
	return len(s.sources)
}

// List returns the sources in insertion order.
func (s *Sources) List() []Source {
	return slices.Clone(s.sources)
}

// Load loads every source in order and stops at the first failure.
func (s *Sources) Load(ctx context.Context) error {
	for _, src := range s.sources {
		if err := src.Load(ctx); err != nil {
			return err
		}
	}
	return nil
}

// open opens an input file. A missing file is a configuration problem:
// the settings document points somewhere that does not exist.
func open(id ID, path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError(id.String(), "input file not found: "+path, err)
		}
		return nil, errors.WrapIO("open", path, err)
	}
	return f, nil
}

// checkExists reports a missing input as a configuration error.
func checkExists(id ID, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.NewConfigError(id.String(), "input file not found: "+path, err)
		}
		return errors.WrapIO("stat", path, err)
	}
	return nil
}
