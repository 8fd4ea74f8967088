package sources

import (
	"bufio"
	"context"
	"strings"

	"github.com/agentstation/ctrlmap/pkg/controls"
	"github.com/agentstation/ctrlmap/pkg/errors"
	"github.com/agentstation/ctrlmap/pkg/logging"
)

// byteOrderMark is written at the start of text files by some Windows editors.
const byteOrderMark = "\ufeff"

// LoadAllowlist reads the allow-listed controls, one identifier per line.
// A leading byte order mark is ignored. Blank lines and lines starting
// with "#" are skipped. Identifiers are normalized with
// controls.NormalizeControl; duplicates are kept.
func LoadAllowlist(ctx context.Context, path string) (*controls.Allowlist, error) {
	f, err := open(AllowlistID, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	list := controls.NewAllowlist()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), byteOrderMark))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list.Add(controls.NormalizeControl(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("source", AllowlistID.String()).
		Str("file", path).
		Int("controls", list.Len()).
		Msg("Loaded allow-listed controls")

	return list, nil
}

// AllowlistSource loads the allow-listed controls.
type AllowlistSource struct {
	path string
	list *controls.Allowlist
}

// NewAllowlistSource creates a source reading the allow-list at path.
func NewAllowlistSource(path string) *AllowlistSource {
	return &AllowlistSource{path: path}
}

// ID returns AllowlistID.
func (s *AllowlistSource) ID() ID { return AllowlistID }

// Path returns the allow-list file.
func (s *AllowlistSource) Path() string { return s.path }

// Load reads the allow-list.
func (s *AllowlistSource) Load(ctx context.Context) error {
	list, err := LoadAllowlist(ctx, s.path)
	if err != nil {
		return err
	}
	s.list = list
	return nil
}

// Len returns the number of allow-listed entries, duplicates included.
func (s *AllowlistSource) Len() int { return s.list.Len() }

// Allowlist returns the loaded allow-list, nil before Load.
func (s *AllowlistSource) Allowlist() *controls.Allowlist { return s.list }
