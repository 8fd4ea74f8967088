package controls

import "slices"

// Allowlist is the ordered set of controls of interest for a run.
// Controls outside the allow-list are ignored by both reports even when
// a catalog maps them.
type Allowlist struct {
	ids     []ControlID
	members map[ControlID]struct{}
}

// NewAllowlist creates an allow-list from already normalized identifiers.
// Order and duplicates are preserved by IDs; membership ignores case.
func NewAllowlist(ids ...ControlID) *Allowlist {
	a := &Allowlist{
		ids:     make([]ControlID, 0, len(ids)),
		members: make(map[ControlID]struct{}, len(ids)),
	}
	for _, id := range ids {
		a.Add(id)
	}
	return a
}

// Add appends a control to the allow-list.
func (a *Allowlist) Add(id ControlID) {
	a.ids = append(a.ids, id)
	a.members[id.Key()] = struct{}{}
}

// Contains reports whether the control is allow-listed.
func (a *Allowlist) Contains(id ControlID) bool {
	if a == nil {
		return false
	}
	_, ok := a.members[id.Key()]
	return ok
}

// IDs returns a copy of the allow-listed identifiers in input order,
// duplicates included.
func (a *Allowlist) IDs() []ControlID {
	if a == nil {
		return nil
	}
	return slices.Clone(a.ids)
}

// Unique returns the allow-listed comparison keys in first-seen order.
func (a *Allowlist) Unique() []ControlID {
	if a == nil {
		return nil
	}
	seen := make(map[ControlID]struct{}, len(a.members))
	unique := make([]ControlID, 0, len(a.members))
	for _, id := range a.ids {
		key := id.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}
	return unique
}

// Len returns the number of entries, duplicates included.
func (a *Allowlist) Len() int {
	if a == nil {
		return 0
	}
	return len(a.ids)
}
