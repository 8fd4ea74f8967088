package controls

import "strings"

// TechniqueID is a MITRE ATT&CK technique identifier such as "T1059" or,
// for a sub-technique, "T1059.001".
type TechniqueID string

// String returns the string representation of a technique ID.
func (id TechniqueID) String() string {
	return string(id)
}

// NormalizeTechnique trims and upper-cases a technique identifier.
func NormalizeTechnique(raw string) TechniqueID {
	return TechniqueID(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsZero reports whether the identifier is absent.
func (id TechniqueID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// IsSubtechnique reports whether the identifier names a sub-technique.
func (id TechniqueID) IsSubtechnique() bool {
	return strings.Contains(string(id), ".")
}

// Parent returns the parent technique of a sub-technique, or the
// identifier itself for a top-level technique.
func (id TechniqueID) Parent() TechniqueID {
	parent, _, _ := strings.Cut(string(id), ".")
	return TechniqueID(parent)
}
