package controls

import "strings"

// ControlID is a NIST 800-53 control identifier such as "AC-2".
type ControlID string

// String returns the string representation of a control ID.
func (id ControlID) String() string {
	return string(id)
}

// Key returns the comparison key for the control: trimmed and upper-cased.
// Two controls are the same control when their keys are equal.
func (id ControlID) Key() ControlID {
	return ControlID(strings.ToUpper(strings.TrimSpace(string(id))))
}

// IsZero reports whether the identifier is absent.
func (id ControlID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// Family returns the two-letter family prefix ("AC" for "AC-2").
func (id ControlID) Family() string {
	family, _, _ := strings.Cut(string(id.Key()), "-")
	return family
}

// NormalizeControl trims, upper-cases and removes zero-padding from the
// number that follows the family hyphen, so "ac-02" becomes "AC-2".
// A lone zero is kept ("AC-0").
func NormalizeControl(raw string) ControlID {
	key := ControlID(raw).Key()
	family, number, ok := strings.Cut(string(key), "-")
	if !ok {
		return key
	}
	for len(number) > 1 && number[0] == '0' && isDigit(number[1]) {
		number = number[1:]
	}
	return ControlID(family + "-" + number)
}

// StripQualifier drops any qualifier that follows the identifier, keeping
// only the text before the first "(" without trailing whitespace:
// "AC-2 (a)" and "AC-2(1)" both become "AC-2".
func StripQualifier(raw string) string {
	if before, _, found := strings.Cut(raw, "("); found {
		return strings.TrimRight(before, " \t\r\n")
	}
	return raw
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
