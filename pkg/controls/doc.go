// Package controls defines the identifier vocabulary shared by every
// catalog: NIST 800-53 control identifiers, ATT&CK technique identifiers
// and the allow-list that bounds which controls take part in a report.
//
// Identifiers are plain strings with named types so that a control can
// never be passed where a technique is expected. Catalogs disagree on
// case and padding ("ac-02", "AC-2"), so comparisons always go through
// the normalizing helpers in this package.
package controls
