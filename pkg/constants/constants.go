// Package constants provides shared constants used throughout the ctrlmap codebase.
// This includes file permissions, default input/output names and the fixed
// column schema of the tabular catalogs.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Settings document defaults
const (
	// DefaultConfigFile is the settings document read when --config is not given
	DefaultConfigFile = "config.yaml"

	// DefaultResultsDirectory is used when the settings document leaves results_directory empty
	DefaultResultsDirectory = "results"

	// AppConfigName is the base name of the optional per-user application config (~/.ctrlmap.yaml)
	AppConfigName = ".ctrlmap"

	// EnvPrefix prefixes every environment variable read through viper (CTRLMAP_LOG_LEVEL, ...)
	EnvPrefix = "CTRLMAP"
)

// ATT&CK <-> NIST 800-53 workbook schema (active worksheet)
const (
	// TechniqueControlColumn holds the NIST 800-53 control identifier
	TechniqueControlColumn = "A"

	// TechniqueIDColumn holds the ATT&CK technique identifier
	TechniqueIDColumn = "D"
)

// NIST 800-53 <-> CIS workbook schema
const (
	// SafeguardSheet is the worksheet listing every CIS control and safeguard
	SafeguardSheet = "All CIS Controls & Safeguards"

	// SafeguardIDColumn holds the CIS identifier
	SafeguardIDColumn = "B"

	// SafeguardControlColumn holds the NIST 800-53 mapping, optionally followed by a qualifier
	SafeguardControlColumn = "L"
)

// Report output names
const (
	// TechniqueReportFile is the compact Technique->Control report
	TechniqueReportFile = "attack_priorities_with_nist.csv"

	// TechniqueReportDetailedFile is the detailed Technique->Control report
	TechniqueReportDetailedFile = "attack_priorities_with_nist_detailed.csv"

	// ControlReportFile is the compact Control->Technique report
	ControlReportFile = "nist_with_techniques.csv"

	// ControlReportDetailedFile is the detailed Control->Technique report
	ControlReportDetailedFile = "nist_with_techniques_detailed.csv"

	// JoinSeparator separates identifiers inside a single report cell
	JoinSeparator = "|"

	// SafeguardPrefix is prepended to numeric CIS identifiers in reports
	SafeguardPrefix = "CIS-"
)
