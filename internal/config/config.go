// Package config loads the settings document that drives a ctrlmap run:
// the include_details switch, the four input catalogs and the results
// directory.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/ctrlmap/pkg/constants"
	"github.com/agentstation/ctrlmap/pkg/errors"
)

// Config is the typed, read-only view of the settings document.
type Config struct {
	// IncludeDetails adds the joined identifier column to both reports
	IncludeDetails bool

	// Input catalogs
	PrioritizedTechniques string // ranked ATT&CK techniques (JSON)
	AttackNISTMappings    string // ATT&CK <-> NIST 800-53 workbook
	NISTCISMappings       string // NIST 800-53 <-> CIS workbook
	NewCJISNISTControls   string // allow-listed controls (text)

	// NISTCISSheet is the worksheet read from NISTCISMappings
	NISTCISSheet string

	// ResultsDirectory receives the generated reports
	ResultsDirectory string

	// Path is the settings document this config was read from, if any
	Path string
}

// document mirrors the YAML keys; pointers distinguish a missing key
// from a zero value.
type document struct {
	IncludeDetails        *bool   `yaml:"include_details"`
	PrioritizedTechniques *string `yaml:"prioritized_techniques"`
	AttackNISTMappings    *string `yaml:"attack_nist_mappings"`
	NISTCISMappings       *string `yaml:"nist_cis_mappings"`
	NewCJISNISTControls   *string `yaml:"new_cjis_nist_controls"`
	ResultsDirectory      *string `yaml:"results_directory"`
	NISTCISSheet          string  `yaml:"nist_cis_sheet"`
}

// Load reads and validates the settings document at path. Relative input
// paths are resolved against the directory holding the document.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("settings", "cannot read "+path, err)
	}

	cfg, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes a settings document. baseDir anchors relative paths; an
// empty baseDir leaves them untouched.
func Parse(data []byte, baseDir string) (*Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewConfigError("settings", "malformed document: "+err.Error(), err)
	}

	var missing []string
	requireString := func(key string, v *string) string {
		if v == nil || strings.TrimSpace(*v) == "" {
			missing = append(missing, key)
			return ""
		}
		return resolve(baseDir, strings.TrimSpace(*v))
	}

	cfg := &Config{
		PrioritizedTechniques: requireString("prioritized_techniques", doc.PrioritizedTechniques),
		AttackNISTMappings:    requireString("attack_nist_mappings", doc.AttackNISTMappings),
		NISTCISMappings:       requireString("nist_cis_mappings", doc.NISTCISMappings),
		NewCJISNISTControls:   requireString("new_cjis_nist_controls", doc.NewCJISNISTControls),
		ResultsDirectory:      requireString("results_directory", doc.ResultsDirectory),
		NISTCISSheet:          strings.TrimSpace(doc.NISTCISSheet),
	}
	if doc.IncludeDetails == nil {
		missing = append([]string{"include_details"}, missing...)
	} else {
		cfg.IncludeDetails = *doc.IncludeDetails
	}

	if len(missing) > 0 {
		return nil, errors.NewConfigError("settings", "missing required keys: "+strings.Join(missing, ", "), nil)
	}

	if cfg.NISTCISSheet == "" {
		cfg.NISTCISSheet = constants.SafeguardSheet
	}
	return cfg, nil
}

// Input names one input catalog and where it lives.
type Input struct {
	Key  string
	Path string
}

// Inputs lists the input catalogs in load order.
func (c *Config) Inputs() []Input {
	return []Input{
		{Key: "new_cjis_nist_controls", Path: c.NewCJISNISTControls},
		{Key: "prioritized_techniques", Path: c.PrioritizedTechniques},
		{Key: "attack_nist_mappings", Path: c.AttackNISTMappings},
		{Key: "nist_cis_mappings", Path: c.NISTCISMappings},
	}
}

func resolve(baseDir, path string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
