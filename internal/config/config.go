// Package config loads the optional arilc.yaml project file the CLI driver
// consults for defaults (spec §6 "CLI surface"). Struct tags follow the
// yaml.v3 style used throughout the example pack's YAML-backed data shapes
// (e.g. viant-linager's analyzer/info.DataPoint), adapted here to a small
// flat options document instead of a lineage report.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI driver's project-level defaults. Every field has a
// sensible zero value, so a missing or empty arilc.yaml behaves the same as
// DefaultConfig.
type Config struct {
	// PrintIR makes `check` also dump the resolved IR to stdout (as
	// `dump-ir` does) after a successful run.
	PrintIR bool `yaml:"printIR,omitempty"`

	// SourceDir is searched for additional modules the parser needs to
	// resolve a qualified name use (spec §4.3 step 1's qualifier lookup
	// walks across modules the parser has already loaded; this only tells
	// the external parser where to look).
	SourceDir string `yaml:"sourceDir,omitempty"`

	// MaxErrors caps how many diagnostics the driver records; the passes
	// keep running, and reports past the cap are only counted as
	// truncated. Zero means unlimited, matching the spec's "report and
	// continue" policy (§7) by default.
	MaxErrors int `yaml:"maxErrors,omitempty"`

	// StrictPermissions turns on the permission system's stricter mode
	// (spec §3 "Permission"): a block-local declaration must carry an
	// explicit permission qualifier. Module-level declarations, parameters
	// and struct fields are not checked by it, and it does not change
	// which qualifiers are rejected. Off by default so a project with no
	// arilc.yaml keeps the spec's base permission rules (§4.4 "Variable
	// declaration").
	StrictPermissions bool `yaml:"strictPermissions,omitempty"`
}

// DefaultConfig returns the driver's built-in defaults, used whenever no
// arilc.yaml is present.
func DefaultConfig() *Config {
	return &Config{
		SourceDir: ".",
	}
}

// Load reads and parses an arilc.yaml file at path. A missing file is not an
// error: it returns DefaultConfig unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
