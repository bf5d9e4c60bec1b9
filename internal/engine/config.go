// Package engine holds Matrizer's engine-wide tunable configuration: the
// rewrite search's closure cap (spec.md §5), which algebraic rules are
// enabled (§4.6), and a preamble dimension-strictness flag (§4.1) that is
// parsed but not consulted by any stage.
// It is loaded from an optional YAML document the same way
// funxy/internal/ext loads funxy.yaml, using the same library and
// struct-tag style.
package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the set of knobs spec.md leaves to the implementation.
type Config struct {
	// MaxClosureSize bounds the rewrite search's tabu set (spec.md §5).
	// Zero means unbounded, which is safe for the rule set in §4.6 since it
	// is constructed to always produce a finite closure.
	MaxClosureSize int `yaml:"max_closure_size"`

	// DisabledRules lists rewrite rule names (see internal/rewrite's
	// RuleAssocMultLeft and friends) to exclude from the search, e.g. to
	// study associativity and common-factoring in isolation.
	DisabledRules []string `yaml:"disabled_rules,omitempty"`

	// StrictDimensions is read from the document and kept here, but no
	// stage consults it: preamble resolution accepts dimension tokens with
	// leading zeros ("01") whether it is set or not.
	StrictDimensions bool `yaml:"strict_dimensions,omitempty"`
}

// Default returns the engine's default configuration: no closure cap,
// every rule enabled, StrictDimensions false.
func Default() Config {
	return Config{}
}

// Load reads and parses a matrizer.yaml configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses matrizer.yaml content from bytes, starting from Default and
// letting the document override individual fields.
func Parse(data []byte, path string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// RuleEnabled reports whether name is absent from DisabledRules.
func (c Config) RuleEnabled(name string) bool {
	for _, d := range c.DisabledRules {
		if d == name {
			return false
		}
	}
	return true
}
