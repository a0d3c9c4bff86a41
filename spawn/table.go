// Package spawn fills the mine for a level from a weighted YAML table
package spawn

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gold-miner/collectible"
	"github.com/lixenwraith/gold-miner/rope"
)

//go:embed table.yaml
var defaultTable []byte

// ErrInvalidTable reports a table that cannot drive spawning
var ErrInvalidTable = errors.New("invalid spawn table")

// Table is the spawn configuration
type Table struct {
	Version  int       `yaml:"version"`
	Objects  int       `yaml:"objects"`
	PerLevel int       `yaml:"per_level"`
	Entries  []Entry   `yaml:"entries"`
	Zones    ZoneTable `yaml:"zones"`
}

// Entry is one kind with its draw weight and tier weights
type Entry struct {
	Kind     string    `yaml:"kind"`
	Weight   float64   `yaml:"weight"`
	Tiers    []float64 `yaml:"tiers,omitempty"`
	MinLevel int       `yaml:"min_level,omitempty"`

	kind collectible.Kind
}

// ZoneTable configures stress zones
type ZoneTable struct {
	Count    int          `yaml:"count"`
	PerLevel float64      `yaml:"per_level"`
	Radius   float64      `yaml:"radius"`
	Impact   float64      `yaml:"impact"`
	Types    []ZoneWeight `yaml:"types"`
}

// ZoneWeight is a stress type draw weight
type ZoneWeight struct {
	Type   string  `yaml:"type"`
	Weight float64 `yaml:"weight"`

	stressType rope.StressType
}

// Default returns the embedded table
func Default() (*Table, error) {
	t, err := Parse(defaultTable)
	if err != nil {
		return nil, fmt.Errorf("embedded spawn table: %w", err)
	}
	return t, nil
}

// Load reads a table file
func Load(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spawn table: %w", err)
	}
	t, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a table
func Parse(b []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("parsing spawn table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks weights and names and resolves kinds
func (t *Table) Validate() error {
	if t.Objects < 0 || t.PerLevel < 0 {
		return fmt.Errorf("%w: negative object count", ErrInvalidTable)
	}
	total := 0.0
	for i := range t.Entries {
		e := &t.Entries[i]
		k, err := collectible.ParseKind(e.Kind)
		if err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrInvalidTable, i, err)
		}
		e.kind = k
		if e.Weight < 0 {
			return fmt.Errorf("%w: %s weight %v", ErrInvalidTable, e.Kind, e.Weight)
		}
		if len(e.Tiers) > 3 {
			return fmt.Errorf("%w: %s has %d tiers, at most 3", ErrInvalidTable, e.Kind, len(e.Tiers))
		}
		for _, w := range e.Tiers {
			if w < 0 {
				return fmt.Errorf("%w: %s negative tier weight", ErrInvalidTable, e.Kind)
			}
		}
		total += e.Weight
	}
	if total <= 0 && t.Objects > 0 {
		return fmt.Errorf("%w: no positive entry weight", ErrInvalidTable)
	}
	for i := range t.Zones.Types {
		z := &t.Zones.Types[i]
		st, ok := rope.ParseStressType(z.Type)
		if !ok {
			return fmt.Errorf("%w: unknown stress type %q", ErrInvalidTable, z.Type)
		}
		if z.Weight < 0 {
			return fmt.Errorf("%w: %s negative weight", ErrInvalidTable, z.Type)
		}
		z.stressType = st
	}
	if t.Zones.Count > 0 && len(t.Zones.Types) == 0 {
		return fmt.Errorf("%w: zones without types", ErrInvalidTable)
	}
	return nil
}
