package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Archetype is one enemy template from the content tables
type Archetype struct {
	Name     string  `yaml:"name"`
	Glyph    string  `yaml:"glyph"`
	Health   int     `yaml:"health"`
	Damage   int     `yaml:"damage"`
	Cooldown int64   `yaml:"cooldown"`
	Aggro    int     `yaml:"aggro"`
	Wander   float64 `yaml:"wander"`
}

// Rune returns the display glyph as a single rune
func (a Archetype) Rune() rune {
	for _, r := range a.Glyph {
		return r
	}
	return '?'
}

// Table is an ordered set of enemy archetypes. Order follows the file, so
// spawning by index is deterministic
type Table struct {
	archetypes []Archetype
}

type tableFile struct {
	Archetypes []Archetype `yaml:"archetypes"`
}

// ParseTable decodes YAML archetype data
func ParseTable(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("archetype parse: %w", err)
	}
	if len(file.Archetypes) == 0 {
		return nil, fmt.Errorf("archetype table is empty")
	}
	for i, a := range file.Archetypes {
		if a.Name == "" {
			return nil, fmt.Errorf("archetype %d: missing name", i)
		}
		if len([]rune(a.Glyph)) != 1 {
			return nil, fmt.Errorf("archetype %q: glyph must be a single rune", a.Name)
		}
		if a.Health <= 0 {
			return nil, fmt.Errorf("archetype %q: health must be positive", a.Name)
		}
	}
	return &Table{archetypes: file.Archetypes}, nil
}

// LoadTable reads an archetype file; empty path yields the built-in table
func LoadTable(path string) (*Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archetypes %s: %w", path, err)
	}
	return ParseTable(data)
}

// DefaultTable returns the built-in archetypes used when no content file is
// configured
func DefaultTable() *Table {
	return &Table{archetypes: []Archetype{
		{Name: "rat", Glyph: "r", Health: 4, Damage: 1, Cooldown: 10, Aggro: 6, Wander: 0.4},
		{Name: "brute", Glyph: "B", Health: 12, Damage: 3, Cooldown: 16, Aggro: 8, Wander: 0.2},
		{Name: "stalker", Glyph: "s", Health: 6, Damage: 2, Cooldown: 8, Aggro: 12, Wander: 0.3},
	}}
}

// Count returns the number of archetypes
func (t *Table) Count() int {
	return len(t.archetypes)
}

// At returns the archetype at index i modulo the table size
func (t *Table) At(i int) Archetype {
	return t.archetypes[i%len(t.archetypes)]
}
