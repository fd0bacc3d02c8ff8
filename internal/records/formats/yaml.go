package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLRecord represents the YAML structure for a record file.
type YAMLRecord struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Variant  string            `yaml:"variant,omitempty"`
	Size     YAMLSize          `yaml:"size,omitempty"`
	InARow   int               `yaml:"in_a_row,omitempty"`
	Players  []YAMLPlayer      `yaml:"players,omitempty"`
	Moves    []int             `yaml:"moves"`
	Expect   string            `yaml:"expect,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents board dimensions.
type YAMLSize struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// YAMLPlayer represents a seat in YAML format.
type YAMLPlayer struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

// ParseYAML parses a YAML record file.
func ParseYAML(data []byte) (Record, error) {
	var yr YAMLRecord
	if err := yaml.Unmarshal(data, &yr); err != nil {
		return Record{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	rec := Record{
		ID:       yr.ID,
		Name:     yr.Name,
		Variant:  yr.Variant,
		Rows:     yr.Size.Rows,
		Columns:  yr.Size.Columns,
		InARow:   yr.InARow,
		Moves:    yr.Moves,
		Expect:   yr.Expect,
		Metadata: yr.Metadata,
	}
	for _, p := range yr.Players {
		rec.Players = append(rec.Players, Player{Name: p.Name, Color: p.Color})
	}
	return rec, nil
}
