package formats

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// HCLRecord represents the HCL structure for a record file:
//
//	id      = "corner-race"
//	variant = "classic"
//	moves   = [3, 3, 4, 4, 5, 5, 6]
//
//	player "Ann" {
//	  color = "red"
//	}
type HCLRecord struct {
	ID       string            `hcl:"id"`
	Name     string            `hcl:"name,optional"`
	Variant  string            `hcl:"variant,optional"`
	Rows     int               `hcl:"rows,optional"`
	Columns  int               `hcl:"columns,optional"`
	InARow   int               `hcl:"in_a_row,optional"`
	Moves    []int             `hcl:"moves"`
	Expect   string            `hcl:"expect,optional"`
	Metadata map[string]string `hcl:"metadata,optional"`
	Players  []HCLPlayer       `hcl:"player,block"`
}

// HCLPlayer is a player block; the label is the player's name.
type HCLPlayer struct {
	Name  string `hcl:"name,label"`
	Color string `hcl:"color,optional"`
}

// ParseHCL parses an HCL record file. filename is used in diagnostics only.
func ParseHCL(data []byte, filename string) (Record, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return Record{}, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var hr HCLRecord
	diags = gohcl.DecodeBody(file.Body, nil, &hr)
	if diags.HasErrors() {
		return Record{}, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	rec := Record{
		ID:       hr.ID,
		Name:     hr.Name,
		Variant:  hr.Variant,
		Rows:     hr.Rows,
		Columns:  hr.Columns,
		InARow:   hr.InARow,
		Moves:    hr.Moves,
		Expect:   hr.Expect,
		Metadata: hr.Metadata,
	}
	for _, p := range hr.Players {
		rec.Players = append(rec.Players, Player{Name: p.Name, Color: p.Color})
	}
	return rec, nil
}
