// Package formats provides pluggable game record file format parsers.
package formats

// Record is a parsed game record ready for use.
type Record struct {
	ID       string
	Name     string
	Variant  string
	Rows     int
	Columns  int
	InARow   int
	Players  []Player
	Moves    []int // Column of each drop, in order
	Expect   string
	Metadata map[string]string
}

// Player is a seat as written in a record file.
type Player struct {
	Name  string
	Color string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".hcl"}
}
