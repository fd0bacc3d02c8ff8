package core

// GameConfig describes the rules of a single game: board size, the run
// length needed to win and how many players take part.
type GameConfig struct {
	Rows    int // Board height in cells
	Columns int // Board width in cells
	InARow  int // Chips in a line needed to win (K)
	Players int // Number of players in the rotation
}

// DefaultGameConfig returns the classic 6x7 four-in-a-row rules for two players.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Rows:    6,
		Columns: 7,
		InARow:  4,
		Players: 2,
	}
}

// MaxInARow returns the largest run length the board can hold.
func (c GameConfig) MaxInARow() int {
	return Min(c.Rows, c.Columns)
}

// Limits bounds the board sizes and player counts a game may be created with.
type Limits struct {
	MinRows    int
	MaxRows    int
	MinColumns int
	MaxColumns int
	MinPlayers int
	MaxPlayers int
}

// DefaultLimits returns the limits used when no configuration overrides them.
func DefaultLimits() Limits {
	return Limits{
		MinRows:    4,
		MaxRows:    16,
		MinColumns: 4,
		MaxColumns: 16,
		MinPlayers: 2,
		MaxPlayers: 8,
	}
}
