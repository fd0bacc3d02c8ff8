// Package variants registers the built-in rule presets.
// Import it for its side effects.
package variants

import (
	"github.com/vovakirdan/connectx/internal/core"
	"github.com/vovakirdan/connectx/internal/registry"
)

func init() {
	registry.Register("classic", Classic)
	registry.Register("trio", Trio)
	registry.Register("five", Five)
	registry.Register("mini", Mini)
	registry.Register("quad", Quad)
}

// Classic is four in a row on a 6x7 board for two players.
func Classic() registry.Variant {
	return registry.Variant{
		Title:       "Classic Four",
		Description: "Four in a row on a 6x7 board, two players",
		Config:      core.DefaultGameConfig(),
	}
}

// Trio keeps the classic board and adds a third player.
func Trio() registry.Variant {
	return registry.Variant{
		Title:       "Trio",
		Description: "Four in a row on a 6x7 board, three players",
		Config:      core.GameConfig{Rows: 6, Columns: 7, InARow: 4, Players: 3},
	}
}

// Five needs five in a row on a larger board.
func Five() registry.Variant {
	return registry.Variant{
		Title:       "Five in a Row",
		Description: "Five in a row on an 8x9 board, two players",
		Config:      core.GameConfig{Rows: 8, Columns: 9, InARow: 5, Players: 2},
	}
}

// Mini is three in a row on a small board.
func Mini() registry.Variant {
	return registry.Variant{
		Title:       "Mini",
		Description: "Three in a row on a 4x5 board, two players",
		Config:      core.GameConfig{Rows: 4, Columns: 5, InARow: 3, Players: 2},
	}
}

// Quad is a four player game on a wide board.
func Quad() registry.Variant {
	return registry.Variant{
		Title:       "Quad",
		Description: "Four in a row on an 8x10 board, four players",
		Config:      core.GameConfig{Rows: 8, Columns: 10, InARow: 4, Players: 4},
	}
}
