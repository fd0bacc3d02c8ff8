// Package rules decides game outcomes: whether someone has completed a line
// of K chips and whether the game can no longer be won by anyone.
//
// Both resolvers are pure functions of the board snapshot and the arguments
// they are given. They keep no state between calls and never mutate input.
// Calling them with arguments that break their contract (fewer than two
// players, an impossible K, an active player outside the roster) is a
// programming error and panics.
package rules

import (
	"fmt"

	"github.com/vovakirdan/connectx/internal/core"
)

// Board is the read-only view the resolvers need.
type Board interface {
	Rows() int
	Columns() int
	TotalCells() int
	CellAt(core.Position) core.Cell
}

func requireInARow(b Board, k int) {
	limit := core.Min(b.Rows(), b.Columns())
	if k < 2 || k > limit {
		panic(fmt.Sprintf("rules: in-a-row value %d outside [2, %d]", k, limit))
	}
}

func requireRoster(players []core.Player) {
	if len(players) < 2 {
		panic(fmt.Sprintf("rules: need at least 2 players, got %d", len(players)))
	}
	seen := make(map[core.PlayerID]bool, len(players))
	for _, p := range players {
		if seen[p.ID] {
			panic(fmt.Sprintf("rules: duplicate player %v in roster", p.ID))
		}
		seen[p.ID] = true
	}
}

func requireActive(players []core.Player, active core.PlayerID) int {
	idx := core.IndexOf(players, active)
	if idx < 0 {
		panic(fmt.Sprintf("rules: active player %v not in roster", active))
	}
	return idx
}
