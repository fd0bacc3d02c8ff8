package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/connectx/internal/board"
	"github.com/vovakirdan/connectx/internal/core"
)

// digitLegend maps '0'..'9' to roster indices of a DefaultPlayers roster.
func digitLegend(players []core.Player) map[rune]core.PlayerID {
	legend := make(map[rune]core.PlayerID, len(players))
	for i, p := range players {
		legend[rune('0'+i)] = p.ID
	}
	return legend
}

// layoutBoard builds a board from a top-row-first layout using digit chips.
func layoutBoard(t *testing.T, players []core.Player, layout ...string) *board.Board {
	t.Helper()
	b, err := board.FromLayout(layout, digitLegend(players))
	require.NoError(t, err)
	return b
}

// historyOf returns a move history with one entry per chip on the board.
// The resolvers only derive turn order from its length.
func historyOf(b *board.Board) []core.Position {
	var history []core.Position
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Columns(); col++ {
			if !b.CellAt(core.Pos(row, col)).IsEmpty() {
				history = append(history, core.Pos(row, col))
			}
		}
	}
	return history
}

// nextPlayer returns the player due to move after len(history) moves.
func nextPlayer(players []core.Player, history []core.Position) core.PlayerID {
	return players[len(history)%len(players)].ID
}

// isDrawNow evaluates IsDraw with the turn order implied by the chip count.
func isDrawNow(b *board.Board, players []core.Player, k int) bool {
	history := historyOf(b)
	return IsDraw(b, players, history, k, nextPlayer(players, history))
}
