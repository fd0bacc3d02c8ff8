package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/connectx/internal/board"
	"github.com/vovakirdan/connectx/internal/core"
)

func TestHasWinEmptyBoard(t *testing.T) {
	b, err := board.New(6, 7)
	require.NoError(t, err)
	assert.False(t, HasWin(b, 4))
}

func TestHasWinRowZero(t *testing.T) {
	players := core.DefaultPlayers(2)
	a, c := players[0].ID, players[1].ID
	b, err := board.New(6, 7)
	require.NoError(t, err)

	// A and B alternate in columns 0..3; A's chips line up on row 0.
	moves := []struct {
		col int
		id  core.PlayerID
	}{
		{0, a}, {0, c}, {1, a}, {1, c}, {2, a}, {2, c},
	}
	for _, m := range moves {
		_, err := b.Drop(m.col, m.id)
		require.NoError(t, err)
		assert.False(t, HasWin(b, 4), "no win expected before the fourth chip")
	}

	_, err = b.Drop(3, a)
	require.NoError(t, err)
	assert.True(t, HasWin(b, 4))

	line, owner, ok := WinningLine(b, 4)
	require.True(t, ok)
	assert.Equal(t, a, owner)
	assert.Equal(t, Horizontal.Name, line.Dir.Name)
	assert.Equal(t, core.Pos(0, 0), line.Start)
	assert.Equal(t, core.Pos(0, 3), line.End())
}

func TestHasWinDirections(t *testing.T) {
	players := core.DefaultPlayers(2)

	tests := []struct {
		name   string
		layout []string
		dir    string
		start  core.Position
	}{
		{
			name: "vertical at column 0",
			layout: []string{
				".....",
				"0....",
				"0....",
				"01...",
				"01...",
			},
			dir:   Vertical.Name,
			start: core.Pos(0, 0),
		},
		{
			name: "vertical at max column to max row",
			layout: []string{
				"....1",
				"....1",
				"....1",
				"0..01",
				"0..00",
			},
			dir:   Vertical.Name,
			start: core.Pos(1, 4),
		},
		{
			name: "horizontal on max row",
			layout: []string{
				".1111",
				"00100",
				"11011",
				"00100",
				"11011",
			},
			dir:   Horizontal.Name,
			start: core.Pos(4, 1),
		},
		{
			name: "diagonal up from bottom left",
			layout: []string{
				".....",
				"...0.",
				"..01.",
				".011.",
				"0110.",
			},
			dir:   DiagonalUp.Name,
			start: core.Pos(0, 0),
		},
		{
			name: "diagonal down to bottom right",
			layout: []string{
				".....",
				".1...",
				".01..",
				".001.",
				"10001",
			},
			dir:   DiagonalDown.Name,
			start: core.Pos(3, 1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := layoutBoard(t, players, tc.layout...)
			line, _, ok := WinningLine(b, 4)
			require.True(t, ok)
			assert.Equal(t, tc.dir, line.Dir.Name)
			assert.Equal(t, tc.start, line.Start)
		})
	}
}

// A diagonal running down-right from the top-left corner must be detected
// only when all four cells belong to one player.
func TestHasWinDiagonalDownFromTopLeftCorner(t *testing.T) {
	players := core.DefaultPlayers(2)

	blocked := layoutBoard(t, players,
		"0......",
		"10.....",
		"000....",
		"1011...",
		"0110...",
		"0111...",
	)
	assert.False(t, HasWin(blocked, 4), "(2,3) belongs to the other player")

	complete := layoutBoard(t, players,
		"0......",
		"10.....",
		"000....",
		"1010...",
		"0110...",
		"0111...",
	)
	line, owner, ok := WinningLine(complete, 4)
	require.True(t, ok)
	assert.Equal(t, players[0].ID, owner)
	assert.Equal(t, DiagonalDown.Name, line.Dir.Name)
	assert.Equal(t, core.Pos(5, 0), line.Start)
	assert.Equal(t, core.Pos(2, 3), line.End())
}

func TestHasWinIsIdempotent(t *testing.T) {
	players := core.DefaultPlayers(2)
	b := layoutBoard(t, players,
		"....",
		"1...",
		"10..",
		"100.",
	)
	before := b.Clone()
	for i := 0; i < 3; i++ {
		assert.False(t, HasWin(b, 4))
		assert.True(t, HasWin(b, 3))
	}
	assert.True(t, b.Equal(before), "HasWin must not mutate the board")
}

func TestHasWinPanicsOnBadK(t *testing.T) {
	b, err := board.New(4, 5)
	require.NoError(t, err)

	assert.Panics(t, func() { HasWin(b, 1) })
	assert.Panics(t, func() { HasWin(b, 5) })
	assert.NotPanics(t, func() { HasWin(b, 4) })
}
