package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/connectx/internal/board"
	"github.com/vovakirdan/connectx/internal/core"
	"github.com/vovakirdan/connectx/internal/rules"
)

type recordingSaver struct {
	results []ResultData
	err     error
}

func (s *recordingSaver) SaveMatchResult(result ResultData) error {
	s.results = append(s.results, result)
	return s.err
}

func newClassic(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Config == (core.GameConfig{}) {
		opts.Config = core.DefaultGameConfig()
	}
	g, err := New(opts)
	require.NoError(t, err)
	return g
}

func dropAll(t *testing.T, g *Game, cols ...int) Outcome {
	t.Helper()
	var out Outcome
	for i, col := range cols {
		var err error
		out, err = g.Drop(col)
		require.NoError(t, err, "move %d (column %d)", i, col)
		if i < len(cols)-1 {
			require.Equal(t, StatusInProgress, out.Status, "game ended early at move %d", i)
		}
	}
	return out
}

func TestNewDefaults(t *testing.T) {
	g := newClassic(t, Options{Variant: "classic"})

	assert.NotEmpty(t, g.ID())
	assert.Equal(t, "classic", g.Variant())
	assert.Equal(t, core.DefaultGameConfig(), g.Config())
	assert.Equal(t, StatusInProgress, g.Status())
	assert.Len(t, g.Players(), 2)
	assert.Equal(t, g.Players()[0], g.CurrentPlayer())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, g.OpenColumns())

	_, ok := g.Result()
	assert.False(t, ok)
}

func TestNewValidation(t *testing.T) {
	limits := core.DefaultLimits()
	red := core.Player{ID: 1, Name: "a", Color: core.ColorRed}
	alsoRed := core.Player{ID: 2, Name: "b", Color: core.ColorRed}

	tests := []struct {
		name string
		opts Options
	}{
		{"too few rows", Options{Config: core.GameConfig{Rows: 3, Columns: 7, InARow: 3, Players: 2}}},
		{"too many columns", Options{Config: core.GameConfig{Rows: 6, Columns: 40, InARow: 4, Players: 2}}},
		{"one player", Options{Config: core.GameConfig{Rows: 6, Columns: 7, InARow: 4, Players: 1}}},
		{"too many players", Options{Config: core.GameConfig{Rows: 6, Columns: 7, InARow: 4, Players: 9}}},
		{"k too small", Options{Config: core.GameConfig{Rows: 6, Columns: 7, InARow: 1, Players: 2}}},
		{"k exceeds board", Options{Config: core.GameConfig{Rows: 6, Columns: 7, InARow: 7, Players: 2}}},
		{"duplicate ids", Options{Config: core.DefaultGameConfig(), Roster: []core.Player{red, red}}},
		{"duplicate colours", Options{Config: core.DefaultGameConfig(), Roster: []core.Player{red, alsoRed}}},
		{"custom limits", Options{Config: core.DefaultGameConfig(), Limits: &core.Limits{
			MinRows: 8, MaxRows: 10, MinColumns: 4, MaxColumns: 10, MinPlayers: 2, MaxPlayers: 4,
		}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.opts)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := New(Options{Config: core.DefaultGameConfig(), Limits: &limits})
	assert.NoError(t, err)
}

func TestDropAlternatesPlayers(t *testing.T) {
	g := newClassic(t, Options{})
	players := g.Players()

	for i := 0; i < 4; i++ {
		expected := players[i%2]
		assert.Equal(t, expected, g.CurrentPlayer())
		out, err := g.Drop(i)
		require.NoError(t, err)
		assert.Equal(t, expected, out.Player)
		assert.Equal(t, core.Pos(0, i), out.Move)
	}
	assert.Equal(t, 4, g.MoveCount())
}

func TestDropWinOnRowZero(t *testing.T) {
	saver := &recordingSaver{}
	g := newClassic(t, Options{Saver: saver, Variant: "classic"})
	players := g.Players()

	out := dropAll(t, g, 0, 0, 1, 1, 2, 2)
	assert.Equal(t, StatusInProgress, out.Status)

	out, err := g.Drop(3)
	require.NoError(t, err)
	assert.Equal(t, StatusWon, out.Status)
	assert.Equal(t, rules.Horizontal.Name, out.Line.Dir.Name)
	assert.Equal(t, core.Pos(0, 0), out.Line.Start)

	winner, ok := g.Winner()
	require.True(t, ok)
	assert.Equal(t, players[0], winner)
	assert.True(t, g.Over())
	assert.Nil(t, g.OpenColumns())

	_, err = g.Drop(4)
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, 7, g.MoveCount())

	require.Len(t, saver.results, 1)
	result := saver.results[0]
	assert.Equal(t, g.ID(), result.MatchID)
	assert.Equal(t, "classic", result.Variant)
	assert.Equal(t, OutcomeWon, result.Outcome)
	assert.Equal(t, players[0].DisplayName(), result.Winner)
	assert.Equal(t, 7, result.Moves)
	assert.Equal(t, 2, result.Players)
}

func TestDropVerticalWin(t *testing.T) {
	g := newClassic(t, Options{})
	players := g.Players()

	out := dropAll(t, g, 3, 4, 3, 4, 3, 4, 3)
	assert.Equal(t, StatusWon, out.Status)
	assert.Equal(t, rules.Vertical.Name, out.Line.Dir.Name)
	assert.Equal(t, players[0], out.Player)
}

func TestDropErrorsKeepTurn(t *testing.T) {
	g := newClassic(t, Options{Config: core.GameConfig{Rows: 4, Columns: 4, InARow: 3, Players: 2}})
	first := g.CurrentPlayer()

	_, err := g.Drop(-1)
	assert.ErrorIs(t, err, board.ErrColumnOutOfRange)
	_, err = g.Drop(4)
	assert.ErrorIs(t, err, board.ErrColumnOutOfRange)
	assert.Equal(t, first, g.CurrentPlayer())
	assert.Zero(t, g.MoveCount())

	dropAll(t, g, 0, 0, 0, 0)
	_, err = g.Drop(0)
	assert.ErrorIs(t, err, board.ErrColumnFull)
	assert.Equal(t, 4, g.MoveCount())
	assert.Equal(t, []int{1, 2, 3}, g.OpenColumns())
}

func TestEarlyDrawThreePlayers(t *testing.T) {
	saver := &recordingSaver{}
	g := newClassic(t, Options{
		Config: core.GameConfig{Rows: 6, Columns: 7, InARow: 4, Players: 3},
		Saver:  saver,
	})

	// Fills all but column 6 and two top-row cells without anyone getting
	// four in a line; the position is still open here.
	opening := []int{
		3, 4, 2, 0, 0, 0, 2, 1, 4, 4, 0, 4, 4, 3, 5, 5, 5,
		1, 5, 4, 0, 1, 5, 5, 0, 2, 3, 2, 3, 3, 3, 2, 1, 1,
	}
	out := dropAll(t, g, opening...)
	assert.Equal(t, StatusInProgress, out.Status)

	out = dropAll(t, g, 6, 2, 6, 1, 6)
	assert.Equal(t, StatusDraw, out.Status)
	assert.True(t, out.EarlyDraw)
	assert.True(t, g.EarlyDraw())

	b := g.Board()
	assert.Equal(t, 3, b.EmptyCount())
	assert.Len(t, g.History(), 39)

	_, ok := g.Winner()
	assert.False(t, ok)

	require.Len(t, saver.results, 1)
	assert.Equal(t, OutcomeEarlyDraw, saver.results[0].Outcome)
	assert.Empty(t, saver.results[0].Winner)
}

func TestEarlyDrawVerticalStack(t *testing.T) {
	g := newClassic(t, Options{Config: core.GameConfig{Rows: 6, Columns: 4, InARow: 4, Players: 2}})

	out := dropAll(t, g, 0, 2, 2, 2, 0, 3, 2, 2, 3, 3, 2, 3, 1, 3, 3, 1, 1, 1, 1, 1)
	assert.Equal(t, StatusDraw, out.Status)
	assert.True(t, out.EarlyDraw)
	assert.Equal(t, 4, g.Board().EmptyCount())
}

func TestHistoryAndBoardAreCopies(t *testing.T) {
	g := newClassic(t, Options{})
	dropAll(t, g, 3, 3)

	history := g.History()
	history[0] = core.Pos(5, 5)
	assert.Equal(t, core.Pos(0, 3), g.History()[0])

	b := g.Board()
	_, err := b.Drop(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Board().Height(0))
}

func TestDurationUsesClock(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mockClock := quartz.NewMock(t)
	saver := &recordingSaver{}
	g := newClassic(t, Options{Clock: mockClock, Saver: saver})

	mockClock.Advance(3 * time.Second).MustWait(ctx)
	assert.Equal(t, 3*time.Second, g.Duration())

	dropAll(t, g, 0, 1, 0, 1, 0, 1)
	mockClock.Advance(2 * time.Second).MustWait(ctx)
	out, err := g.Drop(0)
	require.NoError(t, err)
	require.Equal(t, StatusWon, out.Status)

	mockClock.Advance(10 * time.Second).MustWait(ctx)
	assert.Equal(t, 5*time.Second, g.Duration(), "duration stops when the game ends")

	require.Len(t, saver.results, 1)
	assert.Equal(t, int64(5000), saver.results[0].DurationMS)
}

func TestSaverErrorDoesNotFailMove(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	g := newClassic(t, Options{Saver: saver})

	out := dropAll(t, g, 0, 1, 0, 1, 0, 1, 0)
	assert.Equal(t, StatusWon, out.Status)
	assert.Len(t, saver.results, 1)
}

func TestReset(t *testing.T) {
	g := newClassic(t, Options{})
	firstID := g.ID()
	dropAll(t, g, 0, 1, 0, 1, 0, 1, 0)
	require.True(t, g.Over())

	g.Reset()
	assert.NotEqual(t, firstID, g.ID())
	assert.Equal(t, StatusInProgress, g.Status())
	assert.Zero(t, g.MoveCount())
	assert.Zero(t, g.Board().FilledCount())
	assert.Equal(t, g.Players()[0], g.CurrentPlayer())

	_, err := g.Drop(0)
	assert.NoError(t, err)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "in-progress", StatusInProgress.String())
	assert.Equal(t, "won", StatusWon.String())
	assert.Equal(t, "draw", StatusDraw.String())
	assert.Equal(t, "unknown", Status(9).String())
}
