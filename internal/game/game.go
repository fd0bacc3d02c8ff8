// Package game drives a single connect game: it owns the board, the roster
// and the move history, and consults the rules after every drop.
package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/vovakirdan/connectx/internal/board"
	"github.com/vovakirdan/connectx/internal/core"
	"github.com/vovakirdan/connectx/internal/rules"
)

var (
	// ErrGameOver is returned when a move is attempted after the game ended.
	ErrGameOver = errors.New("game: game is over")
	// ErrInvalidConfig is returned by New when the rules or roster are unusable.
	ErrInvalidConfig = errors.New("game: invalid configuration")
)

// Status is the lifecycle state of a game.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDraw
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Options configures a new game.
type Options struct {
	ID      string          // Match ID; a random UUID when empty
	Variant string          // Variant name recorded with results
	Config  core.GameConfig // Board size and K; Players is ignored when Roster is set
	Roster  []core.Player   // Turn order; DefaultPlayers(Config.Players) when empty
	Limits  *core.Limits    // DefaultLimits when nil
	Clock   quartz.Clock    // Real clock when nil
	Logger  *log.Logger     // Discarded when nil
	Saver   ResultSaver     // Optional, can be nil
}

// Outcome describes the effect of one drop.
type Outcome struct {
	Move      core.Position
	Player    core.Player
	Status    Status
	EarlyDraw bool
	Line      rules.Line // Set when Status is StatusWon
}

// Game is a single match. It is not safe for concurrent use.
type Game struct {
	id      string
	variant string
	cfg     core.GameConfig
	board   *board.Board
	players []core.Player
	history []core.Position

	status    Status
	winner    int // Roster index; valid when status is StatusWon
	winLine   rules.Line
	earlyDraw bool

	clock     quartz.Clock
	startedAt time.Time
	endedAt   time.Time

	base   *log.Logger // Prefixed logger without per-match fields
	logger *log.Logger
	saver  ResultSaver
}

// New validates the options and creates a game ready for its first move.
func New(opts Options) (*Game, error) {
	limits := core.DefaultLimits()
	if opts.Limits != nil {
		limits = *opts.Limits
	}

	roster := opts.Roster
	if len(roster) == 0 {
		roster = core.DefaultPlayers(opts.Config.Players)
	}
	cfg := opts.Config
	cfg.Players = len(roster)

	if err := validate(cfg, roster, limits); err != nil {
		return nil, err
	}

	b, err := board.New(cfg.Rows, cfg.Columns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	}

	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}

	players := make([]core.Player, len(roster))
	copy(players, roster)

	g := &Game{
		id:      id,
		variant: opts.Variant,
		cfg:     cfg,
		board:   b,
		players: players,
		clock:   clock,
		base:    logger.WithPrefix("game"),
		saver:   opts.Saver,
	}
	g.logger = g.base.With("id", id)
	g.startedAt = clock.Now()
	g.logger.Debug("game started", "variant", g.variant,
		"rows", cfg.Rows, "columns", cfg.Columns, "in_a_row", cfg.InARow, "players", cfg.Players)
	return g, nil
}

func validate(cfg core.GameConfig, roster []core.Player, limits core.Limits) error {
	if cfg.Rows < limits.MinRows || cfg.Rows > limits.MaxRows {
		return fmt.Errorf("%w: rows %d outside [%d, %d]", ErrInvalidConfig, cfg.Rows, limits.MinRows, limits.MaxRows)
	}
	if cfg.Columns < limits.MinColumns || cfg.Columns > limits.MaxColumns {
		return fmt.Errorf("%w: columns %d outside [%d, %d]", ErrInvalidConfig, cfg.Columns, limits.MinColumns, limits.MaxColumns)
	}
	minPlayers := core.Max(2, limits.MinPlayers)
	if len(roster) < minPlayers || len(roster) > limits.MaxPlayers {
		return fmt.Errorf("%w: %d players outside [%d, %d]", ErrInvalidConfig, len(roster), minPlayers, limits.MaxPlayers)
	}
	if cfg.InARow < 2 || cfg.InARow > cfg.MaxInARow() {
		return fmt.Errorf("%w: in-a-row %d outside [2, %d]", ErrInvalidConfig, cfg.InARow, cfg.MaxInARow())
	}

	ids := make(map[core.PlayerID]bool, len(roster))
	colors := make(map[core.Color]bool, len(roster))
	for _, p := range roster {
		if ids[p.ID] {
			return fmt.Errorf("%w: duplicate player id %v", ErrInvalidConfig, p.ID)
		}
		ids[p.ID] = true
		if p.Color == core.ColorNone {
			continue
		}
		if colors[p.Color] {
			return fmt.Errorf("%w: colour %s used by more than one player", ErrInvalidConfig, p.Color)
		}
		colors[p.Color] = true
	}
	return nil
}

// ID returns the match ID.
func (g *Game) ID() string { return g.id }

// Variant returns the variant name the game was created with.
func (g *Game) Variant() string { return g.variant }

// Config returns the rules in effect.
func (g *Game) Config() core.GameConfig { return g.cfg }

// Status returns the current lifecycle state.
func (g *Game) Status() Status { return g.status }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.status != StatusInProgress }

// EarlyDraw reports whether the game ended in a draw before the board filled.
func (g *Game) EarlyDraw() bool { return g.earlyDraw }

// MoveCount returns the number of chips dropped so far.
func (g *Game) MoveCount() int { return len(g.history) }

// Players returns a copy of the roster in turn order.
func (g *Game) Players() []core.Player {
	out := make([]core.Player, len(g.players))
	copy(out, g.players)
	return out
}

// CurrentPlayer returns the player due to move.
func (g *Game) CurrentPlayer() core.Player {
	return g.players[len(g.history)%len(g.players)]
}

// History returns a copy of the move history.
func (g *Game) History() []core.Position {
	out := make([]core.Position, len(g.history))
	copy(out, g.history)
	return out
}

// Board returns a snapshot of the board.
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}

// Winner returns the winning player, if any.
func (g *Game) Winner() (core.Player, bool) {
	if g.status != StatusWon {
		return core.Player{}, false
	}
	return g.players[g.winner], true
}

// WinningLine returns the completed line, if any.
func (g *Game) WinningLine() (rules.Line, bool) {
	return g.winLine, g.status == StatusWon
}

// OpenColumns returns the columns that can still take a chip.
func (g *Game) OpenColumns() []int {
	if g.Over() {
		return nil
	}
	var cols []int
	for col := 0; col < g.board.Columns(); col++ {
		if g.board.CanDrop(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// Duration returns how long the game has been running, or how long it
// lasted once it is over.
func (g *Game) Duration() time.Duration {
	if g.Over() {
		return g.endedAt.Sub(g.startedAt)
	}
	return g.clock.Since(g.startedAt)
}

// Drop places the current player's chip in the given column and resolves
// the position: a completed line wins, otherwise the game may end in a draw.
func (g *Game) Drop(col int) (Outcome, error) {
	if g.Over() {
		return Outcome{}, ErrGameOver
	}

	mover := g.CurrentPlayer()
	pos, err := g.board.Drop(col, mover.ID)
	if err != nil {
		return Outcome{}, fmt.Errorf("game: %s cannot drop: %w", mover.DisplayName(), err)
	}
	g.history = append(g.history, pos)
	g.logger.Debug("drop", "player", mover.DisplayName(), "col", col, "row", pos.Row, "move", len(g.history))

	out := Outcome{Move: pos, Player: mover, Status: StatusInProgress}

	if line, owner, ok := rules.WinningLine(g.board, g.cfg.InARow); ok {
		g.status = StatusWon
		g.winner = core.IndexOf(g.players, owner)
		g.winLine = line
		out.Status = StatusWon
		out.Line = line
		g.finish()
		return out, nil
	}

	if rules.IsDraw(g.board, g.players, g.history, g.cfg.InARow, g.CurrentPlayer().ID) {
		g.status = StatusDraw
		g.earlyDraw = !g.board.IsFull()
		out.Status = StatusDraw
		out.EarlyDraw = g.earlyDraw
		g.finish()
	}

	return out, nil
}

// finish stamps the end time, logs the outcome and hands the result to the saver.
func (g *Game) finish() {
	g.endedAt = g.clock.Now()

	switch g.status {
	case StatusWon:
		winner, _ := g.Winner()
		g.logger.Info("game won", "player", winner.DisplayName(),
			"direction", g.winLine.Dir.Name, "from", g.winLine.Start, "to", g.winLine.End(),
			"moves", len(g.history))
	case StatusDraw:
		g.logger.Info("game drawn", "early", g.earlyDraw,
			"empty", g.board.EmptyCount(), "moves", len(g.history))
	}

	if g.saver == nil {
		return
	}
	result, _ := g.Result()
	if err := g.saver.SaveMatchResult(result); err != nil {
		g.logger.Warn("could not save result", "error", err)
	}
}

// Reset clears the board and history and starts a new match with a fresh ID.
// Roster and rules are kept.
func (g *Game) Reset() {
	g.id = uuid.NewString()
	g.board.Clear()
	g.history = nil
	g.status = StatusInProgress
	g.winner = 0
	g.winLine = rules.Line{}
	g.earlyDraw = false
	g.startedAt = g.clock.Now()
	g.endedAt = time.Time{}
	g.logger = g.base.With("id", g.id)
}
