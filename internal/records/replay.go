package records

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/connectx/internal/game"
)

// ErrOutcomeMismatch is returned when a replay does not end the way the
// record says it should.
var ErrOutcomeMismatch = errors.New("records: outcome mismatch")

// Step is the result of one replayed move.
type Step struct {
	Index   int
	Column  int
	Outcome game.Outcome
}

// Replay plays the record's moves on a fresh game.
// base supplies limits, clock, logger and saver. base.Roster is used only
// when the record names no players and its size matches the rules.
// The game and the steps played so far are returned even on error.
func Replay(rec Record, base game.Options) (*game.Game, []Step, error) {
	variant, cfg, err := rec.Rules()
	if err != nil {
		return nil, nil, err
	}

	opts := base
	opts.Variant = variant
	opts.Config = cfg
	if roster := rec.Roster(); roster != nil {
		opts.Roster = roster
	} else if len(opts.Roster) != cfg.Players {
		opts.Roster = nil
	}

	g, err := game.New(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("record %s: %w", rec.ID, err)
	}

	steps := make([]Step, 0, len(rec.Moves))
	for i, col := range rec.Moves {
		out, err := g.Drop(col)
		if err != nil {
			return g, steps, fmt.Errorf("record %s: move %d (column %d): %w", rec.ID, i+1, col, err)
		}
		steps = append(steps, Step{Index: i + 1, Column: col, Outcome: out})
	}

	if rec.Expect != "" {
		if got := OutcomeLabel(g); got != rec.Expect {
			return g, steps, fmt.Errorf("%w: record %s expected %s, got %s", ErrOutcomeMismatch, rec.ID, rec.Expect, got)
		}
	}
	return g, steps, nil
}

// OutcomeLabel names the state of a game using the stored outcome labels,
// or "in-progress" while it is still running.
func OutcomeLabel(g *game.Game) string {
	if result, ok := g.Result(); ok {
		return result.Outcome
	}
	return game.StatusInProgress.String()
}
