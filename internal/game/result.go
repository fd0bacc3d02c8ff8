package game

// Outcome labels stored with finished games.
const (
	OutcomeWon       = "won"
	OutcomeDraw      = "draw"
	OutcomeEarlyDraw = "early-draw"
)

// ResultSaver is an interface for saving finished games.
// This allows the game to persist results without depending on the storage package.
type ResultSaver interface {
	SaveMatchResult(result ResultData) error
}

// ResultData contains a finished game's outcome for persistence.
type ResultData struct {
	MatchID    string
	Variant    string
	Rows       int
	Columns    int
	InARow     int
	Players    int
	Winner     string // Winner's display name; empty for a draw
	Outcome    string // OutcomeWon, OutcomeDraw or OutcomeEarlyDraw
	Moves      int
	DurationMS int64
}

// Result returns the outcome of a finished game.
// The second result is false while the game is still in progress.
func (g *Game) Result() (ResultData, bool) {
	if !g.Over() {
		return ResultData{}, false
	}

	data := ResultData{
		MatchID:    g.id,
		Variant:    g.variant,
		Rows:       g.cfg.Rows,
		Columns:    g.cfg.Columns,
		InARow:     g.cfg.InARow,
		Players:    len(g.players),
		Moves:      len(g.history),
		DurationMS: g.Duration().Milliseconds(),
	}

	switch {
	case g.status == StatusWon:
		winner, _ := g.Winner()
		data.Winner = winner.DisplayName()
		data.Outcome = OutcomeWon
	case g.earlyDraw:
		data.Outcome = OutcomeEarlyDraw
	default:
		data.Outcome = OutcomeDraw
	}
	return data, true
}
