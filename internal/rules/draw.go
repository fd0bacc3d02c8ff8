package rules

import "github.com/vovakirdan/connectx/internal/core"

// emptyOwner marks an empty cell in a snapshot.
const emptyOwner = -1

// IsDraw reports whether the game can no longer produce a winner.
//
// A full board without a completed line is a draw. Before that, the game is
// an early draw once no player has a live line left: a k-cell line holding
// only that player's chips and empty cells, whose empty cells fit in the
// player's remaining move budget and can be reached under gravity while the
// other players keep taking their turns.
//
// history supplies the turn order: len(history) moves have been made and the
// player at roster index len(history)%len(players) moves next. active is the
// player due to move and must be in the roster.
func IsDraw(b Board, players []core.Player, history []core.Position, k int, active core.PlayerID) bool {
	requireRoster(players)
	requireInARow(b, k)
	requireActive(players, active)

	s := newSnapshot(b, players, len(history))
	if s.clock.empty == 0 {
		return !HasWin(b, k)
	}

	for p := range players {
		for _, d := range Directions {
			alive := !eachLine(s.rows, s.cols, k, d, func(l Line) bool {
				return !s.live(p, l)
			})
			if alive {
				return false
			}
		}
	}
	return true
}

// snapshot is a per-call copy of the board in roster-index form.
type snapshot struct {
	rows    int
	cols    int
	owner   []int // Roster index per cell (row-major); emptyOwner when empty
	heights []int // Chips per column
	emptyIn []int // Empty cells per column
	clock   turnClock
}

func newSnapshot(b Board, players []core.Player, played int) *snapshot {
	rows, cols := b.Rows(), b.Columns()
	s := &snapshot{
		rows:    rows,
		cols:    cols,
		owner:   make([]int, rows*cols),
		heights: make([]int, cols),
		emptyIn: make([]int, cols),
	}

	index := make(map[core.PlayerID]int, len(players))
	for i, p := range players {
		index[p.ID] = i
	}

	empty := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			o := emptyOwner
			if id, filled := b.CellAt(core.Pos(row, col)).Owner(); filled {
				idx, ok := index[id]
				if !ok {
					// Chips of players outside the roster block every line.
					idx = len(players)
				}
				o = idx
				s.heights[col]++
			} else {
				s.emptyIn[col]++
				empty++
			}
			s.owner[row*cols+col] = o
		}
	}

	s.clock = turnClock{players: len(players), played: played, empty: empty}
	return s
}

func (s *snapshot) ownerAt(p core.Position) int {
	return s.owner[p.Row*s.cols+p.Col]
}

// live reports whether player p can still complete line l.
func (s *snapshot) live(p int, l Line) bool {
	need := 0
	for i := 0; i < l.Length; i++ {
		switch o := s.ownerAt(l.At(i)); {
		case o == emptyOwner:
			need++
		case o != p:
			return false
		}
	}
	if need == 0 {
		return true
	}
	if need > s.clock.remaining(p) {
		return false
	}

	if l.Dir.rule == stackRule {
		return s.stackFeasible(p, l, need)
	}
	return s.spanFeasible(l, need)
}

// spanFeasible checks that the other players have somewhere to put the moves
// they make between the line owner's moves. Between the owner's first and
// last line move every other player moves need-1 times, and none of those
// moves may land on the line.
func (s *snapshot) spanFeasible(l Line, need int) bool {
	required := (need - 1) * (s.clock.players - 1)
	if required == 0 {
		return true
	}

	lineRow := make(map[int]int, l.Length)
	for i := 0; i < l.Length; i++ {
		pos := l.At(i)
		lineRow[pos.Col] = pos.Row
	}

	slack := 0
	for col := 0; col < s.cols; col++ {
		row, touched := lineRow[col]
		if !touched {
			slack += s.emptyIn[col]
			continue
		}
		h := s.heights[col]
		below := core.Max(0, row-h)
		above := s.rows - core.Max(row+1, h)
		slack += below + above
	}
	return slack >= required
}

// stackFeasible checks a vertical line. The owner can only start stacking
// once every cell below the line is filled and it is the owner's turn; from
// then on the other players must play outside the column until the stack is
// complete.
func (s *snapshot) stackFeasible(p int, l Line, need int) bool {
	col := l.Start.Col
	gap := core.Max(0, l.Start.Row-s.heights[col])

	start := s.clock.firstTurnAtOrAfter(p, gap)
	if s.clock.remainingAsOf(p, start) < need {
		return false
	}

	ownTurns := (start - s.clock.movesUntilTurnOf(p)) / s.clock.players
	leadIn := start - ownTurns
	required := (s.clock.players-1)*(need-1) + core.Max(0, leadIn-gap)

	elsewhere := s.clock.empty - s.emptyIn[col]
	return elsewhere >= required
}
