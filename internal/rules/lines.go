package rules

import "github.com/vovakirdan/connectx/internal/core"

// gravityRule selects how a direction's lines interact with gravity when
// judging whether they can still be completed.
type gravityRule uint8

const (
	// spanRule: the line crosses one cell per column; each cell waits on its
	// own column filling up to it.
	spanRule gravityRule = iota
	// stackRule: the line runs up a single column; its cells can only be
	// filled bottom to top.
	stackRule
)

// Direction is a unit step between consecutive cells of a line.
type Direction struct {
	Name string
	DRow int
	DCol int
	rule gravityRule
}

var (
	// Horizontal runs left to right along a row.
	Horizontal = Direction{Name: "horizontal", DRow: 0, DCol: 1, rule: spanRule}
	// Vertical runs bottom to top up a column.
	Vertical = Direction{Name: "vertical", DRow: 1, DCol: 0, rule: stackRule}
	// DiagonalUp runs left to right, rising one row per column.
	DiagonalUp = Direction{Name: "diagonal-up", DRow: 1, DCol: 1, rule: spanRule}
	// DiagonalDown runs left to right, falling one row per column.
	DiagonalDown = Direction{Name: "diagonal-down", DRow: -1, DCol: 1, rule: spanRule}
)

// Directions lists every direction a winning line can take.
var Directions = []Direction{Horizontal, Vertical, DiagonalUp, DiagonalDown}

// Line is a run of Length cells starting at Start and stepping by Dir.
type Line struct {
	Start  core.Position
	Dir    Direction
	Length int
}

// At returns the i-th cell of the line.
func (l Line) At(i int) core.Position {
	return l.Start.Add(i*l.Dir.DRow, i*l.Dir.DCol)
}

// End returns the last cell of the line.
func (l Line) End() core.Position {
	return l.At(l.Length - 1)
}

// Positions returns every cell of the line in order.
func (l Line) Positions() []core.Position {
	out := make([]core.Position, l.Length)
	for i := range out {
		out[i] = l.At(i)
	}
	return out
}

// startRange returns the inclusive bounds of start coordinates along one
// axis so that a run of k cells stepping by delta stays within [0, size).
func startRange(size, k, delta int) (lo, hi int) {
	span := (k - 1) * core.Abs(delta)
	if delta >= 0 {
		return 0, size - 1 - span
	}
	return span, size - 1
}

// eachLine calls fn for every in-bounds line of length k in direction d.
// Iteration stops early when fn returns false; eachLine then returns false.
func eachLine(rows, cols, k int, d Direction, fn func(Line) bool) bool {
	rowLo, rowHi := startRange(rows, k, d.DRow)
	colLo, colHi := startRange(cols, k, d.DCol)
	for row := rowLo; row <= rowHi; row++ {
		for col := colLo; col <= colHi; col++ {
			if !fn(Line{Start: core.Pos(row, col), Dir: d, Length: k}) {
				return false
			}
		}
	}
	return true
}

// CountLines returns how many lines of length k fit on a rows x cols board.
func CountLines(rows, cols, k int) int {
	n := 0
	for _, d := range Directions {
		eachLine(rows, cols, k, d, func(Line) bool {
			n++
			return true
		})
	}
	return n
}
