package rules

import "github.com/vovakirdan/connectx/internal/core"

// HasWin reports whether any player owns k consecutive cells along a row,
// a column or either diagonal.
func HasWin(b Board, k int) bool {
	_, _, ok := WinningLine(b, k)
	return ok
}

// WinningLine returns the first completed line found and its owner.
// Directions are scanned in the order of Directions, starts bottom-left first.
func WinningLine(b Board, k int) (Line, core.PlayerID, bool) {
	requireInARow(b, k)

	var (
		found Line
		owner core.PlayerID
		ok    bool
	)
	for _, d := range Directions {
		eachLine(b.Rows(), b.Columns(), k, d, func(l Line) bool {
			id, filled := b.CellAt(l.Start).Owner()
			if !filled {
				return true
			}
			for i := 1; i < l.Length; i++ {
				if !b.CellAt(l.At(i)).OwnedBy(id) {
					return true
				}
			}
			found, owner, ok = l, id, true
			return false
		})
		if ok {
			return found, owner, true
		}
	}
	return Line{}, 0, false
}
