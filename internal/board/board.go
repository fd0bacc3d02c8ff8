// Package board implements the gravity grid chips are dropped into.
package board

import (
	"github.com/pkg/errors"

	"github.com/vovakirdan/connectx/internal/core"
)

var (
	// ErrColumnOutOfRange is returned when a drop targets a column outside the board.
	ErrColumnOutOfRange = errors.New("board: column out of range")
	// ErrColumnFull is returned when a drop targets a column with no empty cell left.
	ErrColumnFull = errors.New("board: column full")
	// ErrInvalidSize is returned when a board is created with non-positive dimensions.
	ErrInvalidSize = errors.New("board: invalid size")
)

// Board is a rows x columns grid where chips stack from row 0 upwards.
// Cells are stored in row-major order: index = row*cols + col.
type Board struct {
	rows    int
	cols    int
	cells   []core.Cell
	heights []int // Filled cells per column; also the row the next chip lands in
}

// New creates an empty board.
func New(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", rows, cols)
	}
	return &Board{
		rows:    rows,
		cols:    cols,
		cells:   make([]core.Cell, rows*cols),
		heights: make([]int, cols),
	}, nil
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Columns returns the board width.
func (b *Board) Columns() int { return b.cols }

// TotalCells returns rows*columns.
func (b *Board) TotalCells() int { return b.rows * b.cols }

func (b *Board) index(p core.Position) int {
	return p.Row*b.cols + p.Col
}

// InBounds returns true if the position lies on the board.
func (b *Board) InBounds(p core.Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// CellAt returns the cell at the given position.
// Returns an empty cell if out of bounds.
func (b *Board) CellAt(p core.Position) core.Cell {
	if !b.InBounds(p) {
		return core.Empty()
	}
	return b.cells[b.index(p)]
}

// Height returns the number of chips in a column.
// Returns 0 for columns outside the board.
func (b *Board) Height(col int) int {
	if col < 0 || col >= b.cols {
		return 0
	}
	return b.heights[col]
}

// CanDrop reports whether a chip can be dropped into the column.
func (b *Board) CanDrop(col int) bool {
	return col >= 0 && col < b.cols && b.heights[col] < b.rows
}

// Drop places a chip of the given player into the lowest empty cell of the
// column and returns where it landed.
func (b *Board) Drop(col int, id core.PlayerID) (core.Position, error) {
	if col < 0 || col >= b.cols {
		return core.Position{}, errors.Wrapf(ErrColumnOutOfRange, "column %d of %d", col, b.cols)
	}
	if b.heights[col] >= b.rows {
		return core.Position{}, errors.Wrapf(ErrColumnFull, "column %d", col)
	}
	pos := core.Pos(b.heights[col], col)
	b.cells[b.index(pos)] = core.Owned(id)
	b.heights[col]++
	return pos, nil
}

// FilledCount returns the number of chips on the board.
func (b *Board) FilledCount() int {
	n := 0
	for _, h := range b.heights {
		n += h
	}
	return n
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	return b.TotalCells() - b.FilledCount()
}

// IsFull reports whether every cell holds a chip.
func (b *Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = core.Empty()
	}
	for i := range b.heights {
		b.heights[i] = 0
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]core.Cell, len(b.cells))
	copy(cells, b.cells)
	heights := make([]int, len(b.heights))
	copy(heights, b.heights)
	return &Board{
		rows:    b.rows,
		cols:    b.cols,
		cells:   cells,
		heights: heights,
	}
}

// Equal reports whether two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
