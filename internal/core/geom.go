// Package core provides the fundamental types shared by the board, the rules
// engine and the game controller. It has no dependencies outside the standard
// library so the rules stay pure and testable.
package core

import "fmt"

// Position addresses a single board cell.
// Row 0 is the bottom row; column 0 is the leftmost column.
type Position struct {
	Row int
	Col int
}

// Pos is a shorthand constructor for Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position shifted by the given row and column deltas.
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns a compact "(row,col)" representation.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
