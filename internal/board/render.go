package board

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/vovakirdan/connectx/internal/core"
)

// ErrInvalidLayout is returned when a textual layout cannot be turned into a board.
var ErrInvalidLayout = errors.New("board: invalid layout")

// EmptyChar marks an empty cell in ASCII layouts.
const EmptyChar = '.'

// RenderASCII draws the board top row first, one character per cell,
// followed by a separator and a column index footer.
// symbol maps a chip owner to its character; unknown owners render as '?'.
//
// Format:
//   - Empty cells: '.'
//   - Chips: symbol(owner)
//   - Footer: column index modulo 10
func RenderASCII(b *Board, symbol func(core.PlayerID) rune) string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * (b.rows + 2))

	for row := b.rows - 1; row >= 0; row-- {
		for col := 0; col < b.cols; col++ {
			owner, ok := b.CellAt(core.Pos(row, col)).Owner()
			switch {
			case !ok:
				sb.WriteRune(EmptyChar)
			case symbol != nil:
				sb.WriteRune(symbol(owner))
			default:
				sb.WriteRune('?')
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(strings.Repeat("-", b.cols))
	sb.WriteByte('\n')
	for col := 0; col < b.cols; col++ {
		sb.WriteByte(byte('0' + col%10))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// FromLayout builds a board from rows of characters given top row first,
// the same orientation RenderASCII prints. '.' is an empty cell; every other
// character must appear in legend. Spaces are ignored so layouts can be
// aligned for readability. The layout must respect gravity.
func FromLayout(layout []string, legend map[rune]core.PlayerID) (*Board, error) {
	if len(layout) == 0 {
		return nil, errors.Wrap(ErrInvalidLayout, "no rows")
	}

	rows := make([]string, len(layout))
	for i, line := range layout {
		rows[i] = strings.ReplaceAll(line, " ", "")
	}
	cols := utf8.RuneCountInString(rows[0])

	b, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}

	for i, line := range rows {
		if utf8.RuneCountInString(line) != cols {
			return nil, errors.Wrapf(ErrInvalidLayout, "row %d has %d cells, expected %d",
				i, utf8.RuneCountInString(line), cols)
		}
		row := b.rows - 1 - i
		col := 0
		for _, ch := range line {
			if ch != EmptyChar {
				id, ok := legend[ch]
				if !ok {
					return nil, errors.Wrapf(ErrInvalidLayout, "unknown chip %q at %v", ch, core.Pos(row, col))
				}
				b.cells[b.index(core.Pos(row, col))] = core.Owned(id)
			}
			col++
		}
	}

	// Recompute heights and check nothing floats.
	for col := 0; col < b.cols; col++ {
		h := 0
		for h < b.rows && !b.CellAt(core.Pos(h, col)).IsEmpty() {
			h++
		}
		for row := h; row < b.rows; row++ {
			if !b.CellAt(core.Pos(row, col)).IsEmpty() {
				return nil, errors.Wrapf(ErrInvalidLayout, "floating chip at %v", core.Pos(row, col))
			}
		}
		b.heights[col] = h
	}

	return b, nil
}
