// Package text renders boards and move verdicts for the command line.
package text

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/connectx/internal/board"
	"github.com/vovakirdan/connectx/internal/core"
	"github.com/vovakirdan/connectx/internal/game"
)

// colorStyles maps chip colours to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorNone:    lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

var (
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	winStyle    = lipgloss.NewStyle().Bold(true).Reverse(true)
	wonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	drawStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// Renderer formats game output either with ANSI styling or as plain text.
type Renderer struct {
	styled bool
}

// New returns a renderer. Styled renderers colour chips and highlight
// winning lines.
func New(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

// ForWriter returns a styled renderer when w is a terminal.
func ForWriter(w io.Writer) *Renderer {
	f, ok := w.(*os.File)
	return New(ok && term.IsTerminal(int(f.Fd())))
}

// Styled reports whether the renderer emits ANSI styling.
func (r *Renderer) Styled() bool { return r.styled }

// Board draws b top row first with each chip shown as its owner's colour
// letter. Positions in highlight are emphasised when styled.
// Plain output matches board.RenderASCII.
func (r *Renderer) Board(b *board.Board, players []core.Player, highlight []core.Position) string {
	colors := make(map[core.PlayerID]core.Color, len(players))
	for _, p := range players {
		colors[p.ID] = p.Color
	}
	symbol := func(id core.PlayerID) rune {
		if c, ok := colors[id]; ok {
			return c.Char()
		}
		return '?'
	}

	if !r.styled {
		return board.RenderASCII(b, symbol)
	}

	marked := make(map[core.Position]bool, len(highlight))
	for _, p := range highlight {
		marked[p] = true
	}

	var sb strings.Builder
	for row := b.Rows() - 1; row >= 0; row-- {
		for col := 0; col < b.Columns(); col++ {
			pos := core.Pos(row, col)
			owner, ok := b.CellAt(pos).Owner()
			if !ok {
				sb.WriteString(emptyStyle.Render(string(board.EmptyChar)))
				continue
			}
			style := colorStyles[colors[owner]]
			if marked[pos] {
				style = style.Inherit(winStyle)
			}
			sb.WriteString(style.Render(string(symbol(owner))))
		}
		sb.WriteByte('\n')
	}

	var footer strings.Builder
	for col := 0; col < b.Columns(); col++ {
		footer.WriteByte(byte('0' + col%10))
	}
	sb.WriteString(footerStyle.Render(strings.Repeat("-", b.Columns())))
	sb.WriteByte('\n')
	sb.WriteString(footerStyle.Render(footer.String()))
	sb.WriteByte('\n')
	return sb.String()
}

// Verdict describes one move and what it decided.
func (r *Renderer) Verdict(index int, out game.Outcome) string {
	mover := out.Player.DisplayName()
	if r.styled {
		mover = colorStyles[out.Player.Color].Render(mover)
	}
	prefix := fmt.Sprintf("%3d. %s -> %v", index, mover, out.Move)

	switch out.Status {
	case game.StatusWon:
		verdict := fmt.Sprintf("wins %s %v-%v", out.Line.Dir.Name, out.Line.Start, out.Line.End())
		return prefix + "  " + r.paint(wonStyle, verdict)
	case game.StatusDraw:
		verdict := "draw"
		if out.EarlyDraw {
			verdict = "early draw"
		}
		return prefix + "  " + r.paint(drawStyle, verdict)
	default:
		return prefix
	}
}

// Summary is a one-line description of the game's final state.
func (r *Renderer) Summary(g *game.Game) string {
	cfg := g.Config()
	rules := fmt.Sprintf("%dx%d, %d in a row, %d players", cfg.Rows, cfg.Columns, cfg.InARow, cfg.Players)

	switch g.Status() {
	case game.StatusWon:
		winner, _ := g.Winner()
		return fmt.Sprintf("%s (%s): %s after %d moves", g.Variant(), rules,
			r.paint(wonStyle, winner.DisplayName()+" wins"), g.MoveCount())
	case game.StatusDraw:
		verdict := "draw"
		if g.EarlyDraw() {
			verdict = fmt.Sprintf("early draw with %d empty cells", g.Board().EmptyCount())
		}
		return fmt.Sprintf("%s (%s): %s after %d moves", g.Variant(), rules,
			r.paint(drawStyle, verdict), g.MoveCount())
	default:
		return fmt.Sprintf("%s (%s): in progress after %d moves, %s to move", g.Variant(), rules,
			g.MoveCount(), g.CurrentPlayer().DisplayName())
	}
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}
