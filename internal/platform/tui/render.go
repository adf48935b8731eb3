package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/egg-hatch/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// renderer converts Screens to styled strings. Styles are built once per
// color pair.
type renderer struct {
	styles map[cellStyle]lipgloss.Style
}

func newRenderer() *renderer {
	return &renderer{styles: make(map[cellStyle]lipgloss.Style)}
}

func (r *renderer) style(cs cellStyle) lipgloss.Style {
	if st, ok := r.styles[cs]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if cs.fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(cs.fg.Hex()))
	}
	if cs.bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(cs.bg.Hex()))
	}
	r.styles[cs] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
