package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/egg-hatch/internal/game"
	"github.com/vovakirdan/egg-hatch/internal/palette"
)

// Color selection grid: palette entries fill columns top to bottom.
const (
	gridCols = 6
	gridRows = 4
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	activeButtonStyle = buttonStyle.
				BorderForeground(lipgloss.Color("10")).
				Foreground(lipgloss.Color("10")).
				Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// gridIndex returns the palette index at a grid position, or -1.
func gridIndex(col, row int) int {
	i := col*gridRows + row
	if col < 0 || col >= gridCols || row < 0 || row >= gridRows || i >= len(palette.All) {
		return -1
	}
	return i
}

// moveCursor steps the color cursor through the grid, staying on it.
func moveCursor(cursor, dCol, dRow int) int {
	col, row := cursor/gridRows, cursor%gridRows
	if i := gridIndex(col+dCol, row+dRow); i >= 0 {
		return i
	}
	return cursor
}

func (m Model) button(label string, active bool) string {
	if active {
		return activeButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

func (m Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) titleView() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Welcome to the Egg Game!"),
		"Dodge the falling circles. Catch the triangles.",
		"Fill the hatch meter before your health runs out.",
		"",
		m.button("Start Game", true),
		"",
		subtleStyle.Render(m.help.View(m.keys.menuHelp())),
	)
	return m.place(body)
}

func (m Model) colorView() string {
	columns := make([]string, 0, gridCols)
	for col := 0; col < gridCols; col++ {
		cells := make([]string, 0, gridRows)
		for row := 0; row < gridRows; row++ {
			i := gridIndex(col, row)
			if i < 0 {
				continue
			}
			cells = append(cells, m.swatch(palette.All[i], i == m.colorCursor))
		}
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, cells...))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Please choose your favorite color for your egg."),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		"",
		subtleStyle.Render(m.help.View(m.keys.colorHelp())),
	)
	return m.place(body)
}

func (m Model) swatch(n palette.Named, active bool) string {
	st := lipgloss.NewStyle().
		Width(16).
		Align(lipgloss.Center).
		Background(lipgloss.Color(n.Color.Hex())).
		Foreground(lipgloss.Color(game.TextColor(n.Color).Hex())).
		Border(lipgloss.HiddenBorder())
	if active {
		st = st.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("229")).Bold(true)
	}
	return st.Render(n.Name)
}

func (m Model) readyView() string {
	egg := m.flow.EggColor()
	eggStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(egg.Color.Hex()))
	body := lipgloss.JoinVertical(lipgloss.Center,
		eggStyle.Render("●")+" "+egg.Name+" egg",
		"",
		m.button("START", true),
		"",
		subtleStyle.Render(m.help.View(m.keys.menuHelp())),
	)
	return m.place(body)
}

func (m Model) endView(won bool) string {
	var b strings.Builder
	if won {
		b.WriteString(titleStyle.Render("CONGRATULATIONS! You've got a chick."))
	} else {
		b.WriteString(titleStyle.Foreground(lipgloss.Color("9")).Render("GAME OVER"))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Score: %.3f\n", m.last.Score))
	b.WriteString(fmt.Sprintf("Time: %ds\n", int(m.last.Elapsed.Seconds())))
	if m.best > 0 {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("Best this session: %.3f", m.best)))
		b.WriteString("\n")
	}
	if m.stats.Rounds > 0 {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("Rounds: %d  Hatched: %d  Played: %s",
			m.stats.Rounds, m.stats.Wins, m.stats.TotalTime.Round(time.Second))))
		b.WriteString("\n")
	}

	parts := []string{b.String()}
	if len(m.history.Rows()) > 0 {
		parts = append(parts, panelStyle.Render(m.history.View()))
	}
	parts = append(parts,
		lipgloss.JoinVertical(lipgloss.Center,
			m.button("Try Again", m.endCursor == 0),
			m.button("Quit", m.endCursor == 1),
		),
		subtleStyle.Render(m.help.View(m.keys.endHelp())),
	)
	if m.notice != "" {
		parts = append(parts, subtleStyle.Render(m.notice))
	}

	return m.place(lipgloss.JoinVertical(lipgloss.Center, parts...))
}

func (m Model) playView() string {
	m.game.Render(m.screen)
	out := m.renderer.RenderScreen(m.screen)
	footer := m.help.View(m.keys.playHelp())
	if m.notice != "" {
		footer += "  " + m.notice
	}
	return out + "\n" + subtleStyle.Render(footer)
}

func paletteAt(i int) palette.Named {
	if i < 0 || i >= len(palette.All) {
		return palette.Default
	}
	return palette.All[i]
}
