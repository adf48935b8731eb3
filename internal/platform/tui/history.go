package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/egg-hatch/internal/storage"
)

// maxHistory is how many recent rounds the end screen lists.
const maxHistory = 5

// newHistoryTable creates the recent-rounds table.
func newHistoryTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Egg", Width: 16},
		{Title: "Result", Width: 7},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 5},
		{Title: "Time", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(maxHistory+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// historyRows formats stored rounds for the table.
func historyRows(rounds []storage.RoundRecord) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.EggColor,
			r.Outcome,
			fmt.Sprintf("%.3f", r.Score),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%ds", int(r.Elapsed.Seconds())),
		}
	}
	return rows
}
