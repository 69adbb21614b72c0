package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// ClockRow is one labelled line of the clock panel.
type ClockRow struct {
	Label      string
	Value      string
	LabelStyle lipgloss.Style
	ValueStyle lipgloss.Style
}

// ClockViewState holds data needed to render the clock panel.
type ClockViewState struct {
	InnerW      int
	PanelH      int
	Title       string
	TitleStyle  lipgloss.Style
	Rows        []ClockRow
	EmptyText   string
	EmptyStyle  lipgloss.Style
	BorderStyle lipgloss.Style
	VAlign      lipgloss.Position
	Bg          lipgloss.Color
}

// RenderClock renders the label and value columns inside a bordered table.
// Values are right aligned so the fixed-width time fields line up.
func RenderClock(state ClockViewState) string {
	if state.PanelH <= 0 || state.InnerW <= 0 {
		return ""
	}

	title := state.TitleStyle.Render(state.Title)
	if len(state.Rows) == 0 {
		body := lipgloss.JoinVertical(lipgloss.Left, title, state.EmptyStyle.Render(state.EmptyText))
		return Place(state.InnerW, state.PanelH, state.VAlign, body, state.Bg)
	}

	rows := make([][]string, 0, len(state.Rows))
	for _, r := range state.Rows {
		rows = append(rows, []string{r.Label, r.Value})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(state.BorderStyle).
		BorderRow(false).
		BorderColumn(false).
		BorderHeader(false).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(state.Rows) {
				return lipgloss.NewStyle()
			}
			r := state.Rows[row]
			if col == 0 {
				return r.LabelStyle
			}
			return r.ValueStyle.Align(lipgloss.Right)
		})

	body := lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
	return Place(state.InnerW, state.PanelH, state.VAlign, body, state.Bg)
}

// ClockText renders rows as aligned plain text for the clipboard.
func ClockText(rows []ClockRow) string {
	labelW := 0
	valueW := 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r.Label))
		valueW = max(valueW, lipgloss.Width(r.Value))
	}

	var out []byte
	for i, r := range rows {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, padRight(r.Label, labelW)...)
		out = append(out, "  "...)
		out = append(out, padLeft(r.Value, valueW)...)
	}
	return string(out)
}

func padRight(s string, width int) string {
	for w := lipgloss.Width(s); w < width; w++ {
		s += " "
	}
	return s
}

func padLeft(s string, width int) string {
	for w := lipgloss.Width(s); w < width; w++ {
		s = " " + s
	}
	return s
}
