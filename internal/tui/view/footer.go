package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW      int
	FooterH     int
	StatusLine  string
	HelpLine    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	VAlign      lipgloss.Position
	Bg          lipgloss.Color
}

// RenderFooter renders the clock status and key help lines.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 || state.InnerW <= 0 {
		return ""
	}

	status := state.StatusStyle.Render(FooterLine(state.StatusLine, state.InnerW))
	if state.FooterH == 1 {
		return Place(state.InnerW, state.FooterH, state.VAlign, status, state.Bg)
	}
	help := state.HelpStyle.Render(FooterLine(state.HelpLine, state.InnerW))
	return Place(state.InnerW, state.FooterH, state.VAlign, status+"\n"+help, state.Bg)
}

// FooterLine truncates a line to width, marking the cut with an ellipsis.
func FooterLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
