package tui

import "github.com/charmbracelet/lipgloss"

const (
	footerCompact = 1
	footerFull    = 2

	// footerFullMinHeight is the inner height below which the key help
	// line is dropped.
	footerFullMinHeight = 8
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	ClockH  int
	FooterH int

	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(width-appH, 0)
	innerH := max(height-appV, 0)

	footerH := footerCompact
	if innerH >= footerFullMinHeight {
		footerH = footerFull
	}
	clockH := max(innerH-footerH, 0)

	footerWidth := lipgloss.NewStyle().Width(innerW)
	return LayoutCache{
		InnerW:      innerW,
		InnerH:      innerH,
		ClockH:      clockH,
		FooterH:     footerH,
		StatusStyle: styles.StatusStyle.Inherit(footerWidth),
		HelpStyle:   styles.HelpStyle.Inherit(footerWidth),
	}
}
