package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tacclock/internal/tui/view"
)

// View renders the clock window with any open dialog on top.
func (m Model) View() string {
	return view.Compose(m.frame())
}

func (m Model) frame() view.Frame {
	f := view.Frame{
		Width:  m.width,
		Height: m.height,
		Base:   m.renderAppContent(),
	}
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	m.overlay.SetActive(showModal)
	if showModal {
		m.overlay.SetBackground(m.styles.ModalBackdropColor)
		f.Dialog = m.renderModal()
	}
	// The overlay is a value; hand it over after it is configured.
	f.Overlay = m.overlay
	return f
}

func (m Model) renderAppContent() string {
	layout := m.layout
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	clockBox := view.RenderClock(m.clockViewState(layout))
	footerBox := view.RenderFooter(m.footerViewState(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, clockBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.Fill(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) clockViewState(layout LayoutCache) view.ClockViewState {
	paused := m.clock.Paused()
	rows := make([]view.ClockRow, 0, len(m.rows))
	for i, r := range m.rows {
		bg := m.styles.RowBackground(i, paused)
		rows = append(rows, view.ClockRow{
			Label:      r.label,
			Value:      r.value,
			LabelStyle: m.styles.RowLabelStyle.Background(bg),
			ValueStyle: m.styles.RowValueStyle.Foreground(m.styles.RowAccent(r.kind)).Background(bg),
		})
	}

	return view.ClockViewState{
		InnerW:      layout.InnerW,
		PanelH:      layout.ClockH,
		Title:       windowTitle,
		TitleStyle:  m.styles.TitleStyle,
		Rows:        rows,
		EmptyText:   "All rows hidden. Press s to choose what to show.",
		EmptyStyle:  m.styles.EmptyStyle,
		BorderStyle: m.styles.ClockBorderStyle,
		VAlign:      lipgloss.Top,
		Bg:          m.styles.colorBg,
	}
}

func (m Model) footerViewState(layout LayoutCache) view.FooterViewState {
	statusStyle := layout.StatusStyle
	if m.statusMsg == "" && m.clock.Paused() {
		statusStyle = m.styles.PausedStyle
	}
	return view.FooterViewState{
		InnerW:      layout.InnerW,
		FooterH:     layout.FooterH,
		StatusLine:  m.statusLine(),
		HelpLine:    "space pause  +/- warp  u e k m r rows  s settings  y copy  ? help  q quit",
		StatusStyle: statusStyle,
		HelpStyle:   layout.HelpStyle,
		VAlign:      lipgloss.Bottom,
		Bg:          m.styles.colorBg,
	}
}
