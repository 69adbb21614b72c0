package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tacclock/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg      lipgloss.Color
	colorFg      lipgloss.Color
	colorFgMuted lipgloss.Color
	colorAccent  lipgloss.Color
	colorWarning lipgloss.Color

	// Row accents, one per clock kind.
	colorUniversal lipgloss.Color
	colorEarth     lipgloss.Color
	colorKerbin    lipgloss.Color
	colorMission   lipgloss.Color

	colorRowBg    lipgloss.Color
	colorRowBgAlt lipgloss.Color
	colorPausedBg lipgloss.Color

	TitleStyle lipgloss.Style

	// Clock panel
	ClockBorderStyle lipgloss.Style
	RowLabelStyle    lipgloss.Style
	RowValueStyle    lipgloss.Style
	EmptyStyle       lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	PausedStyle lipgloss.Style
	HelpStyle   lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalKeyStyle          lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputFocusedStyle lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalToggleOnStyle     lipgloss.Style
	ModalToggleOffStyle    lipgloss.Style
	ModalFocusStyle        lipgloss.Style
	ModalErrorStyle        lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning
	s.colorUniversal = palette.Universal
	s.colorEarth = palette.Earth
	s.colorKerbin = palette.Kerbin
	s.colorMission = palette.Mission
	s.colorRowBg = palette.RowBg
	s.colorRowBgAlt = palette.RowBgAlt
	s.colorPausedBg = palette.PausedBg

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg).
		PaddingLeft(1)

	s.ClockBorderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.RowLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Bold(true).
		PaddingRight(3)

	s.RowValueStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		PaddingLeft(1)

	s.EmptyStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Italic(true).
		PaddingLeft(1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Bold(true)

	s.PausedStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnWarning).
		Background(s.colorWarning).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(56).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		PaddingLeft(1).
		Background(modalBg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Width(22).
		Background(modalBg)

	s.ModalKeyStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true).
		Background(modalBg)

	s.ModalInputStyle = lipgloss.NewStyle().
		Background(modalBg).
		Foreground(modal.Text).
		Padding(0, 1).
		Width(24)

	s.ModalInputFocusedStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 1).
		Width(24)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalToggleOnStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(modalBg).
		Bold(true)

	s.ModalToggleOffStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalFocusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(modalBg).
		Bold(true)

	s.ModalErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(modalBg).
		Bold(true)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 2)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 2).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	return s
}

// RowAccent returns the foreground color for a clock row.
func (s *Styles) RowAccent(kind rowKind) lipgloss.Color {
	switch kind {
	case rowUniversal:
		return s.colorUniversal
	case rowEarth:
		return s.colorEarth
	case rowKerbin, rowKerbinSidereal:
		return s.colorKerbin
	case rowMission:
		return s.colorMission
	default:
		return s.colorFg
	}
}

// RowBackground returns the alternating row background, or the paused tint.
func (s *Styles) RowBackground(index int, paused bool) lipgloss.Color {
	if paused {
		return s.colorPausedBg
	}
	if index%2 == 1 {
		return s.colorRowBgAlt
	}
	return s.colorRowBg
}
