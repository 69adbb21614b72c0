// Package view provides rendering helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	LabelStyle        lipgloss.Style
	HintStyle         lipgloss.Style
	KeyStyle          lipgloss.Style
	ToggleOnStyle     lipgloss.Style
	ToggleOffStyle    lipgloss.Style
	FocusStyle        lipgloss.Style
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style
	ErrorStyle        lipgloss.Style
}

// SettingsStyles returns the modal styles needed for the settings form.
func (s ModalStyleSet) SettingsStyles() SettingsStyles {
	return SettingsStyles{
		BodyStyle:         s.BodyStyle,
		SectionTitleStyle: s.SectionTitleStyle,
		LabelStyle:        s.LabelStyle,
		ToggleOnStyle:     s.ToggleOnStyle,
		ToggleOffStyle:    s.ToggleOffStyle,
		FocusStyle:        s.FocusStyle,
		InputStyle:        s.InputStyle,
		InputFocusedStyle: s.InputFocusedStyle,
		ErrorStyle:        s.ErrorStyle,
		HintStyle:         s.HintStyle,
	}
}

// HelpStyles returns the modal styles needed for the key reference.
func (s ModalStyleSet) HelpStyles() HelpStyles {
	return HelpStyles{
		KeyStyle:  s.KeyStyle,
		BodyStyle: s.BodyStyle,
	}
}

// InitModalStyles returns the modal styles needed for initialization.
func (s ModalStyleSet) InitModalStyles() InitModalStyles {
	return InitModalStyles{
		BodyStyle:  s.BodyStyle,
		LabelStyle: s.LabelStyle,
		HintStyle:  s.HintStyle,
	}
}
