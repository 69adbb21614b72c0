// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SettingsToggle is an on/off row in the settings modal.
type SettingsToggle struct {
	Label   string
	On      bool
	Focused bool
}

// SettingsField is a numeric text field in the settings modal. Value is the
// rendered text input.
type SettingsField struct {
	Label   string
	Value   string
	Focused bool
}

// SettingsModel contains the fields needed to render the settings body.
type SettingsModel struct {
	Toggles []SettingsToggle
	Fields  []SettingsField
	Error   string
}

// SettingsStyles groups styles for the settings body.
type SettingsStyles struct {
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	LabelStyle        lipgloss.Style
	ToggleOnStyle     lipgloss.Style
	ToggleOffStyle    lipgloss.Style
	FocusStyle        lipgloss.Style
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style
	ErrorStyle        lipgloss.Style
	HintStyle         lipgloss.Style
}

// RenderSettingsBody renders the modal body for the settings form.
func RenderSettingsBody(model SettingsModel, styles SettingsStyles) string {
	var body strings.Builder
	sep := styles.BodyStyle.Render(" ")

	body.WriteString(styles.SectionTitleStyle.Render("DISPLAY") + "\n")
	for _, t := range model.Toggles {
		marker := styles.BodyStyle.Render("  ")
		if t.Focused {
			marker = styles.FocusStyle.Render("> ")
		}
		box := styles.ToggleOffStyle.Render("[ ]")
		if t.On {
			box = styles.ToggleOnStyle.Render("[x]")
		}
		body.WriteString(marker + box + sep + styles.BodyStyle.Render(t.Label) + "\n")
	}
	body.WriteString("\n")

	body.WriteString(styles.SectionTitleStyle.Render("KERBIN CALENDAR") + "\n")
	for _, f := range model.Fields {
		marker := styles.BodyStyle.Render("  ")
		input := styles.InputStyle
		if f.Focused {
			marker = styles.FocusStyle.Render("> ")
			input = styles.InputFocusedStyle
		}
		body.WriteString(marker + styles.LabelStyle.Render(f.Label) + input.Render(f.Value) + "\n")
	}

	if model.Error != "" {
		body.WriteString("\n" + styles.ErrorStyle.Render(model.Error) + "\n")
	}
	body.WriteString("\n" + styles.HintStyle.Render("Space toggles. Text that is not a number keeps the old value."))

	return body.String()
}

// KeyHint pairs a key with what it does.
type KeyHint struct {
	Key  string
	Desc string
}

// HelpStyles groups styles for the help body.
type HelpStyles struct {
	KeyStyle  lipgloss.Style
	BodyStyle lipgloss.Style
}

// RenderHelpBody renders the key reference.
func RenderHelpBody(hints []KeyHint, styles HelpStyles) string {
	keyW := 0
	for _, h := range hints {
		keyW = max(keyW, lipgloss.Width(h.Key))
	}

	lines := make([]string, 0, len(hints))
	for _, h := range hints {
		key := styles.KeyStyle.Width(keyW + 2).Render(h.Key)
		lines = append(lines, key+styles.BodyStyle.Render(h.Desc))
	}
	return strings.Join(lines, "\n")
}

// InitModalModel contains the fields needed to render the init body.
type InitModalModel struct {
	ConfigPath    string
	DBPath        string
	ConfigMissing bool
	DBMissing     bool
	ErrorMessage  string
}

// InitModalStyles groups styles for the init body.
type InitModalStyles struct {
	BodyStyle  lipgloss.Style
	LabelStyle lipgloss.Style
	HintStyle  lipgloss.Style
}

// RenderInitBody renders the modal body asking to create missing files.
func RenderInitBody(model InitModalModel, styles InitModalStyles) string {
	var body strings.Builder

	body.WriteString(styles.BodyStyle.Render("tacclock needs to create:") + "\n\n")
	if model.ConfigMissing {
		body.WriteString(styles.LabelStyle.Render("Config") + styles.BodyStyle.Render(model.ConfigPath) + "\n")
	}
	if model.DBMissing {
		body.WriteString(styles.LabelStyle.Render("Database") + styles.BodyStyle.Render(model.DBPath) + "\n")
	}
	body.WriteString("\n" + styles.HintStyle.Render("The database keeps missions and the clock between sessions."))
	if model.ErrorMessage != "" {
		body.WriteString("\n\n" + styles.BodyStyle.Render("Error: "+model.ErrorMessage))
	}

	return body.String()
}
