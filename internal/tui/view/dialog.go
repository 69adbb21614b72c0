package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DialogStyles are the frame styles shared by every dialog.
type DialogStyles struct {
	Frame        lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	Footer       lipgloss.Style
	Body         lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

// Button is a key hint in a dialog footer.
type Button struct {
	Key   string
	Label string
}

func (b Button) String() string {
	return "[" + b.Key + "] " + b.Label
}

// Button sets for the dialogs. The first button is the Enter action.
var (
	SettingsButtons = []Button{{"Enter", "Apply"}, {"Tab", "Next"}, {"Esc", "Cancel"}}
	HelpButtons     = []Button{{"Esc", "Close"}}
	InitButtons     = []Button{{"Enter", "Create"}, {"Esc", "Quit"}}
)

// Dialog is a titled box with a body and a row of buttons.
type Dialog struct {
	Title   string
	Body    string
	Buttons []Button
}

// Render draws d with styles.
func (d Dialog) Render(styles DialogStyles) string {
	var b strings.Builder
	b.WriteString(styles.Header.Render(styles.Title.Render(d.Title)))
	if d.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(d.Body)
	}
	if len(d.Buttons) > 0 {
		b.WriteString("\n\n")
		b.WriteString(styles.Footer.Render(RenderButtons(styles, d.Buttons)))
	}
	return styles.Frame.Render(b.String())
}

// RenderButtons joins buttons with a body-styled gap, highlighting the first.
func RenderButtons(styles DialogStyles, buttons []Button) string {
	parts := make([]string, len(buttons))
	for i, btn := range buttons {
		style := styles.Button
		if i == 0 {
			style = styles.ButtonActive
		}
		parts[i] = style.Render(btn.String())
	}
	return strings.Join(parts, styles.Body.Render(" "))
}
