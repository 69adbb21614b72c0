// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/tacclock/internal/config"
)

// DefaultName is the theme used when none is configured or the configured
// one does not exist.
const DefaultName = config.DefaultTheme

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Every accepted config theme has a file under embedded/.
var available = config.Themes()

// Theme is a named set of hex colors loaded from an embedded TOML file.
type Theme struct {
	Name  string      `toml:"name"`
	Base  BaseColors  `toml:"base"`
	Rows  RowColors   `toml:"rows"`
	Modal ModalColors `toml:"modal"`
}

// BaseColors are the window colors every theme must define.
type BaseColors struct {
	Bg        string `toml:"bg"`
	Highlight string `toml:"highlight"` // clock rows
	Selection string `toml:"selection"` // focused input, modal backdrop
	Fg        string `toml:"fg"`
	Muted     string `toml:"muted"` // labels, hints
	Accent    string `toml:"accent"`
	Warning   string `toml:"warning"` // paused clock, rejected settings
}

// RowColors are the value colors of the clock rows. Empty entries use the
// base foreground.
type RowColors struct {
	Universal string `toml:"universal"`
	Earth     string `toml:"earth"`
	Kerbin    string `toml:"kerbin"`
	Mission   string `toml:"mission"`
}

// ModalColors optionally override the modal colors derived from the base.
type ModalColors struct {
	Bg        string `toml:"bg"`
	Border    string `toml:"border"`
	Text      string `toml:"text"`
	Muted     string `toml:"muted"`
	Highlight string `toml:"highlight"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from the embedded files. Unknown names load
// DefaultName instead.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.resolve()
	return &t, nil
}

// resolve fills every empty derived color from the base colors.
func (t *Theme) resolve() {
	b := t.Base
	t.Rows.Universal = coalesce(t.Rows.Universal, b.Fg)
	t.Rows.Earth = coalesce(t.Rows.Earth, b.Fg)
	t.Rows.Kerbin = coalesce(t.Rows.Kerbin, b.Fg)
	t.Rows.Mission = coalesce(t.Rows.Mission, b.Fg)

	t.Modal.Bg = coalesce(t.Modal.Bg, b.Highlight, b.Bg)
	t.Modal.Border = coalesce(t.Modal.Border, b.Accent)
	t.Modal.Text = coalesce(t.Modal.Text, b.Fg)
	t.Modal.Muted = coalesce(t.Modal.Muted, b.Muted)
	t.Modal.Highlight = coalesce(t.Modal.Highlight, b.Selection, b.Accent)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the names of the embedded themes.
func Available() []string {
	return slices.Clone(available)
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	return config.IsTheme(name)
}
