// Package view renders the clock window from plain view models. It holds
// no state and never reads the clock.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StartingText is shown until the terminal size is known.
const StartingText = "Starting clock..."

// OverlayRenderer draws content centered over a base view.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// Frame is one full-screen render: the window plus an optional dialog.
type Frame struct {
	Width   int
	Height  int
	Base    string
	Dialog  string // empty when no dialog is open
	Overlay OverlayRenderer
}

// Compose returns the text bubbletea should draw for f.
func Compose(f Frame) string {
	if f.Width == 0 || f.Height == 0 {
		return StartingText
	}
	if f.Dialog == "" || f.Overlay == nil {
		return f.Base
	}
	return f.Overlay.Render(f.Base, f.Width, f.Height, f.Dialog)
}

// Place positions content in a w x h box and fills the rest with bg.
func Place(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content,
		lipgloss.WithWhitespaceBackground(bg))
	return Fill(placed, w, h, bg)
}

// Fill makes content exactly width x height: short lines are padded with
// bg, long lines are clipped, and missing lines are added.
func Fill(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	pad := lipgloss.NewStyle().Background(bg)
	lines := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		switch w := lipgloss.Width(line); {
		case w > width:
			out[i] = ansi.Truncate(line, width, "")
		case w < width:
			out[i] = line + pad.Render(strings.Repeat(" ", width-w))
		default:
			out[i] = line
		}
	}
	return strings.Join(out, "\n")
}
