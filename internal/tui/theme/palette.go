package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the lipgloss colors derived from a Theme.
type Palette struct {
	Bg        lipgloss.Color
	Fg        lipgloss.Color
	FgMuted   lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Universal lipgloss.Color
	Earth     lipgloss.Color
	Kerbin    lipgloss.Color
	Mission   lipgloss.Color

	// Alternating clock row backgrounds.
	RowBg    lipgloss.Color
	RowBgAlt lipgloss.Color
	// Clock row background while paused.
	PausedBg lipgloss.Color

	TextOnWarning lipgloss.Color

	Modal ModalPalette
}

// ModalPalette holds the modal colors.
type ModalPalette struct {
	Bg          lipgloss.Color
	Border      lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Highlight   lipgloss.Color
	Panel       lipgloss.Color // focused input
	ReverseText lipgloss.Color // text on Highlight
	Backdrop    lipgloss.Color
}

// lightThreshold is the relative luminance above which a background counts
// as light.
const lightThreshold = 0.55

// NewPalette derives a Palette from t. A nil theme uses DefaultName.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}
	resolved := *t
	resolved.resolve()
	b, rows, modal := resolved.Base, resolved.Rows, resolved.Modal

	light := luminance(b.Bg) > lightThreshold
	rowBg := coalesce(b.Highlight, b.Bg)

	var rowBgAlt, pausedBg string
	if light {
		rowBgAlt = blend(rowBg, "#000000", 0.10)
		pausedBg = blend(b.Warning, b.Bg, 0.80)
	} else {
		rowBgAlt = blend(rowBg, "#ffffff", 0.30)
		pausedBg = dim(b.Warning)
	}

	return &Palette{
		Bg:        lipgloss.Color(b.Bg),
		Fg:        lipgloss.Color(b.Fg),
		FgMuted:   lipgloss.Color(b.Muted),
		Accent:    lipgloss.Color(b.Accent),
		Warning:   lipgloss.Color(b.Warning),
		Universal: lipgloss.Color(rows.Universal),
		Earth:     lipgloss.Color(rows.Earth),
		Kerbin:    lipgloss.Color(rows.Kerbin),
		Mission:   lipgloss.Color(rows.Mission),

		RowBg:    lipgloss.Color(rowBg),
		RowBgAlt: lipgloss.Color(rowBgAlt),
		PausedBg: lipgloss.Color(pausedBg),

		TextOnWarning: lipgloss.Color(readableOn(b.Warning, b.Bg, b.Fg)),

		Modal: ModalPalette{
			Bg:          lipgloss.Color(modal.Bg),
			Border:      lipgloss.Color(modal.Border),
			Text:        lipgloss.Color(modal.Text),
			Muted:       lipgloss.Color(modal.Muted),
			Highlight:   lipgloss.Color(modal.Highlight),
			Panel:       lipgloss.Color(coalesce(b.Selection, rowBg)),
			ReverseText: lipgloss.Color(readableOn(modal.Highlight, modal.Bg, modal.Text)),
			Backdrop:    lipgloss.Color(coalesce(b.Selection, rowBg)),
		},
	}
}

// parse reads a #rrggbb color. Invalid input reports false.
func parse(hex string) (colorful.Color, bool) {
	c, err := colorful.Hex(hex)
	return c, err == nil
}

// blend mixes ratio of b into a in RGB space. Invalid input returns a.
func blend(a, b string, ratio float64) string {
	ca, okA := parse(a)
	cb, okB := parse(b)
	if !okA || !okB {
		return a
	}
	ratio = min(max(ratio, 0), 1)
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}

// dim darkens hex to 30% with a floor of 30/255 per channel so a paused
// row stays distinguishable from a black background.
func dim(hex string) string {
	c, ok := parse(hex)
	if !ok {
		return hex
	}
	const factor, floor = 0.30, 30.0 / 255.0
	return colorful.Color{
		R: max(c.R*factor, floor),
		G: max(c.G*factor, floor),
		B: max(c.B*factor, floor),
	}.Hex()
}

// luminance is the WCAG relative luminance of hex, 0 for invalid input.
func luminance(hex string) float64 {
	c, ok := parse(hex)
	if !ok {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func contrast(a, b string) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// readableOn picks whichever of the two text colors contrasts more with bg.
func readableOn(bg, textA, textB string) string {
	if contrast(bg, textA) >= contrast(bg, textB) {
		return textA
	}
	return textB
}
