package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayMinWidth  = 24
	overlayMinHeight = 6
	overlayMaxWidth  = 64
	overlayMaxHeight = 24
)

// OverlayModel paints a modal box over the clock window.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel returns an inactive overlay.
func NewOverlayModel() OverlayModel {
	return OverlayModel{bgColor: lipgloss.Color("")}
}

// SetActive shows or hides the overlay.
func (o *OverlayModel) SetActive(active bool) {
	o.active = active
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the backdrop color painted behind the modal.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws content centered over base. The result always has exactly
// height lines of width cells.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	modal := splitContent(content)
	modalW, modalH := blockSize(modal)
	boxW, boxH := o.boxSize(width, height)
	boxW = min(max(boxW, modalW), width)
	boxH = min(max(boxH, modalH), height)
	if boxW <= 0 || boxH <= 0 {
		return base
	}

	top, left := center(height, boxH), center(width, boxW)
	bgSeq := o.backgroundSeq()
	box := o.paintBox(modal, boxW, boxH, bgSeq)

	lines := fitLines(base, width, height)
	for i, row := range box {
		y := top + i
		lines[y] = ansi.Cut(lines[y], 0, left) + row + ansi.Cut(lines[y], left+boxW, width)
	}
	return strings.Join(lines, "\n")
}

func (o OverlayModel) boxSize(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	boxW := min(max(width/2, overlayMinWidth), overlayMaxWidth, width)
	boxH := min(max(height/2, overlayMinHeight), overlayMaxHeight, height)
	return boxW, boxH
}

func (o OverlayModel) backgroundSeq() string {
	if o.bgColor == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
}

// paintBox fills a boxW x boxH block with the backdrop and centers the modal
// lines inside it.
func (o OverlayModel) paintBox(modal []string, boxW, boxH int, bgSeq string) []string {
	blank := bgSeq + strings.Repeat(" ", boxW) + ansi.ResetStyle
	box := make([]string, boxH)
	for i := range box {
		box[i] = blank
	}

	modalW, modalH := blockSize(modal)
	modalW, modalH = min(modalW, boxW), min(modalH, boxH)
	if modalW == 0 || modalH == 0 {
		return box
	}

	top, left := center(boxH, modalH), center(boxW, modalW)
	right := boxW - left - modalW
	for i := 0; i < modalH; i++ {
		line := fitWidth(modal[i], modalW)
		line = reapplyBackground(line, bgSeq)
		box[top+i] = bgSeq + strings.Repeat(" ", left) + line +
			bgSeq + strings.Repeat(" ", right) + ansi.ResetStyle
	}
	return box
}

// reapplyBackground restores the backdrop after any reset inside a styled
// line, so unstyled gaps keep the modal color.
func reapplyBackground(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+bgSeq)
	}
	return line
}

func splitContent(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(content, "\n"), "\n")
}

func blockSize(lines []string) (int, int) {
	w := 0
	for _, line := range lines {
		w = max(w, lipgloss.Width(line))
	}
	return w, len(lines)
}

func fitLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		lines[i] = fitWidth(line, width)
	}
	return lines
}

func fitWidth(line string, width int) string {
	w := lipgloss.Width(line)
	switch {
	case w > width:
		return ansi.Cut(line, 0, width)
	case w < width:
		return line + strings.Repeat(" ", width-w)
	}
	return line
}

func center(outer, inner int) int {
	return max((outer-inner)/2, 0)
}
