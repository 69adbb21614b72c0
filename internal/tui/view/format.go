// Package view provides rendering helpers for the TUI.
package view

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatWarp formats a warp factor as "1,000x".
func FormatWarp(warp float64) string {
	if warp == math.Trunc(warp) && math.Abs(warp) < 1e15 {
		return humanize.Comma(int64(warp)) + "x"
	}
	return strconv.FormatFloat(warp, 'f', -1, 64) + "x"
}

// ClockStatus describes the simulation clock for the status line.
func ClockStatus(warp float64, paused bool) string {
	s := "Warp " + FormatWarp(warp)
	if paused {
		return "PAUSED  " + s
	}
	return s
}
