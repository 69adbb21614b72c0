// Package input parses values typed into TUI text fields.
package input

import (
	"strconv"
	"strings"
)

// ParseFloat parses text as a number. Text that does not parse leaves prev
// in place and reports false.
func ParseFloat(text string, prev float64) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return prev, false
	}
	return v, true
}

// FormatFloat renders v with the fewest digits that parse back to v.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
