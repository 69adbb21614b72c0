package calendar

import (
	"time"

	"github.com/dustin/go-humanize"
)

// InvalidTime is rendered in place of a date when the inputs cannot be
// converted (degenerate unit ratios or an unrepresentable elapsed time).
const InvalidTime = "--:--:-- --:--:--"

// FormatSimulation renders elapsed seconds in the simulation-native
// (Earth-like) calendar.
func FormatSimulation(elapsed float64) string {
	return format(elapsed, 0, EarthUnits)
}

// FormatAlt renders elapsed seconds in the fixed sidereal calendar.
func FormatAlt(elapsed float64) string {
	return format(elapsed, 0, SiderealUnits)
}

// FormatConfigurable renders elapsed+offset seconds in a calendar defined
// by u. Degenerate units yield InvalidTime.
func FormatConfigurable(elapsed, offset float64, u Units) string {
	return format(elapsed, offset, u)
}

func format(elapsed, offset float64, u Units) string {
	b, err := Convert(elapsed, offset, u)
	if err != nil {
		return InvalidTime
	}
	return b.String()
}

// FormatMission renders a mission elapsed time as T+YY:MM:DD HH:MM:SS.
// Unlike a date, every field is 0-based. Negative durations (before
// launch) render with a T- prefix.
func FormatMission(elapsed float64, u Units) string {
	sign := "T+"
	if elapsed < 0 {
		sign = "T-"
		elapsed = -elapsed
	}
	b, err := Decompose(elapsed, u)
	if err != nil {
		return sign + InvalidTime
	}
	return sign + b.String()
}

// FormatUniversal renders universal time as whole seconds with thousands
// separators.
func FormatUniversal(ut float64) string {
	s, ok := truncate(ut)
	if !ok {
		return "-"
	}
	return humanize.Comma(s)
}

// FormatReal renders a wall-clock reading.
func FormatReal(t time.Time) string {
	return t.Format("15:04:05")
}
