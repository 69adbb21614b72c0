package tui

import (
	"time"

	"github.com/javiermolinar/tacclock/internal/calendar"
	"github.com/javiermolinar/tacclock/internal/config"
	"github.com/javiermolinar/tacclock/internal/mission"
)

type rowKind int

const (
	rowUniversal rowKind = iota
	rowEarth
	rowKerbin
	rowKerbinSidereal
	rowMission
	rowReal
)

// clockRow is one formatted line of the clock window.
type clockRow struct {
	kind  rowKind
	label string
	value string
}

// buildRows formats every enabled row for universal time ut. The order is
// fixed: UT, ET, KT, KT(sidereal), MT, RT.
func buildRows(ut float64, now time.Time, cfg *config.Config, active *mission.Mission) []clockRow {
	d := cfg.Display
	rows := make([]clockRow, 0, 6)

	if d.ShowUniversal {
		rows = append(rows, clockRow{rowUniversal, "UT", calendar.FormatUniversal(ut)})
	}
	if d.ShowEarth {
		rows = append(rows, clockRow{rowEarth, "ET", calendar.FormatSimulation(ut)})
	}
	if d.ShowKerbin {
		rows = append(rows, clockRow{rowKerbin, "KT", cfg.Kerbin.FormatTime(ut, cfg.Units())})
		if d.Debug {
			rows = append(rows, clockRow{rowKerbinSidereal, "KT(sidereal)", calendar.FormatAlt(ut)})
		}
	}
	if d.ShowMission && active != nil {
		rows = append(rows, clockRow{rowMission, "MT", calendar.FormatMission(active.Elapsed(ut), cfg.Units())})
	}
	if d.ShowReal {
		rows = append(rows, clockRow{rowReal, "RT", calendar.FormatReal(now)})
	}
	return rows
}
