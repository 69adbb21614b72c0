package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/tacclock/internal/calendar"
	"github.com/javiermolinar/tacclock/internal/config"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputYAML = "yaml"
)

// Readout is one instant rendered in every calendar.
type Readout struct {
	UT          string  `yaml:"ut"`
	Seconds     float64 `yaml:"seconds"`
	Earth       string  `yaml:"earth"`
	Kerbin      string  `yaml:"kerbin"`
	KerbinSid   string  `yaml:"kerbin_sidereal"`
	Mission     string  `yaml:"mission,omitempty"`
	MissionName string  `yaml:"mission_name,omitempty"`
	Warp        float64 `yaml:"warp,omitempty"`
	Paused      bool    `yaml:"paused,omitempty"`
}

// newReadout renders ut in the Earth, Kerbin and sidereal calendars. The
// Kerbin row uses the offset and day length of k with units u.
func newReadout(ut float64, k config.KerbinConfig, u calendar.Units) Readout {
	return Readout{
		UT:        calendar.FormatUniversal(ut),
		Seconds:   ut,
		Earth:     calendar.FormatSimulation(ut),
		Kerbin:    k.FormatTime(ut, u),
		KerbinSid: calendar.FormatAlt(ut),
	}
}

// withMission adds the mission elapsed time for a named mission.
func (r Readout) withMission(name string, elapsed float64, u calendar.Units) Readout {
	r.Mission = calendar.FormatMission(elapsed, u)
	r.MissionName = name
	return r
}

func validOutput(format string) error {
	switch format {
	case outputText, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use %s or %s)", format, outputText, outputYAML)
	}
}

// writeReadout prints r in the requested format.
func writeReadout(w io.Writer, r Readout, format string) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	row := func(label, value string, c *color.Color) {
		// Pad before coloring so escape codes don't skew the columns.
		fmt.Fprintf(w, "  %s %s\n", formatMuted(fmt.Sprintf("%-14s", label)), c.Sprint(value))
	}
	row("UT", r.UT, colorUniversal)
	row("ET", r.Earth, colorEarth)
	row("KT", r.Kerbin, colorKerbin)
	row("KT(sidereal)", r.KerbinSid, colorKerbin)
	if r.Mission != "" {
		row("MT", r.Mission+"  "+r.MissionName, colorMission)
	}
	if r.Warp > 0 {
		status := fmt.Sprintf("Warp %gx", r.Warp)
		if r.Paused {
			status += "  " + formatWarning("PAUSED")
		}
		fmt.Fprintf(w, "\n  %s\n", status)
	}
	return nil
}

// truncateText shortens s to width columns with a trailing ellipsis.
func truncateText(s string, width int) string {
	r := []rune(s)
	if width <= 3 || len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
