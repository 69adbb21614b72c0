package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/javiermolinar/tacclock/internal/calendar"
	"github.com/javiermolinar/tacclock/internal/tui/input"
)

// unitsValue is a --units flag holding five comma-separated ratios in the
// order seconds/minute, minutes/hour, hours/day, days/month, months/year.
type unitsValue struct {
	units *calendar.Units
}

var _ pflag.Value = (*unitsValue)(nil)

func (v *unitsValue) String() string {
	if v.units == nil {
		return ""
	}
	u := *v.units
	parts := []string{
		input.FormatFloat(u.SecondsPerMinute),
		input.FormatFloat(u.MinutesPerHour),
		input.FormatFloat(u.HoursPerDay),
		input.FormatFloat(u.DaysPerMonth),
		input.FormatFloat(u.MonthsPerYear),
	}
	return strings.Join(parts, ",")
}

func (v *unitsValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return fmt.Errorf("expected 5 comma-separated ratios, got %d", len(parts))
	}
	var r [5]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("ratio %d: %w", i+1, err)
		}
		r[i] = f
	}
	u, err := calendar.NewUnits(r[0], r[1], r[2], r[3], r[4])
	if err != nil {
		return err
	}
	*v.units = u
	return nil
}

func (v *unitsValue) Type() string {
	return "units"
}

func parseSeconds(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("seconds must be finite, got %q", s)
	}
	return v, nil
}

func (a *App) convertCmd() *cobra.Command {
	var (
		offset    float64
		kerbinDay float64
		output    string
		noColor   bool
	)
	units := a.config.Units()

	cmd := &cobra.Command{
		Use:   "convert <seconds>",
		Short: "Render elapsed seconds in every calendar",
		Long: `Convert elapsed universal time to Earth and Kerbin calendar dates.

The Kerbin calendar uses the configured offset, day length and ratios
unless --offset, --kerbin-day or --units is given. The offset is in Earth
seconds; Kerbin time runs at the length of a day under --units divided by
--kerbin-day. Negative times need a "--" separator.`,
		Example: `  tacclock convert 1000000
  tacclock convert 3600 --offset 21600 --units 60,60,6,6.4333,66.2306
  tacclock convert 86400 --units 60,60,24,30,12 --kerbin-day 86400
  tacclock convert --output yaml -- -120`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validOutput(output); err != nil {
				return err
			}
			ut, err := parseSeconds(args[0])
			if err != nil {
				return err
			}
			if !(kerbinDay > 0) || math.IsInf(kerbinDay, 0) {
				return fmt.Errorf("--kerbin-day must be a finite positive number, got %v", kerbinDay)
			}
			if noColor {
				DisableColor()
			}
			k := a.config.Kerbin
			k.OffsetSeconds = offset
			k.EarthSecondsPerKerbinDay = kerbinDay
			return writeReadout(cmd.OutOrStdout(), newReadout(ut, k, units), output)
		},
	}

	cmd.Flags().Float64Var(&offset, "offset", a.config.Kerbin.OffsetSeconds, "Kerbin epoch offset in seconds")
	cmd.Flags().Float64Var(&kerbinDay, "kerbin-day", a.config.Kerbin.EarthSecondsPerKerbinDay, "Earth seconds per Kerbin day")
	cmd.Flags().Var(&unitsValue{units: &units}, "units", "Kerbin ratios: sec/min,min/h,h/day,day/month,month/year")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text or yaml)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
