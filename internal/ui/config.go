package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tacclock/internal/config"
	"github.com/javiermolinar/tacclock/internal/tui/input"
	"github.com/javiermolinar/tacclock/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  tacclock config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), a.configPath)
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	p := prompter{r: reader, w: out}
	cfg.Display.ShowUniversal = p.askBool("Show universal time", cfg.Display.ShowUniversal)
	cfg.Display.ShowEarth = p.askBool("Show Earth time", cfg.Display.ShowEarth)
	cfg.Display.ShowKerbin = p.askBool("Show Kerbin time", cfg.Display.ShowKerbin)
	cfg.Display.ShowMission = p.askBool("Show mission time", cfg.Display.ShowMission)
	cfg.Display.ShowReal = p.askBool("Show real time", cfg.Display.ShowReal)
	cfg.Display.Debug = p.askBool("Show sidereal debug row", cfg.Display.Debug)
	cfg.Kerbin.OffsetSeconds = p.askFloat("Kerbin epoch offset (s)", cfg.Kerbin.OffsetSeconds)
	cfg.Kerbin.SecondsPerMinute = p.askFloat("Seconds per minute", cfg.Kerbin.SecondsPerMinute)
	cfg.Kerbin.MinutesPerHour = p.askFloat("Minutes per hour", cfg.Kerbin.MinutesPerHour)
	cfg.Kerbin.HoursPerDay = p.askFloat("Hours per day", cfg.Kerbin.HoursPerDay)
	cfg.Kerbin.DaysPerMonth = p.askFloat("Days per month", cfg.Kerbin.DaysPerMonth)
	cfg.Kerbin.MonthsPerYear = p.askFloat("Months per year", cfg.Kerbin.MonthsPerYear)
	cfg.Kerbin.EarthSecondsPerKerbinDay = p.askFloat("Earth seconds per Kerbin day", cfg.Kerbin.EarthSecondsPerKerbinDay)
	cfg.Clock.StartUT = p.askFloat("Start UT (s)", cfg.Clock.StartUT)
	cfg.Clock.Warp = p.askFloat("Warp", cfg.Clock.Warp)
	cfg.Clock.TickMS = p.askInt("Tick (ms)", cfg.Clock.TickMS)
	cfg.Storage.DBPath = p.ask("Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = p.askTheme(cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	f := input.FormatFloat
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[display]")
	fmt.Fprintf(w, "  show_universal     = %t\n", cfg.Display.ShowUniversal)
	fmt.Fprintf(w, "  show_earth         = %t\n", cfg.Display.ShowEarth)
	fmt.Fprintf(w, "  show_kerbin        = %t\n", cfg.Display.ShowKerbin)
	fmt.Fprintf(w, "  show_mission       = %t\n", cfg.Display.ShowMission)
	fmt.Fprintf(w, "  show_real          = %t\n", cfg.Display.ShowReal)
	fmt.Fprintf(w, "  debug              = %t\n", cfg.Display.Debug)
	fmt.Fprintln(w, "\n[kerbin]")
	fmt.Fprintf(w, "  offset_seconds     = %s\n", f(cfg.Kerbin.OffsetSeconds))
	fmt.Fprintf(w, "  seconds_per_minute = %s\n", f(cfg.Kerbin.SecondsPerMinute))
	fmt.Fprintf(w, "  minutes_per_hour   = %s\n", f(cfg.Kerbin.MinutesPerHour))
	fmt.Fprintf(w, "  hours_per_day      = %s\n", f(cfg.Kerbin.HoursPerDay))
	fmt.Fprintf(w, "  days_per_month     = %s\n", f(cfg.Kerbin.DaysPerMonth))
	fmt.Fprintf(w, "  months_per_year    = %s\n", f(cfg.Kerbin.MonthsPerYear))
	fmt.Fprintf(w, "  earth_seconds_per_kerbin_day = %s\n", f(cfg.Kerbin.EarthSecondsPerKerbinDay))
	fmt.Fprintln(w, "\n[clock]")
	fmt.Fprintf(w, "  start_ut           = %s\n", f(cfg.Clock.StartUT))
	fmt.Fprintf(w, "  warp               = %s\n", f(cfg.Clock.Warp))
	fmt.Fprintf(w, "  tick_ms            = %d\n", cfg.Clock.TickMS)
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path            = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme              = %s\n", cfg.UI.Theme)
}

func promptYesNo(r *bufio.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", question)
	line, _ := r.ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}

// prompter asks for one value at a time. Empty input keeps the current value.
type prompter struct {
	r *bufio.Reader
	w io.Writer
}

func (p prompter) ask(label, current string) string {
	if current == "" {
		fmt.Fprintf(p.w, "  %s: ", label)
	} else {
		fmt.Fprintf(p.w, "  %s [%s]: ", label, current)
	}
	line, _ := p.r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}

func (p prompter) askBool(label string, current bool) bool {
	for {
		s := strings.ToLower(p.ask(label+" (y/n)", yesNo(current)))
		switch s {
		case "y", "yes", "true":
			return true
		case "n", "no", "false":
			return false
		}
		fmt.Fprintf(p.w, "  Invalid answer %q. Use y or n\n", s)
		if p.exhausted() {
			return current
		}
	}
}

func (p prompter) askFloat(label string, current float64) float64 {
	for {
		s := p.ask(label, input.FormatFloat(current))
		if v, ok := input.ParseFloat(s, current); ok {
			return v
		}
		fmt.Fprintf(p.w, "  Invalid number %q\n", s)
		if p.exhausted() {
			return current
		}
	}
}

func (p prompter) askInt(label string, current int) int {
	for {
		s := p.ask(label, strconv.Itoa(current))
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
		fmt.Fprintf(p.w, "  Invalid integer %q\n", s)
		if p.exhausted() {
			return current
		}
	}
}

func (p prompter) askTheme(current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(p.ask(label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(p.w, "  Invalid theme %q. Available: %s\n", value, options)
		if p.exhausted() {
			return current
		}
	}
}

// exhausted reports whether the input has no more lines to retry with.
func (p prompter) exhausted() bool {
	_, err := p.r.Peek(1)
	return err != nil
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
