// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/tacclock/internal/calendar"
)

// Tick bounds in milliseconds.
const (
	MinTickMS = 50
	MaxTickMS = 5000
)

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = "mocha"

var themes = []string{"mocha", "macchiato", "frappe", "latte"}

// Themes returns the names accepted by ui.theme.
func Themes() []string {
	return slices.Clone(themes)
}

// IsTheme reports whether name is an accepted theme, ignoring case.
func IsTheme(name string) bool {
	return slices.Contains(themes, strings.ToLower(strings.TrimSpace(name)))
}

// Config holds the application configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Kerbin  KerbinConfig  `toml:"kerbin"`
	Clock   ClockConfig   `toml:"clock"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// DisplayConfig selects which clock rows are shown.
type DisplayConfig struct {
	ShowUniversal bool `toml:"show_universal"`
	ShowEarth     bool `toml:"show_earth"`
	ShowKerbin    bool `toml:"show_kerbin"`
	ShowMission   bool `toml:"show_mission"`
	ShowReal      bool `toml:"show_real"`
	Debug         bool `toml:"debug"` // adds the KT(sidereal) row
}

// KerbinConfig holds the configurable calendar: an offset, the length of a
// Kerbin day in Earth seconds and five ratios.
type KerbinConfig struct {
	OffsetSeconds            float64 `toml:"offset_seconds"`
	EarthSecondsPerKerbinDay float64 `toml:"earth_seconds_per_kerbin_day"`
	SecondsPerMinute         float64 `toml:"seconds_per_minute"`
	MinutesPerHour           float64 `toml:"minutes_per_hour"`
	HoursPerDay              float64 `toml:"hours_per_day"`
	DaysPerMonth             float64 `toml:"days_per_month"`
	MonthsPerYear            float64 `toml:"months_per_year"`
}

// Rate returns Kerbin seconds per Earth second: the day length the ratios
// describe divided by EarthSecondsPerKerbinDay.
func (k KerbinConfig) Rate(u calendar.Units) float64 {
	return u.SecondsPerMinute * u.MinutesPerHour * u.HoursPerDay / k.EarthSecondsPerKerbinDay
}

// FormatTime renders ut in the Kerbin calendar with units u: the offset is
// added in Earth seconds, then the sum is scaled by Rate.
func (k KerbinConfig) FormatTime(ut float64, u calendar.Units) string {
	return calendar.FormatConfigurable((ut+k.OffsetSeconds)*k.Rate(u), 0, u)
}

// ClockConfig holds simulation clock settings used when no saved state exists.
type ClockConfig struct {
	StartUT float64 `toml:"start_ut"`
	Warp    float64 `toml:"warp"`
	TickMS  int     `toml:"tick_ms"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	u := calendar.SiderealUnits
	return &Config{
		Display: DisplayConfig{
			ShowUniversal: true,
			ShowEarth:     true,
			ShowKerbin:    true,
			ShowMission:   false,
			ShowReal:      true,
		},
		Kerbin: KerbinConfig{
			EarthSecondsPerKerbinDay: u.SecondsPerMinute * u.MinutesPerHour * u.HoursPerDay,
			SecondsPerMinute:         u.SecondsPerMinute,
			MinutesPerHour:           u.MinutesPerHour,
			HoursPerDay:              u.HoursPerDay,
			DaysPerMonth:             u.DaysPerMonth,
			MonthsPerYear:            u.MonthsPerYear,
		},
		Clock: ClockConfig{
			Warp:   1,
			TickMS: 250,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: DefaultTheme,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tacclock.db"
	}
	return filepath.Join(home, ".local", "share", "tacclock", "tacclock.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "tacclock", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"TACCLOCK_OFFSET_SECONDS", &cfg.Kerbin.OffsetSeconds},
		{"TACCLOCK_EARTH_SECONDS_PER_KERBIN_DAY", &cfg.Kerbin.EarthSecondsPerKerbinDay},
		{"TACCLOCK_SECONDS_PER_MINUTE", &cfg.Kerbin.SecondsPerMinute},
		{"TACCLOCK_MINUTES_PER_HOUR", &cfg.Kerbin.MinutesPerHour},
		{"TACCLOCK_HOURS_PER_DAY", &cfg.Kerbin.HoursPerDay},
		{"TACCLOCK_DAYS_PER_MONTH", &cfg.Kerbin.DaysPerMonth},
		{"TACCLOCK_MONTHS_PER_YEAR", &cfg.Kerbin.MonthsPerYear},
		{"TACCLOCK_WARP", &cfg.Clock.Warp},
	}
	for _, f := range floats {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", f.key, err)
		}
		*f.dst = n
	}

	if v := os.Getenv("TACCLOCK_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing TACCLOCK_DEBUG: %w", err)
		}
		cfg.Display.Debug = b
	}

	if v := os.Getenv("TACCLOCK_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("TACCLOCK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Units returns the configurable calendar units.
func (c *Config) Units() calendar.Units {
	return calendar.Units{
		SecondsPerMinute: c.Kerbin.SecondsPerMinute,
		MinutesPerHour:   c.Kerbin.MinutesPerHour,
		HoursPerDay:      c.Kerbin.HoursPerDay,
		DaysPerMonth:     c.Kerbin.DaysPerMonth,
		MonthsPerYear:    c.Kerbin.MonthsPerYear,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := calendar.Validate(c.Units()); err != nil {
		return err
	}
	if math.IsNaN(c.Kerbin.OffsetSeconds) || math.IsInf(c.Kerbin.OffsetSeconds, 0) {
		return fmt.Errorf("offset_seconds must be finite, got %v", c.Kerbin.OffsetSeconds)
	}
	if d := c.Kerbin.EarthSecondsPerKerbinDay; !(d > 0) || math.IsInf(d, 0) {
		return fmt.Errorf("earth_seconds_per_kerbin_day must be a finite positive number, got %v", d)
	}
	if math.IsNaN(c.Clock.StartUT) || math.IsInf(c.Clock.StartUT, 0) || c.Clock.StartUT < 0 {
		return fmt.Errorf("start_ut must be a finite non-negative number, got %v", c.Clock.StartUT)
	}
	if !(c.Clock.Warp > 0) || math.IsInf(c.Clock.Warp, 0) {
		return fmt.Errorf("warp must be a finite positive number, got %v", c.Clock.Warp)
	}
	if c.Clock.TickMS < MinTickMS || c.Clock.TickMS > MaxTickMS {
		return fmt.Errorf("tick_ms must be between %d and %d, got %d", MinTickMS, MaxTickMS, c.Clock.TickMS)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if !IsTheme(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(themes, ", "))
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
