package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tacclock/internal/config"
	"github.com/javiermolinar/tacclock/internal/tui/input"
)

type settingsToggle struct {
	label string
	field func(*config.DisplayConfig) *bool
}

type settingsNumber struct {
	label string
	field func(*config.KerbinConfig) *float64
}

var settingsToggles = []settingsToggle{
	{"Universal time", func(d *config.DisplayConfig) *bool { return &d.ShowUniversal }},
	{"Earth time", func(d *config.DisplayConfig) *bool { return &d.ShowEarth }},
	{"Kerbin time", func(d *config.DisplayConfig) *bool { return &d.ShowKerbin }},
	{"Kerbin mission time", func(d *config.DisplayConfig) *bool { return &d.ShowMission }},
	{"Real time", func(d *config.DisplayConfig) *bool { return &d.ShowReal }},
	{"Debug (sidereal row)", func(d *config.DisplayConfig) *bool { return &d.Debug }},
}

var settingsNumbers = []settingsNumber{
	{"Epoch offset (s)", func(k *config.KerbinConfig) *float64 { return &k.OffsetSeconds }},
	{"Seconds per minute", func(k *config.KerbinConfig) *float64 { return &k.SecondsPerMinute }},
	{"Minutes per hour", func(k *config.KerbinConfig) *float64 { return &k.MinutesPerHour }},
	{"Hours per day", func(k *config.KerbinConfig) *float64 { return &k.HoursPerDay }},
	{"Days per month", func(k *config.KerbinConfig) *float64 { return &k.DaysPerMonth }},
	{"Months per year", func(k *config.KerbinConfig) *float64 { return &k.MonthsPerYear }},
	{"Earth s per Kerbin day", func(k *config.KerbinConfig) *float64 { return &k.EarthSecondsPerKerbinDay }},
}

// settingsForm is the draft edited by the settings modal. Nothing reaches the
// running config until apply succeeds.
type settingsForm struct {
	display config.DisplayConfig
	inputs  []textinput.Model
	focus   int
	err     string
}

func newSettingsForm(cfg *config.Config, styles *Styles) settingsForm {
	kerbin := cfg.Kerbin
	inputs := make([]textinput.Model, len(settingsNumbers))
	for i, n := range settingsNumbers {
		ti := textinput.New()
		ti.CharLimit = 32
		ti.Width = 20
		ti.Prompt = ""
		ti.SetValue(input.FormatFloat(*n.field(&kerbin)))
		ti.TextStyle = styles.ModalInputTextStyle
		ti.PlaceholderStyle = styles.ModalPlaceholderStyle
		ti.Cursor.Style = styles.ModalInputCursorStyle
		ti.Cursor.TextStyle = styles.ModalInputTextStyle
		inputs[i] = ti
	}
	return settingsForm{display: cfg.Display, inputs: inputs}
}

func (f settingsForm) fieldCount() int {
	return len(settingsToggles) + len(f.inputs)
}

// inputIndex returns the focused text input, or -1 when a toggle has focus.
func (f settingsForm) inputIndex() int {
	if f.focus < len(settingsToggles) {
		return -1
	}
	return f.focus - len(settingsToggles)
}

func (f settingsForm) moveFocus(delta int) (settingsForm, tea.Cmd) {
	if n := f.fieldCount(); n > 0 {
		f.focus = ((f.focus+delta)%n + n) % n
	}
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.inputIndex() {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return f, cmd
}

func (f settingsForm) toggle() settingsForm {
	if f.focus < len(settingsToggles) {
		p := settingsToggles[f.focus].field(&f.display)
		*p = !*p
	}
	return f
}

func (f settingsForm) updateInput(msg tea.Msg) (settingsForm, tea.Cmd) {
	idx := f.inputIndex()
	if idx < 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[idx], cmd = f.inputs[idx].Update(msg)
	return f, cmd
}

// apply builds a candidate config from the draft. Fields that do not parse
// keep their current value. The candidate is returned only if it validates.
func (f settingsForm) apply(cfg *config.Config) (*config.Config, error) {
	next := *cfg
	next.Display = f.display
	for i, n := range settingsNumbers {
		p := n.field(&next.Kerbin)
		*p, _ = input.ParseFloat(f.inputs[i].Value(), *p)
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return &next, nil
}
