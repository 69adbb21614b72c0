package tui

import "github.com/javiermolinar/tacclock/internal/tui/view"

var helpHints = []view.KeyHint{
	{Key: "space", Desc: "Pause or resume the clock"},
	{Key: "+ / -", Desc: "Warp up or down"},
	{Key: "u", Desc: "Toggle universal time"},
	{Key: "e", Desc: "Toggle Earth time"},
	{Key: "k", Desc: "Toggle Kerbin time"},
	{Key: "m", Desc: "Toggle mission time"},
	{Key: "r", Desc: "Toggle real time"},
	{Key: "d", Desc: "Toggle the sidereal debug row"},
	{Key: "s", Desc: "Settings"},
	{Key: "y", Desc: "Copy the clock"},
	{Key: "?", Desc: "This help"},
	{Key: "q", Desc: "Save the clock and quit"},
}

func (m Model) settingsModel() view.SettingsModel {
	f := m.settings
	toggles := make([]view.SettingsToggle, 0, len(settingsToggles))
	for i, t := range settingsToggles {
		draft := f.display
		toggles = append(toggles, view.SettingsToggle{
			Label:   t.label,
			On:      *t.field(&draft),
			Focused: f.focus == i,
		})
	}

	fields := make([]view.SettingsField, 0, len(f.inputs))
	for i, in := range f.inputs {
		fields = append(fields, view.SettingsField{
			Label:   settingsNumbers[i].label,
			Value:   in.View(),
			Focused: f.inputIndex() == i,
		})
	}

	return view.SettingsModel{
		Toggles: toggles,
		Fields:  fields,
		Error:   f.err,
	}
}

func (m Model) initModalModel() view.InitModalModel {
	return view.InitModalModel{
		ConfigPath:    m.initState.ConfigPath,
		DBPath:        m.initState.DBPath,
		ConfigMissing: m.initState.ConfigMissing,
		DBMissing:     m.initState.DBMissing,
		ErrorMessage:  m.initError,
	}
}
