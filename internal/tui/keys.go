package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tacclock/internal/config"
	"github.com/javiermolinar/tacclock/internal/tui/commands"
	"github.com/javiermolinar/tacclock/internal/tui/view"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	switch m.mode {
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in the clock window.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()

	// Row toggles
	case "u":
		m.toggleDisplay(func(d *config.DisplayConfig) *bool { return &d.ShowUniversal })
	case "e":
		m.toggleDisplay(func(d *config.DisplayConfig) *bool { return &d.ShowEarth })
	case "k":
		m.toggleDisplay(func(d *config.DisplayConfig) *bool { return &d.ShowKerbin })
	case "m":
		m.toggleDisplay(func(d *config.DisplayConfig) *bool { return &d.ShowMission })
	case "r":
		m.toggleDisplay(func(d *config.DisplayConfig) *bool { return &d.ShowReal })
	case "d":
		m.toggleDisplay(func(d *config.DisplayConfig) *bool { return &d.Debug })

	// Clock control
	case " ":
		m.clockSettled = true
		paused := m.clock.TogglePause()
		LogClockState(m.clock.State(), "toggle_pause")
		if paused {
			m.setStatus("Paused")
		} else {
			m.setStatus("Resumed")
		}
		m.refreshRows()
	case "+", "=":
		m.clockSettled = true
		m.clock.WarpUp()
		LogClockState(m.clock.State(), "warp_up")
		m.setStatus("Warp " + view.FormatWarp(m.clock.Warp()))
	case "-", "_":
		m.clockSettled = true
		m.clock.WarpDown()
		LogClockState(m.clock.State(), "warp_down")
		m.setStatus("Warp " + view.FormatWarp(m.clock.Warp()))

	// Modals
	case "s":
		m.settings = newSettingsForm(m.config, m.styles)
		m.setMode(ModeModal, ModalSettings, "open settings")
	case "?":
		m.setMode(ModeModal, ModalHelp, "open help")

	case "y":
		if len(m.rows) == 0 {
			m.setStatus("Nothing to copy")
			return m, nil
		}
		return m, commands.CopyToClipboard(view.ClockText(m.plainRows()))
	}
	return m, nil
}

func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalSettings:
		return m.handleSettingsKeys(msg)
	case ModalHelp:
		return m.handleHelpKeys(msg)
	case ModalInit:
		return m.handleInitKeys(msg)
	default:
		if msg.String() == "esc" {
			m.setMode(ModeNormal, ModalNone, "close modal")
		}
	}
	return m, nil
}

func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "esc":
		m.settings = settingsForm{}
		m.setMode(ModeNormal, ModalNone, "cancel settings")
		return m, nil
	case "enter":
		return m.applySettings()
	case "tab", "down":
		m.settings, cmd = m.settings.moveFocus(1)
		return m, cmd
	case "shift+tab", "up":
		m.settings, cmd = m.settings.moveFocus(-1)
		return m, cmd
	case " ":
		if m.settings.inputIndex() < 0 {
			m.settings = m.settings.toggle()
			return m, nil
		}
	}

	m.settings, cmd = m.settings.updateInput(msg)
	return m, cmd
}

func (m Model) applySettings() (tea.Model, tea.Cmd) {
	next, err := m.settings.apply(m.config)
	if err != nil {
		LogError("apply settings", err)
		m.settings.err = err.Error()
		m.setStatus("Settings rejected")
		return m, nil
	}

	m.config = next
	m.settings = settingsForm{}
	m.refreshRows()
	m.setMode(ModeNormal, ModalNone, "apply settings")
	LogSettingsApplied(next)
	return m, commands.SaveConfig(*next, m.configPath)
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "?", "q":
		m.setMode(ModeNormal, ModalNone, "close help")
	}
	return m, nil
}

func (m Model) handleInitKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		updated, err := m.initializeStorage()
		if err != nil {
			LogError("initialize storage", err)
			m.initError = err.Error()
			return m, nil
		}
		m = updated
		m.initError = ""
		m.setMode(ModeNormal, ModalNone, "storage initialized")
		return m, m.startCmds()
	case "esc", "q":
		return m, tea.Quit
	}
	return m, nil
}

// quit persists the clock state before exiting.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.repo == nil {
		return m, tea.Quit
	}
	return m, tea.Sequence(m.saveClockCmd(), tea.Quit)
}

func (m Model) saveClockCmd() tea.Cmd {
	st := m.clock.State()
	LogClockState(st, "quit")
	return commands.SaveClockState(m.repo, st)
}

// toggleDisplay flips one display flag on a copy of the config, so the
// caller's config is never mutated.
func (m *Model) toggleDisplay(field func(*config.DisplayConfig) *bool) {
	cfg := *m.config
	p := field(&cfg.Display)
	*p = !*p
	m.config = &cfg
	m.refreshRows()
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusTime = time.Now().Add(3 * time.Second)
}

func (m Model) plainRows() []view.ClockRow {
	rows := make([]view.ClockRow, 0, len(m.rows))
	for _, r := range m.rows {
		rows = append(rows, view.ClockRow{Label: r.label, Value: r.value})
	}
	return rows
}

func (m Model) statusLine() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	status := view.ClockStatus(m.clock.Warp(), m.clock.Paused())
	if m.mission != nil && m.config.Display.ShowMission {
		status += fmt.Sprintf("  Mission: %s", m.mission.Name)
	}
	return status
}
