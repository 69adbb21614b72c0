package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tacclock/internal/simclock"
	"github.com/javiermolinar/tacclock/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = m.buildLayoutCache(m.width, m.height)
		return m, nil

	case commands.TickMsg:
		m.refreshRows()
		if m.statusMsg != "" && msg.Time.After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, commands.Tick(m.tickInterval())

	case commands.ClockLoadedMsg:
		if msg.State != nil && !m.clockSettled {
			m.clock = simclock.Restore(m.wall, *msg.State)
			LogClockState(*msg.State, "restore")
			m.refreshRows()
		}
		m.clockSettled = true
		return m, nil

	case commands.MissionLoadedMsg:
		m.mission = msg.Mission
		m.refreshRows()
		return m, nil

	case commands.ClockSavedMsg:
		LogClockState(msg.State, "saved")
		return m, nil

	case commands.ConfigSavedMsg:
		m.statusMsg = "Settings saved to " + msg.Path
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, nil

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Cursor blink and other input messages for the focused settings field.
	if m.mode == ModeModal && m.modalType == ModalSettings {
		var cmd tea.Cmd
		m.settings, cmd = m.settings.updateInput(msg)
		return m, cmd
	}
	return m, nil
}
