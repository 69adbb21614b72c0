// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tacclock/internal/config"
	"github.com/javiermolinar/tacclock/internal/mission"
	"github.com/javiermolinar/tacclock/internal/simclock"
)

// TickMsg is sent on every clock refresh.
type TickMsg struct {
	Time time.Time
}

// MissionLoadedMsg is sent when the active mission has been read. Mission is nil
// when no mission exists.
type MissionLoadedMsg struct {
	Mission *mission.Mission
}

// ClockLoadedMsg is sent when the persisted clock has been read. State is nil
// when the clock was never saved.
type ClockLoadedMsg struct {
	State *simclock.State
}

// ClockSavedMsg is sent after the clock state is persisted.
type ClockSavedMsg struct {
	State simclock.State
}

// ConfigSavedMsg is sent after the configuration is written.
type ConfigSavedMsg struct {
	Path string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Tick schedules the next clock refresh.
func Tick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// LoadActiveMission reads the most recent mission.
func LoadActiveMission(repo mission.Repository) tea.Cmd {
	return func() tea.Msg {
		m, err := repo.ActiveMission(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading mission: %w", err)}
		}
		return MissionLoadedMsg{Mission: m}
	}
}

// LoadClockState reads the persisted simulation clock.
func LoadClockState(repo mission.Repository) tea.Cmd {
	return func() tea.Msg {
		st, err := repo.LoadClockState(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ClockLoadedMsg{State: st}
	}
}

// SaveClockState persists the simulation clock.
func SaveClockState(repo mission.Repository, st simclock.State) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return nil
		}
		if err := repo.SaveClockState(context.Background(), st); err != nil {
			return ErrMsg{Err: err}
		}
		return ClockSavedMsg{State: st}
	}
}

// SaveConfig writes cfg to path.
func SaveConfig(cfg config.Config, path string) tea.Cmd {
	return func() tea.Msg {
		if err := cfg.SaveTo(path); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving config: %w", err)}
		}
		return ConfigSavedMsg{Path: path}
	}
}

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

// CopyToClipboard copies text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied clock to clipboard"}
	}
}
