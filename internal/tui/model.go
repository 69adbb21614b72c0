// Package tui provides the terminal clock window for tacclock.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tacclock/internal/config"
	"github.com/javiermolinar/tacclock/internal/mission"
	"github.com/javiermolinar/tacclock/internal/simclock"
	"github.com/javiermolinar/tacclock/internal/tui/commands"
	"github.com/javiermolinar/tacclock/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeModal
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalSettings
	ModalHelp
	ModalInit
)

const windowTitle = "TAC Atomic Clock"

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo       mission.Repository
	config     *config.Config
	configPath string

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Clock state
	wall    simclock.Clock
	clock   *simclock.MissionClock
	mission *mission.Mission
	rows    []clockRow
	// Set once the clock is restored or the user changes it; later saved
	// states are ignored.
	clockSettled bool

	mode      Mode
	modalType ModalType
	settings  settingsForm
	initState InitState
	initError string

	overlay OverlayModel

	// Terminal dimensions and layout
	width  int
	height int
	layout LayoutCache

	// Messages
	statusMsg  string
	statusTime time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithInitState sets the startup initialization state.
func WithInitState(state InitState) ModelOption {
	return func(m *Model) {
		m.initState = state
		if state.NeedsInit {
			m.mode = ModeModal
			m.modalType = ModalInit
		}
	}
}

// WithWallClock replaces the system clock, for tests.
func WithWallClock(wall simclock.Clock) ModelOption {
	return func(m *Model) {
		m.wall = wall
		m.clock = simclock.New(wall, m.config.Clock.StartUT, m.config.Clock.Warp)
	}
}

// WithConfigPath sets where applied settings are saved.
func WithConfigPath(path string) ModelOption {
	return func(m *Model) {
		m.configPath = path
	}
}

// New creates a new TUI model. repo may be nil until storage is initialized.
func New(repo mission.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	wall := simclock.Clock(simclock.Real{})
	m := &Model{
		repo:       repo,
		config:     cfg,
		configPath: config.DefaultConfigPath(),
		theme:      t,
		styles:     styles,
		wall:       wall,
		clock:      simclock.New(wall, cfg.Clock.StartUT, cfg.Clock.Warp),
		mode:       ModeNormal,
		overlay:    NewOverlayModel(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.layout = m.buildLayoutCache(0, 0)
	m.refreshRows()
	return m
}

// Init starts the tick loop and loads persisted state.
func (m Model) Init() tea.Cmd {
	if m.initState.NeedsInit {
		return nil
	}
	return m.startCmds()
}

func (m Model) startCmds() tea.Cmd {
	cmds := []tea.Cmd{commands.Tick(m.tickInterval())}
	if m.repo != nil {
		cmds = append(cmds, commands.LoadClockState(m.repo), commands.LoadActiveMission(m.repo))
	}
	return tea.Batch(cmds...)
}

func (m Model) tickInterval() time.Duration {
	return time.Duration(m.config.Clock.TickMS) * time.Millisecond
}

func (m *Model) refreshRows() {
	m.rows = buildRows(m.clock.UT(), m.wall.Now(), m.config, m.mission)
}

func (m *Model) setMode(mode Mode, modal ModalType, reason string) {
	if m.mode != mode {
		LogModeChange(m.mode, mode, reason)
	}
	m.mode = mode
	m.modalType = modal
}

// Run starts the TUI.
func Run(repo mission.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, config.DefaultConfigPath(), false)
}

// RunWithDebug starts the TUI with optional debug logging. When repo is nil
// the database is opened here, or the init modal asks to create it.
func RunWithDebug(repo mission.Repository, cfg *config.Config, configPath string, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	initialRepo := repo
	var initState InitState

	if repo == nil {
		state, err := DetectInitState(cfg, configPath)
		if err != nil {
			return err
		}
		initState = state
		if !state.NeedsInit {
			repo, err = OpenRepo(state.DBPath)
			if err != nil {
				return err
			}
		}
	}

	model := New(repo, cfg, WithInitState(initState), WithConfigPath(configPath))
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if initialRepo == nil {
		if m, ok := finalModel.(Model); ok && m.repo != nil {
			_ = m.repo.Close()
		}
	}
	return err
}
