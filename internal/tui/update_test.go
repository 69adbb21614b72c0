package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tacclock/internal/calendar"
	"github.com/javiermolinar/tacclock/internal/mission"
	"github.com/javiermolinar/tacclock/internal/simclock"
	"github.com/javiermolinar/tacclock/internal/tui/commands"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model, cmd
}

func TestTick_AdvancesRowsAndReschedules(t *testing.T) {
	m, wall := newTestModel(t)
	if err := m.clock.SetWarp(10); err != nil {
		t.Fatalf("SetWarp: %v", err)
	}

	wall.Advance(100 * time.Second)
	m, cmd := update(t, m, commands.TickMsg{Time: wall.Now()})
	if cmd == nil {
		t.Fatal("expected the next tick to be scheduled")
	}
	if got, want := m.rows[0].value, calendar.FormatUniversal(1000); got != want {
		t.Fatalf("UT = %q, want %q", got, want)
	}
}

func TestTick_ClearsExpiredStatus(t *testing.T) {
	m, _ := newTestModel(t)
	m.statusMsg = "Paused"
	m.statusTime = time.Now().Add(-time.Second)

	m, _ = update(t, m, commands.TickMsg{Time: time.Now()})
	if m.statusMsg != "" {
		t.Fatalf("status = %q, want cleared", m.statusMsg)
	}
}

func TestClockLoaded_RestoresState(t *testing.T) {
	m, wall := newTestModel(t)
	st := &simclock.State{UT: 5000, Warp: 100, Paused: true}

	m, _ = update(t, m, commands.ClockLoadedMsg{State: st})
	wall.Advance(time.Minute)

	if got := m.clock.State(); got != *st {
		t.Fatalf("state = %+v, want %+v", got, *st)
	}
	if got, want := m.rows[0].value, "5,000"; got != want {
		t.Fatalf("UT = %q, want %q", got, want)
	}
}

func TestClockLoaded_NilKeepsConfigStart(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.clock

	m, _ = update(t, m, commands.ClockLoadedMsg{})
	if m.clock != before {
		t.Fatal("expected the configured clock to be kept")
	}
}

func TestClockLoaded_AfterClockKeyKeepsUserChange(t *testing.T) {
	tests := []struct {
		name  string
		key   tea.KeyMsg
		check func(t *testing.T, st simclock.State)
	}{
		{"pause", tea.KeyMsg{Type: tea.KeySpace}, func(t *testing.T, st simclock.State) {
			if !st.Paused {
				t.Error("pause lost to the saved state")
			}
		}},
		{"warp up", runeKey('+'), func(t *testing.T, st simclock.State) {
			if st.Warp != 5 {
				t.Errorf("warp = %v, want 5", st.Warp)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			m, _ = press(t, m, tt.key)
			before := m.clock

			m, _ = update(t, m, commands.ClockLoadedMsg{State: &simclock.State{UT: 9000, Warp: 1000}})
			if m.clock != before {
				t.Fatal("saved state replaced a clock the user already changed")
			}
			tt.check(t, m.clock.State())
		})
	}
}

func TestClockLoaded_AppliesOnce(t *testing.T) {
	m, _ := newTestModel(t)
	first := &simclock.State{UT: 5000, Warp: 10, Paused: true}

	m, _ = update(t, m, commands.ClockLoadedMsg{State: first})
	m, _ = update(t, m, commands.ClockLoadedMsg{State: &simclock.State{UT: 1, Warp: 1}})
	if got := m.clock.State(); got != *first {
		t.Fatalf("state = %+v, want the first restore %+v", got, *first)
	}
}

func TestMissionLoaded(t *testing.T) {
	m, _ := newTestModel(t)
	m.config.Display.ShowMission = true

	m, _ = update(t, m, commands.MissionLoadedMsg{Mission: &mission.Mission{ID: 2, Name: "Eve", LaunchUT: 0}})
	if m.mission == nil || m.mission.Name != "Eve" {
		t.Fatalf("mission = %+v, want Eve", m.mission)
	}
	if !hasRow(m, "MT") {
		t.Fatal("expected MT row once a mission is loaded")
	}
}

func TestErrMsg_SetsStatus(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, commands.ErrMsg{Err: errors.New("disk full")})
	if !strings.Contains(m.statusMsg, "disk full") {
		t.Fatalf("status = %q, want error text", m.statusMsg)
	}
}

func TestStatusMsg_SchedulesClear(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, commands.StatusMsgCmd{Msg: "Copied clock to clipboard"})
	if m.statusMsg != "Copied clock to clipboard" {
		t.Fatalf("status = %q", m.statusMsg)
	}
	if cmd == nil {
		t.Fatal("expected a clear command")
	}

	m.statusTime = time.Now().Add(-time.Second)
	m, _ = update(t, m, commands.ClearStatusMsg{})
	if m.statusMsg != "" {
		t.Fatalf("status = %q, want cleared", m.statusMsg)
	}
}

func TestConfigSavedMsg(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, commands.ConfigSavedMsg{Path: "/tmp/config.toml"})
	if !strings.Contains(m.statusMsg, "/tmp/config.toml") {
		t.Fatalf("status = %q, want saved path", m.statusMsg)
	}
}

func TestWindowSize_BuildsLayout(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	if m.width != 80 || m.height != 24 {
		t.Fatalf("size = %dx%d, want 80x24", m.width, m.height)
	}
	if m.layout.InnerW != 76 || m.layout.InnerH != 22 {
		t.Fatalf("inner = %dx%d, want 76x22", m.layout.InnerW, m.layout.InnerH)
	}
	if m.layout.FooterH != footerFull {
		t.Fatalf("footer height = %d, want %d", m.layout.FooterH, footerFull)
	}
	if m.layout.ClockH != 20 {
		t.Fatalf("clock height = %d, want 20", m.layout.ClockH)
	}
}

func TestLayout_CompactFooterOnShortTerminal(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 6})

	if m.layout.FooterH != footerCompact {
		t.Fatalf("footer height = %d, want %d", m.layout.FooterH, footerCompact)
	}
}
