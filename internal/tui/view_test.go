package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/tacclock/internal/tui/view"
)

func sizedModel(t *testing.T, w, h int) Model {
	t.Helper()
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: w, Height: h})
	return m
}

func TestView_BeforeWindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	if got := m.View(); got != view.StartingText {
		t.Fatalf("View() = %q, want placeholder", got)
	}
}

func TestView_RendersRows(t *testing.T) {
	m := sizedModel(t, 80, 20)
	out := ansi.Strip(m.View())

	for _, want := range []string{windowTitle, "UT", "ET", "KT", "RT", "Warp 1x"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(out, "KT(sidereal)") {
		t.Error("sidereal row shown without debug")
	}
}

func TestView_FillsTerminal(t *testing.T) {
	m := sizedModel(t, 60, 16)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 16 {
		t.Fatalf("lines = %d, want 16", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 60 {
			t.Fatalf("line %d width = %d, want 60", i, w)
		}
	}
}

func TestView_TooSmall(t *testing.T) {
	m := sizedModel(t, 3, 2)
	if got := m.View(); got != "Terminal too small" {
		t.Fatalf("View() = %q", got)
	}
}

func TestView_AllRowsHidden(t *testing.T) {
	m := sizedModel(t, 80, 20)
	for _, k := range "uekr" {
		m, _ = press(t, m, runeKey(k))
	}
	if out := ansi.Strip(m.View()); !strings.Contains(out, "All rows hidden") {
		t.Fatal("expected empty-state text")
	}
}

func TestView_PausedStatus(t *testing.T) {
	m := sizedModel(t, 80, 20)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m.statusMsg = ""

	if out := ansi.Strip(m.View()); !strings.Contains(out, "PAUSED") {
		t.Fatal("expected PAUSED in status line")
	}
}

func TestView_ModalOverlay(t *testing.T) {
	tests := []struct {
		name  string
		key   rune
		title string
	}{
		{"settings", 's', "Settings"},
		{"help", '?', "Keys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sizedModel(t, 100, 40)
			m, _ = press(t, m, runeKey(tt.key))

			if f := m.frame(); f.Dialog == "" {
				t.Fatal("expected an open dialog")
			}
			if out := ansi.Strip(m.View()); !strings.Contains(out, tt.title) {
				t.Fatalf("view missing modal title %q", tt.title)
			}
		})
	}
}

func TestClockViewState_PausedRowsUsePausedBackground(t *testing.T) {
	m := sizedModel(t, 80, 20)
	m.clock.Pause()

	state := m.clockViewState(m.layout)
	want := m.styles.RowBackground(0, true)
	for i, r := range state.Rows {
		if bg := r.ValueStyle.GetBackground(); bg != want {
			t.Fatalf("row %d background = %v, want %v", i, bg, want)
		}
	}
}

func TestView_PaintsThemeBackground(t *testing.T) {
	prevProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prevProfile)
	})

	m := sizedModel(t, 40, 10)
	var r, g, b int
	if _, err := fmt.Sscanf(m.theme.Base.Bg, "#%02x%02x%02x", &r, &g, &b); err != nil {
		t.Fatalf("parsing theme bg %q: %v", m.theme.Base.Bg, err)
	}
	bgSeq := fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)

	for i, line := range strings.Split(m.View(), "\n") {
		if !strings.Contains(line, bgSeq) {
			t.Fatalf("line %d has no theme background: %q", i, line)
		}
	}
}

func TestDialogStyles_ButtonsUseModalBody(t *testing.T) {
	m, _ := newTestModel(t)
	buttons := view.RenderButtons(m.dialogStyles(), view.SettingsButtons)
	sep := m.styles.ModalBodyStyle.Render(" ")
	if !strings.Contains(buttons, sep) {
		t.Errorf("expected button separator to use the modal body style")
	}
}

func TestRenderInitModal(t *testing.T) {
	m, _ := newTestModel(t, WithInitState(InitState{
		NeedsInit:  true,
		DBMissing:  true,
		DBPath:     "/data/tacclock.db",
		ConfigPath: "/cfg/config.toml",
	}))
	m.initError = "permission denied"

	out := ansi.Strip(m.renderInitModal())
	for _, want := range []string{"Initialize tacclock", "/data/tacclock.db", "permission denied"} {
		if !strings.Contains(out, want) {
			t.Errorf("init modal missing %q", want)
		}
	}
	if strings.Contains(out, "/cfg/config.toml") {
		t.Error("config path shown although the config exists")
	}
}

func TestSettingsModel_MarksFocus(t *testing.T) {
	m, _ := newTestModel(t)
	m = openSettings(t, m, 2)

	vm := m.settingsModel()
	if len(vm.Toggles) != len(settingsToggles) || len(vm.Fields) != len(settingsNumbers) {
		t.Fatalf("toggles/fields = %d/%d", len(vm.Toggles), len(vm.Fields))
	}
	for i, f := range vm.Fields {
		if f.Focused != (i == 2) {
			t.Fatalf("field %d focused = %v", i, f.Focused)
		}
	}
	for i, tg := range vm.Toggles {
		if tg.Focused {
			t.Fatalf("toggle %d focused while a field has focus", i)
		}
	}
}
