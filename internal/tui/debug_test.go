package tui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tacclock/internal/config"
	"github.com/javiermolinar/tacclock/internal/simclock"
)

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func captureDebugLog(t *testing.T) *bufferCloser {
	t.Helper()
	buf := &bufferCloser{}
	prev := debugLog
	debugLog = newDebugLogger(buf)
	t.Cleanup(func() { debugLog = prev })
	return buf
}

func decodeEntries(t *testing.T, buf *bufferCloser) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestDebugLogger_Events(t *testing.T) {
	buf := captureDebugLog(t)

	LogKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}})
	LogModeChange(ModeNormal, ModeModal, "open settings")
	LogSettingsApplied(config.Default())
	LogClockState(simclock.State{UT: 10, Warp: 5}, "quit")
	LogError("save", errors.New("boom"))
	LogError("ignored", nil)

	entries := decodeEntries(t, buf)
	want := []string{"KEY_PRESS", "MODE_CHANGE", "SETTINGS_APPLIED", "CLOCK_STATE", "ERROR"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(entries), len(want))
	}
	for i, event := range want {
		if entries[i]["event"] != event {
			t.Errorf("entry %d event = %v, want %s", i, entries[i]["event"], event)
		}
		if seq, _ := entries[i]["seq"].(float64); int(seq) != i+1 {
			t.Errorf("entry %d seq = %v, want %d", i, entries[i]["seq"], i+1)
		}
	}
	if entries[0]["key"] != "u" {
		t.Errorf("key = %v, want u", entries[0]["key"])
	}
	if entries[1]["to"] != "Modal" {
		t.Errorf("to = %v, want Modal", entries[1]["to"])
	}
	if entries[3]["ut"] != 10.0 {
		t.Errorf("ut = %v, want 10", entries[3]["ut"])
	}
}

func TestDebugLogger_DisabledWritesNothing(t *testing.T) {
	prev := debugLog
	t.Cleanup(func() { debugLog = prev })

	if err := InitDebugLogger(false); err != nil {
		t.Fatalf("InitDebugLogger: %v", err)
	}
	LogKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	if debugLog.out != nil {
		t.Fatal("disabled logger should have no output")
	}
}

func TestCloseDebugLogger(t *testing.T) {
	buf := captureDebugLog(t)
	CloseDebugLogger()

	if !buf.closed {
		t.Fatal("expected output to be closed")
	}
	entries := decodeEntries(t, buf)
	if len(entries) != 1 || entries[0]["event"] != "DEBUG_END" {
		t.Fatalf("entries = %v, want one DEBUG_END", entries)
	}
}
