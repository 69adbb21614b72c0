package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tacclock/internal/config"
	"github.com/javiermolinar/tacclock/internal/simclock"
)

// DebugLogger writes TUI events to a file as JSON lines.
type DebugLogger struct {
	mu      sync.Mutex
	out     io.WriteCloser
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "tacclock-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugLog = newDebugLogger(f)
	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

func newDebugLogger(out io.WriteCloser) *DebugLogger {
	return &DebugLogger{out: out, enabled: true}
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog == nil || debugLog.out == nil {
		return
	}
	debugLog.log("DEBUG_END", map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})
	_ = debugLog.out.Close()
	debugLog = nil
}

func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.out == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.out, "%s\n", b)
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key":  msg.String(),
		"type": msg.Type.String(),
	})
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("MODE_CHANGE", map[string]any{
		"from":   from.String(),
		"to":     to.String(),
		"reason": reason,
	})
}

// LogSettingsApplied logs the display and calendar settings after a
// successful apply.
func LogSettingsApplied(cfg *config.Config) {
	if !debugEnabled() || cfg == nil {
		return
	}
	debugLog.log("SETTINGS_APPLIED", map[string]any{
		"display": cfg.Display,
		"kerbin":  cfg.Kerbin,
	})
}

// LogClockState logs a clock snapshot.
func LogClockState(st simclock.State, action string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("CLOCK_STATE", map[string]any{
		"action": action,
		"ut":     st.UT,
		"warp":   st.Warp,
		"paused": st.Paused,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() || err == nil {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
