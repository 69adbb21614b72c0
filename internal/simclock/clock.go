// Package simclock provides the simulation clock that supplies universal
// time (UT) to the calendar converter.
package simclock

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// ErrInvalidWarp is returned when a warp factor is not a finite positive number.
var ErrInvalidWarp = errors.New("warp must be a finite positive number")

// WarpLevels are the time-warp steps reachable with WarpUp and WarpDown.
var WarpLevels = []float64{1, 5, 10, 50, 100, 1000, 10000, 100000}

// Clock is an interface for getting the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// Real is the production clock, backed by system time.
type Real struct{}

// Now returns the current system time.
func (Real) Now() time.Time { return time.Now() }

// Mock is a controllable clock for tests.
type Mock struct {
	mu      sync.Mutex
	current time.Time
}

// NewMock creates a Mock clock set to the given time.
func NewMock(t time.Time) *Mock {
	if t.IsZero() {
		t = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return &Mock{current: t}
}

// Now returns the mock clock's current time.
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Set sets the mock clock to an absolute time.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the clock forward by the given duration.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// State is a persistable snapshot of a MissionClock.
type State struct {
	UT     float64
	Warp   float64
	Paused bool
}

// MissionClock advances universal time against a wall clock, scaled by a
// warp factor. It is safe for concurrent use.
type MissionClock struct {
	mu       sync.Mutex
	wall     Clock
	baseUT   float64   // UT at baseWall
	baseWall time.Time // wall time of the last rebase
	warp     float64
	paused   bool
}

// New creates a running MissionClock starting at startUT. A warp that is
// not a finite positive number falls back to 1.
func New(wall Clock, startUT, warp float64) *MissionClock {
	if wall == nil {
		wall = Real{}
	}
	if !validWarp(warp) {
		warp = 1
	}
	if math.IsNaN(startUT) || math.IsInf(startUT, 0) {
		startUT = 0
	}
	return &MissionClock{
		wall:     wall,
		baseUT:   startUT,
		baseWall: wall.Now(),
		warp:     warp,
	}
}

// Restore rebuilds a MissionClock from a saved state.
func Restore(wall Clock, s State) *MissionClock {
	c := New(wall, s.UT, s.Warp)
	c.paused = s.Paused
	return c
}

// UT returns the current universal time in seconds.
func (c *MissionClock) UT() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.utLocked()
}

func (c *MissionClock) utLocked() float64 {
	if c.paused {
		return c.baseUT
	}
	elapsed := c.wall.Now().Sub(c.baseWall).Seconds()
	return c.baseUT + elapsed*c.warp
}

// rebaseLocked folds the time elapsed so far into baseUT so that a change
// of warp or pause state only affects the future.
func (c *MissionClock) rebaseLocked() {
	c.baseUT = c.utLocked()
	c.baseWall = c.wall.Now()
}

// Set jumps to an absolute universal time.
func (c *MissionClock) Set(ut float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseUT = ut
	c.baseWall = c.wall.Now()
}

// Warp returns the current warp factor.
func (c *MissionClock) Warp() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.warp
}

// SetWarp changes the warp factor.
func (c *MissionClock) SetWarp(w float64) error {
	if !validWarp(w) {
		return fmt.Errorf("%w: %v", ErrInvalidWarp, w)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rebaseLocked()
	c.warp = w
	return nil
}

// WarpUp moves to the next higher warp level and returns it.
func (c *MissionClock) WarpUp() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, level := range WarpLevels {
		if level > c.warp {
			c.rebaseLocked()
			c.warp = level
			break
		}
	}
	return c.warp
}

// WarpDown moves to the next lower warp level and returns it.
func (c *MissionClock) WarpDown() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(WarpLevels) - 1; i >= 0; i-- {
		if WarpLevels[i] < c.warp {
			c.rebaseLocked()
			c.warp = WarpLevels[i]
			break
		}
	}
	return c.warp
}

// Pause freezes universal time.
func (c *MissionClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.rebaseLocked()
	c.paused = true
}

// Resume restarts a paused clock from where it stopped.
func (c *MissionClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.baseWall = c.wall.Now()
	c.paused = false
}

// TogglePause flips the pause state and reports whether the clock is now paused.
func (c *MissionClock) TogglePause() bool {
	if c.Paused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

// Paused reports whether the clock is paused.
func (c *MissionClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// State returns a snapshot suitable for persistence.
func (c *MissionClock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		UT:     c.utLocked(),
		Warp:   c.warp,
		Paused: c.paused,
	}
}

func validWarp(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
