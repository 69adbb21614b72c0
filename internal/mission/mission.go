// Package mission defines the mission domain types for tacclock.
package mission

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/javiermolinar/tacclock/internal/simclock"
)

// Validation errors.
var (
	ErrEmptyName     = errors.New("mission name cannot be empty")
	ErrInvalidLaunch = errors.New("launch UT must be a finite non-negative number")
)

// Domain errors.
var (
	ErrMissionNotFound = errors.New("mission not found")
)

// Mission is a named flight with a launch time in universal time.
type Mission struct {
	ID        int64
	Name      string
	LaunchUT  float64
	CreatedAt time.Time
}

// New creates a new Mission with validation.
func New(name string, launchUT float64) (*Mission, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if launchUT < 0 || math.IsNaN(launchUT) || math.IsInf(launchUT, 0) {
		return nil, ErrInvalidLaunch
	}
	return &Mission{
		Name:      name,
		LaunchUT:  launchUT,
		CreatedAt: time.Now(),
	}, nil
}

// Elapsed returns the mission elapsed time at ut, negative before launch.
func (m *Mission) Elapsed(ut float64) float64 {
	return ut - m.LaunchUT
}

// Launched reports whether the mission has launched at ut.
func (m *Mission) Launched(ut float64) bool {
	return ut >= m.LaunchUT
}

// Repository defines the storage interface for missions and the clock.
type Repository interface {
	// CreateMission adds a new mission and sets its ID.
	CreateMission(ctx context.Context, m *Mission) error

	// GetMission retrieves a mission by ID. Returns ErrMissionNotFound if absent.
	GetMission(ctx context.Context, id int64) (*Mission, error)

	// ListMissions returns all missions ordered by launch time.
	ListMissions(ctx context.Context) ([]*Mission, error)

	// DeleteMission removes a mission. Returns ErrMissionNotFound if absent.
	DeleteMission(ctx context.Context, id int64) error

	// ActiveMission returns the most recently created mission, or nil if there is none.
	ActiveMission(ctx context.Context) (*Mission, error)

	// SaveClockState persists the simulation clock.
	SaveClockState(ctx context.Context, s simclock.State) error

	// LoadClockState returns the persisted clock, or nil if none was saved.
	LoadClockState(ctx context.Context) (*simclock.State, error)

	// Close releases any resources held by the repository.
	Close() error
}
