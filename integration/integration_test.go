package integration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/tacclock/internal/calendar"
	"github.com/javiermolinar/tacclock/internal/db"
	"github.com/javiermolinar/tacclock/internal/mission"
	"github.com/javiermolinar/tacclock/internal/simclock"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// openRepo opens the database at path with automatic cleanup.
func openRepo(t *testing.T, path string) *db.SQLite {
	t.Helper()
	repo, err := db.New(path)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// createMission is a helper to create and insert a mission.
func createMission(t *testing.T, repo *db.SQLite, name string, launch float64) *mission.Mission {
	t.Helper()
	m, err := mission.New(name, launch)
	if err != nil {
		t.Fatalf("failed to create mission: %v", err)
	}
	if err := repo.CreateMission(context.Background(), m); err != nil {
		t.Fatalf("failed to insert mission: %v", err)
	}
	return m
}

func TestClockSession_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tacclock.db")
	ctx := context.Background()

	// First session: run an hour of game time at 10x warp, then save.
	wall := simclock.NewMock(epoch)
	clock := simclock.New(wall, 0, 10)
	wall.Advance(6 * time.Minute)
	if got := clock.UT(); got != 3600 {
		t.Fatalf("UT after 6m at 10x = %v, want 3600", got)
	}

	repo := openRepo(t, path)
	if err := repo.SaveClockState(ctx, clock.State()); err != nil {
		t.Fatalf("SaveClockState: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Second session resumes where the first stopped.
	repo = openRepo(t, path)
	st, err := repo.LoadClockState(ctx)
	if err != nil {
		t.Fatalf("LoadClockState: %v", err)
	}
	if st == nil {
		t.Fatal("expected saved clock state")
	}

	wall = simclock.NewMock(epoch.Add(24 * time.Hour))
	restored := simclock.Restore(wall, *st)
	if restored.UT() != 3600 || restored.Warp() != 10 {
		t.Fatalf("restored UT/warp = %v/%v, want 3600/10", restored.UT(), restored.Warp())
	}
	wall.Advance(time.Second)
	if got := calendar.FormatSimulation(restored.UT()); got != "01:01:01 01:00:10" {
		t.Fatalf("ET = %q, want 01:01:01 01:00:10", got)
	}
}

func TestPausedClock_DoesNotAdvance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tacclock.db")
	ctx := context.Background()
	repo := openRepo(t, path)

	wall := simclock.NewMock(epoch)
	clock := simclock.New(wall, 500, 1)
	clock.Pause()
	wall.Advance(time.Hour)

	if err := repo.SaveClockState(ctx, clock.State()); err != nil {
		t.Fatalf("SaveClockState: %v", err)
	}
	st, err := repo.LoadClockState(ctx)
	if err != nil {
		t.Fatalf("LoadClockState: %v", err)
	}

	restored := simclock.Restore(wall, *st)
	wall.Advance(time.Hour)
	if !restored.Paused() || restored.UT() != 500 {
		t.Fatalf("restored paused/UT = %v/%v, want true/500", restored.Paused(), restored.UT())
	}
}

func TestActiveMission_ElapsedFollowsClock(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "tacclock.db"))
	ctx := context.Background()

	createMission(t, repo, "Kerbal X", 0)
	latest := createMission(t, repo, "Mun lander", 100)

	active, err := repo.ActiveMission(ctx)
	if err != nil {
		t.Fatalf("ActiveMission: %v", err)
	}
	if active == nil || active.ID != latest.ID {
		t.Fatalf("active = %+v, want mission #%d", active, latest.ID)
	}

	tests := []struct {
		ut   float64
		want string
	}{
		{ut: 40, want: "T-00:00:00 00:01:00"},
		{ut: 100, want: "T+00:00:00 00:00:00"},
		{ut: 100 + 3661, want: "T+00:00:00 01:01:01"},
	}
	for _, tt := range tests {
		if got := calendar.FormatMission(active.Elapsed(tt.ut), calendar.SiderealUnits); got != tt.want {
			t.Errorf("MT at %v = %q, want %q", tt.ut, got, tt.want)
		}
	}
}

func TestDeleteMission_NotFound(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "tacclock.db"))

	err := repo.DeleteMission(context.Background(), 999)
	if !errors.Is(err, mission.ErrMissionNotFound) {
		t.Fatalf("DeleteMission error = %v, want ErrMissionNotFound", err)
	}
}
