package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/tacclock/internal/mission"
	"github.com/javiermolinar/tacclock/internal/simclock"
)

func TestCreateMission(t *testing.T) {
	repo := newTestRepo(t)

	m, err := mission.New("Mun landing", 3600)
	if err != nil {
		t.Fatalf("mission.New failed: %v", err)
	}

	if err := repo.CreateMission(context.Background(), m); err != nil {
		t.Fatalf("CreateMission failed: %v", err)
	}

	if m.ID == 0 {
		t.Error("expected ID to be set after insert")
	}
}

func TestCreateMission_RejectsInvalidRows(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tests := []struct {
		name string
		m    *mission.Mission
	}{
		{name: "blank name", m: &mission.Mission{Name: "  ", LaunchUT: 10}},
		{name: "negative launch", m: &mission.Mission{Name: "Eve", LaunchUT: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.CreateMission(ctx, tt.m); err == nil {
				t.Error("expected constraint error, got nil")
			}
		})
	}
}

func TestGetMission(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	m := &mission.Mission{Name: "Duna transfer", LaunchUT: 86400.5, CreatedAt: created}
	if err := repo.CreateMission(ctx, m); err != nil {
		t.Fatalf("CreateMission failed: %v", err)
	}

	got, err := repo.GetMission(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetMission failed: %v", err)
	}

	if got.Name != "Duna transfer" {
		t.Errorf("Name = %q, want %q", got.Name, "Duna transfer")
	}
	if got.LaunchUT != 86400.5 {
		t.Errorf("LaunchUT = %v, want 86400.5", got.LaunchUT)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
}

func TestGetMission_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetMission(context.Background(), 999)
	if !errors.Is(err, mission.ErrMissionNotFound) {
		t.Errorf("GetMission error = %v, want ErrMissionNotFound", err)
	}
}

func TestListMissions_OrderedByLaunch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, in := range []struct {
		name string
		ut   float64
	}{
		{"Minmus", 5000},
		{"Orbit", 100},
		{"Mun", 2500},
	} {
		m, err := mission.New(in.name, in.ut)
		if err != nil {
			t.Fatalf("mission.New(%q) failed: %v", in.name, err)
		}
		if err := repo.CreateMission(ctx, m); err != nil {
			t.Fatalf("CreateMission(%q) failed: %v", in.name, err)
		}
	}

	missions, err := repo.ListMissions(ctx)
	if err != nil {
		t.Fatalf("ListMissions failed: %v", err)
	}

	want := []string{"Orbit", "Mun", "Minmus"}
	if len(missions) != len(want) {
		t.Fatalf("got %d missions, want %d", len(missions), len(want))
	}
	for i, name := range want {
		if missions[i].Name != name {
			t.Errorf("missions[%d].Name = %q, want %q", i, missions[i].Name, name)
		}
	}
}

func TestListMissions_Empty(t *testing.T) {
	repo := newTestRepo(t)

	missions, err := repo.ListMissions(context.Background())
	if err != nil {
		t.Fatalf("ListMissions failed: %v", err)
	}
	if len(missions) != 0 {
		t.Errorf("got %d missions, want 0", len(missions))
	}
}

func TestDeleteMission(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	m, _ := mission.New("Scrubbed", 10)
	if err := repo.CreateMission(ctx, m); err != nil {
		t.Fatalf("CreateMission failed: %v", err)
	}

	if err := repo.DeleteMission(ctx, m.ID); err != nil {
		t.Fatalf("DeleteMission failed: %v", err)
	}

	if _, err := repo.GetMission(ctx, m.ID); !errors.Is(err, mission.ErrMissionNotFound) {
		t.Errorf("GetMission after delete error = %v, want ErrMissionNotFound", err)
	}

	if err := repo.DeleteMission(ctx, m.ID); !errors.Is(err, mission.ErrMissionNotFound) {
		t.Errorf("second DeleteMission error = %v, want ErrMissionNotFound", err)
	}
}

func TestActiveMission(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	active, err := repo.ActiveMission(ctx)
	if err != nil {
		t.Fatalf("ActiveMission on empty db failed: %v", err)
	}
	if active != nil {
		t.Fatalf("ActiveMission on empty db = %+v, want nil", active)
	}

	first, _ := mission.New("First", 9000)
	second, _ := mission.New("Second", 100)
	for _, m := range []*mission.Mission{first, second} {
		if err := repo.CreateMission(ctx, m); err != nil {
			t.Fatalf("CreateMission failed: %v", err)
		}
	}

	active, err = repo.ActiveMission(ctx)
	if err != nil {
		t.Fatalf("ActiveMission failed: %v", err)
	}
	if active == nil || active.Name != "Second" {
		t.Errorf("ActiveMission = %+v, want the most recently created mission", active)
	}
}

func TestClockState_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	got, err := repo.LoadClockState(ctx)
	if err != nil {
		t.Fatalf("LoadClockState on empty db failed: %v", err)
	}
	if got != nil {
		t.Fatalf("LoadClockState on empty db = %+v, want nil", got)
	}

	want := simclock.State{UT: 123456.75, Warp: 50, Paused: true}
	if err := repo.SaveClockState(ctx, want); err != nil {
		t.Fatalf("SaveClockState failed: %v", err)
	}

	got, err = repo.LoadClockState(ctx)
	if err != nil {
		t.Fatalf("LoadClockState failed: %v", err)
	}
	if got == nil || *got != want {
		t.Errorf("LoadClockState = %+v, want %+v", got, want)
	}
}

func TestSaveClockState_Upserts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SaveClockState(ctx, simclock.State{UT: 1, Warp: 1}); err != nil {
		t.Fatalf("first SaveClockState failed: %v", err)
	}
	if err := repo.SaveClockState(ctx, simclock.State{UT: 2, Warp: 10}); err != nil {
		t.Fatalf("second SaveClockState failed: %v", err)
	}

	var count int
	if err := repo.db.QueryRow(`SELECT COUNT(*) FROM clock_state`).Scan(&count); err != nil {
		t.Fatalf("counting rows failed: %v", err)
	}
	if count != 1 {
		t.Errorf("clock_state rows = %d, want 1", count)
	}

	got, _ := repo.LoadClockState(ctx)
	if got == nil || got.UT != 2 || got.Warp != 10 || got.Paused {
		t.Errorf("LoadClockState = %+v, want UT 2 warp 10 running", got)
	}
}

func TestSaveClockState_RejectsZeroWarp(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.SaveClockState(context.Background(), simclock.State{UT: 1, Warp: 0}); err == nil {
		t.Error("expected constraint error for zero warp, got nil")
	}
}

func TestNew_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	repo, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m, _ := mission.New("Persistent", 42)
	if err := repo.CreateMission(context.Background(), m); err != nil {
		t.Fatalf("CreateMission failed: %v", err)
	}
	_ = repo.Close()

	repo, err = New(path)
	if err != nil {
		t.Fatalf("reopening failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	got, err := repo.GetMission(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("GetMission after reopen failed: %v", err)
	}
	if got.Name != "Persistent" {
		t.Errorf("Name = %q, want %q", got.Name, "Persistent")
	}
}

func TestNew_UnopenablePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain-file")
	if err := os.WriteFile(file, []byte(strings.Repeat("not a database\n", 128)), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "directory", path: dir},
		{name: "parent is a file", path: filepath.Join(file, "tacclock.db")},
		{name: "not a database", path: file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := New(tt.path)
			if err == nil {
				_ = repo.Close()
				t.Fatalf("New(%q) succeeded, want error", tt.path)
			}
			if repo != nil {
				t.Errorf("New(%q) returned a repository with error %v", tt.path, err)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "2026-03-01T12:30:00Z"},
		{in: "2026-03-01T12:30:00.123456789Z"},
		{in: "2026-03-01 12:30:00"},
		{in: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := parseTimestamp(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseTimestamp(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

// Compile-time check that SQLite implements mission.Repository.
var _ mission.Repository = (*SQLite)(nil)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
