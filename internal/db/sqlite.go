// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/tacclock/internal/mission"
	"github.com/javiermolinar/tacclock/internal/simclock"
)

// SQLite implements mission.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// CreateMission adds a new mission to the repository.
func (s *SQLite) CreateMission(ctx context.Context, m *mission.Mission) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `INSERT INTO missions (name, launch_ut, created_at) VALUES (?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		m.Name,
		m.LaunchUT,
		m.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting mission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	m.ID = id

	return nil
}

// GetMission retrieves a mission by ID.
func (s *SQLite) GetMission(ctx context.Context, id int64) (*mission.Mission, error) {
	query := `SELECT id, name, launch_ut, created_at FROM missions WHERE id = ?`

	m, err := scanMission(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: #%d", mission.ErrMissionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying mission: %w", err)
	}
	return m, nil
}

// ListMissions returns all missions ordered by launch time.
func (s *SQLite) ListMissions(ctx context.Context) ([]*mission.Mission, error) {
	query := `SELECT id, name, launch_ut, created_at FROM missions ORDER BY launch_ut, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying missions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var missions []*mission.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning mission: %w", err)
		}
		missions = append(missions, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating missions: %w", err)
	}

	return missions, nil
}

// DeleteMission removes a mission by ID.
func (s *SQLite) DeleteMission(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM missions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting mission: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: #%d", mission.ErrMissionNotFound, id)
	}

	return nil
}

// ActiveMission returns the most recently created mission, or nil if none exist.
func (s *SQLite) ActiveMission(ctx context.Context) (*mission.Mission, error) {
	query := `SELECT id, name, launch_ut, created_at FROM missions ORDER BY id DESC LIMIT 1`

	m, err := scanMission(s.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying active mission: %w", err)
	}
	return m, nil
}

// SaveClockState upserts the single clock row.
func (s *SQLite) SaveClockState(ctx context.Context, st simclock.State) error {
	query := `
		INSERT INTO clock_state (id, ut, warp, paused, saved_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			ut = excluded.ut,
			warp = excluded.warp,
			paused = excluded.paused,
			saved_at = excluded.saved_at
	`

	_, err := s.db.ExecContext(ctx, query,
		st.UT,
		st.Warp,
		st.Paused,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving clock state: %w", err)
	}
	return nil
}

// LoadClockState returns the saved clock, or nil if the clock was never saved.
func (s *SQLite) LoadClockState(ctx context.Context) (*simclock.State, error) {
	var st simclock.State

	err := s.db.QueryRowContext(ctx, `SELECT ut, warp, paused FROM clock_state WHERE id = 1`).
		Scan(&st.UT, &st.Warp, &st.Paused)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading clock state: %w", err)
	}
	return &st, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMission(row rowScanner) (*mission.Mission, error) {
	var (
		m         mission.Mission
		createdAt string
	)

	if err := row.Scan(&m.ID, &m.Name, &m.LaunchUT, &createdAt); err != nil {
		return nil, err
	}

	t, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	m.CreatedAt = t

	return &m, nil
}

// parseTimestamp parses a timestamp in the formats SQLite might return.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
