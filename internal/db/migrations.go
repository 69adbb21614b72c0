package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS missions (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL CHECK(length(trim(name)) > 0),
			launch_ut  REAL NOT NULL CHECK(launch_ut >= 0),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_missions_launch ON missions(launch_ut);

		CREATE TABLE IF NOT EXISTS clock_state (
			id       INTEGER PRIMARY KEY CHECK(id = 1),
			ut       REAL NOT NULL,
			warp     REAL NOT NULL CHECK(warp > 0),
			paused   INTEGER NOT NULL DEFAULT 0,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
