package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/javiermolinar/tacclock/internal/config"
	"github.com/javiermolinar/tacclock/internal/db"
	"github.com/javiermolinar/tacclock/internal/mission"
)

// InitState reports which files must be created before the clock can run.
// The paths are kept after initialization for status messages.
type InitState struct {
	NeedsInit     bool
	ConfigMissing bool
	DBMissing     bool
	ConfigPath    string
	DBPath        string
}

// DetectInitState stats the config file and the database named by cfg.
// An empty path counts as missing.
func DetectInitState(cfg *config.Config, configPath string) (InitState, error) {
	st := InitState{ConfigPath: configPath, DBPath: cfg.Storage.DBPath}

	var err error
	if st.ConfigMissing, err = missing(st.ConfigPath); err != nil {
		return InitState{}, fmt.Errorf("checking config path: %w", err)
	}
	if st.DBMissing, err = missing(st.DBPath); err != nil {
		return InitState{}, fmt.Errorf("checking db path: %w", err)
	}
	st.NeedsInit = st.ConfigMissing || st.DBMissing
	return st, nil
}

func missing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	switch _, err := os.Stat(path); {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, err
	}
}

// ErrNoDBPath is returned by OpenRepo for an empty path.
var ErrNoDBPath = errors.New("db path is empty")

// OpenRepo opens the mission database, creating its directory first.
func OpenRepo(dbPath string) (mission.Repository, error) {
	if dbPath == "" {
		return nil, ErrNoDBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

// initializeStorage writes the default config and opens the database,
// whichever the init modal reported missing.
func (m Model) initializeStorage() (Model, error) {
	if m.initState.ConfigMissing {
		if err := m.config.SaveTo(m.initState.ConfigPath); err != nil {
			return m, fmt.Errorf("saving config: %w", err)
		}
	}

	if m.repo == nil {
		repo, err := OpenRepo(m.initState.DBPath)
		if err != nil {
			return m, err
		}
		m.repo = repo
	}

	m.initState.NeedsInit = false
	m.initState.ConfigMissing = false
	m.initState.DBMissing = false
	return m, nil
}
