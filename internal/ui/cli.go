// Package ui implements the tacclock command line.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tacclock/internal/config"
	"github.com/javiermolinar/tacclock/internal/mission"
	"github.com/javiermolinar/tacclock/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo       mission.Repository
	ownsRepo   bool
	config     *config.Config
	configPath string
	root       *cobra.Command
	debug      bool // Enable debug logging
}

// NewApp creates a new CLI application. A nil repo is opened on first use
// from the configured database path.
func NewApp(repo mission.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, configPath: config.DefaultConfigPath()}

	a.root = &cobra.Command{
		Use:   "tacclock",
		Short: "A mission clock for Kerbin and Earth calendars",
		Long: `tacclock shows universal time as Earth and Kerbin calendar dates.

Run without arguments to open the clock window. Subcommands convert
elapsed seconds, manage missions and adjust the saved clock.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.config, a.configPath, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.convertCmd())
	a.root.AddCommand(a.missionCmd())
	a.root.AddCommand(a.clockCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tacclock %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the database the first time a command needs it.
func (a *App) ensureRepo() (mission.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	repo, err := tui.OpenRepo(a.config.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	a.repo = repo
	a.ownsRepo = true
	return repo, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database if the app opened it.
func (a *App) Close() error {
	if a.repo == nil || !a.ownsRepo {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	return err
}
