package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tacclock/internal/mission"
	"github.com/javiermolinar/tacclock/internal/simclock"
)

// savedState returns the persisted clock, or the configured start when the
// clock was never saved.
func (a *App) savedState(ctx context.Context, repo mission.Repository) (simclock.State, error) {
	st, err := repo.LoadClockState(ctx)
	if err != nil {
		return simclock.State{}, fmt.Errorf("loading clock: %w", err)
	}
	if st == nil {
		return simclock.State{UT: a.config.Clock.StartUT, Warp: a.config.Clock.Warp}, nil
	}
	return *st, nil
}

func (a *App) clockCmd() *cobra.Command {
	var (
		setUT  float64
		warp   float64
		pause  bool
		resume bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Show or adjust the saved simulation clock",
		Long: `Show the saved simulation clock in every calendar.

With --set, --warp, --pause or --resume the clock is changed and saved,
so the next clock window starts from the new state.`,
		Example: `  tacclock clock
  tacclock clock --set 86400 --warp 100
  tacclock clock --pause`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validOutput(output); err != nil {
				return err
			}
			if pause && resume {
				return fmt.Errorf("--pause and --resume are mutually exclusive")
			}

			ctx := context.Background()
			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}
			st, err := a.savedState(ctx, repo)
			if err != nil {
				return err
			}

			// Restored clocks are paused while edited so the saved UT is exact.
			paused := st.Paused
			st.Paused = true
			clock := simclock.Restore(simclock.Real{}, st)
			changed := false
			if cmd.Flags().Changed("set") {
				if setUT < 0 {
					return fmt.Errorf("UT must be non-negative, got %v", setUT)
				}
				clock.Set(setUT)
				changed = true
			}
			if cmd.Flags().Changed("warp") {
				if err := clock.SetWarp(warp); err != nil {
					return err
				}
				changed = true
			}
			if pause || resume {
				paused = pause
				changed = true
			}

			next := clock.State()
			next.Paused = paused
			if changed {
				if err := repo.SaveClockState(ctx, next); err != nil {
					return fmt.Errorf("saving clock: %w", err)
				}
			}

			r := newReadout(next.UT, a.config.Kerbin, a.config.Units())
			r.Warp = next.Warp
			r.Paused = next.Paused
			if active, err := repo.ActiveMission(ctx); err != nil {
				return fmt.Errorf("loading mission: %w", err)
			} else if active != nil {
				r = r.withMission(active.Name, active.Elapsed(next.UT), a.config.Units())
			}
			return writeReadout(cmd.OutOrStdout(), r, output)
		},
	}

	cmd.Flags().Float64Var(&setUT, "set", 0, "Set universal time in seconds")
	cmd.Flags().Float64Var(&warp, "warp", 1, "Set the warp factor")
	cmd.Flags().BoolVar(&pause, "pause", false, "Pause the clock")
	cmd.Flags().BoolVar(&resume, "resume", false, "Resume the clock")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text or yaml)")

	return cmd
}
