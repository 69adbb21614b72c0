package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/tacclock/internal/calendar"
	"github.com/javiermolinar/tacclock/internal/mission"
)

func (a *App) missionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Manage missions",
		Long: `Missions are named flights with a launch time in universal time.

The most recently added mission drives the MT row of the clock window.`,
	}
	cmd.AddCommand(a.missionAddCmd())
	cmd.AddCommand(a.missionListCmd())
	cmd.AddCommand(a.missionRmCmd())
	return cmd
}

func (a *App) missionAddCmd() *cobra.Command {
	var launch float64

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a mission",
		Long: `Add a mission launching at the given universal time.

Without --launch the mission launches at the saved clock time.`,
		Example: `  tacclock mission add "Mun landing"
  tacclock mission add "Minmus probe" --launch 1200000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("launch") {
				st, err := a.savedState(ctx, repo)
				if err != nil {
					return err
				}
				launch = st.UT
			}

			m, err := mission.New(args[0], launch)
			if err != nil {
				return err
			}
			if err := repo.CreateMission(ctx, m); err != nil {
				return fmt.Errorf("creating mission: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created mission #%d: %s (launch UT %s)\n",
				m.ID, m.Name, calendar.FormatUniversal(m.LaunchUT))
			return nil
		},
	}

	cmd.Flags().Float64Var(&launch, "launch", 0, "Launch time in universal seconds (defaults to the saved clock)")
	return cmd
}

func (a *App) missionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List missions",
		Long: `List missions ordered by launch time with their elapsed time
at the saved clock. The active mission is marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}

			missions, err := repo.ListMissions(ctx)
			if err != nil {
				return fmt.Errorf("listing missions: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(missions) == 0 {
				fmt.Fprintln(out, "No missions found.")
				return nil
			}

			st, err := a.savedState(ctx, repo)
			if err != nil {
				return err
			}
			active, err := repo.ActiveMission(ctx)
			if err != nil {
				return fmt.Errorf("loading mission: %w", err)
			}

			// "  * #12  T+00:00:01 00:00:00  1,234,567  " is about 48 columns.
			nameWidth := termWidth() - 48
			if nameWidth < 12 {
				nameWidth = 12
			}

			fmt.Fprintln(out, formatHeader(fmt.Sprintf("Missions at UT %s", calendar.FormatUniversal(st.UT))))
			for _, m := range missions {
				marker := " "
				if active != nil && active.ID == m.ID {
					marker = "*"
				}
				mt := calendar.FormatMission(m.Elapsed(st.UT), a.config.Units())
				added := humanize.Time(m.CreatedAt)
				if m.Launched(st.UT) {
					mt = colorMission.Sprint(mt)
				} else {
					mt = formatMuted(mt)
					added = "pending, " + added
				}
				fmt.Fprintf(out, "  %s #%-3d %s  %s  %s %s\n",
					marker,
					m.ID,
					mt,
					calendar.FormatUniversal(m.LaunchUT),
					truncateText(m.Name, nameWidth),
					formatMuted("("+added+")"),
				)
			}
			return nil
		},
	}
}

func (a *App) missionRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a mission",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid mission ID %q", args[0])
			}
			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}
			if err := repo.DeleteMission(context.Background(), id); err != nil {
				if errors.Is(err, mission.ErrMissionNotFound) {
					return fmt.Errorf("mission #%d not found", id)
				}
				return fmt.Errorf("removing mission: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed mission #%d\n", id)
			return nil
		},
	}
}
