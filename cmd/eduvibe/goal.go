package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eduvibe/internal/bootstrap"
	goaldto "eduvibe/internal/modules/goal/dto"
)

func newGoalCmd(dataDir *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Daily goals"}

	var category string
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				g, err := app.GoalCLI.Add(cmd.Context(), args[0], category)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %q (%s) #%s for %s\n", g.Title, g.ID, g.Category, g.Date)
				return nil
			})
		},
	}
	add.Flags().StringVar(&category, "category", "", "goal category (default study)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List today's goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				today, err := app.GoalCLI.Today(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%s  %d/%d  %.0f%%\n", today.Progress.Date, today.Progress.Completed, today.Progress.Total, today.Progress.Percentage)
				for _, g := range today.Goals {
					_, _ = fmt.Fprintf(w, "%s %s\t%s\t#%s\n", checkMark(g.Completed), g.ID, g.Title, g.Category)
				}
				return nil
			})
		},
	}

	check := &cobra.Command{
		Use:   "check <goal>",
		Short: "Complete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.GoalCLI.Check(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printGoalCompletion(cmd, out)
				return nil
			})
		},
	}

	uncheck := &cobra.Command{
		Use:   "uncheck <goal>",
		Short: "Reopen a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.GoalCLI.Uncheck(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printGoalCompletion(cmd, out)
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <goal>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				g, err := app.GoalCLI.Delete(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %q (%s)\n", g.Title, g.ID)
				return nil
			})
		},
	}

	var days int
	var month string
	timeline := &cobra.Command{
		Use:   "timeline",
		Short: "Per-day goal completion for the last days or a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				points, err := app.GoalCLI.Timeline(cmd.Context(), days, month)
				if err != nil {
					return err
				}
				for _, p := range points {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d/%d\t%.0f%%\n", p.Date, p.Completed, p.Total, p.Percentage)
				}
				return nil
			})
		},
	}
	timeline.Flags().IntVar(&days, "days", 7, "trailing days")
	timeline.Flags().StringVar(&month, "month", "", "calendar month YYYY-MM (overrides --days)")

	goal.AddCommand(add, list, check, uncheck, del, timeline)
	return goal
}

func printGoalCompletion(cmd *cobra.Command, out goaldto.CompletionOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s  today %d/%d\n", checkMark(out.Goal.Completed), out.Goal.Title, out.Today.Completed, out.Today.Total)
	if out.StreakUpdated {
		_, _ = fmt.Fprintf(w, "streak %d\n", out.Streak)
	}
}

func newStreakCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the study streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				s, err := app.StreakCLI.Status(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "streak %d\n", s.Streak)
				if s.LastCompletedDate != "" {
					_, _ = fmt.Fprintf(w, "last study day %s\n", s.LastCompletedDate)
				}
				if s.AtRisk {
					_, _ = fmt.Fprintln(w, "complete something today to keep the streak")
				}
				return nil
			})
		},
	}
}

func newAchievementsCmd(dataDir *string) *cobra.Command {
	var earnedOnly bool
	achievements := &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				list, err := app.AchievementCLI.List(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%d of %d earned\n", list.Earned, len(list.Items))
				for _, it := range list.Items {
					if earnedOnly && !it.Earned {
						continue
					}
					_, _ = fmt.Fprintf(w, "%s %-22s %5.1f%%  %s\n", checkMark(it.Earned), it.Name, it.Progress*100, it.Description)
				}
				return nil
			})
		},
	}
	achievements.Flags().BoolVar(&earnedOnly, "earned", false, "only earned achievements")
	return achievements
}
