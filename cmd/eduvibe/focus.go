package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"eduvibe/internal/bootstrap"
	focusdomain "eduvibe/internal/modules/focus/domain"
	focusdto "eduvibe/internal/modules/focus/dto"
	apperrors "eduvibe/internal/platform/errors"
)

func newFocusCmd(dataDir *string) *cobra.Command {
	focus := &cobra.Command{Use: "focus", Short: "Focus sessions and the pomodoro timer"}

	var task string
	var minutes int
	start := &cobra.Command{
		Use:   "start",
		Short: "Start a focus session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				active, err := app.FocusCLI.Start(cmd.Context(), task, plannedMinutes(app, minutes))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus started %s  %d min  %s\n", active.SessionID, active.PlannedMinutes, active.StartedAt.Format(time.Kitchen))
				return nil
			})
		},
	}
	start.Flags().StringVar(&task, "task", "", "task label")
	start.Flags().IntVar(&minutes, "minutes", 0, "planned length (default from config)")

	taskCmd := &cobra.Command{
		Use:   "task <label>",
		Short: "Relabel the running session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				active, err := app.FocusCLI.SetTask(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "task set to %q\n", active.Task)
				return nil
			})
		},
	}

	var stopTask string
	stop := &cobra.Command{
		Use:   "stop",
		Short: "Stop and record the running session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.FocusCLI.Stop(cmd.Context(), stopTask)
				if err != nil {
					return err
				}
				printStopped(cmd, out)
				return nil
			})
		},
	}
	stop.Flags().StringVar(&stopTask, "task", "", "final task label")

	var runTask string
	var runMinutes int
	run := &cobra.Command{
		Use:   "run",
		Short: "Run a pomodoro countdown and record the session when it ends",
		Long:  "Runs the countdown in the foreground. Interrupting pauses the timer and leaves the session active; use focus stop to record it.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				return runCountdown(cmd, app, runTask, plannedMinutes(app, runMinutes))
			})
		},
	}
	run.Flags().StringVar(&runTask, "task", "", "task label")
	run.Flags().IntVar(&runMinutes, "minutes", 0, "countdown length (default from config)")

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Recent focus sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				sessions, err := app.FocusCLI.History(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(sessions) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no focus sessions")
					return nil
				}
				for _, s := range sessions {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s-%s\t%.0f min\t%s\n", s.Date, s.StartTime.Format("15:04"), s.EndTime.Format("15:04"), s.Hours*60, s.Task)
				}
				return nil
			})
		},
	}
	history.Flags().IntVar(&limit, "limit", focusdomain.DefaultRecent, "number of sessions")

	var days int
	report := &cobra.Command{
		Use:   "report",
		Short: "Focus hours per day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				totals, err := app.FocusCLI.Report(cmd.Context(), days)
				if err != nil {
					return err
				}
				for _, t := range totals {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%5.2f h\t%d sessions\n", t.Date, t.Hours, t.Sessions)
				}
				return nil
			})
		},
	}
	report.Flags().IntVar(&days, "days", 7, "trailing days")

	focus.AddCommand(start, taskCmd, stop, run, history, report)
	return focus
}

func plannedMinutes(app *bootstrap.App, flag int) int {
	if flag > 0 {
		return flag
	}
	return app.Config.FocusMinutes
}

// runCountdown drives the countdown with a one-second ticker. An already
// running session is resumed instead of starting a new one.
func runCountdown(cmd *cobra.Command, app *bootstrap.App, task string, minutes int) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	active, err := app.FocusCLI.GetActive(ctx)
	switch {
	case errors.Is(err, apperrors.ErrNoActiveSession):
		active, err = app.FocusCLI.Start(ctx, task, minutes)
		if err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		_, _ = fmt.Fprintf(w, "resuming session started at %s\n", active.StartedAt.Format(time.Kitchen))
	}

	countdown := focusdomain.NewCountdown(active.PlannedMinutes)
	countdown.Start()
	finished := countdown.Elapse(active.Elapsed)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for !finished {
		_, _ = fmt.Fprintf(w, "\r%s  %s ", countdown.Clock(), active.Task)
		select {
		case <-ctx.Done():
			countdown.Pause()
			_, _ = fmt.Fprintf(w, "\npaused at %s; the session is still active, run focus stop to record it\n", countdown.Clock())
			return nil
		case <-ticker.C:
			finished = countdown.Tick()
		}
	}
	_, _ = fmt.Fprintln(w, "\rtime is up          ")
	out, err := app.FocusCLI.Stop(ctx, "")
	if err != nil {
		return err
	}
	printStopped(cmd, out)
	return nil
}

func printStopped(cmd *cobra.Command, out focusdto.StopOutput) {
	w := cmd.OutOrStdout()
	if !out.Recorded {
		_, _ = fmt.Fprintln(w, "no active focus session")
		return
	}
	_, _ = fmt.Fprintf(w, "recorded %.0f min of %q  total %.1f h\n", out.Session.Hours*60, out.Session.Task, out.TotalHours)
	if out.JournalPath != "" {
		_, _ = fmt.Fprintf(w, "journal %s\n", out.JournalPath)
	}
	printEarned(cmd, out.NewlyEarned)
}
