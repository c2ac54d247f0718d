package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"eduvibe/internal/bootstrap"
)

func newDashboardCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Summary of today's progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				s, err := app.DashboardCLI.Stats(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "streak       %d\n", s.Streak)
				_, _ = fmt.Fprintf(w, "goals today  %d/%d (%.0f%%)\n", s.GoalsCompleted, s.GoalsTotal, s.GoalsPercentage)
				_, _ = fmt.Fprintf(w, "playlists    %d (%d completed)\n", s.Playlists, s.CompletedPlaylists)
				_, _ = fmt.Fprintf(w, "videos       %d/%d\n", s.CompletedVideos, s.TotalVideos)
				_, _ = fmt.Fprintf(w, "focus time   %.1f h\n", s.TotalFocusHours)
				return nil
			})
		},
	}
}

func newCalendarCmd(dataDir *string) *cobra.Command {
	var month string
	calendar := &cobra.Command{
		Use:   "calendar",
		Short: "Month view; * marks study days, brackets mark today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				c, err := app.DashboardCLI.Calendar(cmd.Context(), month)
				if err != nil {
					return err
				}
				var sb strings.Builder
				sb.WriteString(fmt.Sprintf("%s  %d days studied\n", c.Month, c.StudiedDays))
				sb.WriteString("  Su   Mo   Tu   We   Th   Fr   Sa\n")
				col := int(c.Weekday)
				sb.WriteString(strings.Repeat("     ", col))
				for _, d := range c.Days {
					mark := " "
					if d.Studied {
						mark = "*"
					}
					cell := fmt.Sprintf(" %2d%s ", d.Day, mark)
					if d.Today {
						cell = fmt.Sprintf("[%2d%s]", d.Day, mark)
					}
					sb.WriteString(cell)
					col++
					if col == 7 {
						sb.WriteString("\n")
						col = 0
					}
				}
				if col != 0 {
					sb.WriteString("\n")
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), sb.String())
				return nil
			})
		},
	}
	calendar.Flags().StringVar(&month, "month", "", "month YYYY-MM (default current)")
	return calendar
}

func newDayCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "What was studied on a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				d, err := app.DashboardCLI.Day(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintln(w, d.Date)
				if len(d.Studied) == 0 {
					_, _ = fmt.Fprintln(w, "no videos completed")
				}
				for _, e := range d.Studied {
					_, _ = fmt.Fprintf(w, "  %s  %s / %s\n", e.CompletedAt.Local().Format("15:04"), e.Playlist, e.Video)
				}
				if len(d.Goals) > 0 {
					_, _ = fmt.Fprintf(w, "goals %.0f%%\n", d.GoalsPercentage)
					for _, g := range d.Goals {
						_, _ = fmt.Fprintf(w, "  %s %s #%s\n", checkMark(g.Completed), g.Title, g.Category)
					}
				}
				for _, s := range d.Sessions {
					_, _ = fmt.Fprintf(w, "  focus %.0f min  %s\n", s.Hours*60, s.Task)
				}
				return nil
			})
		},
	}
}
