package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"eduvibe/internal/bootstrap"
	achievementdto "eduvibe/internal/modules/achievement/dto"
	"eduvibe/internal/platform/config"
	apperrors "eduvibe/internal/platform/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "eduvibe",
		Short:         "Track study playlists, daily goals, streaks and focus time",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory")

	root.AddCommand(newPlaylistCmd(&dataDir))
	root.AddCommand(newGoalCmd(&dataDir))
	root.AddCommand(newStreakCmd(&dataDir))
	root.AddCommand(newFocusCmd(&dataDir))
	root.AddCommand(newAchievementsCmd(&dataDir))
	root.AddCommand(newDashboardCmd(&dataDir))
	root.AddCommand(newCalendarCmd(&dataDir))
	root.AddCommand(newDayCmd(&dataDir))
	root.AddCommand(newDataCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	root.AddCommand(newTUICmd(&dataDir))
	return root
}

func defaultDataDir() string {
	if v := os.Getenv("EDUVIBE_DATA"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eduvibe"
	}
	return filepath.Join(home, ".eduvibe")
}

// withApp builds the application for one command and closes it afterwards.
func withApp(dataDir string, fn func(app *bootstrap.App) error) (err error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return err
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(app)
}

// confirm asks a yes/no question on an interactive terminal. Without a
// terminal the caller must pass --yes.
func confirm(assumeYes bool, title, description string) error {
	if assumeYes {
		return nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("%w: stdin is not a terminal, pass --yes", apperrors.ErrConfirmationNeeded)
	}
	ok := false
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: cancelled", apperrors.ErrConfirmationNeeded)
	}
	return nil
}

func printEarned(cmd *cobra.Command, items []achievementdto.Item) {
	for _, it := range items {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "achievement unlocked: %s (%s)\n", it.Name, it.Description)
	}
}

func checkMark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				return bootstrap.RunTUI(cmd.Context(), app)
			})
		},
	}
}

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild SQLite projections from the record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				if err := app.Reindex(cmd.Context()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
				return nil
			})
		},
	}
}
