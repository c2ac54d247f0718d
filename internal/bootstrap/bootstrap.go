package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	achievementinadapter "eduvibe/internal/modules/achievement/adapter/in"
	achievementservice "eduvibe/internal/modules/achievement/service"
	achievementusecase "eduvibe/internal/modules/achievement/usecase"
	dashboardinadapter "eduvibe/internal/modules/dashboard/adapter/in"
	dashboardservice "eduvibe/internal/modules/dashboard/service"
	dashboardusecase "eduvibe/internal/modules/dashboard/usecase"
	focusinadapter "eduvibe/internal/modules/focus/adapter/in"
	focusoutadapter "eduvibe/internal/modules/focus/adapter/out"
	focusout "eduvibe/internal/modules/focus/port/out"
	focusservice "eduvibe/internal/modules/focus/service"
	focususecase "eduvibe/internal/modules/focus/usecase"
	goalinadapter "eduvibe/internal/modules/goal/adapter/in"
	goalservice "eduvibe/internal/modules/goal/service"
	goalusecase "eduvibe/internal/modules/goal/usecase"
	playlistinadapter "eduvibe/internal/modules/playlist/adapter/in"
	playlistoutadapter "eduvibe/internal/modules/playlist/adapter/out"
	playlistservice "eduvibe/internal/modules/playlist/service"
	playlistusecase "eduvibe/internal/modules/playlist/usecase"
	recordinadapter "eduvibe/internal/modules/record/adapter/in"
	recordoutadapter "eduvibe/internal/modules/record/adapter/out"
	recordout "eduvibe/internal/modules/record/port/out"
	recordservice "eduvibe/internal/modules/record/service"
	recordusecase "eduvibe/internal/modules/record/usecase"
	streakinadapter "eduvibe/internal/modules/streak/adapter/in"
	streakservice "eduvibe/internal/modules/streak/service"
	streakusecase "eduvibe/internal/modules/streak/usecase"
	"eduvibe/internal/platform/clock"
	"eduvibe/internal/platform/config"
	"eduvibe/internal/platform/day"
	"eduvibe/internal/platform/id"
	"eduvibe/internal/platform/logging"
	"eduvibe/internal/platform/watch"
	uiapp "eduvibe/internal/ui/app"
)

type App struct {
	Config         config.Config
	Logger         *zap.Logger
	PlaylistCLI    playlistinadapter.CLIHandler
	GoalCLI        goalinadapter.CLIHandler
	StreakCLI      streakinadapter.CLIHandler
	FocusCLI       focusinadapter.CLIHandler
	AchievementCLI achievementinadapter.CLIHandler
	DashboardCLI   dashboardinadapter.CLIHandler
	RecordCLI      recordinadapter.CLIHandler

	closers []func() error
}

func New(cfg config.Config) (*App, error) {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}
	cal := day.NewCalendar(loc)
	app := &App{Config: cfg, Logger: logger}

	store, err := openStore(cfg, logger, app)
	if err != nil {
		return nil, err
	}
	records := recordservice.NewRecordService(store, clk, cal, logger.Named("record"))

	achievementUC := achievementusecase.NewInteractor(achievementservice.NewAchievementService(records))
	streakUC := streakusecase.NewInteractor(streakservice.NewStreakService(records, clk, cal, logger.Named("streak")))

	playlistProjector, err := playlistoutadapter.NewSQLitePlaylistProjector(cfg.DBPath)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new playlist projector: %w", err)
	}
	playlistUC := playlistusecase.NewInteractor(
		playlistservice.NewPlaylistService(records, clk, ids, cal, playlistProjector, logger.Named("playlist")),
		achievementUC,
	)

	goalUC := goalusecase.NewInteractor(goalservice.NewGoalService(records, clk, ids, cal, logger.Named("goal")))

	focusProjector, err := focusoutadapter.NewSQLiteFocusProjector(cfg.DBPath)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new focus projector: %w", err)
	}
	var journal focusout.SessionJournal
	if cfg.SessionNotes {
		journal = focusoutadapter.NewMarkdownJournal(cfg.SessionsDir)
	}
	focusUC := focususecase.NewInteractor(
		focusservice.NewFocusService(
			records, clk, ids, cal,
			focusoutadapter.NewFileActiveSessionStore(cfg.ActivePath),
			journal,
			focusProjector,
			logger.Named("focus"),
		),
		achievementUC,
	)

	dashboardUC := dashboardusecase.NewInteractor(dashboardservice.NewDashboardService(records, clk, cal), streakUC)
	recordUC := recordusecase.NewInteractor(records, recordoutadapter.NewDirBackupWriter())

	app.PlaylistCLI = playlistinadapter.NewCLIHandler(playlistUC)
	app.GoalCLI = goalinadapter.NewCLIHandler(goalUC)
	app.StreakCLI = streakinadapter.NewCLIHandler(streakUC)
	app.FocusCLI = focusinadapter.NewCLIHandler(focusUC)
	app.AchievementCLI = achievementinadapter.NewCLIHandler(achievementUC)
	app.DashboardCLI = dashboardinadapter.NewCLIHandler(dashboardUC)
	app.RecordCLI = recordinadapter.NewCLIHandler(recordUC)
	return app, nil
}

func openStore(cfg config.Config, logger *zap.Logger, app *App) (recordout.Store, error) {
	switch cfg.Backend {
	case config.BackendBadger:
		store, err := recordoutadapter.OpenBadgerRecordStore(cfg.BadgerDir, logger.Named("badger"))
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, store.Close)
		return store, nil
	default:
		return recordoutadapter.NewFileRecordStore(cfg.RecordPath), nil
	}
}

// Reindex rebuilds both SQLite projections from the record.
func (a *App) Reindex(ctx context.Context) error {
	if err := a.PlaylistCLI.Reindex(ctx); err != nil {
		return fmt.Errorf("reindex playlists: %w", err)
	}
	if err := a.FocusCLI.Reindex(ctx); err != nil {
		return fmt.Errorf("reindex focus sessions: %w", err)
	}
	return nil
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	_ = a.Logger.Sync()
	return errors.Join(errs...)
}

// RunTUI starts the dashboard. With the file backend the record file is
// watched so edits from other commands show up live; badger holds an
// exclusive lock, so nothing else can write while the TUI runs.
func RunTUI(ctx context.Context, app *App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var changes <-chan struct{}
	if app.Config.Backend == config.BackendFile {
		ch, err := watch.File(ctx, app.Config.RecordPath)
		if err != nil {
			app.Logger.Warn("live reload disabled", zap.Error(err))
		} else {
			changes = ch
		}
	}
	model := uiapp.NewModel(uiapp.Handlers{
		Dashboard:    app.DashboardCLI,
		Playlists:    app.PlaylistCLI,
		Goals:        app.GoalCLI,
		Focus:        app.FocusCLI,
		Achievements: app.AchievementCLI,
	}, app.Config.FocusMinutes, changes)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
