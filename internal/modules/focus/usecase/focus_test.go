package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	achievementservice "eduvibe/internal/modules/achievement/service"
	achievementusecase "eduvibe/internal/modules/achievement/usecase"
	focusoutadapter "eduvibe/internal/modules/focus/adapter/out"
	"eduvibe/internal/modules/focus/dto"
	focusin "eduvibe/internal/modules/focus/port/in"
	"eduvibe/internal/modules/focus/service"
	"eduvibe/internal/modules/focus/usecase"
	recordoutadapter "eduvibe/internal/modules/record/adapter/out"
	recordservice "eduvibe/internal/modules/record/service"
	"eduvibe/internal/platform/day"
	apperrors "eduvibe/internal/platform/errors"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("focus-%03d", s.n)
}

type harness struct {
	uc          focusin.Usecase
	records     *recordservice.RecordService
	clock       *stepClock
	sessionsDir string
}

func newHarness(t *testing.T) harness {
	t.Helper()
	dir := t.TempDir()
	clk := &stepClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
	cal := day.NewCalendar(time.UTC)
	records := recordservice.NewRecordService(recordoutadapter.NewFileRecordStore(filepath.Join(dir, "record.json")), clk, cal, zap.NewNop())
	projector, err := focusoutadapter.NewSQLiteFocusProjector(filepath.Join(dir, "index", "eduvibe.db"))
	require.NoError(t, err)
	sessionsDir := filepath.Join(dir, "sessions")
	svc := service.NewFocusService(
		records, clk, &seqID{}, cal,
		focusoutadapter.NewFileActiveSessionStore(filepath.Join(dir, "active-focus.json")),
		focusoutadapter.NewMarkdownJournal(sessionsDir),
		projector,
		zap.NewNop(),
	)
	achievements := achievementusecase.NewInteractor(achievementservice.NewAchievementService(records))
	return harness{uc: usecase.NewInteractor(svc, achievements), records: records, clock: clk, sessionsDir: sessionsDir}
}

func TestStartStopRecordsSessionAndEarnsFocusBadge(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	started, err := h.uc.Start(ctx, dto.StartInput{Task: "Read chapter 3"})
	require.NoError(t, err)
	assert.Equal(t, 25, started.PlannedMinutes)

	_, err = h.uc.Start(ctx, dto.StartInput{Task: "again"})
	assert.True(t, errors.Is(err, apperrors.ErrActiveSessionExists))

	h.clock.now = h.clock.now.Add(5*time.Hour + 30*time.Minute)
	active, err := h.uc.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Hour+30*time.Minute, active.Elapsed)

	out, err := h.uc.Stop(ctx, dto.StopInput{})
	require.NoError(t, err)
	require.True(t, out.Recorded)
	assert.Equal(t, "Read chapter 3", out.Session.Task)
	assert.InDelta(t, 5.5, out.Session.Hours, 1e-9)
	assert.Equal(t, "2026-10-18", out.Session.Date)
	assert.InDelta(t, 5.5, out.TotalHours, 1e-9)
	require.Len(t, out.NewlyEarned, 1)
	assert.Equal(t, "5_hour_power", out.NewlyEarned[0].ID)

	_, err = h.uc.GetActive(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrNoActiveSession))

	journal := filepath.Join(h.sessionsDir, "2026", "10", "2026-10-18.md")
	assert.Equal(t, journal, out.JournalPath)
	content, err := os.ReadFile(journal)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Read chapter 3")
	assert.Contains(t, string(content), "<!-- eduvibe:sessions:start -->")
}

func TestTotalFocusTimeMatchesHistory(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	for _, minutes := range []int{30, 45, 15} {
		_, err := h.uc.Start(ctx, dto.StartInput{})
		require.NoError(t, err)
		h.clock.now = h.clock.now.Add(time.Duration(minutes) * time.Minute)
		_, err = h.uc.Stop(ctx, dto.StopInput{})
		require.NoError(t, err)
	}

	rec, err := h.records.View(ctx)
	require.NoError(t, err)
	var sum float64
	for _, s := range rec.FocusHistory {
		sum += s.Duration
	}
	assert.InDelta(t, sum, rec.TotalFocusTime, 1e-9)
	assert.InDelta(t, 1.5, rec.TotalFocusTime, 1e-9)

	recent, err := h.uc.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Untitled Session", recent[0].Task)
	assert.InDelta(t, 0.25, recent[0].Hours, 1e-9, "newest first")
}

func TestStopWithoutActiveSessionIsNoop(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	out, err := h.uc.Stop(ctx, dto.StopInput{Task: "nothing"})
	require.NoError(t, err)
	assert.False(t, out.Recorded)

	rec, err := h.records.View(ctx)
	require.NoError(t, err)
	assert.Empty(t, rec.FocusHistory)
	assert.Zero(t, rec.TotalFocusTime)
}

func TestStopLabelOverridesActiveTask(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.uc.SetTask(ctx, "orphan")
	assert.True(t, errors.Is(err, apperrors.ErrNoActiveSession))

	_, err = h.uc.Start(ctx, dto.StartInput{Task: "first", Minutes: 50})
	require.NoError(t, err)
	renamed, err := h.uc.SetTask(ctx, "second")
	require.NoError(t, err)
	assert.Equal(t, "second", renamed.Task)
	assert.Equal(t, 50, renamed.PlannedMinutes)

	h.clock.now = h.clock.now.Add(10 * time.Minute)
	out, err := h.uc.Stop(ctx, dto.StopInput{Task: "  final label "})
	require.NoError(t, err)
	assert.Equal(t, "final label", out.Session.Task)
}

func TestStartRejectsNegativeMinutes(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	_, err := h.uc.Start(context.Background(), dto.StartInput{Minutes: -5})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestReportFillsEmptyDaysAndSurvivesReindex(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.uc.Start(ctx, dto.StartInput{Task: "day one"})
	require.NoError(t, err)
	h.clock.now = h.clock.now.Add(time.Hour)
	_, err = h.uc.Stop(ctx, dto.StopInput{})
	require.NoError(t, err)

	h.clock.now = h.clock.now.Add(48 * time.Hour)
	_, err = h.uc.Start(ctx, dto.StartInput{Task: "day three"})
	require.NoError(t, err)
	h.clock.now = h.clock.now.Add(30 * time.Minute)
	_, err = h.uc.Stop(ctx, dto.StopInput{})
	require.NoError(t, err)

	require.NoError(t, h.uc.Reindex(ctx))
	report, err := h.uc.Report(ctx, 3)
	require.NoError(t, err)
	require.Len(t, report, 3)
	assert.Equal(t, "2026-10-18", report[0].Date)
	assert.InDelta(t, 1.0, report[0].Hours, 1e-9)
	assert.Equal(t, 1, report[0].Sessions)
	assert.Equal(t, "2026-10-19", report[1].Date)
	assert.Zero(t, report[1].Sessions)
	assert.InDelta(t, 0.5, report[2].Hours, 1e-9)
}
