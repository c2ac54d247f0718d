package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eduvibe/internal/modules/dashboard/dto"
	dashboardin "eduvibe/internal/modules/dashboard/port/in"
	"eduvibe/internal/modules/dashboard/service"
	"eduvibe/internal/modules/dashboard/usecase"
	recordoutadapter "eduvibe/internal/modules/record/adapter/out"
	recorddomain "eduvibe/internal/modules/record/domain"
	recordservice "eduvibe/internal/modules/record/service"
	streakservice "eduvibe/internal/modules/streak/service"
	streakusecase "eduvibe/internal/modules/streak/usecase"
	"eduvibe/internal/platform/day"
	apperrors "eduvibe/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func setup(t *testing.T, seed func(*recorddomain.Record)) (dashboardin.Usecase, *recordservice.RecordService) {
	t.Helper()
	clk := fixedClock{now: time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)}
	cal := day.NewCalendar(time.UTC)
	records := recordservice.NewRecordService(
		recordoutadapter.NewFileRecordStore(filepath.Join(t.TempDir(), "record.json")),
		clk, cal, zap.NewNop())
	_, err := records.Update(context.Background(), func(r *recorddomain.Record) error {
		seed(r)
		return nil
	})
	require.NoError(t, err)
	streak := streakusecase.NewInteractor(streakservice.NewStreakService(records, clk, cal, zap.NewNop()))
	return usecase.NewInteractor(service.NewDashboardService(records, clk, cal), streak), records
}

func TestStatsDecaysStaleStreak(t *testing.T) {
	t.Parallel()
	uc, records := setup(t, func(r *recorddomain.Record) {
		r.Streak = 6
		r.LastCompletedDate = "2026-10-10"
		r.DailyGoals = []recorddomain.Goal{
			{ID: "g1", Title: "a", Date: "2026-10-18", Completed: true},
			{ID: "g2", Title: "b", Date: "2026-10-18"},
			{ID: "g3", Title: "c", Date: "2026-10-18"},
			{ID: "g4", Title: "d", Date: "2026-10-18"},
		}
		r.TotalFocusTime = 3
	})

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Streak)
	assert.Equal(t, 1, out.GoalsCompleted)
	assert.Equal(t, 4, out.GoalsTotal)
	assert.Equal(t, float64(25), out.GoalsPercentage)
	assert.Equal(t, float64(3), out.TotalFocusHours)

	rec, err := records.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Streak)
}

func TestStatsKeepsRunEndingYesterday(t *testing.T) {
	t.Parallel()
	uc, _ := setup(t, func(r *recorddomain.Record) {
		r.Streak = 3
		r.LastCompletedDate = "2026-10-17"
	})
	out, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, out.Streak)
	assert.True(t, out.AtRisk)
	assert.False(t, out.StudiedToday)
}

func TestCalendarCurrentAndExplicitMonth(t *testing.T) {
	t.Parallel()
	uc, _ := setup(t, func(r *recorddomain.Record) {
		r.StudyHistory = map[string][]recorddomain.StudyEntry{
			"2026-10-03": {{Playlist: "Go", Video: "intro"}},
			"2026-10-18": {{Playlist: "Go", Video: "maps"}},
			"2026-09-30": {{Playlist: "Go", Video: "setup"}},
		}
	})
	ctx := context.Background()

	oct, err := uc.Calendar(ctx, dto.CalendarInput{})
	require.NoError(t, err)
	assert.Equal(t, "2026-10", oct.Month)
	assert.Equal(t, time.Thursday, oct.Weekday)
	require.Len(t, oct.Days, 31)
	assert.Equal(t, 2, oct.StudiedDays)
	assert.True(t, oct.Days[2].Studied)
	assert.True(t, oct.Days[17].Today)
	assert.False(t, oct.Days[16].Today)

	sep, err := uc.Calendar(ctx, dto.CalendarInput{Month: "2026-09"})
	require.NoError(t, err)
	require.Len(t, sep.Days, 30)
	assert.Equal(t, 1, sep.StudiedDays)
	assert.True(t, sep.Days[29].Studied)

	_, err = uc.Calendar(ctx, dto.CalendarInput{Month: "September"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestDayDetail(t *testing.T) {
	t.Parallel()
	uc, _ := setup(t, func(r *recorddomain.Record) {
		r.StudyHistory = map[string][]recorddomain.StudyEntry{
			"2026-10-18": {{Playlist: "Go", Video: "maps"}},
		}
		r.DailyGoals = []recorddomain.Goal{{ID: "g1", Title: "read", Category: "study", Date: "2026-10-18", Completed: true}}
		r.FocusHistory = []recorddomain.FocusSession{{ID: "f1", Task: "deep work", Date: "2026-10-18", Duration: 0.5}}
		r.TotalFocusTime = 0.5
	})
	ctx := context.Background()

	out, err := uc.Day(ctx, "2026-10-18")
	require.NoError(t, err)
	require.Len(t, out.Studied, 1)
	assert.Equal(t, "maps", out.Studied[0].Video)
	require.Len(t, out.Goals, 1)
	assert.Equal(t, float64(100), out.GoalsPercentage)
	require.Len(t, out.Sessions, 1)
	assert.Equal(t, "deep work", out.Sessions[0].Task)

	for _, raw := range []string{" 2026-10-18 ", "Sun Oct 18 2026"} {
		alt, err := uc.Day(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, "2026-10-18", alt.Date)
		assert.Len(t, alt.Studied, 1, raw)
		assert.Len(t, alt.Goals, 1, raw)
	}

	_, err = uc.Day(ctx, "yesterday")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}
