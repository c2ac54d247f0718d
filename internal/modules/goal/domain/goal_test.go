package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduvibe/internal/modules/goal/domain"
	recorddomain "eduvibe/internal/modules/record/domain"
	apperrors "eduvibe/internal/platform/errors"
)

const today = "2026-10-18"

func recordWithGoals(goals ...recorddomain.Goal) recorddomain.Record {
	rec := recorddomain.New()
	rec.DailyGoals = goals
	return rec
}

func TestDraftDefaultsCategory(t *testing.T) {
	t.Parallel()
	d := domain.Draft{Title: "  Read  "}.Normalized()
	assert.Equal(t, "Read", d.Title)
	assert.Equal(t, domain.DefaultCategory, d.Category)

	g := domain.Build(d, "g1", time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC), today)
	assert.Equal(t, today, g.Date)
	assert.False(t, g.Completed)
}

func TestSetCompletionFiresOnlyForFirstGoalOfToday(t *testing.T) {
	t.Parallel()
	rec := recordWithGoals(
		recorddomain.Goal{ID: "g1", Date: today},
		recorddomain.Goal{ID: "g2", Date: today},
		recorddomain.Goal{ID: "old", Date: "2026-10-10"},
	)

	_, fired, err := domain.SetCompletion(&rec, "g1", true, today)
	require.NoError(t, err)
	assert.True(t, fired)

	_, fired, err = domain.SetCompletion(&rec, "g2", true, today)
	require.NoError(t, err)
	assert.False(t, fired)

	_, fired, err = domain.SetCompletion(&rec, "g2", false, today)
	require.NoError(t, err)
	assert.False(t, fired)

	_, fired, err = domain.SetCompletion(&rec, "old", true, today)
	require.NoError(t, err)
	assert.False(t, fired)

	_, _, err = domain.SetCompletion(&rec, "missing", true, today)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestProgressAndTimeline(t *testing.T) {
	t.Parallel()
	goals := []recorddomain.Goal{
		{Date: today, Completed: true},
		{Date: today},
		{Date: today},
		{Date: "2026-10-17", Completed: true},
	}
	p := domain.Progress(goals, today)
	assert.Equal(t, domain.DayProgress{Day: today, Completed: 1, Total: 3, Percentage: 33}, p)

	tl := domain.Timeline(goals, []string{"2026-10-16", "2026-10-17", today})
	require.Len(t, tl, 3)
	assert.Equal(t, 0, tl[0].Total)
	assert.Equal(t, 100.0, tl[1].Percentage)
}

func TestRefreshProgressAveragesDaysWithGoals(t *testing.T) {
	t.Parallel()
	rec := recordWithGoals(
		recorddomain.Goal{Date: today, Completed: true},
		recorddomain.Goal{Date: today},
		recorddomain.Goal{Date: "2026-10-15", Completed: true},
	)
	window := []string{"2026-10-12", "2026-10-13", "2026-10-14", "2026-10-15", "2026-10-16", "2026-10-17", today}
	domain.RefreshProgress(&rec, window)

	assert.Equal(t, 50.0, rec.GoalProgress.DailyCompletion)
	assert.Equal(t, 75.0, rec.GoalProgress.WeeklyAverage)
	require.Len(t, rec.GoalProgress.Trends, 7)
	assert.Equal(t, "2026-10-12", rec.GoalProgress.Trends[0].Date)

	empty := recorddomain.New()
	domain.RefreshProgress(&empty, window)
	assert.Zero(t, empty.GoalProgress.WeeklyAverage)
	assert.Zero(t, empty.GoalProgress.DailyCompletion)
}

func TestRemove(t *testing.T) {
	t.Parallel()
	rec := recordWithGoals(recorddomain.Goal{ID: "g1"}, recorddomain.Goal{ID: "g2"})
	removed, err := domain.Remove(&rec, "g1")
	require.NoError(t, err)
	assert.Equal(t, recorddomain.ID("g1"), removed.ID)
	require.Len(t, rec.DailyGoals, 1)
	_, err = domain.Remove(&rec, "g1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
