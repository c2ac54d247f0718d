package usecase_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	recordoutadapter "eduvibe/internal/modules/record/adapter/out"
	recorddomain "eduvibe/internal/modules/record/domain"
	recordservice "eduvibe/internal/modules/record/service"
	"eduvibe/internal/modules/streak/dto"
	"eduvibe/internal/modules/streak/service"
	"eduvibe/internal/modules/streak/usecase"
	"eduvibe/internal/platform/day"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func setup(t *testing.T, streak int, last string) (*recordservice.RecordService, fixedClock) {
	t.Helper()
	clk := fixedClock{now: time.Date(2026, 10, 18, 21, 0, 0, 0, time.UTC)}
	records := recordservice.NewRecordService(
		recordoutadapter.NewFileRecordStore(filepath.Join(t.TempDir(), "record.json")),
		clk, day.NewCalendar(time.UTC), zap.NewNop())
	_, err := records.Update(context.Background(), func(r *recorddomain.Record) error {
		r.Streak = streak
		r.LastCompletedDate = last
		return nil
	})
	require.NoError(t, err)
	return records, clk
}

func TestStatusResetsAfterMissedDayAndPersists(t *testing.T) {
	t.Parallel()
	records, clk := setup(t, 9, "2026-10-15")
	uc := usecase.NewInteractor(service.NewStreakService(records, clk, day.NewCalendar(time.UTC), zap.NewNop()))

	out, err := uc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.StatusOutput{Streak: 0, LastCompletedDate: "2026-10-15"}, out)

	rec, err := records.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Streak)
}

func TestStatusFlagsRunAtRisk(t *testing.T) {
	t.Parallel()
	records, clk := setup(t, 4, "2026-10-17")
	uc := usecase.NewInteractor(service.NewStreakService(records, clk, day.NewCalendar(time.UTC), nil))

	out, err := uc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, out.Streak)
	assert.True(t, out.AtRisk)
	assert.False(t, out.StudiedToday)
}

func TestStatusStudiedToday(t *testing.T) {
	t.Parallel()
	records, clk := setup(t, 2, "2026-10-18")
	uc := usecase.NewInteractor(service.NewStreakService(records, clk, day.NewCalendar(time.UTC), nil))

	out, err := uc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, out.StudiedToday)
	assert.False(t, out.AtRisk)
	assert.Equal(t, 2, out.Streak)
}
