package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduvibe/internal/modules/achievement/domain"
	"eduvibe/internal/modules/achievement/dto"
	"eduvibe/internal/modules/achievement/service"
	"eduvibe/internal/modules/achievement/usecase"
	recorddomain "eduvibe/internal/modules/record/domain"
)

type staticRecord struct{ rec recorddomain.Record }

func (s staticRecord) View(context.Context) (recorddomain.Record, error) { return s.rec, nil }

func (s staticRecord) Update(_ context.Context, fn func(*recorddomain.Record) error) (recorddomain.Record, error) {
	rec := s.rec.Clone()
	return rec, fn(&rec)
}

func TestListEvaluatesFromRecordNotCache(t *testing.T) {
	t.Parallel()
	rec := recorddomain.New()
	rec.Streak = 5
	rec.TotalFocusTime = 6
	// a stale cache must not leak into the evaluation
	rec.Achievements.Unlocked = []string{"century_club"}

	out, err := usecase.NewInteractor(service.NewAchievementService(staticRecord{rec: rec})).List(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, len(domain.Catalog))
	assert.Equal(t, 1, out.Earned)

	byID := map[string]dto.Item{}
	for _, it := range out.Items {
		byID[it.ID] = it
	}
	assert.False(t, byID["century_club"].Earned)
	assert.True(t, byID["5_hour_power"].Earned)
	assert.InDelta(t, 5.0/7.0, byID["weekly_warrior"].Progress, 1e-9)
	assert.Equal(t, "streak", byID["weekly_warrior"].Type)
}

func TestNewlyEarnedSince(t *testing.T) {
	t.Parallel()
	before := dto.ListOutput{Items: []dto.Item{{ID: "a", Earned: true}, {ID: "b"}, {ID: "c"}}}
	after := dto.ListOutput{Items: []dto.Item{{ID: "a", Earned: true}, {ID: "b", Earned: true}, {ID: "c"}}}
	newly := after.NewlyEarnedSince(before)
	require.Len(t, newly, 1)
	assert.Equal(t, "b", newly[0].ID)
}
