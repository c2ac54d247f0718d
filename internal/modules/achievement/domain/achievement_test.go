package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduvibe/internal/modules/achievement/domain"
	recorddomain "eduvibe/internal/modules/record/domain"
)

func find(t *testing.T, statuses []domain.Status, id string) domain.Status {
	t.Helper()
	for _, s := range statuses {
		if s.Badge.ID == id {
			return s
		}
	}
	t.Fatalf("badge %s not in evaluation", id)
	return domain.Status{}
}

func TestWeeklyWarriorProgress(t *testing.T) {
	t.Parallel()
	at5 := find(t, domain.Evaluate(domain.Metrics{Streak: 5}), "weekly_warrior")
	assert.False(t, at5.Earned)
	assert.InDelta(t, 5.0/7.0, at5.Progress, 1e-9)

	at7 := find(t, domain.Evaluate(domain.Metrics{Streak: 7}), "weekly_warrior")
	assert.True(t, at7.Earned)
	assert.Equal(t, 1.0, at7.Progress)
}

func TestProgressIsCappedAtOne(t *testing.T) {
	t.Parallel()
	s := find(t, domain.Evaluate(domain.Metrics{TotalFocusHours: 12.5}), "5_hour_power")
	assert.True(t, s.Earned)
	assert.Equal(t, 1.0, s.Progress)
	assert.Equal(t, 12.5, s.Current)
}

func TestEvaluateCoversCatalogInOrder(t *testing.T) {
	t.Parallel()
	statuses := domain.Evaluate(domain.Metrics{})
	require.Len(t, statuses, len(domain.Catalog))
	for i, s := range statuses {
		assert.Equal(t, domain.Catalog[i].ID, s.Badge.ID)
		assert.False(t, s.Earned)
	}
}

func TestMetricsOfRecord(t *testing.T) {
	t.Parallel()
	rec := recorddomain.New()
	rec.Streak = 3
	rec.TotalFocusTime = 1.5
	rec.Playlists = []recorddomain.Playlist{{ID: "a", Progress: 100}, {ID: "b", Progress: 40}}

	m := domain.MetricsOf(rec)
	assert.Equal(t, domain.Metrics{Streak: 3, PlaylistCount: 2, CompletedPlaylists: 1, TotalFocusHours: 1.5}, m)

	firstSteps := find(t, domain.Evaluate(m), "first_steps")
	conqueror := find(t, domain.Evaluate(m), "course_conqueror")
	assert.True(t, firstSteps.Earned)
	assert.True(t, conqueror.Earned)
}

func TestCache(t *testing.T) {
	t.Parallel()
	after := domain.Evaluate(domain.Metrics{Streak: 7, PlaylistCount: 1})

	cache := domain.Cache(after)
	assert.ElementsMatch(t, []string{"weekly_warrior", "first_steps"}, cache.Unlocked)
	assert.Equal(t, 1.0, cache.Progress["weekly_warrior"])
	assert.Len(t, cache.Progress, 20)
}
