package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eduvibe/internal/modules/record/domain"
	"eduvibe/internal/modules/record/service"
	"eduvibe/internal/platform/day"
	apperrors "eduvibe/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type memStore struct {
	doc     []byte
	saves   int
	failErr error
}

func (m *memStore) Load(context.Context) ([]byte, error) {
	if m.doc == nil {
		return nil, apperrors.ErrNotFound
	}
	return append([]byte(nil), m.doc...), nil
}

func (m *memStore) Save(_ context.Context, doc []byte) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.saves++
	m.doc = append([]byte(nil), doc...)
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.doc = nil
	return nil
}

func newService(store *memStore) *service.RecordService {
	clk := fixedClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
	return service.NewRecordService(store, clk, day.NewCalendar(time.UTC), zap.NewNop())
}

func TestViewOnFirstRunReturnsDefaults(t *testing.T) {
	t.Parallel()
	rec, err := newService(&memStore{}).View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SchemaVersion, rec.Version)
	assert.Empty(t, rec.Playlists)
}

func TestUpdatePersistsAndRefreshesAchievementCache(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	svc := newService(store)

	rec, err := svc.Update(context.Background(), func(r *domain.Record) error {
		r.Playlists = append(r.Playlists, domain.Playlist{ID: "p1", Name: "Go"})
		r.Streak = 7
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"weekly_warrior", "first_steps"}, rec.Achievements.Unlocked)
	assert.Equal(t, 1, store.saves)

	reloaded, err := svc.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, reloaded.Streak)
	assert.Contains(t, reloaded.Achievements.Unlocked, "weekly_warrior")
}

func TestUpdateFailureLeavesRecordUntouched(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	svc := newService(store)
	_, err := svc.Update(context.Background(), func(r *domain.Record) error {
		r.Streak = 3
		return nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = svc.Update(context.Background(), func(r *domain.Record) error {
		r.Streak = 99
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, store.saves)

	rec, err := svc.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Streak)
}

func TestSaveFailureIsPersistenceError(t *testing.T) {
	t.Parallel()
	store := &memStore{failErr: errors.New("disk full")}
	_, err := newService(store).Update(context.Background(), func(r *domain.Record) error {
		r.Streak = 1
		return nil
	})
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.Nil(t, store.doc)
}

func TestSnapshotNameAndMarkExported(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	svc := newService(store)

	doc, name, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "eduvibe-backup-2026-10-18.json", name)
	assert.Contains(t, string(doc), `"lastExport": null`)

	at, err := svc.MarkExported(context.Background())
	require.NoError(t, err)
	rec, err := svc.View(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rec.Settings.LastExport)
	assert.True(t, rec.Settings.LastExport.Equal(at))
}

func TestImportRejectsInvalidDocumentWithoutSaving(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	_, err := newService(store).Import(context.Background(), []byte(`{"streak": 3}`))
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
	assert.Zero(t, store.saves)
}

func TestSizeAndClear(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	svc := newService(store)
	size, err := svc.Size(context.Background())
	require.NoError(t, err)
	assert.Zero(t, size)

	_, err = svc.Update(context.Background(), func(*domain.Record) error { return nil })
	require.NoError(t, err)
	size, err = svc.Size(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(store.doc), size)

	require.NoError(t, svc.Clear(context.Background()))
	rec, err := svc.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Streak)
	assert.Empty(t, rec.Playlists)
}
