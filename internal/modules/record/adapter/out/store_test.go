package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recordoutadapter "eduvibe/internal/modules/record/adapter/out"
	recordout "eduvibe/internal/modules/record/port/out"
	apperrors "eduvibe/internal/platform/errors"
)

func exerciseStore(t *testing.T, store recordout.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected not found, got %v", err)

	require.NoError(t, store.Save(ctx, []byte(`{"streak":1}`)))
	require.NoError(t, store.Save(ctx, []byte(`{"streak":2}`)))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"streak":2}`, string(got))

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	require.NoError(t, store.Clear(ctx))
}

func TestFileRecordStore(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "record.json")
	exerciseStore(t, recordoutadapter.NewFileRecordStore(path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not linger")
}

func TestBadgerRecordStoreInMemory(t *testing.T) {
	t.Parallel()
	store, err := recordoutadapter.OpenBadgerRecordStore("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	exerciseStore(t, store)
}

func TestBadgerRecordStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "badger")
	store, err := recordoutadapter.OpenBadgerRecordStore(dir, nil)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), []byte(`{"streak":9}`)))
	require.NoError(t, store.Close())

	reopened, err := recordoutadapter.OpenBadgerRecordStore(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })
	got, err := reopened.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"streak":9}`, string(got))
}

func TestDirBackupWriterCreatesDirectories(t *testing.T) {
	t.Parallel()
	target := filepath.Join(t.TempDir(), "backups", "eduvibe-backup-2026-10-18.json")
	path, err := recordoutadapter.NewDirBackupWriter().Write(context.Background(), target, []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, target, path)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(got))
}
