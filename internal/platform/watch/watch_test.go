package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eduvibe/internal/platform/watch"
)

func TestFileReportsWrites(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "record.json")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := watch.File(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatalf("expected change notification")
	}
}

func TestDebouncedMergesBurst(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "record.json")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	window := 500 * time.Millisecond
	changes, err := watch.Debounced(ctx, path, window)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatalf("expected one change notification")
	}
	select {
	case <-changes:
		t.Fatalf("burst should be reported once")
	case <-time.After(3 * window):
	}
}

func TestFileClosesOnCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	changes, err := watch.File(ctx, filepath.Join(t.TempDir(), "record.json"))
	require.NoError(t, err)
	cancel()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("channel should close after cancel")
		}
	}
}
