package domain_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduvibe/internal/modules/playlist/domain"
	recorddomain "eduvibe/internal/modules/record/domain"
	apperrors "eduvibe/internal/platform/errors"
)

const today = "2026-10-18"

var now = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func buildRecord(t *testing.T, titles ...string) recorddomain.Record {
	t.Helper()
	rec := recorddomain.New()
	d := domain.Draft{Name: "Go", URL: "https://youtube.com/playlist?list=x", Titles: titles}.Normalized()
	rec.Playlists = append(rec.Playlists, domain.Build(d, seqIDs(), now))
	return rec
}

func TestDraftNormalized(t *testing.T) {
	t.Parallel()
	d := domain.Draft{Name: "  Go  ", Source: " YouTube ", Titles: []string{" a ", "", "  ", "b"}}.Normalized()
	assert.Equal(t, "Go", d.Name)
	assert.Equal(t, "youtube", d.Source)
	assert.Equal(t, []string{"a", "b"}, d.Titles)

	assert.Equal(t, domain.DefaultSource, domain.Draft{Name: "x"}.Normalized().Source)
}

func TestParseTitles(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"Intro", "Types"}, domain.ParseTitles("Intro\n\n  Types  \n"))
	assert.Empty(t, domain.ParseTitles("   \n"))
}

func TestVideoURL(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "https://y.com/p?list=x&index=3", domain.VideoURL("https://y.com/p?list=x", 2))
	assert.Equal(t, "https://y.com/course&index=1", domain.VideoURL("https://y.com/course", 0))
	assert.Empty(t, domain.VideoURL("", 4))
}

func TestBuildLocksAllButFirst(t *testing.T) {
	t.Parallel()
	rec := buildRecord(t, "A", "B", "C")
	p := rec.Playlists[0]
	require.Len(t, p.Videos, 3)
	assert.False(t, p.Videos[0].Locked)
	assert.True(t, p.Videos[1].Locked)
	assert.True(t, p.Videos[2].Locked)
	assert.Equal(t, 0, p.Progress)
	assert.Equal(t, "https://youtube.com/playlist?list=x&index=2", p.Videos[1].URL)
	assert.Equal(t, recorddomain.ID("id-4"), p.ID)
}

func TestBuildWithoutTitles(t *testing.T) {
	t.Parallel()
	rec := buildRecord(t)
	assert.Empty(t, rec.Playlists[0].Videos)
	assert.Equal(t, 0, rec.Playlists[0].Progress)
}

func TestCompleteUncompleteScenario(t *testing.T) {
	t.Parallel()
	rec := buildRecord(t, "A", "B", "C")
	pid := string(rec.Playlists[0].ID)

	change, err := domain.SetCompletion(&rec, pid, "1", true, now, today)
	require.NoError(t, err)
	assert.Equal(t, recorddomain.ID("id-2"), change.Unlocked)
	p := rec.Playlists[0]
	assert.True(t, p.Videos[0].Completed)
	assert.False(t, p.Videos[1].Locked)
	assert.True(t, p.Videos[2].Locked)
	assert.Equal(t, 33, p.Progress)
	assert.Equal(t, []recorddomain.StudyEntry{{Playlist: "Go", Video: "A", CompletedAt: now}}, rec.StudyHistory[today])

	_, err = domain.SetCompletion(&rec, pid, "id-1", false, now, today)
	require.NoError(t, err)
	p = rec.Playlists[0]
	assert.False(t, p.Videos[0].Completed)
	assert.False(t, p.Videos[1].Locked, "unchecking never re-locks")
	assert.Equal(t, 0, p.Progress)
	_, present := rec.StudyHistory[today]
	assert.False(t, present, "empty day is pruned")
}

func TestLockedVideoCannotBeCompleted(t *testing.T) {
	t.Parallel()
	rec := buildRecord(t, "A", "B")
	_, err := domain.SetCompletion(&rec, string(rec.Playlists[0].ID), "2", true, now, today)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.False(t, rec.Playlists[0].Videos[1].Completed)
	assert.Empty(t, rec.StudyHistory)
}

func TestUnknownIDsAreNotFound(t *testing.T) {
	t.Parallel()
	rec := buildRecord(t, "A")
	_, err := domain.SetCompletion(&rec, "nope", "1", true, now, today)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	_, err = domain.SetCompletion(&rec, string(rec.Playlists[0].ID), "7", true, now, today)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestFullCompletionReachesHundred(t *testing.T) {
	t.Parallel()
	rec := buildRecord(t, "A", "B", "C")
	pid := string(rec.Playlists[0].ID)
	for _, ref := range []string{"1", "2", "3"} {
		_, err := domain.SetCompletion(&rec, pid, ref, true, now, today)
		require.NoError(t, err)
	}
	assert.Equal(t, 100, rec.Playlists[0].Progress)
	assert.Len(t, rec.StudyHistory[today], 3)
	assert.Equal(t, 1, rec.CompletedPlaylists())
}

func TestUncompleteKeepsOtherEntries(t *testing.T) {
	t.Parallel()
	rec := buildRecord(t, "A", "B")
	pid := string(rec.Playlists[0].ID)
	for _, ref := range []string{"1", "2"} {
		_, err := domain.SetCompletion(&rec, pid, ref, true, now, today)
		require.NoError(t, err)
	}
	_, err := domain.SetCompletion(&rec, pid, "1", false, now, today)
	require.NoError(t, err)
	require.Len(t, rec.StudyHistory[today], 1)
	assert.Equal(t, "B", rec.StudyHistory[today][0].Video)
}

func TestResolveByPrefixAndRemove(t *testing.T) {
	t.Parallel()
	rec := recorddomain.New()
	rec.Playlists = []recorddomain.Playlist{{ID: "abc123", Name: "one"}, {ID: "abd456", Name: "two"}}

	idx, err := domain.Resolve(&rec, "abd")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = domain.Resolve(&rec, "ab")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	removed, err := domain.Remove(&rec, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "one", removed.Name)
	require.Len(t, rec.Playlists, 1)
	assert.Equal(t, recorddomain.ID("abd456"), rec.Playlists[0].ID)
}

func TestResolveBySlugOfName(t *testing.T) {
	t.Parallel()
	rec := recorddomain.New()
	rec.Playlists = []recorddomain.Playlist{
		{ID: "p-1", Name: "Go Concurrency Patterns"},
		{ID: "p-2", Name: "SQL"},
		{ID: "p-3", Name: "sql!"},
	}

	idx, err := domain.Resolve(&rec, "go-concurrency-patterns")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = domain.Resolve(&rec, "sql")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	_, err = domain.Resolve(&rec, "rust")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
