package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	recordoutadapter "eduvibe/internal/modules/record/adapter/out"
	"eduvibe/internal/modules/record/domain"
	"eduvibe/internal/modules/record/dto"
	"eduvibe/internal/modules/record/service"
	"eduvibe/internal/modules/record/usecase"
	"eduvibe/internal/platform/day"
	apperrors "eduvibe/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newRecordService(t *testing.T, path string) *service.RecordService {
	t.Helper()
	clk := fixedClock{now: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)}
	return service.NewRecordService(recordoutadapter.NewFileRecordStore(path), clk, day.NewCalendar(time.UTC), zap.NewNop())
}

func seed(t *testing.T, svc *service.RecordService) {
	t.Helper()
	_, err := svc.Update(context.Background(), func(r *domain.Record) error {
		r.Playlists = append(r.Playlists, domain.Playlist{
			ID:        "p1",
			Name:      "Go",
			Source:    "youtube",
			CreatedAt: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC),
			Videos: []domain.Video{
				{ID: "v1", Title: "Intro", Completed: true},
				{ID: "v2", Title: "Types", Locked: false},
				{ID: "v3", Title: "Generics", Locked: true},
			},
		})
		r.Streak = 5
		r.LastCompletedDate = "2026-10-18"
		r.StudyHistory["2026-10-18"] = []domain.StudyEntry{{Playlist: "Go", Video: "Intro", CompletedAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}}
		r.FocusHistory = []domain.FocusSession{{ID: "f1", Task: "Read", Duration: 0.5, Date: "2026-10-18"}}
		r.TotalFocusTime = 0.5
		return nil
	})
	require.NoError(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	source := newRecordService(t, filepath.Join(dir, "a", "record.json"))
	seed(t, source)
	uc := usecase.NewInteractor(source, recordoutadapter.NewDirBackupWriter())

	out, err := uc.Export(context.Background(), dto.ExportInput{Dir: filepath.Join(dir, "backups")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "backups", "eduvibe-backup-2026-10-18.json"), out.Path)

	exported, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.Equal(t, len(exported), out.SizeBytes)

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stats.LastExport)
	assert.True(t, stats.LastExport.Equal(out.ExportedAt))

	target := newRecordService(t, filepath.Join(dir, "b", "record.json"))
	targetUC := usecase.NewInteractor(target, recordoutadapter.NewDirBackupWriter())
	preview, err := targetUC.PreviewImport(context.Background(), dto.ImportInput{Document: exported})
	require.NoError(t, err)
	assert.Equal(t, dto.ImportSummary{Version: domain.SchemaVersion, Playlists: 1, Goals: 0, FocusSessions: 1, Streak: 5}, preview)

	_, err = targetUC.Import(context.Background(), dto.ImportInput{Document: exported})
	require.NoError(t, err)

	viewed, err := target.View(context.Background())
	require.NoError(t, err)
	reencoded, err := domain.Encode(viewed)
	require.NoError(t, err)
	assert.JSONEq(t, string(exported), string(reencoded))
}

func TestImportReplacesWholeRecord(t *testing.T) {
	t.Parallel()
	svc := newRecordService(t, filepath.Join(t.TempDir(), "record.json"))
	seed(t, svc)
	uc := usecase.NewInteractor(svc, nil)

	summary, err := uc.Import(context.Background(), dto.ImportInput{Document: []byte(`{"playlists": [], "streak": 2}`)})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Playlists)
	assert.Equal(t, 2, summary.Streak)

	rec, err := svc.View(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.FocusHistory)
	assert.Empty(t, rec.StudyHistory)
	assert.Equal(t, 0.0, rec.TotalFocusTime)
}

func TestImportRejectsMissingPlaylists(t *testing.T) {
	t.Parallel()
	svc := newRecordService(t, filepath.Join(t.TempDir(), "record.json"))
	seed(t, svc)
	uc := usecase.NewInteractor(svc, nil)

	_, err := uc.Import(context.Background(), dto.ImportInput{Document: []byte(`{"streak": 100}`)})
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)

	rec, err := svc.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, rec.Streak)
}

func TestClearResetsToFirstRun(t *testing.T) {
	t.Parallel()
	svc := newRecordService(t, filepath.Join(t.TempDir(), "record.json"))
	seed(t, svc)
	uc := usecase.NewInteractor(svc, nil)

	require.NoError(t, uc.Clear(context.Background()))
	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.StatsOutput{}, stats)
}

func TestExportWithoutWriterFails(t *testing.T) {
	t.Parallel()
	svc := newRecordService(t, filepath.Join(t.TempDir(), "record.json"))
	_, err := usecase.NewInteractor(svc, nil).Export(context.Background(), dto.ExportInput{})
	assert.Error(t, err)
}
