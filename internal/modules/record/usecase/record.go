package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"eduvibe/internal/modules/record/domain"
	"eduvibe/internal/modules/record/dto"
	recordin "eduvibe/internal/modules/record/port/in"
	recordout "eduvibe/internal/modules/record/port/out"
	"eduvibe/internal/modules/record/service"
)

type Interactor struct {
	svc     *service.RecordService
	backups recordout.BackupWriter
}

func NewInteractor(svc *service.RecordService, backups recordout.BackupWriter) recordin.Usecase {
	return &Interactor{svc: svc, backups: backups}
}

// Export writes the document first and stamps settings.lastExport after, so
// the backup itself carries the previous export time.
func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	if i.backups == nil {
		return dto.ExportOutput{}, fmt.Errorf("backup writer is not configured")
	}
	payload, name, err := i.svc.Snapshot(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	dir := input.Dir
	if dir == "" {
		dir = "."
	}
	path, err := i.backups.Write(ctx, filepath.Join(dir, name), payload)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	at, err := i.svc.MarkExported(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: path, SizeBytes: len(payload), ExportedAt: at}, nil
}

func (i *Interactor) PreviewImport(_ context.Context, input dto.ImportInput) (dto.ImportSummary, error) {
	res, err := domain.DecodeImport(input.Document)
	if err != nil {
		return dto.ImportSummary{}, err
	}
	summary := summarize(res.Record)
	summary.Version = res.SourceVersion
	return summary, nil
}

func (i *Interactor) Import(ctx context.Context, input dto.ImportInput) (dto.ImportSummary, error) {
	rec, err := i.svc.Import(ctx, input.Document)
	if err != nil {
		return dto.ImportSummary{}, err
	}
	return summarize(rec), nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

func (i *Interactor) Stats(ctx context.Context) (dto.StatsOutput, error) {
	size, err := i.svc.Size(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	rec, err := i.svc.View(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.StatsOutput{
		SizeBytes:     size,
		LastExport:    rec.Settings.LastExport,
		Playlists:     len(rec.Playlists),
		Goals:         len(rec.DailyGoals),
		FocusSessions: len(rec.FocusHistory),
	}, nil
}

func summarize(rec domain.Record) dto.ImportSummary {
	return dto.ImportSummary{
		Version:       rec.Version,
		Playlists:     len(rec.Playlists),
		Goals:         len(rec.DailyGoals),
		FocusSessions: len(rec.FocusHistory),
		Streak:        rec.Streak,
	}
}
