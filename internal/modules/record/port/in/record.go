package in

import (
	"context"

	"eduvibe/internal/modules/record/dto"
)

type Usecase interface {
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	PreviewImport(ctx context.Context, input dto.ImportInput) (dto.ImportSummary, error)
	Import(ctx context.Context, input dto.ImportInput) (dto.ImportSummary, error)
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (dto.StatsOutput, error)
}
