package in

import (
	"context"

	"eduvibe/internal/modules/focus/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.ActiveSessionOutput, error)
	SetTask(ctx context.Context, task string) (dto.ActiveSessionOutput, error)
	GetActive(ctx context.Context) (dto.ActiveSessionOutput, error)
	Stop(ctx context.Context, input dto.StopInput) (dto.StopOutput, error)
	Recent(ctx context.Context, n int) ([]dto.SessionOutput, error)
	Report(ctx context.Context, days int) ([]dto.DailyTotalOutput, error)
	Reindex(ctx context.Context) error
}
