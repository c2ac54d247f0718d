package in

import (
	"context"

	"eduvibe/internal/modules/goal/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.GoalOutput, error)
	SetCompletion(ctx context.Context, input dto.CompletionInput) (dto.CompletionOutput, error)
	Delete(ctx context.Context, id string) (dto.GoalOutput, error)
	Today(ctx context.Context) (dto.TodayOutput, error)
	Timeline(ctx context.Context, input dto.TimelineInput) ([]dto.DayProgressOutput, error)
}
