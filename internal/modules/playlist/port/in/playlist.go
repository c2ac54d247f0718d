package in

import (
	"context"

	"eduvibe/internal/modules/playlist/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateInput) (dto.CreateOutput, error)
	SetVideoCompletion(ctx context.Context, input dto.CompletionInput) (dto.CompletionOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.PlaylistOutput, error)
	Get(ctx context.Context, id string) (dto.PlaylistOutput, error)
	Delete(ctx context.Context, id string) (dto.PlaylistOutput, error)
	Reindex(ctx context.Context) error
}
