package in

import (
	"context"

	"eduvibe/internal/modules/streak/dto"
)

type Usecase interface {
	Status(ctx context.Context) (dto.StatusOutput, error)
}
