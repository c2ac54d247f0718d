package in

import (
	"context"

	"eduvibe/internal/modules/achievement/dto"
)

type Usecase interface {
	List(ctx context.Context) (dto.ListOutput, error)
}
