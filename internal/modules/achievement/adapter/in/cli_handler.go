package in

import (
	"context"

	achievementdto "eduvibe/internal/modules/achievement/dto"
	achievementin "eduvibe/internal/modules/achievement/port/in"
)

type CLIHandler struct {
	usecase achievementin.Usecase
}

func NewCLIHandler(usecase achievementin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) (achievementdto.ListOutput, error) {
	return h.usecase.List(ctx)
}
