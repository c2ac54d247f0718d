package in

import (
	"context"

	streakdto "eduvibe/internal/modules/streak/dto"
	streakin "eduvibe/internal/modules/streak/port/in"
)

type CLIHandler struct {
	usecase streakin.Usecase
}

func NewCLIHandler(usecase streakin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (streakdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}
