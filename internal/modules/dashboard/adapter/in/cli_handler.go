package in

import (
	"context"

	dashboarddto "eduvibe/internal/modules/dashboard/dto"
	dashboardin "eduvibe/internal/modules/dashboard/port/in"
)

type CLIHandler struct {
	usecase dashboardin.Usecase
}

func NewCLIHandler(usecase dashboardin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Stats(ctx context.Context) (dashboarddto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) Calendar(ctx context.Context, month string) (dashboarddto.CalendarOutput, error) {
	return h.usecase.Calendar(ctx, dashboarddto.CalendarInput{Month: month})
}

func (h CLIHandler) Day(ctx context.Context, date string) (dashboarddto.DayOutput, error) {
	return h.usecase.Day(ctx, date)
}
