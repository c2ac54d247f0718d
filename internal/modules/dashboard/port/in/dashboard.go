package in

import (
	"context"

	"eduvibe/internal/modules/dashboard/dto"
)

type Usecase interface {
	Stats(ctx context.Context) (dto.StatsOutput, error)
	Calendar(ctx context.Context, input dto.CalendarInput) (dto.CalendarOutput, error)
	Day(ctx context.Context, date string) (dto.DayOutput, error)
}
