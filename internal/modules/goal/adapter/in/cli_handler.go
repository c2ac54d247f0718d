package in

import (
	"context"

	goaldto "eduvibe/internal/modules/goal/dto"
	goalin "eduvibe/internal/modules/goal/port/in"
)

type CLIHandler struct {
	usecase goalin.Usecase
}

func NewCLIHandler(usecase goalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, title, category string) (goaldto.GoalOutput, error) {
	return h.usecase.Add(ctx, goaldto.AddInput{Title: title, Category: category})
}

func (h CLIHandler) Check(ctx context.Context, id string) (goaldto.CompletionOutput, error) {
	return h.usecase.SetCompletion(ctx, goaldto.CompletionInput{GoalID: id, Completed: true})
}

func (h CLIHandler) Uncheck(ctx context.Context, id string) (goaldto.CompletionOutput, error) {
	return h.usecase.SetCompletion(ctx, goaldto.CompletionInput{GoalID: id, Completed: false})
}

func (h CLIHandler) Delete(ctx context.Context, id string) (goaldto.GoalOutput, error) {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Today(ctx context.Context) (goaldto.TodayOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) Timeline(ctx context.Context, days int, month string) ([]goaldto.DayProgressOutput, error) {
	return h.usecase.Timeline(ctx, goaldto.TimelineInput{Days: days, Month: month})
}
