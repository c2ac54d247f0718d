package in

import (
	"context"

	focusdto "eduvibe/internal/modules/focus/dto"
	focusin "eduvibe/internal/modules/focus/port/in"
)

type CLIHandler struct {
	usecase focusin.Usecase
}

func NewCLIHandler(usecase focusin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, task string, minutes int) (focusdto.ActiveSessionOutput, error) {
	return h.usecase.Start(ctx, focusdto.StartInput{Task: task, Minutes: minutes})
}

func (h CLIHandler) SetTask(ctx context.Context, task string) (focusdto.ActiveSessionOutput, error) {
	return h.usecase.SetTask(ctx, task)
}

func (h CLIHandler) Stop(ctx context.Context, task string) (focusdto.StopOutput, error) {
	return h.usecase.Stop(ctx, focusdto.StopInput{Task: task})
}

func (h CLIHandler) GetActive(ctx context.Context) (focusdto.ActiveSessionOutput, error) {
	return h.usecase.GetActive(ctx)
}

func (h CLIHandler) History(ctx context.Context, n int) ([]focusdto.SessionOutput, error) {
	return h.usecase.Recent(ctx, n)
}

func (h CLIHandler) Report(ctx context.Context, days int) ([]focusdto.DailyTotalOutput, error) {
	return h.usecase.Report(ctx, days)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
