package usecase

import (
	"context"

	achievementdto "eduvibe/internal/modules/achievement/dto"
	achievementin "eduvibe/internal/modules/achievement/port/in"
	"eduvibe/internal/modules/focus/domain"
	focusdto "eduvibe/internal/modules/focus/dto"
	focusin "eduvibe/internal/modules/focus/port/in"
	"eduvibe/internal/modules/focus/service"
	recorddomain "eduvibe/internal/modules/record/domain"
	"eduvibe/internal/platform/validate"
)

type Interactor struct {
	svc          *service.FocusService
	achievements achievementin.Usecase
}

func NewInteractor(svc *service.FocusService, achievements achievementin.Usecase) focusin.Usecase {
	return &Interactor{svc: svc, achievements: achievements}
}

func (i *Interactor) Start(ctx context.Context, input focusdto.StartInput) (focusdto.ActiveSessionOutput, error) {
	if err := validate.Struct(input); err != nil {
		return focusdto.ActiveSessionOutput{}, err
	}
	active, err := i.svc.Start(ctx, input.Task, input.Minutes)
	if err != nil {
		return focusdto.ActiveSessionOutput{}, err
	}
	return i.toActive(active), nil
}

func (i *Interactor) SetTask(ctx context.Context, task string) (focusdto.ActiveSessionOutput, error) {
	active, err := i.svc.SetTask(ctx, task)
	if err != nil {
		return focusdto.ActiveSessionOutput{}, err
	}
	return i.toActive(active), nil
}

func (i *Interactor) GetActive(ctx context.Context) (focusdto.ActiveSessionOutput, error) {
	active, err := i.svc.Active(ctx)
	if err != nil {
		return focusdto.ActiveSessionOutput{}, err
	}
	return i.toActive(active), nil
}

func (i *Interactor) Stop(ctx context.Context, input focusdto.StopInput) (focusdto.StopOutput, error) {
	before, err := i.evaluate(ctx)
	if err != nil {
		return focusdto.StopOutput{}, err
	}
	stopped, err := i.svc.Stop(ctx, input.Task)
	if err != nil {
		return focusdto.StopOutput{}, err
	}
	if !stopped.Recorded {
		return focusdto.StopOutput{}, nil
	}
	after, err := i.evaluate(ctx)
	if err != nil {
		return focusdto.StopOutput{}, err
	}
	return focusdto.StopOutput{
		Recorded:    true,
		Session:     toSession(stopped.Session),
		TotalHours:  stopped.TotalHours,
		JournalPath: stopped.JournalPath,
		NewlyEarned: after.NewlyEarnedSince(before),
	}, nil
}

func (i *Interactor) Recent(ctx context.Context, n int) ([]focusdto.SessionOutput, error) {
	sessions, err := i.svc.Recent(ctx, n)
	if err != nil {
		return nil, err
	}
	out := make([]focusdto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSession(s))
	}
	return out, nil
}

func (i *Interactor) Report(ctx context.Context, days int) ([]focusdto.DailyTotalOutput, error) {
	totals, err := i.svc.Report(ctx, days)
	if err != nil {
		return nil, err
	}
	out := make([]focusdto.DailyTotalOutput, 0, len(totals))
	for _, t := range totals {
		out = append(out, focusdto.DailyTotalOutput{Date: t.Day, Hours: t.Hours, Sessions: t.Sessions})
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func (i *Interactor) evaluate(ctx context.Context) (achievementdto.ListOutput, error) {
	if i.achievements == nil {
		return achievementdto.ListOutput{}, nil
	}
	return i.achievements.List(ctx)
}

func (i *Interactor) toActive(a domain.ActiveSession) focusdto.ActiveSessionOutput {
	elapsed := i.svc.Now().Sub(a.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return focusdto.ActiveSessionOutput{
		SessionID:      a.SessionID,
		Task:           a.Task,
		StartedAt:      a.StartedAt,
		PlannedMinutes: a.PlannedMinutes,
		Elapsed:        elapsed,
	}
}

func toSession(s recorddomain.FocusSession) focusdto.SessionOutput {
	return focusdto.SessionOutput{
		ID:        string(s.ID),
		Task:      s.Task,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Hours:     s.Duration,
		Date:      s.Date,
	}
}
