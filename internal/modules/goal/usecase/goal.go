package usecase

import (
	"context"
	"fmt"
	"time"

	"eduvibe/internal/modules/goal/domain"
	"eduvibe/internal/modules/goal/dto"
	goalin "eduvibe/internal/modules/goal/port/in"
	"eduvibe/internal/modules/goal/service"
	recorddomain "eduvibe/internal/modules/record/domain"
	apperrors "eduvibe/internal/platform/errors"
)

const defaultTimelineDays = 7

type Interactor struct {
	svc *service.GoalService
}

func NewInteractor(svc *service.GoalService) goalin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.GoalOutput, error) {
	goal, err := i.svc.Add(ctx, domain.Draft{Title: input.Title, Category: input.Category})
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toGoal(goal), nil
}

func (i *Interactor) SetCompletion(ctx context.Context, input dto.CompletionInput) (dto.CompletionOutput, error) {
	res, err := i.svc.SetCompletion(ctx, input.GoalID, input.Completed)
	if err != nil {
		return dto.CompletionOutput{}, err
	}
	return dto.CompletionOutput{
		Goal:          toGoal(res.Goal),
		StreakUpdated: res.Fired,
		Streak:        res.Streak.Streak,
		Today:         toProgress(res.Today),
	}, nil
}

func (i *Interactor) Delete(ctx context.Context, id string) (dto.GoalOutput, error) {
	goal, err := i.svc.Delete(ctx, id)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toGoal(goal), nil
}

func (i *Interactor) Today(ctx context.Context) (dto.TodayOutput, error) {
	goals, progress, err := i.svc.Today(ctx)
	if err != nil {
		return dto.TodayOutput{}, err
	}
	out := dto.TodayOutput{Goals: make([]dto.GoalOutput, 0, len(goals)), Progress: toProgress(progress)}
	for _, g := range goals {
		out.Goals = append(out.Goals, toGoal(g))
	}
	return out, nil
}

func (i *Interactor) Timeline(ctx context.Context, input dto.TimelineInput) ([]dto.DayProgressOutput, error) {
	var days []string
	switch {
	case input.Month != "":
		month, err := time.Parse("2006-01", input.Month)
		if err != nil {
			return nil, fmt.Errorf("%w: month must look like 2006-01", apperrors.ErrInvalidInput)
		}
		days = i.svc.MonthDays(month.Year(), month.Month())
	case input.Days < 0:
		return nil, fmt.Errorf("%w: days must be positive", apperrors.ErrInvalidInput)
	case input.Days == 0:
		days = i.svc.LastDays(defaultTimelineDays)
	default:
		days = i.svc.LastDays(input.Days)
	}
	progress, err := i.svc.Timeline(ctx, days)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DayProgressOutput, 0, len(progress))
	for _, p := range progress {
		out = append(out, toProgress(p))
	}
	return out, nil
}

func toGoal(g recorddomain.Goal) dto.GoalOutput {
	return dto.GoalOutput{
		ID:        string(g.ID),
		Title:     g.Title,
		Category:  g.Category,
		Completed: g.Completed,
		Date:      g.Date,
		CreatedAt: g.CreatedAt,
	}
}

func toProgress(p domain.DayProgress) dto.DayProgressOutput {
	return dto.DayProgressOutput{Date: p.Day, Completed: p.Completed, Total: p.Total, Percentage: p.Percentage}
}
