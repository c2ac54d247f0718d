package usecase

import (
	"context"

	"eduvibe/internal/modules/streak/dto"
	streakin "eduvibe/internal/modules/streak/port/in"
	"eduvibe/internal/modules/streak/service"
)

type Interactor struct {
	svc *service.StreakService
}

func NewInteractor(svc *service.StreakService) streakin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	state, err := i.svc.Refresh(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	today, yesterday := i.svc.Today()
	return dto.StatusOutput{
		Streak:            state.Streak,
		LastCompletedDate: state.LastCompletedDate,
		StudiedToday:      state.LastCompletedDate == today,
		AtRisk:            state.Streak > 0 && state.LastCompletedDate == yesterday,
	}, nil
}
