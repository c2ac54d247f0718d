package usecase

import (
	"context"

	"eduvibe/internal/modules/achievement/dto"
	achievementin "eduvibe/internal/modules/achievement/port/in"
	"eduvibe/internal/modules/achievement/service"
)

type Interactor struct {
	svc *service.AchievementService
}

func NewInteractor(svc *service.AchievementService) achievementin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) (dto.ListOutput, error) {
	statuses, err := i.svc.Evaluate(ctx)
	if err != nil {
		return dto.ListOutput{}, err
	}
	out := dto.ListOutput{Items: make([]dto.Item, 0, len(statuses))}
	for _, s := range statuses {
		if s.Earned {
			out.Earned++
		}
		out.Items = append(out.Items, dto.Item{
			ID:          s.Badge.ID,
			Name:        s.Badge.Name,
			Description: s.Badge.Description,
			Icon:        s.Badge.Icon,
			Type:        string(s.Badge.Kind),
			Target:      s.Badge.Target,
			Current:     s.Current,
			Progress:    s.Progress,
			Earned:      s.Earned,
		})
	}
	return out, nil
}
