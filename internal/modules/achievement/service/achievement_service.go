package service

import (
	"context"

	"eduvibe/internal/modules/achievement/domain"
	recordout "eduvibe/internal/modules/record/port/out"
)

type AchievementService struct {
	tx recordout.Transactor
}

func NewAchievementService(tx recordout.Transactor) *AchievementService {
	return &AchievementService{tx: tx}
}

// Evaluate always recomputes from the record; the stored cache is not consulted.
func (s *AchievementService) Evaluate(ctx context.Context) ([]domain.Status, error) {
	rec, err := s.tx.View(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Evaluate(domain.MetricsOf(rec)), nil
}
