package service

import (
	"context"

	"go.uber.org/zap"

	recorddomain "eduvibe/internal/modules/record/domain"
	recordout "eduvibe/internal/modules/record/port/out"
	"eduvibe/internal/modules/streak/domain"
	"eduvibe/internal/platform/clock"
	"eduvibe/internal/platform/day"
)

type StreakService struct {
	tx     recordout.Transactor
	clock  clock.Clock
	cal    day.Calendar
	logger *zap.Logger
}

func NewStreakService(tx recordout.Transactor, clock clock.Clock, cal day.Calendar, logger *zap.Logger) *StreakService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StreakService{tx: tx, clock: clock, cal: cal, logger: logger}
}

// Refresh applies missed-day decay. The record is only rewritten when the
// streak actually resets.
func (s *StreakService) Refresh(ctx context.Context) (domain.State, error) {
	now := s.clock.Now()
	today, yesterday := s.cal.Key(now), s.cal.Yesterday(now)
	rec, err := s.tx.View(ctx)
	if err != nil {
		return domain.State{}, err
	}
	current := domain.Of(rec)
	if domain.Apply(current, today, yesterday, false) == current {
		return current, nil
	}
	updated, err := s.tx.Update(ctx, func(r *recorddomain.Record) error {
		domain.Decay(r, today, yesterday)
		return nil
	})
	if err != nil {
		return domain.State{}, err
	}
	s.logger.Debug("streak reset after missed day",
		zap.Int("previous", current.Streak),
		zap.String("last_completed", current.LastCompletedDate))
	return domain.Of(updated), nil
}

func (s *StreakService) Today() (string, string) {
	now := s.clock.Now()
	return s.cal.Key(now), s.cal.Yesterday(now)
}
