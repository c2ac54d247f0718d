package service

import (
	"context"
	"fmt"
	"time"

	"eduvibe/internal/modules/dashboard/domain"
	recordout "eduvibe/internal/modules/record/port/out"
	"eduvibe/internal/platform/clock"
	"eduvibe/internal/platform/day"
	apperrors "eduvibe/internal/platform/errors"
)

type DashboardService struct {
	tx    recordout.Transactor
	clock clock.Clock
	cal   day.Calendar
}

func NewDashboardService(tx recordout.Transactor, clock clock.Clock, cal day.Calendar) *DashboardService {
	return &DashboardService{tx: tx, clock: clock, cal: cal}
}

func (s *DashboardService) Stats(ctx context.Context) (domain.Stats, error) {
	rec, err := s.tx.View(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.StatsOf(rec, s.cal.Key(s.clock.Now())), nil
}

// Month returns the marks for a calendar month. A zero year means the
// current month.
func (s *DashboardService) Month(ctx context.Context, year int, month time.Month) ([]domain.CalendarDay, error) {
	now := s.clock.Now()
	if year == 0 {
		local := now.In(s.cal.Location())
		year, month = local.Year(), local.Month()
	}
	rec, err := s.tx.View(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Calendar(rec, s.cal.Month(year, month), s.cal.Key(now)), nil
}

func (s *DashboardService) Day(ctx context.Context, key string) (domain.Detail, error) {
	if _, err := s.cal.Parse(key); err != nil {
		return domain.Detail{}, fmt.Errorf("%w: day must look like 2006-01-02", apperrors.ErrInvalidInput)
	}
	rec, err := s.tx.View(ctx)
	if err != nil {
		return domain.Detail{}, err
	}
	return domain.DetailOf(rec, day.Normalize(key)), nil
}
