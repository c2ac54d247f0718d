package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"eduvibe/internal/modules/goal/domain"
	recorddomain "eduvibe/internal/modules/record/domain"
	recordout "eduvibe/internal/modules/record/port/out"
	streakdomain "eduvibe/internal/modules/streak/domain"
	"eduvibe/internal/platform/clock"
	"eduvibe/internal/platform/day"
	"eduvibe/internal/platform/id"
	"eduvibe/internal/platform/validate"
)

type GoalService struct {
	tx     recordout.Transactor
	clock  clock.Clock
	idGen  id.Generator
	cal    day.Calendar
	logger *zap.Logger
}

func NewGoalService(tx recordout.Transactor, clock clock.Clock, idGen id.Generator, cal day.Calendar, logger *zap.Logger) *GoalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoalService{tx: tx, clock: clock, idGen: idGen, cal: cal, logger: logger}
}

type Completion struct {
	Goal   recorddomain.Goal
	Fired  bool
	Streak streakdomain.State
	Today  domain.DayProgress
}

func (s *GoalService) Add(ctx context.Context, draft domain.Draft) (recorddomain.Goal, error) {
	draft = draft.Normalized()
	if err := validate.Struct(draft); err != nil {
		return recorddomain.Goal{}, err
	}
	now := s.clock.Now()
	goal := domain.Build(draft, s.idGen.New(), now, s.cal.Key(now))
	if _, err := s.tx.Update(ctx, func(rec *recorddomain.Record) error {
		rec.DailyGoals = append(rec.DailyGoals, goal)
		s.refresh(rec, now)
		return nil
	}); err != nil {
		return recorddomain.Goal{}, err
	}
	return goal, nil
}

// SetCompletion toggles a goal. Only the first completed goal of the day
// counts as a streak event.
func (s *GoalService) SetCompletion(ctx context.Context, ref string, completed bool) (Completion, error) {
	now := s.clock.Now()
	today, yesterday := s.cal.Key(now), s.cal.Yesterday(now)
	var (
		idx   int
		fired bool
	)
	rec, err := s.tx.Update(ctx, func(rec *recorddomain.Record) error {
		var err error
		idx, fired, err = domain.SetCompletion(rec, ref, completed, today)
		if err != nil {
			return err
		}
		if fired {
			streakdomain.Complete(rec, today, yesterday)
		}
		s.refresh(rec, now)
		return nil
	})
	if err != nil {
		return Completion{}, err
	}
	if fired {
		s.logger.Debug("first goal of the day completed", zap.Int("streak", rec.Streak))
	}
	return Completion{
		Goal:   rec.DailyGoals[idx],
		Fired:  fired,
		Streak: streakdomain.Of(rec),
		Today:  domain.Progress(rec.DailyGoals, today),
	}, nil
}

func (s *GoalService) Delete(ctx context.Context, ref string) (recorddomain.Goal, error) {
	now := s.clock.Now()
	var removed recorddomain.Goal
	if _, err := s.tx.Update(ctx, func(rec *recorddomain.Record) error {
		var err error
		if removed, err = domain.Remove(rec, ref); err != nil {
			return err
		}
		s.refresh(rec, now)
		return nil
	}); err != nil {
		return recorddomain.Goal{}, err
	}
	return removed, nil
}

// Today lists the goals dated today in insertion order.
func (s *GoalService) Today(ctx context.Context) ([]recorddomain.Goal, domain.DayProgress, error) {
	rec, err := s.tx.View(ctx)
	if err != nil {
		return nil, domain.DayProgress{}, err
	}
	today := s.cal.Key(s.clock.Now())
	return domain.ForDay(rec.DailyGoals, today), domain.Progress(rec.DailyGoals, today), nil
}

// Timeline reports per-day completion for the given days.
func (s *GoalService) Timeline(ctx context.Context, days []string) ([]domain.DayProgress, error) {
	rec, err := s.tx.View(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Timeline(rec.DailyGoals, days), nil
}

// LastDays returns the keys of the n days ending today.
func (s *GoalService) LastDays(n int) []string {
	return s.cal.Last(s.clock.Now(), n)
}

func (s *GoalService) MonthDays(year int, month time.Month) []string {
	return s.cal.Month(year, month)
}

func (s *GoalService) refresh(rec *recorddomain.Record, now time.Time) {
	domain.RefreshProgress(rec, s.cal.Last(now, domain.TrendDays))
}
