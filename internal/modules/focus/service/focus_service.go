package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"eduvibe/internal/modules/focus/domain"
	focusout "eduvibe/internal/modules/focus/port/out"
	recorddomain "eduvibe/internal/modules/record/domain"
	recordout "eduvibe/internal/modules/record/port/out"
	"eduvibe/internal/platform/clock"
	"eduvibe/internal/platform/day"
	apperrors "eduvibe/internal/platform/errors"
	"eduvibe/internal/platform/id"
)

type FocusService struct {
	tx        recordout.Transactor
	clock     clock.Clock
	idGen     id.Generator
	cal       day.Calendar
	active    focusout.ActiveSessionStore
	journal   focusout.SessionJournal
	projector focusout.FocusIndexProjector
	logger    *zap.Logger
}

// NewFocusService wires the recorder. journal may be nil to skip day notes.
func NewFocusService(
	tx recordout.Transactor,
	clock clock.Clock,
	idGen id.Generator,
	cal day.Calendar,
	active focusout.ActiveSessionStore,
	journal focusout.SessionJournal,
	projector focusout.FocusIndexProjector,
	logger *zap.Logger,
) *FocusService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FocusService{tx: tx, clock: clock, idGen: idGen, cal: cal, active: active, journal: journal, projector: projector, logger: logger}
}

// Stopped is the result of Stop. Recorded is false when nothing was running.
type Stopped struct {
	Session     recorddomain.FocusSession
	Recorded    bool
	TotalHours  float64
	JournalPath string
}

func (s *FocusService) Start(ctx context.Context, task string, minutes int) (domain.ActiveSession, error) {
	if _, err := s.active.LoadActive(ctx); err == nil {
		return domain.ActiveSession{}, apperrors.ErrActiveSessionExists
	} else if !errors.Is(err, apperrors.ErrNoActiveSession) {
		return domain.ActiveSession{}, err
	}
	if minutes < 0 {
		return domain.ActiveSession{}, fmt.Errorf("%w: minutes must be positive", apperrors.ErrInvalidInput)
	}
	if minutes == 0 {
		minutes = domain.DefaultPlannedMinutes
	}
	active := domain.ActiveSession{
		SessionID:      s.idGen.New(),
		Task:           task,
		StartedAt:      s.clock.Now(),
		PlannedMinutes: minutes,
	}
	if err := s.active.SaveActive(ctx, active); err != nil {
		return domain.ActiveSession{}, err
	}
	return active, nil
}

func (s *FocusService) Now() time.Time {
	return s.clock.Now()
}

func (s *FocusService) Active(ctx context.Context) (domain.ActiveSession, error) {
	return s.active.LoadActive(ctx)
}

func (s *FocusService) SetTask(ctx context.Context, task string) (domain.ActiveSession, error) {
	active, err := s.active.LoadActive(ctx)
	if err != nil {
		return domain.ActiveSession{}, err
	}
	active.Task = task
	if err := s.active.SaveActive(ctx, active); err != nil {
		return domain.ActiveSession{}, err
	}
	return active, nil
}

// Stop records the active session. Without one it does nothing.
func (s *FocusService) Stop(ctx context.Context, task string) (Stopped, error) {
	active, err := s.active.LoadActive(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveSession) {
			return Stopped{}, nil
		}
		return Stopped{}, err
	}
	session := domain.Finish(active, task, s.clock.Now(), s.cal.Key(active.StartedAt))
	rec, err := s.tx.Update(ctx, func(rec *recorddomain.Record) error {
		domain.Record(rec, session)
		return nil
	})
	if err != nil {
		return Stopped{}, err
	}
	if err := s.active.ClearActive(ctx); err != nil {
		return Stopped{}, err
	}
	out := Stopped{Session: session, Recorded: true, TotalHours: rec.TotalFocusTime}
	if err := s.projector.UpsertSession(ctx, session); err != nil {
		s.logger.Warn("focus index out of date", zap.String("session", string(session.ID)), zap.Error(err))
	}
	if s.journal != nil {
		path, err := s.journal.WriteDay(ctx, session.Date, domain.OnDay(rec.FocusHistory, session.Date))
		if err != nil {
			s.logger.Warn("journal not written", zap.String("day", session.Date), zap.Error(err))
		}
		out.JournalPath = path
	}
	s.logger.Info("focus session recorded",
		zap.String("task", session.Task),
		zap.Float64("hours", session.Duration),
		zap.Float64("total_hours", rec.TotalFocusTime))
	return out, nil
}

func (s *FocusService) Recent(ctx context.Context, n int) ([]recorddomain.FocusSession, error) {
	rec, err := s.tx.View(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Recent(rec.FocusHistory, n), nil
}

// Report returns one total per day for the last n days, oldest first,
// including empty days.
func (s *FocusService) Report(ctx context.Context, n int) ([]domain.DailyTotal, error) {
	if n <= 0 {
		n = 7
	}
	days := s.cal.Last(s.clock.Now(), n)
	totals, err := s.projector.DailyTotals(ctx, days[0], days[len(days)-1])
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]domain.DailyTotal, len(totals))
	for _, t := range totals {
		byDay[t.Day] = t
	}
	out := make([]domain.DailyTotal, 0, len(days))
	for _, d := range days {
		t, ok := byDay[d]
		if !ok {
			t = domain.DailyTotal{Day: d}
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *FocusService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	rec, err := s.tx.View(ctx)
	if err != nil {
		return err
	}
	for _, session := range rec.FocusHistory {
		if err := s.projector.UpsertSession(ctx, session); err != nil {
			return err
		}
	}
	return nil
}
