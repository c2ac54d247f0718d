package out

import (
	"context"

	"eduvibe/internal/modules/focus/domain"
	recorddomain "eduvibe/internal/modules/record/domain"
)

type ActiveSessionStore interface {
	SaveActive(ctx context.Context, session domain.ActiveSession) error
	LoadActive(ctx context.Context) (domain.ActiveSession, error)
	ClearActive(ctx context.Context) error
}

// SessionJournal keeps a human-readable note per study day.
type SessionJournal interface {
	WriteDay(ctx context.Context, day string, sessions []recorddomain.FocusSession) (string, error)
}

type FocusIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertSession(ctx context.Context, session recorddomain.FocusSession) error
	DailyTotals(ctx context.Context, from, to string) ([]domain.DailyTotal, error)
}
