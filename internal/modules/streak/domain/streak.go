// Package domain holds the streak transition rules. Everything here is pure:
// callers supply the day keys for today and yesterday.
package domain

import recorddomain "eduvibe/internal/modules/record/domain"

type State struct {
	Streak            int
	LastCompletedDate string
}

// Apply advances the streak. A fired completion extends a run that ended
// yesterday, starts a new one otherwise, and is idempotent within a day.
// Without a completion the streak only resets once a full day was missed.
func Apply(s State, today, yesterday string, fired bool) State {
	if fired {
		switch s.LastCompletedDate {
		case today:
		case yesterday:
			s.Streak++
		default:
			s.Streak = 1
		}
		s.LastCompletedDate = today
		return s
	}
	if s.LastCompletedDate != "" && s.LastCompletedDate != today && s.LastCompletedDate != yesterday {
		s.Streak = 0
	}
	return s
}

func Of(rec recorddomain.Record) State {
	return State{Streak: rec.Streak, LastCompletedDate: rec.LastCompletedDate}
}

func set(rec *recorddomain.Record, s State) {
	rec.Streak = s.Streak
	rec.LastCompletedDate = s.LastCompletedDate
}

// Complete records a completion event on rec.
func Complete(rec *recorddomain.Record, today, yesterday string) State {
	next := Apply(Of(*rec), today, yesterday, true)
	set(rec, next)
	return next
}

// Decay applies the passive missed-day check and reports whether it changed
// anything.
func Decay(rec *recorddomain.Record, today, yesterday string) bool {
	before := Of(*rec)
	next := Apply(before, today, yesterday, false)
	set(rec, next)
	return next != before
}
