package domain

import (
	"strings"
	"time"

	recorddomain "eduvibe/internal/modules/record/domain"
)

const (
	UntitledTask          = "Untitled Session"
	DefaultPlannedMinutes = 25
	DefaultRecent         = 10
)

// ActiveSession is the in-flight session persisted between commands.
type ActiveSession struct {
	SessionID      string    `json:"session_id"`
	Task           string    `json:"task"`
	StartedAt      time.Time `json:"started_at"`
	PlannedMinutes int       `json:"planned_minutes"`
}

// Finish closes an active session at endedAt. The label falls back from the
// explicit task to the active label to UntitledTask; the session is dated by
// the day it started on.
func Finish(active ActiveSession, task string, endedAt time.Time, startDay string) recorddomain.FocusSession {
	label := strings.TrimSpace(task)
	if label == "" {
		label = strings.TrimSpace(active.Task)
	}
	if label == "" {
		label = UntitledTask
	}
	hours := endedAt.Sub(active.StartedAt).Hours()
	if hours < 0 {
		hours = 0
	}
	return recorddomain.FocusSession{
		ID:        recorddomain.ID(active.SessionID),
		Task:      label,
		StartTime: active.StartedAt,
		EndTime:   endedAt,
		Duration:  hours,
		Date:      startDay,
	}
}

// Record prepends a finished session and keeps totalFocusTime equal to the
// sum of all durations.
func Record(rec *recorddomain.Record, s recorddomain.FocusSession) {
	rec.FocusHistory = append([]recorddomain.FocusSession{s}, rec.FocusHistory...)
	rec.TotalFocusTime += s.Duration
}

func Recent(history []recorddomain.FocusSession, n int) []recorddomain.FocusSession {
	if n <= 0 {
		n = DefaultRecent
	}
	if n > len(history) {
		n = len(history)
	}
	return history[:n]
}

func OnDay(history []recorddomain.FocusSession, day string) []recorddomain.FocusSession {
	var out []recorddomain.FocusSession
	for _, s := range history {
		if s.Date == day {
			out = append(out, s)
		}
	}
	return out
}

type DailyTotal struct {
	Day      string
	Hours    float64
	Sessions int
}
