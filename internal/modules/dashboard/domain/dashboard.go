package domain

import (
	focusdomain "eduvibe/internal/modules/focus/domain"
	goaldomain "eduvibe/internal/modules/goal/domain"
	recorddomain "eduvibe/internal/modules/record/domain"
)

type Stats struct {
	Playlists          int
	CompletedPlaylists int
	CompletedVideos    int
	TotalVideos        int
	Today              goaldomain.DayProgress
	Streak             int
	TotalFocusHours    float64
}

func StatsOf(rec recorddomain.Record, today string) Stats {
	s := Stats{
		Playlists:          len(rec.Playlists),
		CompletedPlaylists: rec.CompletedPlaylists(),
		CompletedVideos:    rec.CompletedVideos(),
		Today:              goaldomain.Progress(rec.DailyGoals, today),
		Streak:             rec.Streak,
		TotalFocusHours:    rec.TotalFocusTime,
	}
	for _, p := range rec.Playlists {
		s.TotalVideos += len(p.Videos)
	}
	return s
}

// CalendarDay marks one day of a month view.
type CalendarDay struct {
	Day     string
	Studied bool
	Today   bool
}

// Calendar marks days with study history. days is the month, in order.
func Calendar(rec recorddomain.Record, days []string, today string) []CalendarDay {
	out := make([]CalendarDay, 0, len(days))
	for _, d := range days {
		out = append(out, CalendarDay{
			Day:     d,
			Studied: len(rec.StudyHistory[d]) > 0,
			Today:   d == today,
		})
	}
	return out
}

// Detail is everything recorded on one day.
type Detail struct {
	Day      string
	Studied  []recorddomain.StudyEntry
	Goals    []recorddomain.Goal
	Progress goaldomain.DayProgress
	Sessions []recorddomain.FocusSession
}

func DetailOf(rec recorddomain.Record, day string) Detail {
	return Detail{
		Day:      day,
		Studied:  append([]recorddomain.StudyEntry(nil), rec.StudyHistory[day]...),
		Goals:    goaldomain.ForDay(rec.DailyGoals, day),
		Progress: goaldomain.Progress(rec.DailyGoals, day),
		Sessions: focusdomain.OnDay(rec.FocusHistory, day),
	}
}
