package dto

import "time"

type StatsOutput struct {
	Playlists          int
	CompletedPlaylists int
	CompletedVideos    int
	TotalVideos        int
	GoalsCompleted     int
	GoalsTotal         int
	GoalsPercentage    float64
	Streak             int
	StudiedToday       bool
	AtRisk             bool
	TotalFocusHours    float64
}

// CalendarInput selects a month as "2006-01"; empty means the current month.
type CalendarInput struct {
	Month string
}

type CalendarDayOutput struct {
	Date    string
	Day     int
	Studied bool
	Today   bool
}

type CalendarOutput struct {
	Month       string
	Weekday     time.Weekday
	Days        []CalendarDayOutput
	StudiedDays int
}

type StudyEntryOutput struct {
	Playlist    string
	Video       string
	CompletedAt time.Time
}

type DayGoalOutput struct {
	ID        string
	Title     string
	Category  string
	Completed bool
}

type DaySessionOutput struct {
	Task  string
	Hours float64
}

type DayOutput struct {
	Date            string
	Studied         []StudyEntryOutput
	Goals           []DayGoalOutput
	GoalsPercentage float64
	Sessions        []DaySessionOutput
}
