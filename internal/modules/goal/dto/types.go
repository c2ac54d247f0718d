package dto

import "time"

type AddInput struct {
	Title    string
	Category string
}

type CompletionInput struct {
	GoalID    string
	Completed bool
}

// TimelineInput selects either the trailing Days or a calendar Month
// ("2006-01"). Month wins when both are set.
type TimelineInput struct {
	Days  int
	Month string
}

type GoalOutput struct {
	ID        string
	Title     string
	Category  string
	Completed bool
	Date      string
	CreatedAt time.Time
}

type DayProgressOutput struct {
	Date       string
	Completed  int
	Total      int
	Percentage float64
}

type TodayOutput struct {
	Goals    []GoalOutput
	Progress DayProgressOutput
}

type CompletionOutput struct {
	Goal          GoalOutput
	StreakUpdated bool
	Streak        int
	Today         DayProgressOutput
}
