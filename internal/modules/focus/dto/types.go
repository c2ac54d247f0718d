package dto

import (
	"time"

	achievementdto "eduvibe/internal/modules/achievement/dto"
)

type StartInput struct {
	Task    string
	Minutes int `validate:"gte=0,lte=600"`
}

type StopInput struct {
	Task string
}

type ActiveSessionOutput struct {
	SessionID      string
	Task           string
	StartedAt      time.Time
	PlannedMinutes int
	Elapsed        time.Duration
}

type SessionOutput struct {
	ID        string
	Task      string
	StartTime time.Time
	EndTime   time.Time
	Hours     float64
	Date      string
}

type StopOutput struct {
	Recorded    bool
	Session     SessionOutput
	TotalHours  float64
	JournalPath string
	NewlyEarned []achievementdto.Item
}

type DailyTotalOutput struct {
	Date     string
	Hours    float64
	Sessions int
}
