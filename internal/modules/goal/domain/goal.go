package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	recorddomain "eduvibe/internal/modules/record/domain"
	apperrors "eduvibe/internal/platform/errors"
)

const DefaultCategory = "study"

// TrendDays is the window of the cached goal trend.
const TrendDays = 7

type Draft struct {
	Title    string `validate:"required,max=200"`
	Category string `validate:"max=50"`
}

func (d Draft) Normalized() Draft {
	out := Draft{Title: strings.TrimSpace(d.Title), Category: strings.ToLower(strings.TrimSpace(d.Category))}
	if out.Category == "" {
		out.Category = DefaultCategory
	}
	return out
}

func Build(d Draft, id string, now time.Time, today string) recorddomain.Goal {
	return recorddomain.Goal{
		ID:        recorddomain.ID(id),
		Title:     d.Title,
		Category:  d.Category,
		Date:      today,
		CreatedAt: now,
	}
}

// DayProgress aggregates the goals dated on one day.
type DayProgress struct {
	Day        string
	Completed  int
	Total      int
	Percentage float64
}

func ForDay(goals []recorddomain.Goal, day string) []recorddomain.Goal {
	var out []recorddomain.Goal
	for _, g := range goals {
		if g.Date == day {
			out = append(out, g)
		}
	}
	return out
}

func Progress(goals []recorddomain.Goal, day string) DayProgress {
	p := DayProgress{Day: day}
	for _, g := range goals {
		if g.Date != day {
			continue
		}
		p.Total++
		if g.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = math.Round(100 * float64(p.Completed) / float64(p.Total))
	}
	return p
}

func Timeline(goals []recorddomain.Goal, days []string) []DayProgress {
	out := make([]DayProgress, 0, len(days))
	for _, d := range days {
		out = append(out, Progress(goals, d))
	}
	return out
}

// SetCompletion flips a goal and reports whether the change is the first
// completed goal of today, which is what counts as a study event.
func SetCompletion(rec *recorddomain.Record, ref string, completed bool, today string) (int, bool, error) {
	idx, err := Resolve(rec, ref)
	if err != nil {
		return -1, false, err
	}
	g := &rec.DailyGoals[idx]
	g.Completed = completed
	if !completed || g.Date != today {
		return idx, false, nil
	}
	return idx, Progress(rec.DailyGoals, today).Completed == 1, nil
}

// Resolve finds a goal by id or by an unambiguous id prefix.
func Resolve(rec *recorddomain.Record, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, fmt.Errorf("%w: goal id is required", apperrors.ErrInvalidInput)
	}
	if idx, ok := rec.FindGoal(recorddomain.ID(ref)); ok {
		return idx, nil
	}
	match := -1
	for i, g := range rec.DailyGoals {
		if strings.HasPrefix(string(g.ID), ref) {
			if match >= 0 {
				return -1, fmt.Errorf("%w: goal id %q is ambiguous", apperrors.ErrInvalidInput, ref)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("goal %s: %w", ref, apperrors.ErrNotFound)
	}
	return match, nil
}

func Remove(rec *recorddomain.Record, ref string) (recorddomain.Goal, error) {
	idx, err := Resolve(rec, ref)
	if err != nil {
		return recorddomain.Goal{}, err
	}
	removed := rec.DailyGoals[idx]
	rec.DailyGoals = append(rec.DailyGoals[:idx], rec.DailyGoals[idx+1:]...)
	return removed, nil
}

// RefreshProgress rebuilds the cached goal aggregates. window holds the trend
// days oldest first and ends with today.
func RefreshProgress(rec *recorddomain.Record, window []string) {
	gp := recorddomain.GoalProgress{Trends: make([]recorddomain.TrendPoint, 0, len(window))}
	var sum float64
	var withGoals int
	for _, p := range Timeline(rec.DailyGoals, window) {
		gp.Trends = append(gp.Trends, recorddomain.TrendPoint{Date: p.Day, Percentage: p.Percentage})
		if p.Total > 0 {
			sum += p.Percentage
			withGoals++
		}
	}
	if n := len(gp.Trends); n > 0 {
		gp.DailyCompletion = gp.Trends[n-1].Percentage
	}
	if withGoals > 0 {
		gp.WeeklyAverage = math.Round(sum/float64(withGoals)*10) / 10
	}
	rec.GoalProgress = gp
}
