package domain

import (
	"math"

	recorddomain "eduvibe/internal/modules/record/domain"
)

type Kind string

const (
	KindStreak             Kind = "streak"
	KindPlaylistCount      Kind = "playlist_count"
	KindCompletedPlaylists Kind = "completed_playlists"
	KindFocusTime          Kind = "focus_time"
)

type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Kind        Kind
	Target      float64
}

// Catalog is append-only: new badges may be added, existing ids never change.
var Catalog = []Badge{
	{ID: "weekly_warrior", Name: "Weekly Warrior", Description: "7-day study streak", Icon: "fa-fire", Kind: KindStreak, Target: 7},
	{ID: "monthly_master", Name: "Monthly Master", Description: "30-day study streak", Icon: "fa-trophy", Kind: KindStreak, Target: 30},
	{ID: "half_century", Name: "Half Century", Description: "50-day study streak", Icon: "fa-flag", Kind: KindStreak, Target: 50},
	{ID: "century_club", Name: "Century Club", Description: "100-day study streak", Icon: "fa-crown", Kind: KindStreak, Target: 100},
	{ID: "virtuoso", Name: "Virtuoso", Description: "150-day study streak", Icon: "fa-star", Kind: KindStreak, Target: 150},
	{ID: "sage", Name: "Sage", Description: "200-day study streak", Icon: "fa-gem", Kind: KindStreak, Target: 200},
	{ID: "grand_master", Name: "Grand Master", Description: "365-day study streak", Icon: "fa-medal", Kind: KindStreak, Target: 365},

	{ID: "first_steps", Name: "First Steps", Description: "First playlist created", Icon: "fa-play-circle", Kind: KindPlaylistCount, Target: 1},
	{ID: "course_conqueror", Name: "Course Conqueror", Description: "First playlist completed", Icon: "fa-check-circle", Kind: KindCompletedPlaylists, Target: 1},
	{ID: "knowledge_seeker", Name: "Knowledge Seeker", Description: "5 playlists completed", Icon: "fa-book", Kind: KindCompletedPlaylists, Target: 5},
	{ID: "learning_luminary", Name: "Learning Luminary", Description: "10 playlists completed", Icon: "fa-lightbulb", Kind: KindCompletedPlaylists, Target: 10},
	{ID: "master_of_mastery", Name: "Master of Mastery", Description: "25 playlists completed", Icon: "fa-graduation-cap", Kind: KindCompletedPlaylists, Target: 25},

	{ID: "5_hour_power", Name: "5-Hour Power", Description: "Accumulate 5 hours of total study time", Icon: "fa-clock", Kind: KindFocusTime, Target: 5},
	{ID: "10_hour_hustler", Name: "10-Hour Hustler", Description: "Accumulate 10 hours of total study time", Icon: "fa-bolt", Kind: KindFocusTime, Target: 10},
	{ID: "25_hour_scholar", Name: "25-Hour Scholar", Description: "Accumulate 25 hours of total study time", Icon: "fa-graduation-cap", Kind: KindFocusTime, Target: 25},
	{ID: "50_hour_master", Name: "50-Hour Master", Description: "Accumulate 50 hours of total study time", Icon: "fa-crown", Kind: KindFocusTime, Target: 50},
	{ID: "100_hour_virtuoso", Name: "100-Hour Virtuoso", Description: "Accumulate 100 hours of total study time", Icon: "fa-star", Kind: KindFocusTime, Target: 100},
	{ID: "250_hour_sage", Name: "250-Hour Sage", Description: "Accumulate 250 hours of total study time", Icon: "fa-gem", Kind: KindFocusTime, Target: 250},
	{ID: "500_hour_grand_master", Name: "500-Hour Grand Master", Description: "Accumulate 500 hours of total study time", Icon: "fa-medal", Kind: KindFocusTime, Target: 500},
	{ID: "1000_hour_legend", Name: "1000-Hour Legend", Description: "Accumulate 1000 hours of total study time", Icon: "fa-trophy", Kind: KindFocusTime, Target: 1000},
}

// Metrics is the aggregate snapshot badges are evaluated against.
type Metrics struct {
	Streak             int
	PlaylistCount      int
	CompletedPlaylists int
	TotalFocusHours    float64
}

func MetricsOf(rec recorddomain.Record) Metrics {
	return Metrics{
		Streak:             rec.Streak,
		PlaylistCount:      len(rec.Playlists),
		CompletedPlaylists: rec.CompletedPlaylists(),
		TotalFocusHours:    rec.TotalFocusTime,
	}
}

func (m Metrics) value(k Kind) float64 {
	switch k {
	case KindStreak:
		return float64(m.Streak)
	case KindPlaylistCount:
		return float64(m.PlaylistCount)
	case KindCompletedPlaylists:
		return float64(m.CompletedPlaylists)
	case KindFocusTime:
		return m.TotalFocusHours
	default:
		return 0
	}
}

type Status struct {
	Badge    Badge
	Current  float64
	Progress float64
	Earned   bool
}

func Evaluate(m Metrics) []Status {
	out := make([]Status, 0, len(Catalog))
	for _, b := range Catalog {
		out = append(out, evaluate(b, m))
	}
	return out
}

func evaluate(b Badge, m Metrics) Status {
	current := m.value(b.Kind)
	progress := 0.0
	if b.Target > 0 {
		progress = math.Min(current/b.Target, 1)
	}
	return Status{Badge: b, Current: current, Progress: progress, Earned: current >= b.Target}
}

// Cache renders an evaluation into the record's achievement cache shape.
func Cache(statuses []Status) recorddomain.AchievementCache {
	cache := recorddomain.AchievementCache{Unlocked: []string{}, Progress: make(map[string]float64, len(statuses))}
	for _, s := range statuses {
		if s.Earned {
			cache.Unlocked = append(cache.Unlocked, s.Badge.ID)
		}
		cache.Progress[s.Badge.ID] = s.Progress
	}
	return cache
}
