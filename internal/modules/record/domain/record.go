package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

// SchemaVersion is written to every saved record. Older and newer versions
// are read with default filling; fields are only ever added.
const SchemaVersion = "2.0"

// ID is an opaque identifier. Legacy documents carry numeric ids; they are
// accepted and kept as their decimal text.
type ID string

func (i *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*i = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*i = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*i = ID(n.String())
	return nil
}

type Video struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Locked    bool   `json:"locked"`
	URL       string `json:"url"`
}

type Playlist struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	URL       string    `json:"url"`
	Videos    []Video   `json:"videos"`
	Progress  int       `json:"progress"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p Playlist) CompletedVideos() int {
	n := 0
	for _, v := range p.Videos {
		if v.Completed {
			n++
		}
	}
	return n
}

type Goal struct {
	ID        ID        `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Completed bool      `json:"completed"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type StudyEntry struct {
	Playlist    string    `json:"playlist"`
	Video       string    `json:"video"`
	CompletedAt time.Time `json:"completedAt"`
}

type FocusSession struct {
	ID        ID        `json:"id"`
	Task      string    `json:"task"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Duration  float64   `json:"duration"`
	Date      string    `json:"date"`
}

type TrendPoint struct {
	Date       string  `json:"date"`
	Percentage float64 `json:"percentage"`
}

type GoalProgress struct {
	DailyCompletion float64      `json:"dailyCompletion"`
	WeeklyAverage   float64      `json:"weeklyAverage"`
	Trends          []TrendPoint `json:"trends"`
}

// AchievementCache mirrors the last evaluation. It is refreshed on every
// mutation and never read back as the source of earned status.
type AchievementCache struct {
	Unlocked []string           `json:"unlocked"`
	Progress map[string]float64 `json:"progress"`
}

type Settings struct {
	LastExport *time.Time `json:"lastExport"`
	AutoBackup bool       `json:"autoBackup"`
}

type Record struct {
	Version           string                  `json:"version"`
	Playlists         []Playlist              `json:"playlists"`
	Streak            int                     `json:"streak"`
	LastCompletedDate string                  `json:"lastCompletedDate"`
	StudyHistory      map[string][]StudyEntry `json:"studyHistory"`
	DailyGoals        []Goal                  `json:"dailyGoals"`
	GoalProgress      GoalProgress            `json:"goalProgress"`
	Achievements      AchievementCache        `json:"achievements"`
	FocusHistory      []FocusSession          `json:"focusHistory"`
	TotalFocusTime    float64                 `json:"totalFocusTime"`
	Settings          Settings                `json:"settings"`
}

// New returns the first-run record.
func New() Record {
	return Record{
		Version:      SchemaVersion,
		Playlists:    []Playlist{},
		StudyHistory: map[string][]StudyEntry{},
		DailyGoals:   []Goal{},
		GoalProgress: GoalProgress{Trends: []TrendPoint{}},
		Achievements: AchievementCache{Unlocked: []string{}, Progress: map[string]float64{}},
		FocusHistory: []FocusSession{},
	}
}

// ProgressPercent is round(100*completed/total), 0 for an empty playlist.
func ProgressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func (r *Record) FindPlaylist(id ID) (int, bool) {
	for i := range r.Playlists {
		if r.Playlists[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (r *Record) FindGoal(id ID) (int, bool) {
	for i := range r.DailyGoals {
		if r.DailyGoals[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// CompletedPlaylists counts playlists whose cached progress is 100.
func (r Record) CompletedPlaylists() int {
	n := 0
	for _, p := range r.Playlists {
		if p.Progress == 100 {
			n++
		}
	}
	return n
}

func (r Record) CompletedVideos() int {
	n := 0
	for _, p := range r.Playlists {
		n += p.CompletedVideos()
	}
	return n
}

// Clone returns a deep copy so a failed unit of work leaves the caller's
// record untouched.
func (r Record) Clone() Record {
	out := r
	out.Playlists = make([]Playlist, len(r.Playlists))
	for i, p := range r.Playlists {
		p.Videos = append([]Video(nil), p.Videos...)
		if p.Videos == nil {
			p.Videos = []Video{}
		}
		out.Playlists[i] = p
	}
	out.StudyHistory = make(map[string][]StudyEntry, len(r.StudyHistory))
	for k, v := range r.StudyHistory {
		out.StudyHistory[k] = append([]StudyEntry(nil), v...)
	}
	out.DailyGoals = append([]Goal{}, r.DailyGoals...)
	out.GoalProgress.Trends = append([]TrendPoint{}, r.GoalProgress.Trends...)
	out.Achievements.Unlocked = append([]string{}, r.Achievements.Unlocked...)
	out.Achievements.Progress = make(map[string]float64, len(r.Achievements.Progress))
	for k, v := range r.Achievements.Progress {
		out.Achievements.Progress[k] = v
	}
	out.FocusHistory = append([]FocusSession{}, r.FocusHistory...)
	if r.Settings.LastExport != nil {
		t := *r.Settings.LastExport
		out.Settings.LastExport = &t
	}
	return out
}
