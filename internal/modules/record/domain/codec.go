package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"eduvibe/internal/platform/day"
	apperrors "eduvibe/internal/platform/errors"
)

// DecodeResult carries the record plus what had to be defaulted.
type DecodeResult struct {
	Record        Record
	SourceVersion string
	Defaulted     []string
}

// Decode reads a persisted document field by field. A missing or corrupt
// field is replaced by its default instead of failing the whole load.
func Decode(raw []byte) DecodeResult {
	res := DecodeResult{Record: New()}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		res.Defaulted = append(res.Defaulted, "document")
		return res
	}
	decodeInto(fields, "version", &res.Record.Version, &res.Defaulted)
	res.SourceVersion = res.Record.Version
	decodeInto(fields, "playlists", &res.Record.Playlists, &res.Defaulted)
	decodeInto(fields, "streak", &res.Record.Streak, &res.Defaulted)
	decodeInto(fields, "lastCompletedDate", &res.Record.LastCompletedDate, &res.Defaulted)
	decodeInto(fields, "studyHistory", &res.Record.StudyHistory, &res.Defaulted)
	decodeInto(fields, "dailyGoals", &res.Record.DailyGoals, &res.Defaulted)
	decodeInto(fields, "goalProgress", &res.Record.GoalProgress, &res.Defaulted)
	decodeInto(fields, "achievements", &res.Record.Achievements, &res.Defaulted)
	decodeInto(fields, "focusHistory", &res.Record.FocusHistory, &res.Defaulted)
	decodeInto(fields, "totalFocusTime", &res.Record.TotalFocusTime, &res.Defaulted)
	decodeInto(fields, "settings", &res.Record.Settings, &res.Defaulted)
	Normalize(&res.Record)
	return res
}

// DecodeImport is the strict entry point for backups: the document must be a
// JSON object with a playlists array that decodes cleanly. Other fields
// follow the lenient Decode rules.
func DecodeImport(raw []byte) (DecodeResult, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return DecodeResult{}, fmt.Errorf("%w: document is not a JSON object: %v", apperrors.ErrInvalidFormat, err)
	}
	playlists, ok := fields["playlists"]
	trimmed := bytes.TrimSpace(playlists)
	if !ok || len(trimmed) == 0 || trimmed[0] != '[' {
		return DecodeResult{}, fmt.Errorf("%w: playlists array is required", apperrors.ErrInvalidFormat)
	}
	var probe []Playlist
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return DecodeResult{}, fmt.Errorf("%w: playlists: %v", apperrors.ErrInvalidFormat, err)
	}
	return Decode(raw), nil
}

func Encode(rec Record) ([]byte, error) {
	payload, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return payload, nil
}

func decodeInto[T any](fields map[string]json.RawMessage, key string, dst *T, defaulted *[]string) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		*defaulted = append(*defaulted, key)
		return
	}
	*dst = v
}

// Normalize is the typed defaulting step applied after every load. It fills
// empty collections, folds legacy day strings into keys, clamps the streak,
// prunes empty history days and recomputes playlist progress caches.
func Normalize(r *Record) {
	r.Version = SchemaVersion
	if r.Playlists == nil {
		r.Playlists = []Playlist{}
	}
	for i := range r.Playlists {
		p := &r.Playlists[i]
		if p.Videos == nil {
			p.Videos = []Video{}
		}
		p.Progress = ProgressPercent(p.CompletedVideos(), len(p.Videos))
	}
	if r.Streak < 0 {
		r.Streak = 0
	}
	r.LastCompletedDate = day.Normalize(r.LastCompletedDate)

	history := make(map[string][]StudyEntry, len(r.StudyHistory))
	for k, entries := range r.StudyHistory {
		if len(entries) == 0 {
			continue
		}
		key := day.Normalize(k)
		history[key] = append(history[key], entries...)
	}
	r.StudyHistory = history

	if r.DailyGoals == nil {
		r.DailyGoals = []Goal{}
	}
	for i := range r.DailyGoals {
		r.DailyGoals[i].Date = day.Normalize(r.DailyGoals[i].Date)
	}
	if r.GoalProgress.Trends == nil {
		r.GoalProgress.Trends = []TrendPoint{}
	}
	if r.Achievements.Unlocked == nil {
		r.Achievements.Unlocked = []string{}
	}
	if r.Achievements.Progress == nil {
		r.Achievements.Progress = map[string]float64{}
	}
	if r.FocusHistory == nil {
		r.FocusHistory = []FocusSession{}
	}
	for i := range r.FocusHistory {
		r.FocusHistory[i].Date = day.Normalize(r.FocusHistory[i].Date)
	}
	if r.TotalFocusTime < 0 {
		r.TotalFocusTime = 0
	}
}
