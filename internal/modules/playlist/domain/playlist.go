package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	recorddomain "eduvibe/internal/modules/record/domain"
	apperrors "eduvibe/internal/platform/errors"
	"eduvibe/internal/platform/slug"
)

const DefaultSource = "other"

// Draft is a playlist as entered by the user, before ids and lock state exist.
type Draft struct {
	Name   string   `validate:"required,max=200"`
	Source string   `validate:"oneof=youtube udemy coursera other"`
	URL    string   `validate:"max=2048"`
	Titles []string `validate:"dive,max=300"`
}

// Normalized trims every field, drops blank titles and defaults the source.
func (d Draft) Normalized() Draft {
	out := Draft{
		Name:   strings.TrimSpace(d.Name),
		Source: strings.ToLower(strings.TrimSpace(d.Source)),
		URL:    strings.TrimSpace(d.URL),
		Titles: make([]string, 0, len(d.Titles)),
	}
	if out.Source == "" {
		out.Source = DefaultSource
	}
	for _, t := range d.Titles {
		if t = strings.TrimSpace(t); t != "" {
			out.Titles = append(out.Titles, t)
		}
	}
	return out
}

// ParseTitles splits a pasted block of titles, one per line.
func ParseTitles(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// VideoURL links the video at the zero-based position within the playlist.
// The index is always appended as &index=N. A playlist without a URL gives
// videos without one.
func VideoURL(base string, position int) string {
	if base == "" {
		return ""
	}
	return base + "&index=" + strconv.Itoa(position+1)
}

// Build turns a normalized draft into a playlist. Only the first video starts
// unlocked.
func Build(d Draft, newID func() string, now time.Time) recorddomain.Playlist {
	videos := make([]recorddomain.Video, 0, len(d.Titles))
	for i, title := range d.Titles {
		videos = append(videos, recorddomain.Video{
			ID:     recorddomain.ID(newID()),
			Title:  title,
			Locked: i > 0,
			URL:    VideoURL(d.URL, i),
		})
	}
	return recorddomain.Playlist{
		ID:        recorddomain.ID(newID()),
		Name:      d.Name,
		Source:    d.Source,
		URL:       d.URL,
		Videos:    videos,
		Progress:  0,
		CreatedAt: now,
	}
}

// Resolve finds a playlist by id, an unambiguous id prefix, or the slug of
// its name.
func Resolve(rec *recorddomain.Record, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, fmt.Errorf("%w: playlist id is required", apperrors.ErrInvalidInput)
	}
	if idx, ok := rec.FindPlaylist(recorddomain.ID(ref)); ok {
		return idx, nil
	}
	match := -1
	for i, p := range rec.Playlists {
		if strings.HasPrefix(string(p.ID), ref) {
			if match >= 0 {
				return -1, fmt.Errorf("%w: playlist id %q is ambiguous", apperrors.ErrInvalidInput, ref)
			}
			match = i
		}
	}
	if match >= 0 {
		return match, nil
	}
	for i, p := range rec.Playlists {
		if slug.Matches(ref, p.Name) {
			if match >= 0 {
				return -1, fmt.Errorf("%w: several playlists are named %q", apperrors.ErrInvalidInput, ref)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("playlist %s: %w", ref, apperrors.ErrNotFound)
	}
	return match, nil
}

// ResolveVideo finds a video by id or by its 1-based position.
func ResolveVideo(p recorddomain.Playlist, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	for i, v := range p.Videos {
		if string(v.ID) == ref {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(p.Videos) {
		return n - 1, nil
	}
	return -1, fmt.Errorf("video %s in playlist %s: %w", ref, p.ID, apperrors.ErrNotFound)
}

// Change describes the effect of one completion toggle.
type Change struct {
	PlaylistIndex int
	VideoIndex    int
	Completed     bool
	// Unlocked is the successor unlocked by this call, empty when none.
	Unlocked recorddomain.ID
}

// SetCompletion toggles a video and keeps the study history in step. Marking
// complete unlocks the successor and appends a history entry for today;
// unmarking removes today's matching entries. Lock state never reverts.
func SetCompletion(rec *recorddomain.Record, playlistRef, videoRef string, completed bool, now time.Time, today string) (Change, error) {
	pi, err := Resolve(rec, playlistRef)
	if err != nil {
		return Change{}, err
	}
	p := &rec.Playlists[pi]
	vi, err := ResolveVideo(*p, videoRef)
	if err != nil {
		return Change{}, err
	}
	v := &p.Videos[vi]
	change := Change{PlaylistIndex: pi, VideoIndex: vi, Completed: completed}

	if completed {
		if v.Locked {
			return Change{}, fmt.Errorf("%w: video %q is locked until the previous one is completed", apperrors.ErrInvalidInput, v.Title)
		}
		v.Completed = true
		if vi+1 < len(p.Videos) && p.Videos[vi+1].Locked {
			p.Videos[vi+1].Locked = false
			change.Unlocked = p.Videos[vi+1].ID
		}
		if rec.StudyHistory == nil {
			rec.StudyHistory = map[string][]recorddomain.StudyEntry{}
		}
		rec.StudyHistory[today] = append(rec.StudyHistory[today], recorddomain.StudyEntry{
			Playlist:    p.Name,
			Video:       v.Title,
			CompletedAt: now,
		})
	} else {
		v.Completed = false
		removeHistory(rec, today, p.Name, v.Title)
	}
	p.Progress = recorddomain.ProgressPercent(p.CompletedVideos(), len(p.Videos))
	return change, nil
}

func removeHistory(rec *recorddomain.Record, day, playlist, video string) {
	entries, ok := rec.StudyHistory[day]
	if !ok {
		return
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.Playlist == playlist && e.Video == video {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		delete(rec.StudyHistory, day)
		return
	}
	rec.StudyHistory[day] = kept
}

// Remove deletes a playlist. Its study history stays.
func Remove(rec *recorddomain.Record, ref string) (recorddomain.Playlist, error) {
	idx, err := Resolve(rec, ref)
	if err != nil {
		return recorddomain.Playlist{}, err
	}
	removed := rec.Playlists[idx]
	rec.Playlists = append(rec.Playlists[:idx], rec.Playlists[idx+1:]...)
	return removed, nil
}
