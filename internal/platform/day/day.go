// Package day maps instants to calendar-day keys in a fixed location.
//
// Keys use the YYYY-MM-DD layout. Two instants belong to the same day when
// their keys are equal; no other normalization is applied.
package day

import (
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// legacyLayout is the Date.toDateString form found in older backups.
const legacyLayout = "Mon Jan 02 2006"

type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{loc: loc}
}

func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// Key returns the calendar day t falls on.
func (c Calendar) Key(t time.Time) string {
	return t.In(c.Location()).Format(Layout)
}

// Shift returns the key n days away from the day of t. Noon anchoring keeps
// DST transitions from skipping or repeating a day.
func (c Calendar) Shift(t time.Time, n int) string {
	lt := t.In(c.Location())
	return time.Date(lt.Year(), lt.Month(), lt.Day()+n, 12, 0, 0, 0, c.Location()).Format(Layout)
}

func (c Calendar) Yesterday(t time.Time) string {
	return c.Shift(t, -1)
}

// Last returns the keys of the n days ending with the day of t, oldest first.
func (c Calendar) Last(t time.Time, n int) []string {
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, c.Shift(t, -i))
	}
	return out
}

// Month returns the keys of every day in the given month.
func (c Calendar) Month(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 12, 0, 0, 0, c.Location())
	days := first.AddDate(0, 1, -1).Day()
	out := make([]string, 0, days)
	for d := 1; d <= days; d++ {
		out = append(out, time.Date(year, month, d, 12, 0, 0, 0, c.Location()).Format(Layout))
	}
	return out
}

// Parse reads a key (or a legacy day string) as noon of that day.
func (c Calendar) Parse(key string) (time.Time, error) {
	norm := Normalize(key)
	t, err := time.ParseInLocation(Layout, norm, c.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", key, err)
	}
	return t.Add(12 * time.Hour), nil
}

// Normalize converts legacy day strings to the key layout. Unknown forms are
// returned trimmed but otherwise untouched.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if _, err := time.Parse(Layout, s); err == nil {
		return s
	}
	if t, err := time.Parse(legacyLayout, s); err == nil {
		return t.Format(Layout)
	}
	return s
}
