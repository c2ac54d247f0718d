package dto

import "time"

type ExportInput struct {
	Dir string
}

type ExportOutput struct {
	Path       string
	SizeBytes  int
	ExportedAt time.Time
}

type ImportInput struct {
	Document []byte
}

// ImportSummary describes a backup before and after it is applied.
type ImportSummary struct {
	Version       string
	Playlists     int
	Goals         int
	FocusSessions int
	Streak        int
}

type StatsOutput struct {
	SizeBytes     int
	LastExport    *time.Time
	Playlists     int
	Goals         int
	FocusSessions int
}
