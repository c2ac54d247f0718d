package dto

import (
	"time"

	achievementdto "eduvibe/internal/modules/achievement/dto"
)

type CreateInput struct {
	Name   string
	Source string
	URL    string
	Titles []string
}

type CompletionInput struct {
	PlaylistID string
	VideoID    string
	Completed  bool
}

type ListInput struct {
	Search string
}

type VideoOutput struct {
	ID        string
	Position  int
	Title     string
	Completed bool
	Locked    bool
	URL       string
}

type PlaylistOutput struct {
	ID              string
	Name            string
	Source          string
	URL             string
	Progress        int
	CompletedVideos int
	TotalVideos     int
	CreatedAt       time.Time
	Videos          []VideoOutput
}

type CreateOutput struct {
	Playlist    PlaylistOutput
	NewlyEarned []achievementdto.Item
}

type CompletionOutput struct {
	Playlist     PlaylistOutput
	Video        VideoOutput
	UnlockedNext string
	Streak       int
	Achievements achievementdto.ListOutput
	NewlyEarned  []achievementdto.Item
}
