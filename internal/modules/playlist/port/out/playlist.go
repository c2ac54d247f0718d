package out

import (
	"context"

	recorddomain "eduvibe/internal/modules/record/domain"
)

// PlaylistIndexProjector mirrors playlists into a queryable index. The record
// stays the source of truth; the index can always be rebuilt from it.
type PlaylistIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertPlaylist(ctx context.Context, playlist recorddomain.Playlist) error
	DeletePlaylist(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]string, error)
}
