package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	playlistout "eduvibe/internal/modules/playlist/port/out"
	recorddomain "eduvibe/internal/modules/record/domain"

	_ "modernc.org/sqlite"
)

type SQLitePlaylistProjector struct {
	db *sql.DB
}

func NewSQLitePlaylistProjector(dbPath string) (playlistout.PlaylistIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLitePlaylistProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLitePlaylistProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS playlists (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  source TEXT NOT NULL,
  url TEXT,
  total_videos INTEGER NOT NULL,
  completed_videos INTEGER NOT NULL,
  progress INTEGER NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS playlist_videos (
  playlist_id TEXT NOT NULL,
  position INTEGER NOT NULL,
  id TEXT NOT NULL,
  title TEXT NOT NULL,
  completed INTEGER NOT NULL,
  locked INTEGER NOT NULL,
  PRIMARY KEY (playlist_id, position)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create playlist tables: %w", err)
	}
	return nil
}

func (s *SQLitePlaylistProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM playlist_videos; DELETE FROM playlists;`); err != nil {
		return fmt.Errorf("reset playlists: %w", err)
	}
	return nil
}

func (s *SQLitePlaylistProjector) UpsertPlaylist(ctx context.Context, playlist recorddomain.Playlist) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin playlist upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const stmt = `
INSERT INTO playlists (id, name, source, url, total_videos, completed_videos, progress, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  source=excluded.source,
  url=excluded.url,
  total_videos=excluded.total_videos,
  completed_videos=excluded.completed_videos,
  progress=excluded.progress,
  updated_at=excluded.updated_at;
`
	_, err = tx.ExecContext(ctx, stmt,
		string(playlist.ID),
		playlist.Name,
		playlist.Source,
		playlist.URL,
		len(playlist.Videos),
		playlist.CompletedVideos(),
		playlist.Progress,
		playlist.CreatedAt.Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert playlist: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM playlist_videos WHERE playlist_id = ?`, string(playlist.ID)); err != nil {
		return fmt.Errorf("clear playlist videos: %w", err)
	}
	for i, v := range playlist.Videos {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO playlist_videos (playlist_id, position, id, title, completed, locked) VALUES (?, ?, ?, ?, ?, ?)`,
			string(playlist.ID), i+1, string(v.ID), v.Title, v.Completed, v.Locked)
		if err != nil {
			return fmt.Errorf("insert playlist video: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit playlist upsert: %w", err)
	}
	return nil
}

func (s *SQLitePlaylistProjector) DeletePlaylist(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM playlist_videos WHERE playlist_id = ?`, id); err != nil {
		return fmt.Errorf("delete playlist videos: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	return nil
}

// Search matches the query against playlist names and video titles, most
// progressed playlists first.
func (s *SQLitePlaylistProjector) Search(ctx context.Context, query string) ([]string, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	rows, err := s.db.QueryContext(ctx, `
SELECT p.id FROM playlists p
WHERE lower(p.name) LIKE ?
   OR EXISTS (SELECT 1 FROM playlist_videos v WHERE v.playlist_id = p.id AND lower(v.title) LIKE ?)
ORDER BY p.progress DESC, p.name ASC;
`, like, like)
	if err != nil {
		return nil, fmt.Errorf("search playlists: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan playlist id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}
	return ids, nil
}
