package service

import (
	"context"

	"go.uber.org/zap"

	"eduvibe/internal/modules/playlist/domain"
	playlistout "eduvibe/internal/modules/playlist/port/out"
	recorddomain "eduvibe/internal/modules/record/domain"
	recordout "eduvibe/internal/modules/record/port/out"
	streakdomain "eduvibe/internal/modules/streak/domain"
	"eduvibe/internal/platform/clock"
	"eduvibe/internal/platform/day"
	"eduvibe/internal/platform/id"
	"eduvibe/internal/platform/validate"
)

type PlaylistService struct {
	tx        recordout.Transactor
	clock     clock.Clock
	idGen     id.Generator
	cal       day.Calendar
	projector playlistout.PlaylistIndexProjector
	logger    *zap.Logger
}

func NewPlaylistService(tx recordout.Transactor, clock clock.Clock, idGen id.Generator, cal day.Calendar, projector playlistout.PlaylistIndexProjector, logger *zap.Logger) *PlaylistService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlaylistService{tx: tx, clock: clock, idGen: idGen, cal: cal, projector: projector, logger: logger}
}

// Completion is the outcome of a completion toggle.
type Completion struct {
	Playlist recorddomain.Playlist
	Change   domain.Change
	Streak   streakdomain.State
}

func (s *PlaylistService) Create(ctx context.Context, draft domain.Draft) (recorddomain.Playlist, error) {
	draft = draft.Normalized()
	if err := validate.Struct(draft); err != nil {
		return recorddomain.Playlist{}, err
	}
	playlist := domain.Build(draft, s.idGen.New, s.clock.Now())
	if _, err := s.tx.Update(ctx, func(rec *recorddomain.Record) error {
		rec.Playlists = append(rec.Playlists, playlist)
		return nil
	}); err != nil {
		return recorddomain.Playlist{}, err
	}
	s.project(ctx, playlist)
	return playlist, nil
}

// SetCompletion toggles one video. Every completion fires the streak engine.
func (s *PlaylistService) SetCompletion(ctx context.Context, playlistRef, videoRef string, completed bool) (Completion, error) {
	now := s.clock.Now()
	today, yesterday := s.cal.Key(now), s.cal.Yesterday(now)
	var change domain.Change
	rec, err := s.tx.Update(ctx, func(rec *recorddomain.Record) error {
		var err error
		change, err = domain.SetCompletion(rec, playlistRef, videoRef, completed, now, today)
		if err != nil {
			return err
		}
		if completed {
			streakdomain.Complete(rec, today, yesterday)
		}
		return nil
	})
	if err != nil {
		return Completion{}, err
	}
	playlist := rec.Playlists[change.PlaylistIndex]
	s.project(ctx, playlist)
	s.logger.Debug("video completion set",
		zap.String("playlist", string(playlist.ID)),
		zap.Int("position", change.VideoIndex+1),
		zap.Bool("completed", completed),
		zap.Int("streak", rec.Streak))
	return Completion{Playlist: playlist, Change: change, Streak: streakdomain.Of(rec)}, nil
}

func (s *PlaylistService) List(ctx context.Context) ([]recorddomain.Playlist, error) {
	rec, err := s.tx.View(ctx)
	if err != nil {
		return nil, err
	}
	return rec.Playlists, nil
}

func (s *PlaylistService) Get(ctx context.Context, ref string) (recorddomain.Playlist, error) {
	rec, err := s.tx.View(ctx)
	if err != nil {
		return recorddomain.Playlist{}, err
	}
	idx, err := domain.Resolve(&rec, ref)
	if err != nil {
		return recorddomain.Playlist{}, err
	}
	return rec.Playlists[idx], nil
}

// Search resolves a query through the index and returns the matching
// playlists from the record in index order.
func (s *PlaylistService) Search(ctx context.Context, query string) ([]recorddomain.Playlist, error) {
	ids, err := s.projector.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	rec, err := s.tx.View(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]recorddomain.Playlist, 0, len(ids))
	for _, pid := range ids {
		if idx, ok := rec.FindPlaylist(recorddomain.ID(pid)); ok {
			out = append(out, rec.Playlists[idx])
		}
	}
	return out, nil
}

func (s *PlaylistService) Delete(ctx context.Context, ref string) (recorddomain.Playlist, error) {
	var removed recorddomain.Playlist
	if _, err := s.tx.Update(ctx, func(rec *recorddomain.Record) error {
		var err error
		removed, err = domain.Remove(rec, ref)
		return err
	}); err != nil {
		return recorddomain.Playlist{}, err
	}
	if err := s.projector.DeletePlaylist(ctx, string(removed.ID)); err != nil {
		s.logger.Warn("playlist index out of date", zap.String("playlist", string(removed.ID)), zap.Error(err))
	}
	return removed, nil
}

func (s *PlaylistService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	rec, err := s.tx.View(ctx)
	if err != nil {
		return err
	}
	for _, p := range rec.Playlists {
		if err := s.projector.UpsertPlaylist(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// project refreshes the index after a committed change. Errors are logged
// only; Reindex rebuilds a stale index.
func (s *PlaylistService) project(ctx context.Context, p recorddomain.Playlist) {
	if err := s.projector.UpsertPlaylist(ctx, p); err != nil {
		s.logger.Warn("playlist index out of date", zap.String("playlist", string(p.ID)), zap.Error(err))
	}
}
