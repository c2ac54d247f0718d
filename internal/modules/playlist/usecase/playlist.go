package usecase

import (
	"context"
	"strings"

	achievementdto "eduvibe/internal/modules/achievement/dto"
	achievementin "eduvibe/internal/modules/achievement/port/in"
	"eduvibe/internal/modules/playlist/domain"
	"eduvibe/internal/modules/playlist/dto"
	playlistin "eduvibe/internal/modules/playlist/port/in"
	"eduvibe/internal/modules/playlist/service"
	recorddomain "eduvibe/internal/modules/record/domain"
)

type Interactor struct {
	svc          *service.PlaylistService
	achievements achievementin.Usecase
}

func NewInteractor(svc *service.PlaylistService, achievements achievementin.Usecase) playlistin.Usecase {
	return &Interactor{svc: svc, achievements: achievements}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) (dto.CreateOutput, error) {
	before, err := i.evaluate(ctx)
	if err != nil {
		return dto.CreateOutput{}, err
	}
	playlist, err := i.svc.Create(ctx, domain.Draft{Name: input.Name, Source: input.Source, URL: input.URL, Titles: input.Titles})
	if err != nil {
		return dto.CreateOutput{}, err
	}
	after, err := i.evaluate(ctx)
	if err != nil {
		return dto.CreateOutput{}, err
	}
	return dto.CreateOutput{Playlist: toOutput(playlist), NewlyEarned: after.NewlyEarnedSince(before)}, nil
}

// SetVideoCompletion re-evaluates achievements on every call and hands the
// fresh evaluation back with the result.
func (i *Interactor) SetVideoCompletion(ctx context.Context, input dto.CompletionInput) (dto.CompletionOutput, error) {
	before, err := i.evaluate(ctx)
	if err != nil {
		return dto.CompletionOutput{}, err
	}
	res, err := i.svc.SetCompletion(ctx, input.PlaylistID, input.VideoID, input.Completed)
	if err != nil {
		return dto.CompletionOutput{}, err
	}
	after, err := i.evaluate(ctx)
	if err != nil {
		return dto.CompletionOutput{}, err
	}
	playlist := toOutput(res.Playlist)
	return dto.CompletionOutput{
		Playlist:     playlist,
		Video:        playlist.Videos[res.Change.VideoIndex],
		UnlockedNext: string(res.Change.Unlocked),
		Streak:       res.Streak.Streak,
		Achievements: after,
		NewlyEarned:  after.NewlyEarnedSince(before),
	}, nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.PlaylistOutput, error) {
	var (
		playlists []recorddomain.Playlist
		err       error
	)
	if strings.TrimSpace(input.Search) != "" {
		playlists, err = i.svc.Search(ctx, input.Search)
	} else {
		playlists, err = i.svc.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlaylistOutput, 0, len(playlists))
	for _, p := range playlists {
		out = append(out, toOutput(p))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.PlaylistOutput, error) {
	playlist, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.PlaylistOutput{}, err
	}
	return toOutput(playlist), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) (dto.PlaylistOutput, error) {
	removed, err := i.svc.Delete(ctx, id)
	if err != nil {
		return dto.PlaylistOutput{}, err
	}
	return toOutput(removed), nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func (i *Interactor) evaluate(ctx context.Context) (achievementdto.ListOutput, error) {
	if i.achievements == nil {
		return achievementdto.ListOutput{}, nil
	}
	return i.achievements.List(ctx)
}

func toOutput(p recorddomain.Playlist) dto.PlaylistOutput {
	videos := make([]dto.VideoOutput, 0, len(p.Videos))
	for idx, v := range p.Videos {
		videos = append(videos, dto.VideoOutput{
			ID:        string(v.ID),
			Position:  idx + 1,
			Title:     v.Title,
			Completed: v.Completed,
			Locked:    v.Locked,
			URL:       v.URL,
		})
	}
	return dto.PlaylistOutput{
		ID:              string(p.ID),
		Name:            p.Name,
		Source:          p.Source,
		URL:             p.URL,
		Progress:        p.Progress,
		CompletedVideos: p.CompletedVideos(),
		TotalVideos:     len(p.Videos),
		CreatedAt:       p.CreatedAt,
		Videos:          videos,
	}
}
