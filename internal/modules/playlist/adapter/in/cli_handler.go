package in

import (
	"context"

	playlistdto "eduvibe/internal/modules/playlist/dto"
	playlistin "eduvibe/internal/modules/playlist/port/in"
)

type CLIHandler struct {
	usecase playlistin.Usecase
}

func NewCLIHandler(usecase playlistin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, name, source, url string, titles []string) (playlistdto.CreateOutput, error) {
	return h.usecase.Create(ctx, playlistdto.CreateInput{Name: name, Source: source, URL: url, Titles: titles})
}

func (h CLIHandler) Check(ctx context.Context, playlistID, videoID string) (playlistdto.CompletionOutput, error) {
	return h.usecase.SetVideoCompletion(ctx, playlistdto.CompletionInput{PlaylistID: playlistID, VideoID: videoID, Completed: true})
}

func (h CLIHandler) Uncheck(ctx context.Context, playlistID, videoID string) (playlistdto.CompletionOutput, error) {
	return h.usecase.SetVideoCompletion(ctx, playlistdto.CompletionInput{PlaylistID: playlistID, VideoID: videoID, Completed: false})
}

func (h CLIHandler) List(ctx context.Context, search string) ([]playlistdto.PlaylistOutput, error) {
	return h.usecase.List(ctx, playlistdto.ListInput{Search: search})
}

func (h CLIHandler) Get(ctx context.Context, id string) (playlistdto.PlaylistOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Delete(ctx context.Context, id string) (playlistdto.PlaylistOutput, error) {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
