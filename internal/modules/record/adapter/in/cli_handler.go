package in

import (
	"context"

	recorddto "eduvibe/internal/modules/record/dto"
	recordin "eduvibe/internal/modules/record/port/in"
)

type CLIHandler struct {
	usecase recordin.Usecase
}

func NewCLIHandler(usecase recordin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context, dir string) (recorddto.ExportOutput, error) {
	return h.usecase.Export(ctx, recorddto.ExportInput{Dir: dir})
}

func (h CLIHandler) PreviewImport(ctx context.Context, document []byte) (recorddto.ImportSummary, error) {
	return h.usecase.PreviewImport(ctx, recorddto.ImportInput{Document: document})
}

func (h CLIHandler) Import(ctx context.Context, document []byte) (recorddto.ImportSummary, error) {
	return h.usecase.Import(ctx, recorddto.ImportInput{Document: document})
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) Stats(ctx context.Context) (recorddto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}
