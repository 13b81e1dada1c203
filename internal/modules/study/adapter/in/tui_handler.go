package in

import (
	"context"

	"flashcards/internal/modules/study/dto"
	studyin "flashcards/internal/modules/study/port/in"
)

type TUIHandler struct {
	usecase studyin.Usecase
}

func NewTUIHandler(usecase studyin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) ReadDataset(ctx context.Context, path string) (dto.DatasetInput, error) {
	return h.usecase.ReadDataset(ctx, dto.LoadInput{Path: path})
}

func (h TUIHandler) Replace(ctx context.Context, dataset dto.DatasetInput) dto.Frame {
	return h.usecase.Replace(ctx, dataset)
}

func (h TUIHandler) Flip(ctx context.Context) dto.Frame {
	return h.usecase.Flip(ctx)
}

func (h TUIHandler) Expire(ctx context.Context, seq uint64) (dto.Frame, bool) {
	return h.usecase.Expire(ctx, seq)
}

func (h TUIHandler) Answer(ctx context.Context, known bool) (dto.Frame, error) {
	return h.usecase.Answer(ctx, dto.AnswerInput{Known: known})
}

func (h TUIHandler) ApplySettings(ctx context.Context, input dto.SettingsInput) (dto.SettingsOutput, dto.Frame, error) {
	return h.usecase.ApplySettings(ctx, input)
}

func (h TUIHandler) Settings(ctx context.Context) dto.SettingsOutput {
	return h.usecase.Settings(ctx)
}

func (h TUIHandler) Frame(ctx context.Context) dto.Frame {
	return h.usecase.Frame(ctx)
}
