package in

import (
	"context"

	"flashcards/internal/modules/study/dto"
)

type Usecase interface {
	// ReadDataset loads a dataset without touching the running session.
	ReadDataset(ctx context.Context, input dto.LoadInput) (dto.DatasetInput, error)
	Replace(ctx context.Context, input dto.DatasetInput) dto.Frame
	Flip(ctx context.Context) dto.Frame
	Expire(ctx context.Context, seq uint64) (dto.Frame, bool)
	Answer(ctx context.Context, input dto.AnswerInput) (dto.Frame, error)
	ApplySettings(ctx context.Context, input dto.SettingsInput) (dto.SettingsOutput, dto.Frame, error)
	Settings(ctx context.Context) dto.SettingsOutput
	Frame(ctx context.Context) dto.Frame
}
