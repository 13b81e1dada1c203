package in

import (
	"context"

	"flashcards/internal/modules/deck/dto"
	deckin "flashcards/internal/modules/deck/port/in"
)

type CLIHandler struct {
	usecase deckin.Usecase
}

func NewCLIHandler(usecase deckin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context, path string) (dto.DatasetOutput, error) {
	return h.usecase.Load(ctx, dto.LoadInput{Path: path})
}
