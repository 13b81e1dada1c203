package in

import (
	"context"

	"flashcards/internal/modules/deck/dto"
)

type Usecase interface {
	Load(ctx context.Context, input dto.LoadInput) (dto.DatasetOutput, error)
}
