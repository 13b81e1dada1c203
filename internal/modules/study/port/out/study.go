package out

import (
	"context"

	"flashcards/internal/modules/study/domain"
)

type DatasetLoader interface {
	Load(ctx context.Context, path string) (domain.Dataset, error)
}
