package out

import (
	"context"

	"flashcards/internal/modules/deck/domain"
)

// TableReader reads the raw header and rows of one kind of tabular source.
type TableReader interface {
	Read(ctx context.Context, ref domain.SourceRef) (domain.Table, error)
}
