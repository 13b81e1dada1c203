package service

import (
	"context"
	"fmt"

	"flashcards/internal/modules/deck/domain"
	deckout "flashcards/internal/modules/deck/port/out"
	apperrors "flashcards/internal/platform/errors"
)

type DeckService struct {
	readers map[domain.SourceKind]deckout.TableReader
}

func NewDeckService(delimited, sqlite deckout.TableReader) *DeckService {
	readers := map[domain.SourceKind]deckout.TableReader{}
	if delimited != nil {
		readers[domain.SourceKindDelimited] = delimited
	}
	if sqlite != nil {
		readers[domain.SourceKindSQLite] = sqlite
	}
	return &DeckService{readers: readers}
}

func (s *DeckService) Load(ctx context.Context, path string) (domain.Dataset, error) {
	ref, err := domain.ParseSourceRef(path)
	if err != nil {
		return domain.Dataset{}, err
	}
	reader, ok := s.readers[ref.Kind]
	if !ok {
		return domain.Dataset{}, fmt.Errorf("%w: %s", apperrors.ErrUnsupported, ref.Kind)
	}
	table, err := reader.Read(ctx, ref)
	if err != nil {
		return domain.Dataset{}, err
	}
	return domain.FromTable(ref.String(), table)
}
