package out

import (
	"context"

	deckdto "flashcards/internal/modules/deck/dto"
	deckin "flashcards/internal/modules/deck/port/in"
	"flashcards/internal/modules/study/domain"
	studyout "flashcards/internal/modules/study/port/out"
)

type DeckLoaderAdapter struct {
	deck deckin.Usecase
}

func NewDeckLoaderAdapter(deck deckin.Usecase) studyout.DatasetLoader {
	return &DeckLoaderAdapter{deck: deck}
}

func (a *DeckLoaderAdapter) Load(ctx context.Context, path string) (domain.Dataset, error) {
	ds, err := a.deck.Load(ctx, deckdto.LoadInput{Path: path})
	if err != nil {
		return domain.Dataset{}, err
	}
	cards := make([]domain.Card, 0, len(ds.Pairs))
	for i, p := range ds.Pairs {
		cards = append(cards, domain.Card{ID: i, Front: p.Front, Back: p.Back})
	}
	return domain.Dataset{
		Source:     ds.Source,
		FrontField: ds.FrontField,
		BackField:  ds.BackField,
		Cards:      cards,
	}, nil
}
