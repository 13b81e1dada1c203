package usecase

import (
	"context"

	"flashcards/internal/modules/deck/dto"
	deckin "flashcards/internal/modules/deck/port/in"
	"flashcards/internal/modules/deck/service"
)

type Interactor struct {
	svc *service.DeckService
}

func NewInteractor(svc *service.DeckService) deckin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context, input dto.LoadInput) (dto.DatasetOutput, error) {
	ds, err := i.svc.Load(ctx, input.Path)
	if err != nil {
		return dto.DatasetOutput{}, err
	}
	pairs := make([]dto.PairOutput, 0, len(ds.Pairs))
	for _, p := range ds.Pairs {
		pairs = append(pairs, dto.PairOutput{Front: p.Front, Back: p.Back, Extra: p.Extra})
	}
	return dto.DatasetOutput{
		Source:     ds.Source,
		FrontField: ds.FrontField,
		BackField:  ds.BackField,
		Pairs:      pairs,
	}, nil
}
