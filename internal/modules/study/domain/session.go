package domain

import (
	"time"

	apperrors "flashcards/internal/platform/errors"
	"flashcards/internal/platform/random"
)

// Session is the card currently in play, the score and the active field
// names. It lives only in memory and is replaced wholesale on a new load.
type Session struct {
	ID         string
	Source     string
	FrontField string
	BackField  string
	StartedAt  time.Time

	deck    *Deck
	current *Card
	known   int
	unknown int
}

func NewSession(id string, startedAt time.Time, dataset Dataset) *Session {
	return &Session{
		ID:         id,
		Source:     dataset.Source,
		FrontField: dataset.FrontField,
		BackField:  dataset.BackField,
		StartedAt:  startedAt,
		deck:       NewDeck(dataset.Cards),
	}
}

// PickNext makes a random remaining card current. When the deck is empty
// there is no current card afterwards and false is returned.
func (s *Session) PickNext(src random.Source) (Card, bool) {
	card, ok := s.deck.Pick(src)
	if !ok {
		s.current = nil
		return Card{}, false
	}
	s.current = &card
	return card, true
}

// MarkKnown scores the current card as known and takes it out of rotation.
func (s *Session) MarkKnown() error {
	if s.current == nil {
		return apperrors.ErrNoCard
	}
	s.known++
	s.deck.Remove(s.current.ID)
	s.current = nil
	return nil
}

// MarkUnknown scores the current card as unknown. It stays in the deck.
func (s *Session) MarkUnknown() error {
	if s.current == nil {
		return apperrors.ErrNoCard
	}
	s.unknown++
	s.current = nil
	return nil
}

func (s *Session) Current() (Card, bool) {
	if s.current == nil {
		return Card{}, false
	}
	return *s.current, true
}

func (s *Session) Known() int { return s.known }
func (s *Session) Unknown() int { return s.unknown }
func (s *Session) Remaining() int { return s.deck.Len() }
func (s *Session) Deck() *Deck { return s.deck }
