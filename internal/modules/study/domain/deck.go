package domain

import "flashcards/internal/platform/random"

// Card is one front/back pair in play. ID is unique within a session so that
// duplicate rows in a dataset are still distinct cards.
type Card struct {
	ID    int
	Front string
	Back  string
}

// Dataset is what a session is built from.
type Dataset struct {
	Source     string
	FrontField string
	BackField  string
	Cards      []Card
}

// Deck is the mutable working set of cards not yet marked known.
type Deck struct {
	cards []Card
}

func NewDeck(cards []Card) *Deck {
	own := make([]Card, len(cards))
	copy(own, cards)
	return &Deck{cards: own}
}

func (d *Deck) Len() int { return len(d.cards) }

func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) Contains(id int) bool {
	return d.index(id) >= 0
}

// Remove drops the card with the given id. Removing an absent card is a no-op.
func (d *Deck) Remove(id int) bool {
	i := d.index(id)
	if i < 0 {
		return false
	}
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return true
}

// Pick returns a uniformly random card, or false when the deck is empty.
func (d *Deck) Pick(src random.Source) (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[src.IntN(len(d.cards))], true
}

func (d *Deck) index(id int) int {
	for i, c := range d.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}
