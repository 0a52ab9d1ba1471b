package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrDeckExhausted is returned by Draw when no cards remain. A round that
// hits this cannot continue and the error is surfaced to the caller.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is a single shuffled 52-card deck, consumed from the front.
type Deck struct {
	cards []Card
}

// New creates a full 52-card deck shuffled with the provided random source.
// The source must not be nil; all shuffling flows through it so a run is
// reproducible from its seed.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
	}

	for suit := Diamonds; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}

	// Fisher-Yates
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}

	return d
}

// Draw removes and returns the top card from the deck.
// Returns ErrDeckExhausted if the deck is empty.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
