package deck

import "strings"

// HandState tracks whether a hand has been resolved and revealed
type HandState int

const (
	// StateClosed means the round is in progress and the cards are concealed
	StateClosed HandState = iota
	// StateOpen means the hand has been resolved and the cards are revealed
	StateOpen
)

// String returns the string representation of a hand state
func (s HandState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	default:
		return "?"
	}
}

// Hand is an ordered, append-only sequence of cards. Insertion order is
// significant: ace valuation depends on how many cards were held when
// each card arrived.
type Hand struct {
	cards []Card
	state HandState
}

// NewHand creates an empty, closed hand
func NewHand() *Hand {
	return &Hand{state: StateClosed}
}

// Add appends a card to the hand
func (h *Hand) Add(card Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the cards in draw order
func (h *Hand) Cards() []Card {
	cards := make([]Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Size returns the number of cards in the hand
func (h *Hand) Size() int {
	return len(h.cards)
}

// State returns the current hand state
func (h *Hand) State() HandState {
	return h.state
}

// IsOpen returns true once the hand has been revealed
func (h *Hand) IsOpen() bool {
	return h.state == StateOpen
}

// Reveal transitions the hand to the open state
func (h *Hand) Reveal() {
	h.state = StateOpen
}

// Reset empties the hand and closes it for the next round
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
	h.state = StateClosed
}

// String returns the cards in draw order (e.g., "A♠ K♥")
func (h *Hand) String() string {
	strs := make([]string, len(h.cards))
	for i, c := range h.cards {
		strs[i] = c.String()
	}
	return strings.Join(strs, " ")
}
