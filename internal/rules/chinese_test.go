package rules

import (
	"testing"

	"github.com/lox/blackjackforbots/internal/deck"
)

func hand(ranks ...deck.Rank) *deck.Hand {
	suits := []deck.Suit{deck.Diamonds, deck.Clubs, deck.Hearts, deck.Spades}
	h := deck.NewHand()
	for i, rank := range ranks {
		h.Add(deck.NewCard(rank, suits[i%len(suits)]))
	}
	return h
}

func TestHandValue(t *testing.T) {
	rs := NewChineseBlackjack()

	tests := []struct {
		name  string
		ranks []deck.Rank
		want  int
	}{
		{"king queen", []deck.Rank{deck.King, deck.Queen}, 20},
		{"ace king natural", []deck.Rank{deck.Ace, deck.King}, 21},
		{"pip cards", []deck.Rank{deck.Two, deck.Nine}, 11},
		{"two card ace counts eleven", []deck.Rank{deck.Ace, deck.Five}, 16},
		{"two aces compute to 22", []deck.Rank{deck.Ace, deck.Ace}, 22},
		{"third card ace counts ten under 21", []deck.Rank{deck.Five, deck.Five, deck.Ace}, 20},
		{"third card ace counts one at 21", []deck.Rank{deck.Six, deck.Six, deck.Ace}, 13},
		{"three aces", []deck.Rank{deck.Ace, deck.Ace, deck.Ace}, 21},
		{"fourth card ace counts one", []deck.Rank{deck.Five, deck.Five, deck.Five, deck.Ace}, 16},
		{"five card twenty one", []deck.Rank{deck.Two, deck.Three, deck.Four, deck.Five, deck.Seven}, 21},
		{"bust", []deck.Rank{deck.King, deck.Queen, deck.Five}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rs.HandValue(hand(tt.ranks...)); got != tt.want {
				t.Errorf("HandValue() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Ace valuation is incremental in draw order: the same three cards value
// differently depending on where the ace lands.
func TestHandValueIsOrderSensitive(t *testing.T) {
	rs := NewChineseBlackjack()

	aceLast := rs.HandValue(hand(deck.Six, deck.Six, deck.Ace))
	aceFirst := rs.HandValue(hand(deck.Ace, deck.Six, deck.Six))

	if aceLast != 13 {
		t.Errorf("6,6,A = %d, want 13", aceLast)
	}
	if aceFirst != 22 {
		t.Errorf("A,6,6 = %d, want 22", aceFirst)
	}
	if aceLast == aceFirst {
		t.Error("Expected ace position to change the hand value")
	}
}

func TestPayoutMultiplier(t *testing.T) {
	rs := NewChineseBlackjack()

	tests := []struct {
		name  string
		ranks []deck.Rank
		want  int
	}{
		{"no bonus", []deck.Rank{deck.King, deck.Queen}, 1},
		{"natural pays double", []deck.Rank{deck.Ace, deck.King}, 2},
		{"three card twenty one pays double", []deck.Rank{deck.Seven, deck.Seven, deck.Seven}, 2},
		{"five card trick at 21 pays triple", []deck.Rank{deck.Two, deck.Three, deck.Four, deck.Five, deck.Seven}, 3},
		{"five card trick under 21 pays double", []deck.Rank{deck.Two, deck.Three, deck.Four, deck.Five, deck.Six}, 2},
		{"five card bust still pays double", []deck.Rank{deck.King, deck.Queen, deck.Jack, deck.Nine, deck.Eight}, 2},
		{"pair of eights pays double", []deck.Rank{deck.Eight, deck.Eight}, 2},
		{"pair of kings pays double", []deck.Rank{deck.King, deck.King}, 2},
		{"pair of tens pays double", []deck.Rank{deck.Ten, deck.Ten}, 2},
		{"pair of sevens pays base", []deck.Rank{deck.Seven, deck.Seven}, 1},
		{"ten and jack is not a pair", []deck.Rank{deck.Ten, deck.Jack}, 1},
		{"nineteen pays base", []deck.Rank{deck.Ten, deck.Nine}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rs.PayoutMultiplier(hand(tt.ranks...)); got != tt.want {
				t.Errorf("PayoutMultiplier() = %d, want %d", got, tt.want)
			}
		})
	}
}

// The two-ace bonus branch is gated on a hand value of 21, but the ace
// rule values a two-ace hand at 22, so the pair of aces falls through to
// the base multiplier. Pinned here so nobody reconciles it by accident.
func TestTwoAcesMissTheBonusBranch(t *testing.T) {
	rs := NewChineseBlackjack()
	h := hand(deck.Ace, deck.Ace)

	if got := rs.HandValue(h); got != 22 {
		t.Fatalf("HandValue(A,A) = %d, want 22", got)
	}
	if got := rs.PayoutMultiplier(h); got != 1 {
		t.Errorf("PayoutMultiplier(A,A) = %d, want 1", got)
	}
}
