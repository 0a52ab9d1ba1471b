// Package bot provides the built-in betting and decision strategies.
// Each one is a small, independent implementation of the corresponding
// game strategy interface; experiments wire them up by name.
package bot

import (
	rand "math/rand/v2"

	"github.com/lox/blackjackforbots/internal/game"
)

// RandomBetting bets a uniform random amount within [min, max], clamped
// to the available bankroll. The random source is injected so a session
// seed reproduces the betting stream.
type RandomBetting struct {
	min int
	max int
	rng *rand.Rand
}

// NewRandomBetting creates a random betting strategy over [min, max]
func NewRandomBetting(rng *rand.Rand, min, max int) *RandomBetting {
	return &RandomBetting{min: min, max: max, rng: rng}
}

// PlaceBet returns a random bet clamped to the bankroll
func (b *RandomBetting) PlaceBet(bankroll int, history []game.PlayerRecord) int {
	bet := b.min + b.rng.IntN(b.max-b.min+1)
	if bet > bankroll {
		bet = bankroll
	}
	return bet
}

// FlatBetting bets the same amount every round, clamped to the available
// bankroll
type FlatBetting struct {
	amount int
}

// NewFlatBetting creates a flat betting strategy
func NewFlatBetting(amount int) *FlatBetting {
	return &FlatBetting{amount: amount}
}

// PlaceBet returns the flat amount clamped to the bankroll
func (b *FlatBetting) PlaceBet(bankroll int, history []game.PlayerRecord) int {
	if b.amount > bankroll {
		return bankroll
	}
	return b.amount
}
