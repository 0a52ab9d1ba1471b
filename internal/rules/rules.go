// Package rules defines hand valuation and payout logic for blackjack
// variants. A Ruleset is pure: it maps a hand to a value and a payout
// multiplier and holds no state, so variants can be swapped per experiment.
package rules

import "github.com/lox/blackjackforbots/internal/deck"

// Ruleset values hands and prices payouts for a game variant
type Ruleset interface {
	// HandValue returns the numeric value of a hand
	HandValue(hand *deck.Hand) int

	// PayoutMultiplier returns the multiplier applied to the stake when
	// the hand wins a resolution
	PayoutMultiplier(hand *deck.Hand) int
}
