package game

import (
	"fmt"

	"github.com/lox/blackjackforbots/internal/deck"
)

// Outcome is the result of a round from the player's perspective
type Outcome int

const (
	// OutcomeWin means the player beat the dealer
	OutcomeWin Outcome = iota
	// OutcomeLose means the dealer beat the player
	OutcomeLose
	// OutcomePush means no money moved (tie, or the player ran)
	OutcomePush
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomePush:
		return "push"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// PlayerRecord is one round's result for a player. Records are append-only
// and are the simulation's primary output.
type PlayerRecord struct {
	Outcome  Outcome
	Cards    []deck.Card // resolved hand, in draw order
	Bet      int
	Bankroll int // bankroll after settlement
	Profit   int // signed; positive when the player won
}

// DealerRecord is one round's aggregate result for the dealer
type DealerRecord struct {
	Cards    []deck.Card // resolved hand, in draw order
	Wins     int         // resolutions won this round
	Losses   int
	Draws    int
	Bankroll int // bankroll after the round
	Profit   int // signed round profit
}
