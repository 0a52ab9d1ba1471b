package game

import "github.com/lox/blackjackforbots/internal/deck"

// HandInfo is what the dealer strategy may know about a player's hand.
// While the hand is closed only the card count is visible; once open the
// cards themselves are.
type HandInfo struct {
	State     deck.HandState
	Cards     []deck.Card // nil while the hand is closed
	CardCount int
}

// BettingStrategy decides the stake for a round. Implementations must
// clamp the bet to the available bankroll; a bet above bankroll is a
// contract violation and fails the round.
type BettingStrategy interface {
	PlaceBet(bankroll int, history []PlayerRecord) int
}

// PlayerStrategy decides a player's next action during their turn
type PlayerStrategy interface {
	DetermineAction(hand *deck.Hand, history []PlayerRecord) PlayerAction
}

// DealerStrategy decides the dealer's next action. It is only consulted
// while at least one player hand is closed; if it cannot produce an action
// it returns an error rather than guessing.
type DealerStrategy interface {
	DetermineAction(hand *deck.Hand, history []DealerRecord, players []HandInfo) (DealerAction, error)
}
