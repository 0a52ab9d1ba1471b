package bot

import (
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/rules"
)

// StandardPlayer is the reference player strategy: run on a two-card 15,
// hit under 16, stand otherwise
type StandardPlayer struct {
	rules rules.Ruleset
}

// NewStandardPlayer creates the reference player strategy
func NewStandardPlayer(rs rules.Ruleset) *StandardPlayer {
	return &StandardPlayer{rules: rs}
}

// DetermineAction decides the next player action from the hand value
func (s *StandardPlayer) DetermineAction(hand *deck.Hand, history []game.PlayerRecord) game.PlayerAction {
	value := s.rules.HandValue(hand)

	if value == 15 && hand.Size() == 2 {
		return game.Run
	}
	if value < 16 {
		return game.Hit
	}
	return game.Stand
}
