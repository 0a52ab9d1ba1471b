package bot

import (
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/rules"
)

// StandardDealer is the reference dealer strategy: hit under 16, then
// resolve closed players left to right
type StandardDealer struct {
	rules rules.Ruleset
}

// NewStandardDealer creates the reference dealer strategy
func NewStandardDealer(rs rules.Ruleset) *StandardDealer {
	return &StandardDealer{rules: rs}
}

// DetermineAction hits while the dealer's value is under 16, then resolves
// the first still-closed player in roster order. The caller stops invoking
// the dealer once every hand is open, so reaching the end of the scan
// means the contract was broken.
func (s *StandardDealer) DetermineAction(hand *deck.Hand, history []game.DealerRecord, players []game.HandInfo) (game.DealerAction, error) {
	if s.rules.HandValue(hand) < 16 {
		return game.HitAction(), nil
	}

	for i, info := range players {
		if info.State == deck.StateClosed {
			return game.ResolveAction(i), nil
		}
	}

	return game.DealerAction{}, game.ErrUnresolvedDealer
}
