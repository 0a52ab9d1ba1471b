package game

import (
	"fmt"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/rules"
)

// Player is a seated player. It lives for the whole session, carrying its
// bankroll and history across rounds until eliminated.
type Player struct {
	name         string
	bankroll     int
	bet          int
	bust         bool
	hand         *deck.Hand
	history      []PlayerRecord
	roundsPlayed int

	betting  BettingStrategy
	strategy PlayerStrategy
}

// NewPlayer creates a player with an initial bankroll and its strategies
func NewPlayer(name string, bankroll int, betting BettingStrategy, strategy PlayerStrategy) *Player {
	return &Player{
		name:     name,
		bankroll: bankroll,
		hand:     deck.NewHand(),
		betting:  betting,
		strategy: strategy,
	}
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// Bankroll returns the current bankroll. It may be negative transiently
// within a round; the session eliminates the player afterwards.
func (p *Player) Bankroll() int {
	return p.bankroll
}

// CurrentBet returns the bet placed for the round in progress
func (p *Player) CurrentBet() int {
	return p.bet
}

// Busted returns true once the hand value has exceeded 21 this round
func (p *Player) Busted() bool {
	return p.bust
}

// Hand returns the player's hand
func (p *Player) Hand() *deck.Hand {
	return p.hand
}

// History returns a copy of the player's per-round records
func (p *Player) History() []PlayerRecord {
	history := make([]PlayerRecord, len(p.history))
	copy(history, p.history)
	return history
}

// RoundsPlayed returns how many rounds the player has taken part in
func (p *Player) RoundsPlayed() int {
	return p.roundsPlayed
}

// handInfo reports what the dealer may know about this player's hand
func (p *Player) handInfo() HandInfo {
	if p.hand.IsOpen() {
		return HandInfo{
			State:     deck.StateOpen,
			Cards:     p.hand.Cards(),
			CardCount: p.hand.Size(),
		}
	}
	return HandInfo{
		State:     deck.StateClosed,
		CardCount: p.hand.Size(),
	}
}

// placeBet asks the betting strategy for a stake. A bet outside the
// bankroll fails the round; strategies are required to clamp.
func (p *Player) placeBet() error {
	bet := p.betting.PlaceBet(p.bankroll, p.history)
	if bet < 0 || bet > p.bankroll {
		return fmt.Errorf("%s bet %d with bankroll %d: %w", p.name, bet, p.bankroll, ErrInvalidBet)
	}

	p.bet = bet
	return nil
}

// apply performs a single player action. Hit draws a card and sets the
// bust flag if the hand goes over 21. Run opens the hand immediately and
// logs a zero-effect record so the dealer never resolves it. Stand does
// nothing.
func (p *Player) apply(action PlayerAction, d *deck.Deck, rs rules.Ruleset) error {
	switch action {
	case Hit:
		card, err := d.Draw()
		if err != nil {
			return fmt.Errorf("%s hits: %w", p.name, err)
		}
		p.hand.Add(card)
		if rs.HandValue(p.hand) > 21 {
			p.bust = true
		}

	case Run:
		p.hand.Reveal()
		p.history = append(p.history, PlayerRecord{
			Outcome:  OutcomePush,
			Cards:    p.hand.Cards(),
			Bet:      p.bet,
			Bankroll: p.bankroll,
			Profit:   0,
		})

	case Stand:
		// no state change; ends the turn
	}

	return nil
}

// reset clears the hand and flags for the next round
func (p *Player) reset() {
	p.hand.Reset()
	p.bust = false
	p.bet = 0
}
