package game

import (
	"fmt"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/rules"
)

// Dealer is the house side of the table. One dealer serves the whole
// session; its bankroll is the counterparty to every settlement.
type Dealer struct {
	bankroll     int
	bust         bool
	hand         *deck.Hand
	history      []DealerRecord
	roundsPlayed int

	strategy DealerStrategy

	// per-round tallies, reset at the start of each round
	roundWins   int
	roundLosses int
	roundDraws  int
	roundProfit int
}

// NewDealer creates a dealer with an initial bankroll and its strategy
func NewDealer(bankroll int, strategy DealerStrategy) *Dealer {
	return &Dealer{
		bankroll: bankroll,
		hand:     deck.NewHand(),
		strategy: strategy,
	}
}

// Bankroll returns the current bankroll
func (d *Dealer) Bankroll() int {
	return d.bankroll
}

// Busted returns true once the hand value has exceeded 21 this round
func (d *Dealer) Busted() bool {
	return d.bust
}

// Hand returns the dealer's hand
func (d *Dealer) Hand() *deck.Hand {
	return d.hand
}

// History returns a copy of the dealer's per-round aggregate records
func (d *Dealer) History() []DealerRecord {
	history := make([]DealerRecord, len(d.history))
	copy(history, d.history)
	return history
}

// RoundsPlayed returns how many rounds the dealer has dealt
func (d *Dealer) RoundsPlayed() int {
	return d.roundsPlayed
}

// beginRound zeroes the per-round tallies
func (d *Dealer) beginRound() {
	d.roundWins = 0
	d.roundLosses = 0
	d.roundDraws = 0
	d.roundProfit = 0
}

// hit draws one card and sets the bust flag if the hand goes over 21
func (d *Dealer) hit(dk *deck.Deck, rs rules.Ruleset) error {
	card, err := dk.Draw()
	if err != nil {
		return fmt.Errorf("dealer hits: %w", err)
	}
	d.hand.Add(card)
	if rs.HandValue(d.hand) > 21 {
		d.bust = true
	}
	return nil
}

// resolve settles a single player against the dealer. The winner's payout
// multiplier prices the transfer; transfers are equal-and-opposite so each
// resolution is zero-sum. The target's hand opens and gets its record.
func (d *Dealer) resolve(target *Player, rs rules.Ruleset) {
	dealerValue := rs.HandValue(d.hand)
	playerValue := rs.HandValue(target.hand)

	dealerWins := (!d.bust && dealerValue > playerValue) || (target.bust && !d.bust)
	playerWins := (!target.bust && playerValue > dealerValue) || (d.bust && !target.bust)

	outcome := OutcomePush
	profit := 0

	switch {
	case dealerWins:
		winnings := rs.PayoutMultiplier(d.hand) * target.bet
		d.bankroll += winnings
		target.bankroll -= winnings
		d.roundWins++
		d.roundProfit += winnings
		outcome = OutcomeLose
		profit = -winnings

	case playerWins:
		winnings := rs.PayoutMultiplier(target.hand) * target.bet
		target.bankroll += winnings
		d.bankroll -= winnings
		d.roundLosses++
		d.roundProfit -= winnings
		outcome = OutcomeWin
		profit = winnings

	default:
		d.roundDraws++
	}

	target.hand.Reveal()
	target.history = append(target.history, PlayerRecord{
		Outcome:  outcome,
		Cards:    target.hand.Cards(),
		Bet:      target.bet,
		Bankroll: target.bankroll,
		Profit:   profit,
	})
}

// endRound appends the round's aggregate record
func (d *Dealer) endRound() {
	d.hand.Reveal()
	d.history = append(d.history, DealerRecord{
		Cards:    d.hand.Cards(),
		Wins:     d.roundWins,
		Losses:   d.roundLosses,
		Draws:    d.roundDraws,
		Bankroll: d.bankroll,
		Profit:   d.roundProfit,
	})
}

// reset clears the hand and flags for the next round
func (d *Dealer) reset() {
	d.hand.Reset()
	d.bust = false
}
