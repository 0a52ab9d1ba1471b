package rules

import "github.com/lox/blackjackforbots/internal/deck"

// ChineseBlackjack implements the house ruleset for Chinese Blackjack
// (ban-luck). Aces are position-and-count dependent rather than globally
// optimised, so the same cards can value differently depending on the
// order they were drawn.
type ChineseBlackjack struct{}

// NewChineseBlackjack returns the Chinese Blackjack ruleset
func NewChineseBlackjack() ChineseBlackjack {
	return ChineseBlackjack{}
}

// HandValue values the hand incrementally in draw order. Face cards count
// 10 and pip cards their face value. An ace counts 11 while the hand holds
// two cards or fewer, on exactly three cards it counts 10 if that keeps
// the running total under 21 (else 1), and from four cards on it always
// counts 1.
func (ChineseBlackjack) HandValue(hand *deck.Hand) int {
	cards := hand.Cards()
	size := len(cards)

	value := 0
	for _, card := range cards {
		switch {
		case card.IsFaceCard():
			value += 10
		case card.IsAce():
			switch {
			case size <= 2:
				value += 11
			case size == 3:
				if value+10 < 21 {
					value += 10
				} else {
					value++
				}
			default:
				value++
			}
		default:
			value += int(card.Rank)
		}
	}

	return value
}

// PayoutMultiplier returns the stake multiplier for a winning hand:
// a five-card hand pays 3x at exactly 21 and 2x otherwise, any other 21
// pays 2x (3x for a two-ace natural), and a two-card pair of 8 through
// king pays 2x. Everything else pays the base stake.
//
// TODO: the two-ace 3x branch is gated on a computed value of 21, but the
// ace rule values A,A at 22, so the branch never fires. Confirm the
// intended two-ace payout with the house rules before changing it.
func (c ChineseBlackjack) PayoutMultiplier(hand *deck.Hand) int {
	cards := hand.Cards()
	value := c.HandValue(hand)

	if len(cards) == 5 {
		if value == 21 {
			return 3
		}
		return 2
	}

	if value == 21 {
		if len(cards) == 2 && cards[0].IsAce() && cards[1].IsAce() {
			return 3
		}
		return 2
	}

	if len(cards) == 2 && cards[0].Rank == cards[1].Rank &&
		cards[0].Rank >= deck.Eight && cards[0].Rank <= deck.King {
		return 2
	}

	return 1
}
