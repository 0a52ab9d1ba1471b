package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/rules"
)

// Game plays exactly one round: betting, dealing, player turns, the dealer
// turn, and the reset. It owns a fresh shuffled deck for the round and
// borrows the players and dealer from the session.
type Game struct {
	deck    *deck.Deck
	rules   rules.Ruleset
	dealer  *Dealer
	players []*Player
	logger  *log.Logger
}

// NewGame creates a single-round game with a fresh deck drawn from the
// provided random source
func NewGame(rng *rand.Rand, rs rules.Ruleset, dealer *Dealer, players []*Player, logger *log.Logger) (*Game, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	return &Game{
		deck:    deck.New(rng),
		rules:   rs,
		dealer:  dealer,
		players: players,
		logger:  logger,
	}, nil
}

// Play runs the round to completion. The phases are strictly sequential:
// betting, dealing, player turns, dealer turn, reset. Any failure aborts
// the round and is returned to the caller.
func (g *Game) Play() error {
	for _, p := range g.players {
		p.roundsPlayed++
	}
	g.dealer.roundsPlayed++
	g.dealer.beginRound()

	if err := g.collectBets(); err != nil {
		return err
	}
	if err := g.dealHands(); err != nil {
		return err
	}
	if err := g.playerTurns(); err != nil {
		return err
	}
	if err := g.dealerTurn(); err != nil {
		return err
	}

	g.reset()
	return nil
}

// collectBets asks every player for a stake, in roster order
func (g *Game) collectBets() error {
	for _, p := range g.players {
		if err := p.placeBet(); err != nil {
			return err
		}
		g.logger.Debug("bet placed", "player", p.name, "bet", p.bet, "bankroll", p.bankroll)
	}
	return nil
}

// dealHands deals two passes: each pass gives every player one card in
// roster order, then the dealer one
func (g *Game) dealHands() error {
	for pass := 0; pass < 2; pass++ {
		for _, p := range g.players {
			card, err := g.deck.Draw()
			if err != nil {
				return fmt.Errorf("dealing to %s: %w", p.name, err)
			}
			p.hand.Add(card)
		}

		card, err := g.deck.Draw()
		if err != nil {
			return fmt.Errorf("dealing to dealer: %w", err)
		}
		g.dealer.hand.Add(card)
	}

	return nil
}

// playerTurns gives each player, in roster order, decisions until they
// stand or run. No other player acts concurrently.
func (g *Game) playerTurns() error {
	for _, p := range g.players {
		for {
			action := p.strategy.DetermineAction(p.hand, p.history)
			if err := p.apply(action, g.deck, g.rules); err != nil {
				return err
			}

			g.logger.Debug("player action",
				"player", p.name,
				"action", action,
				"hand", p.hand,
				"value", g.rules.HandValue(p.hand),
				"bust", p.bust)

			if action == Stand || action == Run {
				break
			}
		}
	}
	return nil
}

// dealerTurn loops until every player hand is open, applying the dealer
// strategy's hits and resolutions, then logs the dealer's aggregate record
func (g *Game) dealerTurn() error {
	for g.anyClosed() {
		infos := make([]HandInfo, len(g.players))
		for i, p := range g.players {
			infos[i] = p.handInfo()
		}

		action, err := g.dealer.strategy.DetermineAction(g.dealer.hand, g.dealer.history, infos)
		if err != nil {
			return fmt.Errorf("dealer strategy: %w", err)
		}

		switch action.Type {
		case DealerHit:
			if err := g.dealer.hit(g.deck, g.rules); err != nil {
				return err
			}
			g.logger.Debug("dealer hits",
				"hand", g.dealer.hand,
				"value", g.rules.HandValue(g.dealer.hand),
				"bust", g.dealer.bust)

		case DealerResolve:
			if action.Target < 0 || action.Target >= len(g.players) {
				return fmt.Errorf("resolve target %d out of range: %w", action.Target, ErrUnresolvedDealer)
			}
			target := g.players[action.Target]
			if target.hand.IsOpen() {
				return fmt.Errorf("resolve target %s already open: %w", target.name, ErrUnresolvedDealer)
			}

			g.dealer.resolve(target, g.rules)
			record := target.history[len(target.history)-1]
			g.logger.Debug("resolved",
				"player", target.name,
				"outcome", record.Outcome,
				"bet", record.Bet,
				"profit", record.Profit,
				"bankroll", record.Bankroll)
		}
	}

	g.dealer.endRound()
	return nil
}

// anyClosed reports whether any player hand is still closed
func (g *Game) anyClosed() bool {
	for _, p := range g.players {
		if !p.hand.IsOpen() {
			return true
		}
	}
	return false
}

// reset clears every hand and bust flag for the next round
func (g *Game) reset() {
	for _, p := range g.players {
		p.reset()
	}
	g.dealer.reset()
}
