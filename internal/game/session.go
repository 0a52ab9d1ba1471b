package game

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjackforbots/internal/rules"
)

// Session repeats rounds with a persistent roster and dealer. Players whose
// bankroll hits zero or below are permanently dropped from the active
// roster after the round (their history survives); the session ends early
// if the dealer's bankroll goes negative or no players remain.
type Session struct {
	rounds  int
	rules   rules.Ruleset
	dealer  *Dealer
	players []*Player // full roster, histories retained after elimination
	active  []*Player
	rng     *rand.Rand
	logger  *log.Logger
	clock   quartz.Clock

	roundsPlayed int
	elapsed      time.Duration
}

// NewSession creates a session. The random source is the single source of
// randomness for every deck shuffle (and any randomized strategy should
// share it), so one seed reproduces the whole session.
func NewSession(rounds int, rs rules.Ruleset, players []*Player, dealer *Dealer, rng *rand.Rand, logger *log.Logger, clock quartz.Clock) (*Session, error) {
	if rounds <= 0 {
		return nil, ErrNoRounds
	}
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	if clock == nil {
		clock = quartz.NewReal()
	}

	active := make([]*Player, len(players))
	copy(active, players)

	return &Session{
		rounds:  rounds,
		rules:   rs,
		dealer:  dealer,
		players: players,
		active:  active,
		rng:     rng,
		logger:  logger,
		clock:   clock,
	}, nil
}

// Simulate runs rounds until the configured count is reached, the dealer
// goes bankrupt, or every player has been eliminated. In-round failures
// abort the session and are returned; nothing is retried.
func (s *Session) Simulate() error {
	start := s.clock.Now()
	defer func() {
		s.elapsed = s.clock.Since(start)
	}()

	for round := 1; round <= s.rounds; round++ {
		game, err := NewGame(s.rng, s.rules, s.dealer, s.active, s.logger)
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}

		if err := game.Play(); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		s.roundsPlayed++

		s.eliminateBankrupt()

		if s.dealer.bankroll < 0 {
			s.logger.Info("dealer bankrupt, ending session",
				"round", round, "bankroll", s.dealer.bankroll)
			return nil
		}

		if len(s.active) == 0 {
			s.logger.Info("all players eliminated, ending session", "round", round)
			return nil
		}
	}

	return nil
}

// eliminateBankrupt recomputes the active roster, dropping players whose
// bankroll is zero or below
func (s *Session) eliminateBankrupt() {
	active := s.active[:0]
	for _, p := range s.active {
		if p.bankroll > 0 {
			active = append(active, p)
			continue
		}
		s.logger.Info("player eliminated", "player", p.name, "bankroll", p.bankroll)
	}
	s.active = active
}

// Players returns the full roster, eliminated players included
func (s *Session) Players() []*Player {
	return s.players
}

// ActivePlayers returns the players still in the session
func (s *Session) ActivePlayers() []*Player {
	return s.active
}

// Dealer returns the session's dealer
func (s *Session) Dealer() *Dealer {
	return s.dealer
}

// RoundsPlayed returns how many rounds completed
func (s *Session) RoundsPlayed() int {
	return s.roundsPlayed
}

// Elapsed returns the wall time Simulate took, per the injected clock
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}
