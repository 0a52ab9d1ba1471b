package game

import "errors"

// ErrInvalidBet is returned when a betting strategy produces a bet outside
// the player's bankroll. Strategies are required to clamp, so this is a
// contract violation rather than a recoverable condition.
var ErrInvalidBet = errors.New("bet exceeds bankroll")

// ErrUnresolvedDealer is returned when the dealer is asked to resolve but
// no closed player hand is eligible. The dealer turn loop terminates before
// this can happen, so seeing it means a broken dealer strategy.
var ErrUnresolvedDealer = errors.New("no closed hand to resolve")

// ErrNoPlayers is returned when a game or session is constructed without
// any players
var ErrNoPlayers = errors.New("at least one player is required")

// ErrNoRounds is returned when a session is configured with a non-positive
// round count
var ErrNoRounds = errors.New("round count must be positive")
