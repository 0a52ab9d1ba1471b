// Package simulator assembles an experiment from its configuration, runs
// the session, and reduces the histories into per-participant statistics.
package simulator

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjackforbots/internal/bot"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/rules"
	"github.com/lox/blackjackforbots/internal/statistics"
)

// Config holds everything needed to run an experiment
type Config struct {
	Experiment *ExperimentConfig
	Seed       int64 // overrides the experiment seed when non-zero
	Logger     *log.Logger
	Clock      quartz.Clock
}

// PlayerResult is one player's final standing plus their full history
type PlayerResult struct {
	Name       string
	Bankroll   int
	Rounds     int
	Eliminated bool
	Stats      *statistics.Statistics
	History    []game.PlayerRecord
}

// DealerResult is the dealer's final standing plus its full history
type DealerResult struct {
	Bankroll int
	Rounds   int
	Stats    *statistics.Statistics
	History  []game.DealerRecord
}

// Result is the outcome of a full experiment run
type Result struct {
	Seed         int64
	RoundsPlayed int
	Elapsed      time.Duration
	Players      []PlayerResult
	Dealer       DealerResult
}

// Simulator runs blackjack strategy experiments
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run executes the experiment and returns the reduced results
func (s *Simulator) Run() (*Result, error) {
	cfg := s.config.Experiment
	if cfg == nil {
		cfg = DefaultExperimentConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment: %w", err)
	}

	seed := cfg.Session.Seed
	if s.config.Seed != 0 {
		seed = s.config.Seed
	}
	if seed == 0 {
		seed = s.config.Clock.Now().UnixNano()
	}

	rng := randutil.New(seed)
	ruleset := rules.NewChineseBlackjack()

	players := make([]*game.Player, len(cfg.Players))
	for i, ps := range cfg.Players {
		betting, err := buildBetting(ps, rng)
		if err != nil {
			return nil, err
		}
		players[i] = game.NewPlayer(ps.Name, ps.Bankroll, betting, bot.NewStandardPlayer(ruleset))
	}

	dealer := game.NewDealer(cfg.Dealer.Bankroll, bot.NewStandardDealer(ruleset))

	session, err := game.NewSession(cfg.Session.Rounds, ruleset, players, dealer, rng, s.config.Logger, s.config.Clock)
	if err != nil {
		return nil, err
	}

	s.config.Logger.Info("starting session",
		"rounds", cfg.Session.Rounds,
		"players", len(players),
		"seed", seed)

	if err := session.Simulate(); err != nil {
		return nil, fmt.Errorf("session aborted: %w", err)
	}

	return s.collectResults(session, seed)
}

// collectResults reduces the session histories into the experiment result
func (s *Simulator) collectResults(session *game.Session, seed int64) (*Result, error) {
	active := make(map[*game.Player]bool)
	for _, p := range session.ActivePlayers() {
		active[p] = true
	}

	result := &Result{
		Seed:         seed,
		RoundsPlayed: session.RoundsPlayed(),
		Elapsed:      session.Elapsed(),
	}

	for _, p := range session.Players() {
		stats := &statistics.Statistics{}
		history := p.History()
		for _, record := range history {
			stats.Add(statistics.RoundResult{
				Profit: float64(record.Profit),
				Bet:    record.Bet,
				Won:    record.Outcome == game.OutcomeWin,
				Pushed: record.Outcome == game.OutcomePush,
			})
		}
		if err := stats.Validate(); err != nil {
			return nil, fmt.Errorf("player %s statistics: %w", p.Name(), err)
		}

		result.Players = append(result.Players, PlayerResult{
			Name:       p.Name(),
			Bankroll:   p.Bankroll(),
			Rounds:     p.RoundsPlayed(),
			Eliminated: !active[p],
			Stats:      stats,
			History:    history,
		})
	}

	dealer := session.Dealer()
	dealerStats := &statistics.Statistics{}
	dealerHistory := dealer.History()
	for _, record := range dealerHistory {
		dealerStats.Add(statistics.RoundResult{
			Profit: float64(record.Profit),
			Won:    record.Profit > 0,
			Pushed: record.Profit == 0,
		})
	}

	result.Dealer = DealerResult{
		Bankroll: dealer.Bankroll(),
		Rounds:   dealer.RoundsPlayed(),
		Stats:    dealerStats,
		History:  dealerHistory,
	}

	return result, nil
}

// buildBetting constructs the betting strategy from its settings
func buildBetting(ps PlayerSettings, rng *rand.Rand) (game.BettingStrategy, error) {
	switch ps.Betting.Strategy {
	case BettingRandom:
		return bot.NewRandomBetting(rng, ps.Betting.Min, ps.Betting.Max), nil
	case BettingFlat:
		return bot.NewFlatBetting(ps.Betting.Amount), nil
	default:
		return nil, fmt.Errorf("player %s: unknown betting strategy: %s", ps.Name, ps.Betting.Strategy)
	}
}
