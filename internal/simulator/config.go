package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Strategy names accepted in experiment files
const (
	BettingRandom  = "random"
	BettingFlat    = "flat"
	PlayerStandard = "standard"
	DealerStandard = "standard"
)

// ExperimentConfig describes a full experiment: the session parameters,
// the dealer, and the players with their strategies
type ExperimentConfig struct {
	Session SessionSettings  `hcl:"session,block"`
	Dealer  DealerSettings   `hcl:"dealer,block"`
	Players []PlayerSettings `hcl:"player,block"`
}

// SessionSettings contains session-level parameters
type SessionSettings struct {
	Rounds int   `hcl:"rounds"`
	Seed   int64 `hcl:"seed,optional"`
}

// DealerSettings configures the dealer
type DealerSettings struct {
	Bankroll int    `hcl:"bankroll"`
	Strategy string `hcl:"strategy,optional"`
}

// PlayerSettings configures one labelled player
type PlayerSettings struct {
	Name     string          `hcl:"name,label"`
	Bankroll int             `hcl:"bankroll"`
	Betting  BettingSettings `hcl:"betting,block"`
	Strategy string          `hcl:"strategy,optional"`
}

// BettingSettings configures a player's betting strategy. Min/Max apply to
// the random strategy, Amount to the flat strategy.
type BettingSettings struct {
	Strategy string `hcl:"strategy"`
	Min      int    `hcl:"min,optional"`
	Max      int    `hcl:"max,optional"`
	Amount   int    `hcl:"amount,optional"`
}

// DefaultExperimentConfig mirrors the classic setup: four random bettors
// and one flat bettor, everyone starting with a bankroll of 20, fifty
// rounds
func DefaultExperimentConfig() *ExperimentConfig {
	cfg := &ExperimentConfig{
		Session: SessionSettings{Rounds: 50},
		Dealer:  DealerSettings{Bankroll: 20, Strategy: DealerStandard},
	}

	for i := 1; i <= 4; i++ {
		cfg.Players = append(cfg.Players, PlayerSettings{
			Name:     fmt.Sprintf("random-%d", i),
			Bankroll: 20,
			Betting:  BettingSettings{Strategy: BettingRandom, Min: 1, Max: 2},
			Strategy: PlayerStandard,
		})
	}
	cfg.Players = append(cfg.Players, PlayerSettings{
		Name:     "flat-1",
		Bankroll: 20,
		Betting:  BettingSettings{Strategy: BettingFlat, Amount: 1},
		Strategy: PlayerStandard,
	})

	return cfg
}

// LoadExperimentConfig loads an experiment from an HCL file
func LoadExperimentConfig(filename string) (*ExperimentConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config ExperimentConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&config)
	return &config, nil
}

// LoadExperimentConfigOrDefault loads the file when it exists, otherwise
// returns the default experiment
func LoadExperimentConfigOrDefault(filename string) (*ExperimentConfig, error) {
	if filename == "" {
		return DefaultExperimentConfig(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("experiment file not found: %s", filename)
	}
	return LoadExperimentConfig(filename)
}

func applyDefaults(config *ExperimentConfig) {
	if config.Dealer.Strategy == "" {
		config.Dealer.Strategy = DealerStandard
	}
	for i := range config.Players {
		if config.Players[i].Strategy == "" {
			config.Players[i].Strategy = PlayerStandard
		}
	}
}

// Validate validates the experiment configuration
func (c *ExperimentConfig) Validate() error {
	if c.Session.Rounds <= 0 {
		return fmt.Errorf("session rounds must be positive, got %d", c.Session.Rounds)
	}

	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player block is required")
	}

	if c.Dealer.Bankroll <= 0 {
		return fmt.Errorf("dealer bankroll must be positive, got %d", c.Dealer.Bankroll)
	}

	if c.Dealer.Strategy != DealerStandard {
		return fmt.Errorf("unknown dealer strategy: %s", c.Dealer.Strategy)
	}

	seen := make(map[string]bool)
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player name is required")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name: %s", p.Name)
		}
		seen[p.Name] = true

		if p.Bankroll <= 0 {
			return fmt.Errorf("player %s: bankroll must be positive, got %d", p.Name, p.Bankroll)
		}

		if p.Strategy != PlayerStandard {
			return fmt.Errorf("player %s: unknown strategy: %s", p.Name, p.Strategy)
		}

		switch p.Betting.Strategy {
		case BettingRandom:
			if p.Betting.Min <= 0 || p.Betting.Max < p.Betting.Min {
				return fmt.Errorf("player %s: random betting needs 0 < min <= max, got min=%d max=%d",
					p.Name, p.Betting.Min, p.Betting.Max)
			}
		case BettingFlat:
			if p.Betting.Amount <= 0 {
				return fmt.Errorf("player %s: flat betting needs a positive amount, got %d",
					p.Name, p.Betting.Amount)
			}
		default:
			return fmt.Errorf("player %s: unknown betting strategy: %s", p.Name, p.Betting.Strategy)
		}
	}

	return nil
}
