package simulator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExperiment(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadExperimentConfig(t *testing.T) {
	path := writeExperiment(t, `
session {
  rounds = 100
  seed   = 42
}

dealer {
  bankroll = 50
}

player "random-1" {
  bankroll = 20

  betting {
    strategy = "random"
    min      = 1
    max      = 2
  }
}

player "flat-1" {
  bankroll = 30

  betting {
    strategy = "flat"
    amount   = 1
  }
}
`)

	cfg, err := LoadExperimentConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100, cfg.Session.Rounds)
	assert.Equal(t, int64(42), cfg.Session.Seed)
	assert.Equal(t, 50, cfg.Dealer.Bankroll)
	assert.Equal(t, DealerStandard, cfg.Dealer.Strategy)

	require.Len(t, cfg.Players, 2)
	assert.Equal(t, "random-1", cfg.Players[0].Name)
	assert.Equal(t, BettingRandom, cfg.Players[0].Betting.Strategy)
	assert.Equal(t, 1, cfg.Players[0].Betting.Min)
	assert.Equal(t, 2, cfg.Players[0].Betting.Max)
	assert.Equal(t, PlayerStandard, cfg.Players[0].Strategy)
	assert.Equal(t, "flat-1", cfg.Players[1].Name)
	assert.Equal(t, BettingFlat, cfg.Players[1].Betting.Strategy)
	assert.Equal(t, 1, cfg.Players[1].Betting.Amount)
}

func TestLoadExperimentConfigRejectsMalformedFile(t *testing.T) {
	path := writeExperiment(t, `session { rounds = `)

	_, err := LoadExperimentConfig(path)
	assert.Error(t, err)
}

func TestLoadExperimentConfigOrDefault(t *testing.T) {
	cfg, err := LoadExperimentConfigOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultExperimentConfig(), cfg)

	_, err = LoadExperimentConfigOrDefault(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestDefaultExperimentConfigValidates(t *testing.T) {
	cfg := DefaultExperimentConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.Session.Rounds)
	assert.Len(t, cfg.Players, 5)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ExperimentConfig)
	}{
		{"zero rounds", func(c *ExperimentConfig) { c.Session.Rounds = 0 }},
		{"no players", func(c *ExperimentConfig) { c.Players = nil }},
		{"non-positive dealer bankroll", func(c *ExperimentConfig) { c.Dealer.Bankroll = 0 }},
		{"unknown dealer strategy", func(c *ExperimentConfig) { c.Dealer.Strategy = "card-counter" }},
		{"unnamed player", func(c *ExperimentConfig) { c.Players[0].Name = "" }},
		{"duplicate player name", func(c *ExperimentConfig) { c.Players[1].Name = c.Players[0].Name }},
		{"non-positive player bankroll", func(c *ExperimentConfig) { c.Players[0].Bankroll = -5 }},
		{"unknown player strategy", func(c *ExperimentConfig) { c.Players[0].Strategy = "martingale" }},
		{"unknown betting strategy", func(c *ExperimentConfig) { c.Players[0].Betting.Strategy = "kelly" }},
		{"random betting zero min", func(c *ExperimentConfig) { c.Players[0].Betting.Min = 0 }},
		{"random betting max below min", func(c *ExperimentConfig) { c.Players[0].Betting.Max = 0 }},
		{"flat betting zero amount", func(c *ExperimentConfig) { c.Players[4].Betting.Amount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultExperimentConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
