package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjackforbots/internal/simulator"
)

// SimulateCmd runs an experiment from an HCL file (or the built-in default
// experiment when no file is given)
type SimulateCmd struct {
	Config  string `arg:"" optional:"" help:"Experiment file (HCL). Omit to run the built-in experiment."`
	Rounds  int    `help:"Override the configured round count"`
	Seed    int64  `help:"RNG seed (0 uses the configured or a clock-derived seed)"`
	Verbose bool   `help:"Verbose logging of every action"`
}

// Run executes the simulate command
func (c *SimulateCmd) Run() error {
	level := log.InfoLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	experiment, err := simulator.LoadExperimentConfigOrDefault(c.Config)
	if err != nil {
		return err
	}
	if c.Rounds > 0 {
		experiment.Session.Rounds = c.Rounds
	}

	sim := simulator.New(simulator.Config{
		Experiment: experiment,
		Seed:       c.Seed,
		Logger:     logger,
		Clock:      quartz.NewReal(),
	})

	result, err := sim.Run()
	if err != nil {
		return err
	}

	printReport(result)
	return nil
}
