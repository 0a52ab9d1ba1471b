// Package statistics aggregates per-round results into the summary numbers
// an experiment reports: mean profit, spread, confidence intervals and
// outcome rates.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// RoundResult is a single round's result for one participant
type RoundResult struct {
	Profit float64 // signed profit for the round
	Bet    int
	Won    bool
	Pushed bool
}

// Statistics tracks streaming aggregates over round results
type Statistics struct {
	Rounds  int
	Sum     float64
	Sum2    float64   // sum of squares for variance calculation
	Values  []float64 // all values, for median/percentile calculation
	Wins    int
	Losses  int
	Pushes  int
	Wagered int // total amount bet
}

// Add incorporates a round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	profit := result.Profit
	s.Rounds++
	s.Sum += profit
	s.Sum2 += profit * profit
	s.Values = append(s.Values, profit)
	s.Wagered += result.Bet

	switch {
	case result.Pushed:
		s.Pushes++
	case result.Won:
		s.Wins++
	default:
		s.Losses++
	}
}

// Mean returns the arithmetic mean profit per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.Sum / float64(s.Rounds)
}

// Variance returns the sample variance of round profits
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of round profits
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median round profit
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the fraction of rounds won
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

// Validate checks the aggregate for internal consistency
func (s *Statistics) Validate() error {
	if s.Rounds < 0 {
		return fmt.Errorf("invalid round count: %d", s.Rounds)
	}

	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values length (%d) does not match round count (%d)",
			len(s.Values), s.Rounds)
	}

	if s.Wins+s.Losses+s.Pushes != s.Rounds {
		return fmt.Errorf("outcome counts (%d+%d+%d) do not sum to round count (%d)",
			s.Wins, s.Losses, s.Pushes, s.Rounds)
	}

	return nil
}
