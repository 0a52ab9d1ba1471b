package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjackforbots/internal/simulator"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// printReport renders the experiment result to stdout
func printReport(result *simulator.Result) {
	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("=== SESSION RESULTS (%d rounds, seed %d) ===",
		result.RoundsPlayed, result.Seed)))
	fmt.Println(dimStyle.Render(fmt.Sprintf("completed in %s", result.Elapsed)))
	fmt.Println()

	for _, p := range result.Players {
		status := ""
		if p.Eliminated {
			status = loseStyle.Render(" [eliminated]")
		}
		fmt.Printf("%s%s\n", nameStyle.Render(p.Name), status)

		mean := p.Stats.Mean()
		low, high := p.Stats.ConfidenceInterval95()
		fmt.Printf("  rounds: %d  bankroll: %s\n", p.Rounds, profitString(p.Bankroll))
		fmt.Printf("  profit/round: %.3f (95%% CI [%.3f, %.3f])\n", mean, low, high)
		fmt.Printf("  win rate: %.1f%%  W/L/P: %d/%d/%d  wagered: %d\n",
			p.Stats.WinRate()*100, p.Stats.Wins, p.Stats.Losses, p.Stats.Pushes, p.Stats.Wagered)
		fmt.Println()
	}

	d := result.Dealer
	fmt.Println(nameStyle.Render("dealer"))
	fmt.Printf("  rounds: %d  bankroll: %s\n", d.Rounds, profitString(d.Bankroll))
	fmt.Printf("  profit/round: %.3f  median: %.1f\n", d.Stats.Mean(), d.Stats.Median())
	fmt.Println()
}

func profitString(amount int) string {
	s := fmt.Sprintf("%d", amount)
	if amount > 0 {
		return winStyle.Render(s)
	}
	if amount < 0 {
		return loseStyle.Render(s)
	}
	return s
}
