package bot

import (
	"testing"

	"github.com/lox/blackjackforbots/internal/randutil"
)

func TestRandomBettingStaysInRange(t *testing.T) {
	b := NewRandomBetting(randutil.New(1), 1, 4)

	for i := 0; i < 100; i++ {
		bet := b.PlaceBet(100, nil)
		if bet < 1 || bet > 4 {
			t.Fatalf("PlaceBet() = %d, want between 1 and 4", bet)
		}
	}
}

func TestRandomBettingCoversRange(t *testing.T) {
	b := NewRandomBetting(randutil.New(1), 1, 4)

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		seen[b.PlaceBet(100, nil)] = true
	}

	for want := 1; want <= 4; want++ {
		if !seen[want] {
			t.Errorf("Expected bet %d to appear in 200 draws", want)
		}
	}
}

func TestRandomBettingClampsToBankroll(t *testing.T) {
	b := NewRandomBetting(randutil.New(1), 5, 10)

	for i := 0; i < 50; i++ {
		if bet := b.PlaceBet(3, nil); bet > 3 {
			t.Fatalf("PlaceBet() = %d with bankroll 3", bet)
		}
	}
}

func TestFlatBetting(t *testing.T) {
	b := NewFlatBetting(5)

	if bet := b.PlaceBet(100, nil); bet != 5 {
		t.Errorf("PlaceBet() = %d, want 5", bet)
	}
	if bet := b.PlaceBet(3, nil); bet != 3 {
		t.Errorf("PlaceBet() = %d with bankroll 3, want 3", bet)
	}
}
