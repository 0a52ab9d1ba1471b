package deck

import "testing"

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(Two, Diamonds), "2♦"},
		{NewCard(Nine, Clubs), "9♣"},
		{NewCard(Ten, Hearts), "T♥"},
		{NewCard(Jack, Spades), "J♠"},
		{NewCard(Queen, Diamonds), "Q♦"},
		{NewCard(King, Clubs), "K♣"},
		{NewCard(Ace, Spades), "A♠"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

func TestCardPredicates(t *testing.T) {
	if !NewCard(Ace, Spades).IsAce() {
		t.Error("Expected ace to be an ace")
	}
	if NewCard(King, Spades).IsAce() {
		t.Error("Expected king not to be an ace")
	}

	for _, rank := range []Rank{Jack, Queen, King} {
		if !NewCard(rank, Hearts).IsFaceCard() {
			t.Errorf("Expected %s to be a face card", rank)
		}
	}
	for _, rank := range []Rank{Two, Ten, Ace} {
		if NewCard(rank, Hearts).IsFaceCard() {
			t.Errorf("Expected %s not to be a face card", rank)
		}
	}
}
