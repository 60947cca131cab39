package bot

import (
	"testing"

	"trumpduel/internal/domain"
)

func TestChooseTrump(t *testing.T) {
	tests := []struct {
		name string
		hand []string
		want domain.Suit
	}{
		{name: "honours outweigh length", hand: []string{"A_spades", "K_spades", "8_hearts", "9_hearts", "10_hearts"}, want: domain.Spades},
		{name: "length when no honours", hand: []string{"8_clubs", "9_clubs", "10_clubs", "8_spades", "9_diamonds"}, want: domain.Clubs},
		{name: "tie goes to hearts first", hand: []string{"9_clubs", "8_hearts"}, want: domain.Hearts},
		{name: "tie between diamonds and clubs", hand: []string{"J_clubs", "8_diamonds", "9_diamonds", "10_diamonds", "7_spades"}, want: domain.Diamonds},
		{name: "empty hand defaults to hearts", want: domain.Hearts},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hand []domain.Card
			for _, id := range tt.hand {
				hand = append(hand, card(id))
			}
			if got := ChooseTrump(hand); got != tt.want {
				t.Fatalf("ChooseTrump = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAgentChooseTrumpUsesHandOnly(t *testing.T) {
	g := domain.NewGame()
	g.Computer.Cards.Hand = slots("8_clubs", "9_clubs")
	g.Computer.Cards.FaceUp = slots("A_spades", "K_spades", "Q_spades")
	a, err := NewAgent(domain.SideComputer, LevelHard, nil)
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	if got := a.ChooseTrump(g); got != domain.Clubs {
		t.Fatalf("ChooseTrump = %s, want clubs", got)
	}
}
