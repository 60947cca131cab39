package bot

import (
	"testing"

	"trumpduel/internal/domain"
)

func TestHardBot_Lead(t *testing.T) {
	tests := []struct {
		name      string
		selector  domain.Side
		tricksWon int
		played    []string
		hand      []string
		want      string
	}{
		{name: "cash side-suit master first", selector: domain.SideComputer, hand: []string{"K_clubs", "A_diamonds", "A_hearts"}, want: "A_diamonds"},
		{name: "trump master when it is the only master", selector: domain.SideComputer, hand: []string{"K_clubs", "A_hearts"}, want: "A_hearts"},
		{name: "king becomes master after ace fell", selector: domain.SideComputer, played: []string{"A_clubs", "7_spades"}, hand: []string{"K_clubs", "9_diamonds"}, want: "K_clubs"},
		{name: "no masters leads lowest side suit", selector: domain.SideComputer, hand: []string{"K_clubs", "9_diamonds", "8_hearts"}, want: "9_diamonds"},
		{name: "target reached ignores masters", selector: domain.SidePlayer, tricksWon: 7, hand: []string{"A_clubs", "8_clubs", "7_hearts"}, want: "8_clubs"},
		{name: "only trumps left", selector: domain.SideComputer, hand: []string{"Q_hearts", "9_hearts"}, want: "9_hearts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := table(domain.Hearts, tt.selector)
			g.Computer.TricksWon = tt.tricksWon
			for _, id := range tt.played {
				g.PlayedCards = append(g.PlayedCards, card(id))
			}
			g.TrickCount = len(g.PlayedCards) / 2
			g.Computer.Cards.Hand = slots(tt.hand...)
			got, ok := (&HardBot{}).ChoosePlay(g, domain.SideComputer, options(g))
			if !ok || got.Card != card(tt.want) {
				t.Fatalf("ChoosePlay = %s (%v), want %s", got.Card, ok, tt.want)
			}
		})
	}
}

func TestHardBot_Follow(t *testing.T) {
	tests := []struct {
		name       string
		selector   domain.Side
		tricksWon  int
		trickCount int
		oppUp      []string
		hand       []string
		led        string
		want       string
	}{
		{name: "lowest guaranteed winner", selector: domain.SideComputer, hand: []string{"K_clubs", "A_clubs"}, led: "10_clubs", want: "A_clubs"},
		{name: "risky winner withheld on pace", selector: domain.SideComputer, hand: []string{"8_clubs", "J_clubs"}, led: "10_clubs", want: "8_clubs"},
		{name: "risky winner when desperate", selector: domain.SideComputer, tricksWon: 4, trickCount: 10, hand: []string{"8_clubs", "J_clubs"}, led: "10_clubs", want: "J_clubs"},
		{name: "cannot win plays lowest", selector: domain.SideComputer, hand: []string{"9_clubs", "8_clubs"}, led: "10_clubs", want: "8_clubs"},
		{name: "master trump ruff", selector: domain.SideComputer, hand: []string{"K_hearts", "A_hearts", "9_spades"}, led: "10_clubs", want: "A_hearts"},
		{name: "low ruff when opponent shows no trump", selector: domain.SideComputer, hand: []string{"Q_hearts", "9_hearts", "8_spades"}, led: "10_clubs", want: "9_hearts"},
		{name: "low ruff when pressed despite visible trump", selector: domain.SideComputer, oppUp: []string{"K_hearts"}, hand: []string{"Q_hearts", "9_hearts", "8_spades"}, led: "10_clubs", want: "9_hearts"},
		{name: "discard when relaxed and opponent shows trump", selector: domain.SidePlayer, tricksWon: 2, oppUp: []string{"K_hearts"}, hand: []string{"Q_hearts", "9_hearts", "8_spades"}, led: "10_clubs", want: "8_spades"},
		{name: "discard once target is reached", selector: domain.SidePlayer, tricksWon: 7, hand: []string{"A_hearts", "8_spades"}, led: "10_clubs", want: "8_spades"},
		{name: "only trumps left after target", selector: domain.SidePlayer, tricksWon: 7, hand: []string{"Q_hearts", "9_hearts"}, led: "10_clubs", want: "9_hearts"},
		{name: "trump led and void", selector: domain.SideComputer, hand: []string{"Q_spades", "9_diamonds"}, led: "10_hearts", want: "9_diamonds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := table(domain.Hearts, tt.selector)
			g.Computer.TricksWon = tt.tricksWon
			g.TrickCount = tt.trickCount
			g.Player.Cards.FaceUp = slots(tt.oppUp...)
			g.Computer.Cards.Hand = slots(tt.hand...)
			lead(g, tt.led)
			got, ok := (&HardBot{}).ChoosePlay(g, domain.SideComputer, options(g))
			if !ok || got.Card != card(tt.want) {
				t.Fatalf("ChoosePlay = %s (%v), want %s", got.Card, ok, tt.want)
			}
		})
	}
}
