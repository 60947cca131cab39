package internal

import (
	"testing"

	"trumpduel/internal/domain"
)

func opt(zone domain.Zone, index int, id string) domain.PlayOption {
	card, err := domain.ParseCard(id)
	if err != nil {
		panic(err)
	}
	return domain.PlayOption{Zone: zone, Index: index, Card: card}
}

func TestLowestHighestKeepFirstOnTie(t *testing.T) {
	options := []domain.PlayOption{
		opt(domain.ZoneHand, 0, "9_clubs"),
		opt(domain.ZoneHand, 1, "8_hearts"),
		opt(domain.ZoneFaceUp, 0, "8_spades"),
		opt(domain.ZoneFaceUp, 1, "A_hearts"),
		opt(domain.ZoneFaceUp, 2, "A_clubs"),
	}
	low, ok := Lowest(options)
	if !ok || low != options[1] {
		t.Fatalf("Lowest = %+v, want %+v", low, options[1])
	}
	high, ok := Highest(options)
	if !ok || high != options[3] {
		t.Fatalf("Highest = %+v, want %+v", high, options[3])
	}
	if _, ok := Lowest(nil); ok {
		t.Fatalf("Lowest(nil) should report false")
	}
}

func TestFilters(t *testing.T) {
	options := []domain.PlayOption{
		opt(domain.ZoneHand, 0, "9_clubs"),
		opt(domain.ZoneHand, 1, "Q_hearts"),
		opt(domain.ZoneFaceUp, 0, "K_clubs"),
	}
	if got := OfSuit(options, domain.Clubs); len(got) != 2 || got[0] != options[0] {
		t.Fatalf("OfSuit = %+v", got)
	}
	if got := NotOfSuit(options, domain.Clubs); len(got) != 1 || got[0] != options[1] {
		t.Fatalf("NotOfSuit = %+v", got)
	}
	if got := Above(options, 12); len(got) != 1 || got[0] != options[2] {
		t.Fatalf("Above = %+v", got)
	}
}

func TestProfileHand(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.Spades, Rank: domain.Ace},
		{Suit: domain.Spades, Rank: domain.Eight},
		{Suit: domain.Hearts, Rank: domain.Jack},
		{},
		{Suit: domain.Clubs, Rank: domain.Ten},
	}
	got := ProfileHand(hand)
	if got[3].Suit != domain.Spades || got[3].Length != 2 || got[3].Honours != 1 || got[3].Strength() != 4 {
		t.Fatalf("spades profile = %+v", got[3])
	}
	if got[0].Strength() != 3 || got[1].Strength() != 0 || got[2].Strength() != 1 {
		t.Fatalf("profiles = %+v", got)
	}
}
