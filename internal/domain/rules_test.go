package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func c(id string) Card {
	card, err := ParseCard(id)
	if err != nil {
		panic(err)
	}
	return card
}

func TestIsLegal(t *testing.T) {
	visible := []Card{c("10_clubs"), c("K_hearts"), c("8_spades")}
	tests := []struct {
		name string
		card Card
		lead Suit
		want bool
	}{
		{name: "no lead", card: c("K_hearts"), lead: NoSuit, want: true},
		{name: "follows suit", card: c("10_clubs"), lead: Clubs, want: true},
		{name: "revokes while holding lead", card: c("K_hearts"), lead: Clubs, want: false},
		{name: "void discards", card: c("8_spades"), lead: Diamonds, want: true},
		{name: "void trumps", card: c("K_hearts"), lead: Diamonds, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLegal(tt.card, tt.lead, visible); got != tt.want {
				t.Fatalf("IsLegal(%s, %s) = %v, want %v", tt.card, tt.lead, got, tt.want)
			}
		})
	}
}

func TestValidPlaysIgnoresFaceDown(t *testing.T) {
	cards := &PlayerCards{
		Hand:     Slots{c("K_hearts"), {}, c("9_spades")},
		FaceUp:   Slots{{}, c("A_hearts")},
		FaceDown: Slots{c("8_clubs"), c("9_clubs")},
	}
	got := ValidPlays(cards, Clubs)
	if len(got) != 3 {
		t.Fatalf("void in visible clubs: %d options, want 3", len(got))
	}
	want := []PlayOption{
		{Zone: ZoneHand, Index: 0, Card: c("K_hearts")},
		{Zone: ZoneHand, Index: 2, Card: c("9_spades")},
		{Zone: ZoneFaceUp, Index: 1, Card: c("A_hearts")},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("option %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	got = ValidPlays(cards, Hearts)
	if len(got) != 2 || got[0].Card != c("K_hearts") || got[1].Card != c("A_hearts") {
		t.Fatalf("hearts options = %+v", got)
	}
}

func TestValidatorProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		deck := ShuffleDeck(NewDeck(), rng)
		cards := &PlayerCards{}
		for j := 0; j < SlotsPerZone; j++ {
			if rng.Intn(3) > 0 {
				cards.Hand[j] = deck[j]
			}
			if rng.Intn(3) > 0 {
				cards.FaceUp[j] = deck[j+5]
			}
			cards.FaceDown[j] = deck[j+10]
		}
		for _, lead := range Suits {
			options := ValidPlays(cards, lead)
			if HasSuit(cards.Visible(), lead) {
				for _, o := range options {
					if o.Card.Suit != lead {
						t.Fatalf("lead %s: %s offered while holding lead suit", lead, o.Card)
					}
				}
			} else if len(options) != cards.Playable() {
				t.Fatalf("lead %s void: %d options, want %d", lead, len(options), cards.Playable())
			}
		}
	}
}

func TestCheckPlayErrors(t *testing.T) {
	cards := &PlayerCards{Hand: Slots{c("K_hearts"), {}, c("9_clubs")}}
	tests := []struct {
		name  string
		zone  Zone
		index int
		want  error
	}{
		{name: "empty slot", zone: ZoneHand, index: 1, want: ErrEmptySlot},
		{name: "out of range", zone: ZoneHand, index: 5, want: ErrSlotOutOfRange},
		{name: "negative", zone: ZoneFaceUp, index: -1, want: ErrSlotOutOfRange},
		{name: "face down", zone: ZoneFaceDown, index: 0, want: ErrInvalidZone},
		{name: "revoke", zone: ZoneHand, index: 0, want: ErrMustFollowSuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CheckPlay(cards, tt.zone, tt.index, Clubs); !errors.Is(err, tt.want) {
				t.Fatalf("CheckPlay error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTrickResolution(t *testing.T) {
	tests := []struct {
		name   string
		lead   Card
		follow Card
		trump  Suit
		want   Side
	}{
		{name: "higher lead-suit card", lead: c("10_clubs"), follow: c("K_clubs"), trump: Hearts, want: SideComputer},
		{name: "trump beats higher non-trump", lead: c("A_clubs"), follow: c("7_hearts"), trump: Hearts, want: SideComputer},
		{name: "higher trump", lead: c("K_hearts"), follow: c("A_hearts"), trump: Hearts, want: SideComputer},
		{name: "off-suit discard loses", lead: c("8_clubs"), follow: c("A_spades"), trump: Hearts, want: SidePlayer},
		{name: "lead trump beats lower trump", lead: c("Q_hearts"), follow: c("J_hearts"), trump: Hearts, want: SidePlayer},
		{name: "lead keeps against lower follow", lead: c("K_clubs"), follow: c("10_clubs"), trump: Hearts, want: SidePlayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var trick Trick
			trick.Add(Play{Side: SidePlayer, Card: tt.lead, Zone: ZoneHand})
			trick.Add(Play{Side: SideComputer, Card: tt.follow, Zone: ZoneHand})
			if trick.LeadSuit != tt.lead.Suit {
				t.Fatalf("lead suit = %s, want %s", trick.LeadSuit, tt.lead.Suit)
			}
			if got := trick.Winner(tt.trump).Side; got != tt.want {
				t.Fatalf("winner = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTrickRejectsThirdPlay(t *testing.T) {
	var trick Trick
	trick.Add(Play{Side: SidePlayer, Card: c("8_clubs")})
	trick.Add(Play{Side: SideComputer, Card: c("9_clubs")})
	defer func() {
		if recover() == nil {
			t.Fatalf("third play should panic")
		}
	}()
	trick.Add(Play{Side: SidePlayer, Card: c("10_clubs")})
}
