package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCardString(t *testing.T) {
	tests := []struct {
		card    Card
		id      string
		display string
	}{
		{card: Card{Suit: Clubs, Rank: Ten}, id: "10_clubs", display: "10♣"},
		{card: Card{Suit: Spades, Rank: Ace}, id: "A_spades", display: "A♠"},
		{card: Card{Suit: Hearts, Rank: Seven}, id: "7_hearts", display: "7♥"},
		{card: Card{Suit: Diamonds, Rank: Jack}, id: "J_diamonds", display: "J♦"},
		{card: Card{}, id: "", display: "-"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := tt.card.String(); got != tt.id {
				t.Fatalf("String() = %q, want %q", got, tt.id)
			}
			if got := tt.card.Display(); got != tt.display {
				t.Fatalf("Display() = %q, want %q", got, tt.display)
			}
		})
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in      string
		want    Card
		wantErr error
	}{
		{in: "K_hearts", want: Card{Suit: Hearts, Rank: King}},
		{in: "10_clubs", want: Card{Suit: Clubs, Rank: Ten}},
		{in: "7_spades", want: Card{Suit: Spades, Rank: Seven}},
		{in: "7_clubs", wantErr: ErrMalformedCard},
		{in: "6_hearts", wantErr: ErrUnknownRank},
		{in: "Q_stars", wantErr: ErrUnknownSuit},
		{in: "Qhearts", wantErr: ErrMalformedCard},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCard(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCard(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseCard(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValueOrdering(t *testing.T) {
	prev := 0
	for r := Seven; r <= Ace; r++ {
		v := Card{Suit: Hearts, Rank: r}.Value()
		if v <= prev {
			t.Fatalf("value of %v = %d, not above %d", r, v, prev)
		}
		prev = v
	}
	if prev != 14 {
		t.Fatalf("ace value = %d, want 14", prev)
	}
}

func TestCardJSON(t *testing.T) {
	slots := Slots{{Suit: Hearts, Rank: Ace}}
	data, err := json.Marshal(slots)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `["A_hearts","","","",""]`
	if string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}

	var back Slots
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != slots {
		t.Fatalf("round trip = %+v, want %+v", back, slots)
	}
}

func TestParseSuit(t *testing.T) {
	for _, s := range Suits {
		got, err := ParseSuit(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseSuit(%q) = %v, %v", s.String(), got, err)
		}
		if got, _ := ParseSuit(s.Symbol()); got != s {
			t.Fatalf("ParseSuit(%q) = %v, want %v", s.Symbol(), got, s)
		}
	}
	if _, err := ParseSuit("none"); !errors.Is(err, ErrUnknownSuit) {
		t.Fatalf("ParseSuit(none) error = %v", err)
	}
}
