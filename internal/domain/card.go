package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownSuit   = errors.New("unknown suit")
	ErrUnknownRank   = errors.New("unknown rank")
	ErrMalformedCard = errors.New("malformed card")
)

// Suit identifies one of the four suits. The zero value means "no suit",
// used for an unset trump and for a trick without a lead.
type Suit int

const (
	NoSuit Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
)

// Suits lists the suits in enumeration order. Trump heuristics break ties in
// this order.
var Suits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

var suitNames = map[Suit]string{
	Hearts:   "hearts",
	Diamonds: "diamonds",
	Clubs:    "clubs",
	Spades:   "spades",
}

var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
	Spades:   "♠",
}

func (s Suit) String() string {
	return suitNames[s]
}

// Symbol returns the unicode pip for the suit.
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// Valid reports whether s is one of the four real suits.
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Spades
}

// ParseSuit accepts the lowercase suit name ("hearts") or its pip.
func ParseSuit(v string) (Suit, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for s, name := range suitNames {
		if v == name || v == suitSymbols[s] {
			return s, nil
		}
	}
	return NoSuit, fmt.Errorf("%w: %q", ErrUnknownSuit, v)
}

func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Suit) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*s = NoSuit
		return nil
	}
	parsed, err := ParseSuit(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Rank carries the card's numeric value, 7 through 14 (ace).
type Rank int

const (
	Seven Rank = 7 + iota
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = map[Rank]string{
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// IsHonour reports whether the rank is a picture card or an ace.
func (r Rank) IsHonour() bool {
	return r >= Jack
}

// ParseRank accepts "7".."10", "J", "Q", "K", "A".
func ParseRank(v string) (Rank, error) {
	v = strings.ToUpper(strings.TrimSpace(v))
	for r, name := range rankNames {
		if v == name {
			return r, nil
		}
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < int(Seven) || n > int(Ten) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRank, v)
	}
	return Rank(n), nil
}

// Card is a single playing card. The zero Card marks an empty slot.
type Card struct {
	Suit Suit
	Rank Rank
}

// IsZero reports whether c is the empty-slot marker.
func (c Card) IsZero() bool {
	return c == Card{}
}

// Value is the card's strength within its suit.
func (c Card) Value() int {
	return int(c.Rank)
}

// String returns the canonical id, e.g. "10_clubs".
func (c Card) String() string {
	if c.IsZero() {
		return ""
	}
	return c.Rank.String() + "_" + c.Suit.String()
}

// Display renders the card for logs, e.g. "10♣".
func (c Card) Display() string {
	if c.IsZero() {
		return "-"
	}
	return c.Rank.String() + c.Suit.Symbol()
}

// ParseCard decodes the canonical id produced by String.
func ParseCard(v string) (Card, error) {
	rank, suit, ok := strings.Cut(strings.TrimSpace(v), "_")
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrMalformedCard, v)
	}
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	c := Card{Suit: s, Rank: r}
	if !c.InDeck() {
		return Card{}, fmt.Errorf("%w: %q is not part of the deck", ErrMalformedCard, v)
	}
	return c, nil
}

// InDeck reports whether the card exists in the 30-card deck. Sevens exist
// only in hearts and spades.
func (c Card) InDeck() bool {
	if !c.Suit.Valid() || c.Rank < Seven || c.Rank > Ace {
		return false
	}
	if c.Rank == Seven {
		return c.Suit == Hearts || c.Suit == Spades
	}
	return true
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*c = Card{}
		return nil
	}
	parsed, err := ParseCard(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
