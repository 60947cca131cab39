package internal

import "trumpduel/internal/domain"

// SuitProfile summarizes one suit of a hand for trump selection.
type SuitProfile struct {
	Suit    domain.Suit
	Length  int
	Honours int
}

// Strength weighs honours double: 2*honours + length.
func (p SuitProfile) Strength() int {
	return 2*p.Honours + p.Length
}

// ProfileHand returns one profile per suit in enumeration order.
func ProfileHand(hand []domain.Card) [len(domain.Suits)]SuitProfile {
	var out [len(domain.Suits)]SuitProfile
	for i, s := range domain.Suits {
		out[i] = SuitProfile{Suit: s, Length: domain.CountSuit(hand, s)}
	}
	for _, c := range hand {
		i := int(c.Suit) - int(domain.Hearts)
		if c.IsZero() || i < 0 || i >= len(out) {
			continue
		}
		if c.Rank.IsHonour() {
			out[i].Honours++
		}
	}
	return out
}
