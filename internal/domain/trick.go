package domain

import "log"

// Play is one card placed into a trick.
type Play struct {
	Side  Side `json:"side"`
	Card  Card `json:"card"`
	Zone  Zone `json:"zone"`
	Index int  `json:"index"`
}

// Trick holds at most one play per side. The first play fixes the lead suit.
type Trick struct {
	Leader   Side   `json:"leader"`
	LeadSuit Suit   `json:"lead_suit"`
	Plays    []Play `json:"plays"`
}

// Add appends a play. A third play is a programming error.
func (t *Trick) Add(p Play) {
	if len(t.Plays) >= 2 {
		log.Panicf("trick: third play by %s", p.Side)
	}
	if len(t.Plays) == 0 {
		t.LeadSuit = p.Card.Suit
		t.Leader = p.Side
	} else if t.Plays[0].Side == p.Side {
		log.Panicf("trick: %s played twice", p.Side)
	}
	t.Plays = append(t.Plays, p)
}

// IsComplete reports whether both sides have played.
func (t *Trick) IsComplete() bool {
	return len(t.Plays) == 2
}

// IsEmpty reports whether nobody has played yet.
func (t *Trick) IsEmpty() bool {
	return len(t.Plays) == 0
}

// Lead returns the first play, if any.
func (t *Trick) Lead() (Play, bool) {
	if len(t.Plays) == 0 {
		return Play{}, false
	}
	return t.Plays[0], true
}

// Winner returns the winning play of a complete trick.
func (t *Trick) Winner(trump Suit) Play {
	if !t.IsComplete() {
		log.Panicf("trick: winner requested with %d plays", len(t.Plays))
	}
	lead, follow := t.Plays[0], t.Plays[1]
	if Beats(follow.Card, lead.Card, t.LeadSuit, trump) {
		return follow
	}
	return lead
}

// Cards returns the cards in play order.
func (t *Trick) Cards() []Card {
	out := make([]Card, len(t.Plays))
	for i, p := range t.Plays {
		out[i] = p.Card
	}
	return out
}

// Reset clears the trick for the next lead.
func (t *Trick) Reset(leader Side) {
	t.Plays = nil
	t.LeadSuit = NoSuit
	t.Leader = leader
}
