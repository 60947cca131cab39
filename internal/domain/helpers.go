package domain

// LabelPayload produces the values needed for match label advertisement.
type LabelPayload struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// ComputeLabel derives the advertised label. A duel is open until its human
// seat is taken.
func ComputeLabel(g *Game, seated bool) LabelPayload {
	return LabelPayload{Open: !seated, Game: "trumpduel", Phase: string(g.Phase)}
}

// CountSuit returns how many of cards are of suit s.
func CountSuit(cards []Card, s Suit) int {
	n := 0
	for _, c := range cards {
		if c.Suit == s {
			n++
		}
	}
	return n
}

// MaxInSuit returns the highest value of suit s among cards, 0 if none.
func MaxInSuit(cards []Card, s Suit) int {
	best := 0
	for _, c := range cards {
		if c.Suit == s && c.Value() > best {
			best = c.Value()
		}
	}
	return best
}
