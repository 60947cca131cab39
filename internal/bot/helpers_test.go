package bot

import (
	"trumpduel/internal/domain"
)

func card(id string) domain.Card {
	c, err := domain.ParseCard(id)
	if err != nil {
		panic(err)
	}
	return c
}

func slots(ids ...string) domain.Slots {
	var s domain.Slots
	for i, id := range ids {
		if id != "" {
			s[i] = card(id)
		}
	}
	return s
}

// table builds a playing game where the computer is to move.
func table(trump domain.Suit, selector domain.Side) *domain.Game {
	g := domain.NewGame()
	g.Phase = domain.PhasePlaying
	g.Trump = trump
	g.TrumpSelector = selector
	g.CurrentPlayer = domain.SideComputer
	return g
}

// lead puts the player's card on the table as the trick's first play.
func lead(g *domain.Game, id string) {
	g.Trick.Add(domain.Play{Side: domain.SidePlayer, Card: card(id), Zone: domain.ZoneHand})
}

func options(g *domain.Game) []domain.PlayOption {
	return domain.ValidPlays(&g.Computer.Cards, g.Trick.LeadSuit)
}

type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}
