package brain

import (
	"trumpduel/internal/domain"
)

// OpponentProfile is what a side can see of its opponent: the face-up zone.
type OpponentProfile struct {
	Side   domain.Side
	FaceUp []domain.Card
}

// NewOpponentProfile reads the opponent of side from the table.
func NewOpponentProfile(game *domain.Game, side domain.Side) *OpponentProfile {
	opp := side.Opponent()
	return &OpponentProfile{
		Side:   opp,
		FaceUp: game.Seat(opp).Cards.FaceUp.Cards(),
	}
}

// MaxInSuit returns the opponent's highest visible value in s, 0 if none.
func (p *OpponentProfile) MaxInSuit(s domain.Suit) int {
	return domain.MaxInSuit(p.FaceUp, s)
}

// Shows reports whether the opponent shows the exact card.
func (p *OpponentProfile) Shows(c domain.Card) bool {
	for _, v := range p.FaceUp {
		if v == c {
			return true
		}
	}
	return false
}

// ShowsSuit reports whether any visible opponent card is of suit s.
func (p *OpponentProfile) ShowsSuit(s domain.Suit) bool {
	return domain.HasSuit(p.FaceUp, s)
}

// CanOvertake reports whether a visible opponent card of c's suit beats c.
func (p *OpponentProfile) CanOvertake(c domain.Card) bool {
	return p.MaxInSuit(c.Suit) > c.Value()
}
