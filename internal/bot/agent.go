package bot

import (
	"trumpduel/internal/domain"
)

// Agent is a brain seated at one side of the table.
type Agent struct {
	Side     domain.Side
	Level    Level
	Strategy Brain
}

// NewAgent seats a brain of level at side.
func NewAgent(side domain.Side, level Level, rng Random) (*Agent, error) {
	b, err := NewBrain(level, rng)
	if err != nil {
		return nil, err
	}
	return &Agent{Side: side, Level: level, Strategy: b}, nil
}

// Play asks the agent for its card in the current trick. ok is false when
// the agent has nothing legal to play.
func (a *Agent) Play(game *domain.Game) (domain.PlayOption, bool) {
	valid := domain.ValidPlays(&game.Seat(a.Side).Cards, game.Trick.LeadSuit)
	return a.Strategy.ChoosePlay(game, a.Side, valid)
}

// ChooseTrump names trump from the agent's current hand.
func (a *Agent) ChooseTrump(game *domain.Game) domain.Suit {
	return ChooseTrump(game.Seat(a.Side).Cards.Hand.Cards())
}
