package domain

import (
	"fmt"
	"log"
)

// Phase represents the lifecycle stage of a duel.
type Phase string

const (
	// PhaseSetup is the state before the first round or after a restart.
	PhaseSetup Phase = "setup"
	// PhaseCoinToss waits for the human to call heads or tails (round 1 only).
	PhaseCoinToss Phase = "coin-toss"
	// PhaseTrumpSelection waits for the selector to name trump.
	PhaseTrumpSelection Phase = "trump-selection"
	// PhaseDealingRemaining is the pause before face-down and face-up cards land.
	PhaseDealingRemaining Phase = "dealing-remaining"
	// PhasePlaying is the trick-taking phase.
	PhasePlaying Phase = "playing"
	// PhaseRoundEnd follows a scored round that did not end the game.
	PhaseRoundEnd Phase = "round-end"
	// PhaseGameOver is terminal until a restart.
	PhaseGameOver Phase = "game-over"
)

// Player is one side's state at the table.
type Player struct {
	Side      Side
	Cards     PlayerCards
	Score     int
	TricksWon int
	WonTricks []Trick
}

// Game is the authoritative state of one duel.
type Game struct {
	Phase         Phase
	Player        *Player
	Computer      *Player
	Trump         Suit
	Trick         Trick
	TrickCount    int
	PlayedCards   []Card
	Pending       []Card
	TrumpSelector Side
	CurrentPlayer Side
	RoundNumber   int
	GameOver      bool
	Winner        Side
}

// NewGame returns a game in setup at round 1.
func NewGame() *Game {
	return &Game{
		Phase:       PhaseSetup,
		Player:      &Player{Side: SidePlayer},
		Computer:    &Player{Side: SideComputer},
		RoundNumber: 1,
	}
}

// Seat returns the state for side.
func (g *Game) Seat(side Side) *Player {
	switch side {
	case SidePlayer:
		return g.Player
	case SideComputer:
		return g.Computer
	default:
		log.Panicf("seat: unknown side %q", side)
		return nil
	}
}

// ResetRound clears per-round state. Scores, round number and the trump
// selector survive.
func (g *Game) ResetRound() {
	for _, p := range []*Player{g.Player, g.Computer} {
		p.Cards.Reset()
		p.TricksWon = 0
		p.WonTricks = nil
	}
	g.Trump = NoSuit
	g.Trick = Trick{}
	g.TrickCount = 0
	g.PlayedCards = nil
	g.Pending = nil
}

// ApplyPlay removes a card from side's zone and appends it to the trick.
// The returned card is the face-down card revealed by a face-up play, if any.
func (g *Game) ApplyPlay(side Side, zone Zone, index int) (Play, Card, error) {
	if g.CurrentPlayer != side {
		return Play{}, Card{}, fmt.Errorf("%w: %s", ErrNotInTurn, side)
	}
	if g.Trick.IsComplete() {
		return Play{}, Card{}, ErrTrickComplete
	}
	seat := g.Seat(side)
	if _, err := CheckPlay(&seat.Cards, zone, index, g.Trick.LeadSuit); err != nil {
		return Play{}, Card{}, err
	}
	card, revealed, err := seat.Cards.Take(zone, index)
	if err != nil {
		return Play{}, Card{}, err
	}
	play := Play{Side: side, Card: card, Zone: zone, Index: index}
	g.Trick.Add(play)
	if !g.Trick.IsComplete() {
		g.CurrentPlayer = side.Opponent()
	}
	return play, revealed, nil
}

// ResolveTrick scores the complete trick, logs its cards and hands the lead
// to the winner.
func (g *Game) ResolveTrick() (Play, Trick) {
	win := g.Trick.Winner(g.Trump)
	trick := g.Trick
	g.PlayedCards = append(g.PlayedCards, trick.Cards()...)
	winner := g.Seat(win.Side)
	winner.TricksWon++
	winner.WonTricks = append(winner.WonTricks, trick)
	g.TrickCount++
	g.CurrentPlayer = win.Side
	g.Trick.Reset(win.Side)
	return win, trick
}

// RoundComplete reports whether both sides have played out hand and face-up.
func (g *Game) RoundComplete() bool {
	return g.Player.Cards.Playable() == 0 && g.Computer.Cards.Playable() == 0
}
