package app

import (
	"trumpduel/internal/bot"
	"trumpduel/internal/domain"
)

// SeatView is one side of the table as the human may see it. Face-down
// cards and the computer's hand are reported as occupancy only.
type SeatView struct {
	Hand      []domain.Card `json:"hand,omitempty"`
	HandCount int           `json:"hand_count"`
	FaceUp    domain.Slots  `json:"face_up"`
	FaceDown  []bool        `json:"face_down"`
	Score     int           `json:"score"`
	TricksWon int           `json:"tricks_won"`
}

// Snapshot is the client-facing view of an engine.
type Snapshot struct {
	GameID           string              `json:"game_id"`
	Phase            domain.Phase        `json:"phase"`
	Round            int                 `json:"round"`
	Difficulty       bot.Level           `json:"difficulty"`
	NextDifficulty   bot.Level           `json:"next_difficulty"`
	Profile          bot.Profile         `json:"profile"`
	Trump            domain.Suit         `json:"trump,omitempty"`
	TrumpSelector    domain.Side         `json:"trump_selector,omitempty"`
	CurrentPlayer    domain.Side         `json:"current_player,omitempty"`
	Resolving        bool                `json:"resolving"`
	ComputerThinking bool                `json:"computer_thinking"`
	Player           SeatView            `json:"player"`
	Computer         SeatView            `json:"computer"`
	Trick            []domain.Play       `json:"trick"`
	TrickCount       int                 `json:"trick_count"`
	PlayedCards      []domain.Card       `json:"played_cards"`
	ValidPlays       []domain.PlayOption `json:"valid_plays"`
	GameOver         bool                `json:"game_over"`
	Winner           domain.Side         `json:"winner,omitempty"`
	Log              []LogEntry          `json:"log"`
}

// Snapshot captures the current view. The returned value shares nothing
// with the engine.
func (e *Engine) Snapshot() Snapshot {
	g := e.game
	played := make([]domain.Card, len(g.PlayedCards))
	copy(played, g.PlayedCards)
	trick := make([]domain.Play, len(g.Trick.Plays))
	copy(trick, g.Trick.Plays)

	return Snapshot{
		GameID:           e.id,
		Phase:            g.Phase,
		Round:            g.RoundNumber,
		Difficulty:       e.difficulty,
		NextDifficulty:   e.nextDifficulty,
		Profile:          bot.ProfileFor(e.difficulty),
		Trump:            g.Trump,
		TrumpSelector:    g.TrumpSelector,
		CurrentPlayer:    g.CurrentPlayer,
		Resolving:        e.resolvingTrick,
		ComputerThinking: e.computerThinking,
		Player:           seatView(g.Player, true),
		Computer:         seatView(g.Computer, false),
		Trick:            trick,
		TrickCount:       g.TrickCount,
		PlayedCards:      played,
		ValidPlays:       e.ValidPlays(),
		GameOver:         g.GameOver,
		Winner:           g.Winner,
		Log:              e.Log(),
	}
}

func seatView(p *domain.Player, own bool) SeatView {
	v := SeatView{
		HandCount: p.Cards.Hand.Count(),
		FaceUp:    p.Cards.FaceUp,
		FaceDown:  p.Cards.FaceDown.Occupancy(),
		Score:     p.Score,
		TricksWon: p.TricksWon,
	}
	if own {
		v.Hand = p.Cards.Hand.Cards()
	}
	return v
}
