package app

import (
	"trumpduel/internal/bot"
	"trumpduel/internal/domain"
)

// EventKind identifies emitted engine events for host dispatch.
type EventKind string

const (
	EventRoundStarted      EventKind = "round_started"
	EventCoinTossed        EventKind = "coin_tossed"
	EventTrumpSelected     EventKind = "trump_selected"
	EventCardsDealt        EventKind = "cards_dealt"
	EventCardPlayed        EventKind = "card_played"
	EventPlayRejected      EventKind = "play_rejected"
	EventTrickResolved     EventKind = "trick_resolved"
	EventRoundEnded        EventKind = "round_ended"
	EventGameOver          EventKind = "game_over"
	EventDifficultyChanged EventKind = "difficulty_changed"
	EventGameRestarted     EventKind = "game_restarted"
)

// Event is an engine event. Every event concerns the single human seat, so
// there is no recipient list.
type Event struct {
	Kind    EventKind `json:"kind"`
	Payload any       `json:"payload"`
}

type RoundStartedPayload struct {
	Round      int       `json:"round"`
	Difficulty bot.Level `json:"difficulty"`
	CoinToss   bool      `json:"coin_toss"`
}

type CoinTossedPayload struct {
	Call   CoinFace    `json:"call"`
	Result CoinFace    `json:"result"`
	Winner domain.Side `json:"winner"`
}

type TrumpSelectedPayload struct {
	Selector domain.Side `json:"selector"`
	Suit     domain.Suit `json:"suit"`
}

type CardsDealtPayload struct {
	FirstPlayer domain.Side `json:"first_player"`
}

type CardPlayedPayload struct {
	Side     domain.Side `json:"side"`
	Card     domain.Card `json:"card"`
	Zone     domain.Zone `json:"zone"`
	Index    int         `json:"index"`
	Revealed domain.Card `json:"revealed,omitzero"`
	NextTurn domain.Side `json:"next_turn,omitempty"`
}

type PlayRejectedPayload struct {
	Zone   domain.Zone `json:"zone"`
	Index  int         `json:"index"`
	Reason string      `json:"reason"`
}

type TrickResolvedPayload struct {
	TrickNumber int           `json:"trick_number"`
	Winner      domain.Side   `json:"winner"`
	WinningCard domain.Card   `json:"winning_card"`
	Plays       []domain.Play `json:"plays"`
}

type RoundEndedPayload struct {
	domain.RoundResult
}

type GameOverPayload struct {
	Winner        domain.Side `json:"winner"`
	PlayerScore   int         `json:"player_score"`
	ComputerScore int         `json:"computer_score"`
}

type DifficultyChangedPayload struct {
	Level  bot.Level `json:"level"`
	Active bot.Level `json:"active"`
}

type GameRestartedPayload struct {
	GameID string `json:"game_id"`
}
