package app

import (
	"fmt"
	"strings"

	"trumpduel/internal/domain"
)

// Tone classifies a log line for styling.
type Tone string

const (
	ToneInfo      Tone = ""
	ToneComputer  Tone = "computer-action"
	ToneTrickWon  Tone = "trick-won"
	ToneTrickLost Tone = "trick-lost"
	ToneTrump     Tone = "trump-selection"
)

// LogEntry is one human-readable game log line.
type LogEntry struct {
	Message string `json:"message"`
	Tone    Tone   `json:"tone,omitempty"`
}

// Log returns the most recent log lines, oldest first.
func (e *Engine) Log() []LogEntry {
	out := make([]LogEntry, len(e.logbook))
	copy(out, e.logbook)
	return out
}

func (e *Engine) note(msg string, tone Tone) {
	e.logbook = append(e.logbook, LogEntry{Message: msg, Tone: tone})
	if over := len(e.logbook) - e.logLimit; over > 0 {
		e.logbook = append(e.logbook[:0], e.logbook[over:]...)
	}
}

// describe renders the log line for an event, if it has one.
func describe(ev Event) (string, Tone) {
	switch p := ev.Payload.(type) {
	case RoundStartedPayload:
		if p.CoinToss {
			return "Game started! Call heads or tails to decide who picks trump.", ToneInfo
		}
		return fmt.Sprintf("Round %d started!", p.Round), ToneInfo
	case CoinTossedPayload:
		face := strings.ToUpper(string(p.Result))
		if p.Winner == domain.SidePlayer {
			return fmt.Sprintf("Coin toss: %s! You won and will choose trump first.", face), ToneInfo
		}
		return fmt.Sprintf("Coin toss: %s! Computer won and will choose trump first.", face), ToneInfo
	case TrumpSelectedPayload:
		if p.Selector == domain.SideComputer {
			return fmt.Sprintf("Computer selected %s %s as trump. Computer goes first!", p.Suit, p.Suit.Symbol()), ToneTrump
		}
		return fmt.Sprintf("You selected %s %s as trump. You go first!", p.Suit, p.Suit.Symbol()), ToneTrump
	case CardPlayedPayload:
		if p.Side == domain.SideComputer {
			return "Computer played " + p.Card.Display(), ToneComputer
		}
		return "You played " + p.Card.Display(), ToneInfo
	case PlayRejectedPayload:
		return p.Reason, ToneInfo
	case TrickResolvedPayload:
		if p.Winner == domain.SidePlayer {
			return fmt.Sprintf("You won the trick with %s!", p.WinningCard.Display()), ToneTrickWon
		}
		return fmt.Sprintf("Computer won the trick with %s.", p.WinningCard.Display()), ToneTrickLost
	case RoundEndedPayload:
		return fmt.Sprintf("Round %d Complete! Player: +%d points, Computer: +%d points",
			p.Round, p.PlayerRoundScore, p.ComputerRoundScore), ToneInfo
	case GameOverPayload:
		if p.Winner == domain.SidePlayer {
			return fmt.Sprintf("Game Over! Player wins with %d points!", p.PlayerScore), ToneTrickWon
		}
		return fmt.Sprintf("Game Over! Computer wins with %d points!", p.ComputerScore), ToneTrickLost
	case DifficultyChangedPayload:
		return fmt.Sprintf("Difficulty changed to %s. Will apply on new game/round.", strings.ToUpper(string(p.Level))), ToneInfo
	case GameRestartedPayload:
		return "Game reset - Click 'Start Game' to begin", ToneInfo
	}
	return "", ToneInfo
}
