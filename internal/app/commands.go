package app

import (
	"fmt"

	"trumpduel/internal/bot"
	"trumpduel/internal/domain"
)

// CommandKind names a client intent.
type CommandKind string

const (
	CommandStartRound          CommandKind = "start_round"
	CommandCoinCall            CommandKind = "coin_call"
	CommandSetTrump            CommandKind = "set_trump"
	CommandPlayCard            CommandKind = "play_card"
	CommandRequestComputerMove CommandKind = "request_computer_move"
	CommandSetDifficulty       CommandKind = "set_difficulty"
	CommandRestart             CommandKind = "restart"
)

// Command is the wire form of a client intent, shared by every transport.
type Command struct {
	Kind  CommandKind `json:"type"`
	Call  string      `json:"call,omitempty"`
	Suit  string      `json:"suit,omitempty"`
	Zone  string      `json:"zone,omitempty"`
	Index int         `json:"index"`
	Level string      `json:"level,omitempty"`
}

// Execute dispatches cmd to the matching engine operation.
func (e *Engine) Execute(cmd Command) error {
	switch cmd.Kind {
	case CommandStartRound:
		return e.StartNewRound()
	case CommandCoinCall:
		face, err := ParseCoinFace(cmd.Call)
		if err != nil {
			return err
		}
		return e.CallCoinToss(face)
	case CommandSetTrump:
		suit, err := domain.ParseSuit(cmd.Suit)
		if err != nil {
			return err
		}
		return e.SetTrump(suit)
	case CommandPlayCard:
		zone, err := domain.ParseZone(cmd.Zone)
		if err != nil {
			return err
		}
		return e.SubmitPlay(zone, cmd.Index)
	case CommandRequestComputerMove:
		e.RequestComputerMove()
		return nil
	case CommandSetDifficulty:
		return e.SetDifficulty(bot.Level(cmd.Level))
	case CommandRestart:
		e.Restart()
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}
}
