package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidZone    = errors.New("invalid zone")
	ErrSlotOutOfRange = errors.New("slot index out of range")
	ErrEmptySlot      = errors.New("slot is empty")
	ErrMustFollowSuit = errors.New("must follow suit")
	ErrNotInTurn      = errors.New("side is not to move")
	ErrTrickComplete  = errors.New("trick already complete")
)

// PlayOption is one legal card a side may play.
type PlayOption struct {
	Zone  Zone `json:"zone"`
	Index int  `json:"index"`
	Card  Card `json:"card"`
}

// HasSuit reports whether any card in cards is of suit s.
func HasSuit(cards []Card, s Suit) bool {
	for _, c := range cards {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// IsLegal applies the follow-suit rule over the acting side's visible cards.
// With no lead every card is legal; holding the lead suit forces it; being
// void allows any card, trump is never forced.
func IsLegal(card Card, lead Suit, visible []Card) bool {
	if lead == NoSuit {
		return true
	}
	if !HasSuit(visible, lead) {
		return true
	}
	return card.Suit == lead
}

// ValidPlays enumerates legal options, hand slots first then face-up slots,
// each in index order.
func ValidPlays(cards *PlayerCards, lead Suit) []PlayOption {
	visible := cards.Visible()
	var out []PlayOption
	for i, c := range cards.Hand {
		if !c.IsZero() && IsLegal(c, lead, visible) {
			out = append(out, PlayOption{Zone: ZoneHand, Index: i, Card: c})
		}
	}
	for i, c := range cards.FaceUp {
		if !c.IsZero() && IsLegal(c, lead, visible) {
			out = append(out, PlayOption{Zone: ZoneFaceUp, Index: i, Card: c})
		}
	}
	return out
}

// CheckPlay validates a play without applying it.
func CheckPlay(cards *PlayerCards, zone Zone, index int, lead Suit) (Card, error) {
	card, err := cards.Peek(zone, index)
	if err != nil {
		return Card{}, err
	}
	if !IsLegal(card, lead, cards.Visible()) {
		return Card{}, fmt.Errorf("%w: %s led, %s played", ErrMustFollowSuit, lead, card)
	}
	return card, nil
}

// Beats reports whether challenger wins against incumbent given the lead and
// trump suits.
func Beats(challenger, incumbent Card, lead, trump Suit) bool {
	cTrump := trump != NoSuit && challenger.Suit == trump
	iTrump := trump != NoSuit && incumbent.Suit == trump
	switch {
	case cTrump && !iTrump:
		return true
	case iTrump && !cTrump:
		return false
	case cTrump && iTrump:
		return challenger.Value() > incumbent.Value()
	case challenger.Suit == lead && incumbent.Suit == lead:
		return challenger.Value() > incumbent.Value()
	default:
		return challenger.Suit == lead && incumbent.Suit != lead
	}
}
