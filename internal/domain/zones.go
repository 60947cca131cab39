package domain

import "fmt"

// Side names one of the two seats at the table.
type Side string

const (
	NoSide       Side = ""
	SidePlayer   Side = "player"
	SideComputer Side = "computer"
)

// Opponent returns the other seat.
func (s Side) Opponent() Side {
	switch s {
	case SidePlayer:
		return SideComputer
	case SideComputer:
		return SidePlayer
	default:
		return NoSide
	}
}

// Zone names one of the three per-side card zones.
type Zone string

const (
	ZoneHand     Zone = "hand"
	ZoneFaceUp   Zone = "faceUp"
	ZoneFaceDown Zone = "faceDown"
)

// ParseZone accepts the playable zones. Face-down cards are never played
// directly.
func ParseZone(v string) (Zone, error) {
	switch Zone(v) {
	case ZoneHand, ZoneFaceUp:
		return Zone(v), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidZone, v)
	}
}

// Slots is a fixed-width zone. Emptied positions hold the zero Card.
type Slots [SlotsPerZone]Card

// Count returns the number of occupied slots.
func (s *Slots) Count() int {
	n := 0
	for _, c := range s {
		if !c.IsZero() {
			n++
		}
	}
	return n
}

// Cards returns the occupied slots in index order.
func (s *Slots) Cards() []Card {
	out := make([]Card, 0, SlotsPerZone)
	for _, c := range s {
		if !c.IsZero() {
			out = append(out, c)
		}
	}
	return out
}

// Occupancy reports, per index, whether a card is present.
func (s *Slots) Occupancy() []bool {
	out := make([]bool, SlotsPerZone)
	for i, c := range s {
		out[i] = !c.IsZero()
	}
	return out
}

// PlayerCards holds one side's three zones.
type PlayerCards struct {
	Hand     Slots
	FaceUp   Slots
	FaceDown Slots
}

// Visible returns the cards the owner may legally play from: remaining hand
// cards followed by remaining face-up cards.
func (p *PlayerCards) Visible() []Card {
	return append(p.Hand.Cards(), p.FaceUp.Cards()...)
}

// Playable returns the number of cards left in hand and face-up.
func (p *PlayerCards) Playable() int {
	return p.Hand.Count() + p.FaceUp.Count()
}

// All returns every card the side still holds, including face-down.
func (p *PlayerCards) All() []Card {
	return append(p.Visible(), p.FaceDown.Cards()...)
}

// Peek returns the card at zone/index without removing it.
func (p *PlayerCards) Peek(zone Zone, index int) (Card, error) {
	slots, err := p.zone(zone)
	if err != nil {
		return Card{}, err
	}
	if index < 0 || index >= SlotsPerZone {
		return Card{}, fmt.Errorf("%w: %d", ErrSlotOutOfRange, index)
	}
	if slots[index].IsZero() {
		return Card{}, fmt.Errorf("%w: %s[%d]", ErrEmptySlot, zone, index)
	}
	return slots[index], nil
}

// Take removes the card at zone/index. Taking from face-up promotes the
// face-down card at the same index; the promoted card is returned too.
func (p *PlayerCards) Take(zone Zone, index int) (card, revealed Card, err error) {
	card, err = p.Peek(zone, index)
	if err != nil {
		return Card{}, Card{}, err
	}
	switch zone {
	case ZoneHand:
		p.Hand[index] = Card{}
	case ZoneFaceUp:
		p.FaceUp[index] = p.FaceDown[index]
		revealed = p.FaceDown[index]
		p.FaceDown[index] = Card{}
	}
	return card, revealed, nil
}

// Reset empties all three zones.
func (p *PlayerCards) Reset() {
	*p = PlayerCards{}
}

func (p *PlayerCards) zone(zone Zone) (*Slots, error) {
	switch zone {
	case ZoneHand:
		return &p.Hand, nil
	case ZoneFaceUp:
		return &p.FaceUp, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidZone, zone)
	}
}
