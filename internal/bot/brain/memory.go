package brain

import (
	"trumpduel/internal/domain"
)

// CardStatus represents what the bot knows about a specific card.
type CardStatus int

const (
	StatusUnknown CardStatus = iota // Not yet seen on the table
	StatusPlayed                    // Already resolved in a trick
)

// Memory is the card counter: which of the 30 cards have left the game.
type Memory struct {
	// DeckStatus tracks all 30 cards, indexed like domain.NewDeck.
	DeckStatus [domain.DeckSize]CardStatus
}

// NewMemory initializes a fresh memory state.
func NewMemory() *Memory {
	return &Memory{}
}

// FromPlayed builds a memory primed with the round's played-card log.
func FromPlayed(played []domain.Card) *Memory {
	m := NewMemory()
	m.MarkPlayed(played)
	return m
}

// MarkPlayed records cards that have been played on the table.
func (m *Memory) MarkPlayed(cards []domain.Card) {
	for _, c := range cards {
		if idx, ok := cardToIndex(c); ok {
			m.DeckStatus[idx] = StatusPlayed
		}
	}
}

// IsPlayed returns true if the card is already out of the game.
func (m *Memory) IsPlayed(c domain.Card) bool {
	idx, ok := cardToIndex(c)
	return ok && m.DeckStatus[idx] == StatusPlayed
}

// RemainingInSuit lists the unplayed cards of a suit, lowest first.
func (m *Memory) RemainingInSuit(s domain.Suit) []domain.Card {
	var out []domain.Card
	for r := domain.Seven; r <= domain.Ace; r++ {
		c := domain.Card{Suit: s, Rank: r}
		if c.InDeck() && !m.IsPlayed(c) {
			out = append(out, c)
		}
	}
	return out
}

// IsHighestRemaining reports whether no unplayed card of c's suit outranks
// it. Cards still held by either side, the owner's included, count as
// unplayed.
func (m *Memory) IsHighestRemaining(c domain.Card) bool {
	remaining := m.RemainingInSuit(c.Suit)
	return len(remaining) == 0 || remaining[len(remaining)-1].Rank <= c.Rank
}

// cardToIndex converts a card to its position in domain.NewDeck.
// Suits hearts..spades hold ranks 8..A at 7*suit+rank-8; the sevens follow.
func cardToIndex(c domain.Card) (int, bool) {
	if !c.InDeck() {
		return 0, false
	}
	if c.Rank == domain.Seven {
		if c.Suit == domain.Hearts {
			return 28, true
		}
		return 29, true
	}
	return 7*(int(c.Suit)-int(domain.Hearts)) + int(c.Rank-domain.Eight), true
}
