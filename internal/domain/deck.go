package domain

import (
	"fmt"
	"log"
	"math/rand"
)

const (
	// DeckSize is the number of cards in play: ranks 8..A in every suit plus
	// the sevens of hearts and spades.
	DeckSize = 30
	// SlotsPerZone is the width of each hand, face-up and face-down zone.
	SlotsPerZone = 5
	// HandDealSize is the number of cards dealt before trump is chosen.
	HandDealSize = 2 * SlotsPerZone
)

// NewDeck returns the 30-card deck in canonical order: hearts, diamonds,
// clubs, spades from 8 to A, then 7♥ and 7♠.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for r := Eight; r <= Ace; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	deck = append(deck, Card{Suit: Hearts, Rank: Seven}, Card{Suit: Spades, Rank: Seven})
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	// Fisher-Yates from the tail.
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ValidateDeck checks that deck is exactly the 30 distinct cards of the game.
func ValidateDeck(deck []Card) error {
	if len(deck) != DeckSize {
		return fmt.Errorf("deck has %d cards, want %d", len(deck), DeckSize)
	}
	seen := make(map[Card]bool, DeckSize)
	for _, c := range deck {
		if !c.InDeck() {
			return fmt.Errorf("card %v is not part of the deck", c)
		}
		if seen[c] {
			return fmt.Errorf("card %s appears twice", c)
		}
		seen[c] = true
	}
	return nil
}

// DealInitial deals the five hand cards to each side, alternating player
// then computer, and returns the 20 cards held back until trump is chosen.
func DealInitial(deck []Card) (player, computer Slots, pending []Card) {
	if err := ValidateDeck(deck); err != nil {
		log.Panicf("deal initial: %v", err)
	}
	idx := 0
	for i := 0; i < SlotsPerZone; i++ {
		player[i] = deck[idx]
		computer[i] = deck[idx+1]
		idx += 2
	}
	pending = make([]Card, DeckSize-HandDealSize)
	copy(pending, deck[idx:])
	return player, computer, pending
}

// DealRemaining places the held-back cards: five face-down to each side
// alternating, then five face-up alternating.
func DealRemaining(pending []Card, player, computer *PlayerCards) {
	if len(pending) != DeckSize-HandDealSize {
		log.Panicf("deal remaining: %d pending cards, want %d", len(pending), DeckSize-HandDealSize)
	}
	if player.FaceDown.Count()+player.FaceUp.Count()+computer.FaceDown.Count()+computer.FaceUp.Count() != 0 {
		log.Panicf("deal remaining: table zones already dealt")
	}
	idx := 0
	for i := 0; i < SlotsPerZone; i++ {
		player.FaceDown[i] = pending[idx]
		computer.FaceDown[i] = pending[idx+1]
		idx += 2
	}
	for i := 0; i < SlotsPerZone; i++ {
		player.FaceUp[i] = pending[idx]
		computer.FaceUp[i] = pending[idx+1]
		idx += 2
	}
}
