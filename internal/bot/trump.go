package bot

import (
	"trumpduel/internal/bot/internal"
	"trumpduel/internal/domain"
)

// ChooseTrump picks the suit with the best 2*honours + length over the hand
// cards. Face-up cards are not dealt yet when trump is named. Ties go to the
// earlier suit in enumeration order.
func ChooseTrump(hand []domain.Card) domain.Suit {
	best, bestScore := domain.Hearts, -1
	for _, p := range internal.ProfileHand(hand) {
		if score := p.Strength(); score > bestScore {
			best, bestScore = p.Suit, score
		}
	}
	return best
}
