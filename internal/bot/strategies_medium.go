package bot

import (
	"trumpduel/internal/bot/brain"
	"trumpduel/internal/bot/internal"
	"trumpduel/internal/domain"
)

// MediumBot reasons over the opponent's face-up cards only.
type MediumBot struct{}

func (b *MediumBot) ChoosePlay(game *domain.Game, side domain.Side, valid []domain.PlayOption) (domain.PlayOption, bool) {
	if len(valid) == 0 {
		return domain.PlayOption{}, false
	}
	opp := brain.NewOpponentProfile(game, side)

	lead, following := game.Trick.Lead()
	if !following {
		return b.lead(opp, valid)
	}
	return b.follow(game, opp, lead.Card, valid)
}

func (b *MediumBot) lead(opp *brain.OpponentProfile, valid []domain.PlayOption) (domain.PlayOption, bool) {
	// An ace the opponent cannot answer with a visible ace of its own.
	for _, o := range valid {
		if o.Card.Rank == domain.Ace && !opp.Shows(domain.Card{Suit: o.Card.Suit, Rank: domain.Ace}) {
			return o, true
		}
	}

	// Low cards under the opponent's visible strength, or in suits it shows
	// nothing of.
	safe := internal.Filter(valid, func(o domain.PlayOption) bool {
		top := opp.MaxInSuit(o.Card.Suit)
		return o.Card.Value() < top || top == 0
	})
	if len(safe) > 0 {
		return internal.Lowest(safe)
	}
	return internal.Lowest(valid)
}

func (b *MediumBot) follow(game *domain.Game, opp *brain.OpponentProfile, led domain.Card, valid []domain.PlayOption) (domain.PlayOption, bool) {
	leadSuit := game.Trick.LeadSuit
	trump := game.Trump

	followers := internal.OfSuit(valid, leadSuit)
	if len(followers) > 0 {
		winners := internal.Above(followers, led.Value())
		safe := internal.Filter(winners, func(o domain.PlayOption) bool {
			return !opp.CanOvertake(o.Card)
		})
		if len(safe) > 0 {
			return internal.Lowest(safe)
		}
		return internal.Lowest(followers)
	}

	trumps := internal.OfSuit(valid, trump)
	if len(trumps) > 0 && led.Suit != trump {
		lowest, _ := internal.Lowest(trumps)
		if opp.MaxInSuit(trump) < lowest.Card.Value() {
			return lowest, true
		}
	}
	return internal.Lowest(valid)
}
