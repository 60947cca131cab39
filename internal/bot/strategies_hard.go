package bot

import (
	"trumpduel/internal/bot/brain"
	"trumpduel/internal/bot/internal"
	"trumpduel/internal/domain"
)

// HardBot counts every played card and paces itself against its trick
// target.
type HardBot struct{}

func (b *HardBot) ChoosePlay(game *domain.Game, side domain.Side, valid []domain.PlayOption) (domain.PlayOption, bool) {
	if len(valid) == 0 {
		return domain.PlayOption{}, false
	}
	est := brain.NewEstimator(brain.FromPlayed(game.PlayedCards))
	schedule := internal.DetectSchedule(game, side)

	lead, following := game.Trick.Lead()
	if !following {
		return b.lead(game, est, schedule, valid)
	}
	return b.follow(game, side, est, schedule, lead.Card, valid)
}

func (b *HardBot) lead(game *domain.Game, est *brain.Estimator, schedule internal.Schedule, valid []domain.PlayOption) (domain.PlayOption, bool) {
	trump := game.Trump

	masters := est.Masters(valid)
	if len(masters) > 0 && schedule.NeedsTricks() {
		// Cash side-suit masters before spending trump.
		if plain := internal.NotOfSuit(masters, trump); len(plain) > 0 {
			return plain[0], true
		}
		return masters[0], true
	}

	if schedule.Behind() {
		if high := est.Masters(internal.OfSuit(valid, trump)); len(high) > 0 {
			return internal.Highest(high)
		}
	}

	if plain := internal.NotOfSuit(valid, trump); len(plain) > 0 {
		return internal.Lowest(plain)
	}
	return internal.Lowest(valid)
}

func (b *HardBot) follow(game *domain.Game, side domain.Side, est *brain.Estimator, schedule internal.Schedule, led domain.Card, valid []domain.PlayOption) (domain.PlayOption, bool) {
	leadSuit := game.Trick.LeadSuit
	trump := game.Trump

	followers := internal.OfSuit(valid, leadSuit)
	if len(followers) > 0 {
		winners := internal.Above(followers, led.Value())
		if len(winners) == 0 {
			return internal.Lowest(followers)
		}
		if safe := est.Masters(winners); len(safe) > 0 {
			return internal.Lowest(safe)
		}
		if schedule.Desperate() {
			return internal.Lowest(winners)
		}
		return internal.Lowest(followers)
	}

	trumps := internal.OfSuit(valid, trump)
	if len(trumps) == 0 || led.Suit == trump {
		return internal.Lowest(valid)
	}

	if schedule.NeedsTricks() {
		if masters := est.Masters(trumps); len(masters) > 0 {
			return internal.Lowest(masters)
		}
		opp := brain.NewOpponentProfile(game, side)
		if !opp.ShowsSuit(trump) || schedule.Pressed() {
			return internal.Lowest(trumps)
		}
	}

	if plain := internal.NotOfSuit(valid, trump); len(plain) > 0 {
		return internal.Lowest(plain)
	}
	return internal.Lowest(trumps)
}
