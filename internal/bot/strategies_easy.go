package bot

import (
	"trumpduel/internal/bot/internal"
	"trumpduel/internal/domain"
)

// EasyBot plays at random some of the time and otherwise flips between its
// lowest and highest option.
type EasyBot struct {
	Rand   Random
	Tuning EasyTuning
}

func (b *EasyBot) ChoosePlay(_ *domain.Game, _ domain.Side, valid []domain.PlayOption) (domain.PlayOption, bool) {
	if len(valid) == 0 {
		return domain.PlayOption{}, false
	}
	if b.Rand.Float64() < b.Tuning.RandomChance {
		return valid[b.Rand.Intn(len(valid))], true
	}
	if b.Rand.Float64() < b.Tuning.LowChance {
		return internal.Lowest(valid)
	}
	return internal.Highest(valid)
}
