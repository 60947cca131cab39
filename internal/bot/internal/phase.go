package internal

import "trumpduel/internal/domain"

// Schedule describes how a side stands against its trick target.
type Schedule struct {
	// Needed is target minus tricks already won; zero or negative once safe.
	Needed int
	// Remaining is the number of tricks left in the round including the
	// current one.
	Remaining int
}

// DetectSchedule derives side's schedule from the round state.
func DetectSchedule(game *domain.Game, side domain.Side) Schedule {
	if game == nil {
		return Schedule{Remaining: domain.TricksPerRound}
	}
	target := domain.Target(side, game.TrumpSelector)
	return Schedule{
		Needed:    target - game.Seat(side).TricksWon,
		Remaining: domain.TricksPerRound - game.TrickCount,
	}
}

// NeedsTricks reports whether the target is not yet reached.
func (s Schedule) NeedsTricks() bool {
	return s.Needed > 0
}

// Behind reports needed > remaining/2.
func (s Schedule) Behind() bool {
	return 2*s.Needed > s.Remaining
}

// Pressed reports needed >= remaining/2.
func (s Schedule) Pressed() bool {
	return 2*s.Needed >= s.Remaining
}

// Desperate reports needed > remaining-2: almost every trick left must be won.
func (s Schedule) Desperate() bool {
	return s.Needed > s.Remaining-2
}
