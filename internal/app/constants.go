package app

import (
	"time"

	"trumpduel/internal/config"
)

// DefaultLogLimit is how many log lines an engine keeps.
const DefaultLogLimit = 50

// Pacing holds the delays of the engine's timed steps. The zero value runs
// every step as soon as the scheduler is advanced.
type Pacing struct {
	ComputerMove  time.Duration
	TrickResolve  time.Duration
	AfterTrick    time.Duration
	ComputerTrump time.Duration
	DealRemaining time.Duration
}

// DefaultPacing gives the table its natural rhythm.
func DefaultPacing() Pacing {
	return PacingFrom(config.DefaultPacing())
}

// PacingFrom converts configured milliseconds.
func PacingFrom(c config.PacingConfig) Pacing {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return Pacing{
		ComputerMove:  ms(c.ComputerMoveMs),
		TrickResolve:  ms(c.TrickResolveMs),
		AfterTrick:    ms(c.AfterTrickMs),
		ComputerTrump: ms(c.ComputerTrumpMs),
		DealRemaining: ms(c.DealRemainingMs),
	}
}
