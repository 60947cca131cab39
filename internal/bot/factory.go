package bot

import (
	"fmt"
	"math/rand"
	"time"
)

// NewBrain creates a new AI brain based on the specified level. A nil rng is
// replaced by a time-seeded source.
func NewBrain(level Level, rng Random) (Brain, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch level {
	case LevelEasy:
		return &EasyBot{Rand: rng, Tuning: DefaultTuning}, nil
	case LevelMedium:
		return &MediumBot{}, nil
	case LevelHard:
		return &HardBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}
