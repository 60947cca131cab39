package bot

import (
	"fmt"
	"strings"

	"trumpduel/internal/domain"
)

// Level selects a computer strategy.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Levels lists the difficulties in increasing strength.
var Levels = []Level{LevelEasy, LevelMedium, LevelHard}

// ParseLevel accepts a difficulty name in any case.
func ParseLevel(v string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(v)))
	for _, known := range Levels {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown bot level: %q", v)
}

// Brain is the interface that all bot strategies must implement. Brains read
// the game and never mutate it; ok is false only when valid is empty.
type Brain interface {
	ChoosePlay(game *domain.Game, side domain.Side, valid []domain.PlayOption) (domain.PlayOption, bool)
}

// Random is the subset of *rand.Rand the strategies draw from.
type Random interface {
	Float64() float64
	Intn(n int) int
}
