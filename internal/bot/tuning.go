package bot

// EasyTuning holds the easy bot's branch probabilities.
type EasyTuning struct {
	// RandomChance is the probability of playing a uniformly random option.
	RandomChance float64
	// LowChance is, otherwise, the probability of the lowest rather than the
	// highest option.
	LowChance float64
}

// DefaultTuning matches the relaxed opponent players learn against.
var DefaultTuning = EasyTuning{
	RandomChance: 0.4,
	LowChance:    0.5,
}
