package brain

import (
	"trumpduel/internal/domain"
)

// Estimator answers card-counting questions about a set of options.
type Estimator struct {
	Memory *Memory
}

// NewEstimator creates a new reasoning engine.
func NewEstimator(m *Memory) *Estimator {
	return &Estimator{Memory: m}
}

// Masters keeps the options that are the highest remaining card of their
// suit, preserving order.
func (e *Estimator) Masters(options []domain.PlayOption) []domain.PlayOption {
	var out []domain.PlayOption
	for _, o := range options {
		if e.Memory.IsHighestRemaining(o.Card) {
			out = append(out, o)
		}
	}
	return out
}
