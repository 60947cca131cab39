package internal

import "trumpduel/internal/domain"

// Lowest returns the lowest-valued option. Ties keep the earliest option.
func Lowest(options []domain.PlayOption) (domain.PlayOption, bool) {
	if len(options) == 0 {
		return domain.PlayOption{}, false
	}
	best := options[0]
	for _, o := range options[1:] {
		if o.Card.Value() < best.Card.Value() {
			best = o
		}
	}
	return best, true
}

// Highest returns the highest-valued option. Ties keep the earliest option.
func Highest(options []domain.PlayOption) (domain.PlayOption, bool) {
	if len(options) == 0 {
		return domain.PlayOption{}, false
	}
	best := options[0]
	for _, o := range options[1:] {
		if o.Card.Value() > best.Card.Value() {
			best = o
		}
	}
	return best, true
}

// Filter keeps the options accepted by keep, preserving order.
func Filter(options []domain.PlayOption, keep func(domain.PlayOption) bool) []domain.PlayOption {
	var out []domain.PlayOption
	for _, o := range options {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

// OfSuit keeps options of suit s.
func OfSuit(options []domain.PlayOption, s domain.Suit) []domain.PlayOption {
	return Filter(options, func(o domain.PlayOption) bool { return o.Card.Suit == s })
}

// NotOfSuit drops options of suit s.
func NotOfSuit(options []domain.PlayOption, s domain.Suit) []domain.PlayOption {
	return Filter(options, func(o domain.PlayOption) bool { return o.Card.Suit != s })
}

// Above keeps options strictly higher than value.
func Above(options []domain.PlayOption, value int) []domain.PlayOption {
	return Filter(options, func(o domain.PlayOption) bool { return o.Card.Value() > value })
}
