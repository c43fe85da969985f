package model

import "math"

// SafeNumber returns v if it is a finite number, otherwise fallback.
// Corrupt stored data (NaN, Infinity) must never propagate into a quote:
// a partially entered room still renders a defined, zero-biased total.
func SafeNumber(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// NonNegative floors v at zero after guarding it against NaN/Inf.
// Negative areas and costs are physically meaningless.
func NonNegative(v float64) float64 {
	return math.Max(0, SafeNumber(v, 0))
}
