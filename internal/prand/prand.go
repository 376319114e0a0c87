// Package prand provides the deterministic string-seeded pseudo-random
// primitives the pricing engine is built on. Reproducibility is the only
// requirement: identical inputs must always hash to the identical seed and
// float, so a repeated search returns byte-identical quotes. Nothing here is
// suitable for anything security-related.
package prand

import "math"

// Seed folds a list of strings into a non-negative 32-bit seed using a
// rolling polynomial hash (h = h*31 + char, truncated to 32 bits). Callers
// include the current calendar date as one of the parts; that is what makes
// quotes stable within a day but drift to fresh values the next day.
func Seed(parts ...string) int64 {
	var h int32
	for _, p := range parts {
		for _, r := range p {
			h = h*31 + int32(r)
		}
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// Float maps a seed to a deterministic value in [0,1) via the fractional
// part of sin(seed)*10000. Nearby seeds produce unrelated-looking values,
// which is all the "randomness" the generators need.
func Float(seed int64) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}
