package utils

import (
	"math"
	"math/rand/v2"
)

// GetRandomNumber returns a uniformly distributed integer in [min, max].
// If max is less than min, min is returned.
func GetRandomNumber(min, max int) int {
	if max < min {
		return min
	}

	// max-min can exceed MaxInt, so the span is taken in uint64
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int(rand.Uint64())
	}

	return min + int(rand.Uint64N(span+1))
}
