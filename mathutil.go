package pinchzoom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// clamp restricts v to [lo, hi].
func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// finite reports whether v is neither NaN nor infinite.
func finite[T constraints.Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// safeDiv returns a/b, or 0 when b is zero or the result is not finite.
func safeDiv[T constraints.Float](a, b T) T {
	if b == 0 {
		return 0
	}
	q := a / b
	if !finite(q) {
		return 0
	}
	return q
}
