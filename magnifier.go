package pinchzoom

import "math"

// magnifierSteps is the size of the magnifier lookup table.
const magnifierSteps = 20

// MagnifierValue returns the extra zoom used when double-clicking a tall or
// narrow image with the given height-to-width ratio: the greatest table
// entry in [0, 20) that does not exceed ratio.
//
// ok is false when ratio is beyond the table (19 or more) or not a number;
// callers then use the default magnifier. Negative ratios map to 0.
func MagnifierValue(ratio float64) (n int, ok bool) {
	if math.IsNaN(ratio) {
		return 0, false
	}
	for i := 0; i < magnifierSteps; i++ {
		if float64(i) > ratio {
			return max(i-1, 0), true
		}
	}
	return 0, false
}

// Magnifier returns the zoom step for a double-click on an image with the
// given height-to-width ratio: MagnifierValue for images taller than
// tallRatio, 1 otherwise or when MagnifierValue has no entry.
func Magnifier(ratio, tallRatio float64) float64 {
	if ratio <= tallRatio {
		return 1
	}
	n, ok := MagnifierValue(ratio)
	if !ok || n < 1 {
		return 1
	}
	return float64(n)
}
