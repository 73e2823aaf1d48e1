package floats

import "math"

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MinMax returns the lowest and highest finite values of arr.
// ok is false when arr has no finite value.
func MinMax(arr []float64) (lowest, highest float64, ok bool) {
	for _, a := range arr {
		if !IsFinite(a) {
			continue
		}

		if !ok {
			lowest, highest, ok = a, a, true
			continue
		}

		if a < lowest {
			lowest = a
		}

		if a > highest {
			highest = a
		}
	}

	return lowest, highest, ok
}
