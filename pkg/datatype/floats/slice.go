package floats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

type Slice []float64

func (s Slice) Length() int {
	return len(s)
}

// Finite returns a copy of s without NaN and infinite values.
func (s Slice) Finite() Slice {
	values := make(Slice, 0, len(s))
	for _, v := range s {
		if IsFinite(v) {
			values = append(values, v)
		}
	}
	return values
}

func (s Slice) MinMax() (lowest, highest float64, ok bool) {
	return MinMax(s)
}

// Mean returns the arithmetic mean of the finite values, NaN if there is none.
func (s Slice) Mean() float64 {
	finite := s.Finite()
	if len(finite) == 0 {
		return math.NaN()
	}

	return stat.Mean(finite, nil)
}
