package floats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-math.MaxFloat64))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		name    string
		in      []float64
		lowest  float64
		highest float64
		ok      bool
	}{
		{name: "empty", in: nil},
		{name: "single", in: []float64{3}, lowest: 3, highest: 3, ok: true},
		{name: "mixed", in: []float64{10, 12, 8, 15}, lowest: 8, highest: 15, ok: true},
		{name: "nan first", in: []float64{math.NaN(), 5, 1}, lowest: 1, highest: 5, ok: true},
		{name: "inf ignored", in: []float64{math.Inf(1), 2, math.Inf(-1), 4}, lowest: 2, highest: 4, ok: true},
		{name: "only non-finite", in: []float64{math.NaN(), math.Inf(1)}},
		{name: "negative", in: []float64{-3, -1, -7}, lowest: -7, highest: -1, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lowest, highest, ok := MinMax(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.lowest, lowest)
			assert.Equal(t, tt.highest, highest)
		})
	}
}
