package peakbidask

import (
	"github.com/shopspring/decimal"

	"github.com/c9s/peaktrack/pkg/datatype/floats"
	"github.com/c9s/peaktrack/pkg/indicator/trailing"
)

// MaxActionableSpread is the exclusive upper bound of the spreads that are
// pushed into the processing window.
const MaxActionableSpread = 0.2

// Tracker follows the highest ask and the lowest bid seen in one price
// stream since the last round reset, and smooths the relative spread of the
// sampling window over recent recomputations.
//
// The peaks start from a zero baseline on every round: with positive prices
// peakAsk widens upward from zero but peakBid stays at zero.
type Tracker struct {
	*trailing.Engine

	peakAsk    float64
	peakBid    float64
	peakMid    float64
	peakSpread float64
}

func New(samplingLength, processingLength int) *Tracker {
	t := &Tracker{
		Engine: trailing.New(samplingLength, processingLength),
	}
	t.Bind(t)
	return t
}

func NewFromConfig(config Config) *Tracker {
	config.Defaults()
	return New(config.SamplingLength, config.ProcessingLength)
}

// Calculate updates the peak state from the sampling window and returns the
// window spread when it is actionable.
//
// mid and spread are derived from the window extremes, not from the running
// peaks.
func (t *Tracker) Calculate(samples floats.Slice) (float64, bool) {
	lowest, highest, ok := samples.MinMax()
	if !ok {
		return 0.0, false
	}

	if t.peakAsk < highest {
		t.peakAsk = highest
	}

	if lowest < t.peakBid {
		t.peakBid = lowest
	}

	t.peakMid = (highest - lowest) / 2
	t.peakSpread = (highest - lowest) / highest

	// negative prices give a negative spread, which is never actionable
	if t.peakSpread > 0.0 && t.peakSpread < MaxActionableSpread {
		return t.peakSpread, true
	}

	return 0.0, false
}

// CurrentPeakValue returns the latest unsmoothed peak state.
func (t *Tracker) CurrentPeakValue() (bid, ask, mid, spread float64) {
	return t.peakBid, t.peakAsk, t.peakMid, t.peakSpread
}

// PositionExitPriceLevel returns the bid and ask prices placed around the
// peak mid by the smoothed spread. Without a smoothed spread, or when the
// mid overflowed to an infinity, the raw peaks are returned.
//
// Floats are converted with decimal.NewFromFloat, which takes the shortest
// decimal representation that round-trips to the same float64. This differs
// from the exact binary expansion of Python's Decimal(float), e.g. 0.1 gives
// "0.1" here rather than "0.1000000000000000055511151231257827...".
func (t *Tracker) PositionExitPriceLevel() (bid, ask decimal.Decimal) {
	v, ok := t.CurrentValue()
	if !ok || v == 0.0 || !floats.IsFinite(v) || !floats.IsFinite(t.peakMid) {
		return decimal.NewFromFloat(t.peakBid), decimal.NewFromFloat(t.peakAsk)
	}

	lastPeakSpread := decimal.NewFromFloat(v)
	mid := decimal.NewFromFloat(t.peakMid)
	bid = mid.Mul(decimal.NewFromInt(1).Sub(lastPeakSpread))
	ask = mid.Mul(decimal.NewFromInt(1).Add(lastPeakSpread))
	return bid, ask
}

// NextRound resets the peaks and the mid after a trading round.
// The spread and both windows are kept.
func (t *Tracker) NextRound() {
	t.peakAsk = 0.0
	t.peakBid = 0.0
	t.peakMid = 0.0
}
