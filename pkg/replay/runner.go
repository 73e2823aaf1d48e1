package replay

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/c9s/peaktrack/pkg/indicator/peakbidask"
)

var log = logrus.WithField("component", "replay")

// Snapshot is the tracker state right after one recomputation tick.
type Snapshot struct {
	Index int
	Time  time.Time
	Price float64
	Round int

	// Reported is true when the tick pushed Value into the processing window.
	Reported bool
	Value    float64

	PeakBid    float64
	PeakAsk    float64
	PeakMid    float64
	PeakSpread float64

	// Smoothed is only meaningful when Ready is true.
	Smoothed float64
	Ready    bool

	ExitBid decimal.Decimal
	ExitAsk decimal.Decimal
}

// Runner plays a sample series through a tracker the way a strategy would:
// it adds every sample, recomputes every RecomputeEvery samples and starts a
// new round every RoundLength samples.
type Runner struct {
	Config Config

	tracker *peakbidask.Tracker
	round   int
	count   int
}

func NewRunner(config Config, tracker *peakbidask.Tracker) *Runner {
	config.Defaults()
	if tracker == nil {
		tracker = peakbidask.NewFromConfig(config.Tracker)
	}

	return &Runner{
		Config:  config,
		tracker: tracker,
	}
}

func (r *Runner) Tracker() *peakbidask.Tracker {
	return r.tracker
}

func (r *Runner) Round() int {
	return r.round
}

// Run feeds the samples and returns one snapshot per recomputation tick.
// Calling Run again continues from the current tracker and round state.
func (r *Runner) Run(ctx context.Context, samples []Sample) ([]Snapshot, error) {
	var snapshots []Snapshot
	for _, sample := range samples {
		select {
		case <-ctx.Done():
			return snapshots, ctx.Err()
		default:
		}

		r.count++
		r.tracker.AddSample(sample.Price)

		if r.count%r.Config.RecomputeEvery == 0 {
			snapshot := r.tick(sample)
			snapshots = append(snapshots, snapshot)
			updateSnapshotMetrics(r.Config.Symbol, snapshot)
		}

		if r.Config.RoundLength > 0 && r.count%r.Config.RoundLength == 0 {
			r.nextRound()
		}
	}

	return snapshots, nil
}

func (r *Runner) tick(sample Sample) Snapshot {
	value, reported := r.tracker.Recompute()
	bid, ask, mid, spread := r.tracker.CurrentPeakValue()
	smoothed, ready := r.tracker.CurrentValue()
	exitBid, exitAsk := r.tracker.PositionExitPriceLevel()

	snapshot := Snapshot{
		Index:      r.count,
		Time:       sample.Time,
		Price:      sample.Price,
		Round:      r.round,
		Reported:   reported,
		Value:      value,
		PeakBid:    bid,
		PeakAsk:    ask,
		PeakMid:    mid,
		PeakSpread: spread,
		Smoothed:   smoothed,
		Ready:      ready,
		ExitBid:    exitBid,
		ExitAsk:    exitAsk,
	}

	log.WithFields(logrus.Fields{
		"symbol":   r.Config.Symbol,
		"index":    snapshot.Index,
		"price":    snapshot.Price,
		"reported": reported,
	}).Debugf("peak bid %f ask %f mid %f spread %f, exit %s / %s",
		bid, ask, mid, spread, exitBid.String(), exitAsk.String())

	return snapshot
}

func (r *Runner) nextRound() {
	bid, ask, _, spread := r.tracker.CurrentPeakValue()
	log.Infof("%s round #%d finished at sample %d: peak bid %f ask %f spread %f",
		r.Config.Symbol, r.round, r.count, bid, ask, spread)

	r.tracker.NextRound()
	r.round++
	roundsMetrics.WithLabelValues(r.Config.Symbol).Inc()
}
