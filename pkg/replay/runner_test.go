package replay

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/peaktrack/pkg/indicator/peakbidask"
	"github.com/c9s/peaktrack/pkg/style"
)

func loadTestSamples(t *testing.T) []Sample {
	samples, err := ReadSamplesFile("testdata/samples.csv")
	require.NoError(t, err)
	return samples
}

func TestRunner_Run(t *testing.T) {
	config, err := LoadConfig("testdata/replay.yaml")
	require.NoError(t, err)
	config.Symbol = "RUNNERTEST"

	runner := NewRunner(*config, nil)
	snapshots, err := runner.Run(context.Background(), loadTestSamples(t))
	require.NoError(t, err)
	require.Len(t, snapshots, 4)

	assert.Equal(t, []int{2, 4, 6, 8}, []int{snapshots[0].Index, snapshots[1].Index, snapshots[2].Index, snapshots[3].Index})
	assert.Equal(t, []int{0, 0, 1, 1}, []int{snapshots[0].Round, snapshots[1].Round, snapshots[2].Round, snapshots[3].Round})
	assert.Equal(t, 2, runner.Round())

	first := snapshots[0]
	assert.True(t, first.Reported)
	assert.Equal(t, 101.0, first.PeakAsk)
	assert.Equal(t, 0.0, first.PeakBid)
	assert.Equal(t, 0.5, first.PeakMid)
	assert.InDelta(t, 1.0/101.0, first.Value, 1e-12)
	assert.True(t, first.Ready)

	// round 1 starts from a zero ask again
	third := snapshots[2]
	assert.Equal(t, 102.0, third.PeakAsk)
	assert.Equal(t, 1.5, third.PeakMid)
	assert.InDelta(t, 3.0/102.0, third.PeakSpread, 1e-12)

	last := snapshots[3]
	assert.Equal(t, 2.0, last.PeakMid)
	assert.InDelta(t, 4.0/102.0, last.PeakSpread, 1e-12)

	expected := (2.0/101.0 + 3.0/102.0 + 4.0/102.0) / 3.0
	assert.InDelta(t, expected, last.Smoothed, 1e-12)

	// the round reset after the last sample zeroes the peaks but keeps the windows
	bid, ask, mid, spread := runner.Tracker().CurrentPeakValue()
	assert.Equal(t, []float64{0, 0, 0}, []float64{bid, ask, mid})
	assert.Equal(t, last.PeakSpread, spread)
	assert.Equal(t, 3, runner.Tracker().ProcessedValues().Length())

	s := decimal.NewFromFloat(last.Smoothed)
	two := decimal.NewFromInt(2)
	assert.True(t, last.ExitBid.Equal(two.Mul(decimal.NewFromInt(1).Sub(s))), last.ExitBid.String())
	assert.True(t, last.ExitAsk.Equal(two.Mul(decimal.NewFromInt(1).Add(s))), last.ExitAsk.String())

	assert.Equal(t, 102.0, testutil.ToFloat64(peakAskMetrics.WithLabelValues("RUNNERTEST")))
	assert.Equal(t, 2.0, testutil.ToFloat64(peakMidMetrics.WithLabelValues("RUNNERTEST")))
	assert.Equal(t, 4.0, testutil.ToFloat64(ticksMetrics.WithLabelValues("RUNNERTEST", "true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(roundsMetrics.WithLabelValues("RUNNERTEST")))
}

func TestRunner_WithoutRounds(t *testing.T) {
	tracker := peakbidask.New(10, 10)
	runner := NewRunner(Config{Symbol: "NOROUNDS"}, tracker)

	snapshots, err := runner.Run(context.Background(), []Sample{{Price: 10}, {Price: 15}, {Price: 8}, {Price: 15}})
	require.NoError(t, err)
	require.Len(t, snapshots, 4)
	assert.Equal(t, 0, runner.Round())

	last := snapshots[3]
	assert.False(t, last.Reported)
	assert.Equal(t, 15.0, last.PeakAsk)
	assert.Equal(t, 0.0, last.PeakBid)
	assert.Equal(t, 3.5, last.PeakMid)
	assert.False(t, last.Ready)
	assert.True(t, last.ExitBid.IsZero())
	assert.True(t, last.ExitAsk.Equal(decimal.NewFromInt(15)))

	assert.Equal(t, 4.0, testutil.ToFloat64(ticksMetrics.WithLabelValues("NOROUNDS", "false")))
}

func TestRunner_Continue(t *testing.T) {
	runner := NewRunner(Config{Symbol: "CONTINUE", RecomputeEvery: 3}, nil)

	snapshots, err := runner.Run(context.Background(), []Sample{{Price: 100}, {Price: 101}})
	require.NoError(t, err)
	assert.Empty(t, snapshots)

	snapshots, err = runner.Run(context.Background(), []Sample{{Price: 99}})
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, 3, snapshots[0].Index)
	assert.Equal(t, 101.0, snapshots[0].PeakAsk)
}

func TestRunner_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(Config{Symbol: "CANCEL"}, nil)
	snapshots, err := runner.Run(ctx, loadTestSamples(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, snapshots)
	assert.Equal(t, 0, runner.Tracker().Samples().Length())
}

func TestPrintSnapshots(t *testing.T) {
	runner := NewRunner(Config{Symbol: "PRINT"}, nil)
	snapshots, err := runner.Run(context.Background(), []Sample{{Price: 100}, {Price: 101}})
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSnapshots(&buf, "PRINT", snapshots, nil)
	out := buf.String()
	assert.Contains(t, out, "PRINT")
	assert.Contains(t, out, "peak ask")
	assert.Contains(t, out, "101")
	assert.Contains(t, out, style.ReportedMark)

	buf.Reset()
	PrintSnapshots(&buf, "PRINT", snapshots, style.NewDefaultTableStyle())
	assert.Contains(t, buf.String(), "101")
}
