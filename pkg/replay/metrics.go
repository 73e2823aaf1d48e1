package replay

import "github.com/prometheus/client_golang/prometheus"

var peakBidMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "peaktrack_peak_bid",
		Help: "lowest bid seen since the last round reset",
	}, []string{"symbol"})

var peakAskMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "peaktrack_peak_ask",
		Help: "highest ask seen since the last round reset",
	}, []string{"symbol"})

var peakMidMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "peaktrack_peak_mid",
		Help: "half the price range of the sampling window",
	}, []string{"symbol"})

var peakSpreadMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "peaktrack_peak_spread",
		Help: "price range of the sampling window relative to its highest price",
	}, []string{"symbol"})

var smoothedSpreadMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "peaktrack_smoothed_spread",
		Help: "mean of the recent actionable spreads",
	}, []string{"symbol"})

var exitBidPriceMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "peaktrack_exit_bid_price",
		Help: "bid price placed below the peak mid by the smoothed spread",
	}, []string{"symbol"})

var exitAskPriceMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "peaktrack_exit_ask_price",
		Help: "ask price placed above the peak mid by the smoothed spread",
	}, []string{"symbol"})

var ticksMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "peaktrack_ticks_total",
		Help: "recomputation ticks, labeled by whether a spread was reported",
	}, []string{"symbol", "reported"})

var roundsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "peaktrack_rounds_total",
		Help: "trading rounds closed, each one resetting the peaks",
	}, []string{"symbol"})

func updateSnapshotMetrics(symbol string, snapshot Snapshot) {
	labels := prometheus.Labels{"symbol": symbol}

	peakBidMetrics.With(labels).Set(snapshot.PeakBid)
	peakAskMetrics.With(labels).Set(snapshot.PeakAsk)
	peakMidMetrics.With(labels).Set(snapshot.PeakMid)
	peakSpreadMetrics.With(labels).Set(snapshot.PeakSpread)
	smoothedSpreadMetrics.With(labels).Set(snapshot.Smoothed)
	exitBidPriceMetrics.With(labels).Set(snapshot.ExitBid.InexactFloat64())
	exitAskPriceMetrics.With(labels).Set(snapshot.ExitAsk.InexactFloat64())

	reported := "false"
	if snapshot.Reported {
		reported = "true"
	}
	ticksMetrics.With(prometheus.Labels{"symbol": symbol, "reported": reported}).Inc()
}

var collectors = []prometheus.Collector{
	peakBidMetrics,
	peakAskMetrics,
	peakMidMetrics,
	peakSpreadMetrics,
	smoothedSpreadMetrics,
	exitBidPriceMetrics,
	exitAskPriceMetrics,
	ticksMetrics,
	roundsMetrics,
}

func init() {
	prometheus.MustRegister(collectors...)
}
