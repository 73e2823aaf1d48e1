package trailing

import (
	"math"

	"github.com/c9s/peaktrack/pkg/datatype/floats"
)

const (
	DefaultSamplingLength   = 200
	DefaultProcessingLength = 30
)

// Calculator derives one indicator value from a snapshot of the sampling
// window. It returns false when there is no value to report yet.
type Calculator interface {
	Calculate(samples floats.Slice) (float64, bool)
}

type CalculatorFunc func(samples floats.Slice) (float64, bool)

func (f CalculatorFunc) Calculate(samples floats.Slice) (float64, bool) {
	return f(samples)
}

// Aggregator reduces the processing window into the current value.
type Aggregator interface {
	Aggregate(values floats.Slice) (float64, bool)
}

type AggregatorFunc func(values floats.Slice) (float64, bool)

func (f AggregatorFunc) Aggregate(values floats.Slice) (float64, bool) {
	return f(values)
}

// Mean is the default aggregator: the arithmetic mean of the finite values.
var Mean = AggregatorFunc(func(values floats.Slice) (float64, bool) {
	mean := values.Mean()
	if math.IsNaN(mean) {
		return 0.0, false
	}

	return mean, true
})

// Engine keeps a bounded window of raw samples and a bounded window of the
// values derived from it. The smoothed current value is computed from the
// latter.
//
//go:generate callbackgen -type Engine
type Engine struct {
	sampling   *floats.Ring
	processing *floats.Ring

	calculator Calculator
	aggregator Aggregator

	updateCallbacks []func(v float64)
}

func New(samplingLength, processingLength int) *Engine {
	if samplingLength <= 0 {
		samplingLength = DefaultSamplingLength
	}

	if processingLength <= 0 {
		processingLength = DefaultProcessingLength
	}

	return &Engine{
		sampling:   floats.NewRing(samplingLength),
		processing: floats.NewRing(processingLength),
		aggregator: Mean,
	}
}

// Bind sets the calculator invoked on every recomputation.
func (e *Engine) Bind(calculator Calculator) {
	e.calculator = calculator
}

func (e *Engine) SetAggregator(aggregator Aggregator) {
	if aggregator == nil {
		aggregator = Mean
	}
	e.aggregator = aggregator
}

// AddSample appends a raw sample, evicting the oldest one when the window is full.
func (e *Engine) AddSample(v float64) {
	e.sampling.Push(v)
}

// Recompute runs the calculator over the current sampling window and pushes
// the result into the processing window when there is one.
func (e *Engine) Recompute() (float64, bool) {
	if e.calculator == nil {
		return 0.0, false
	}

	v, ok := e.calculator.Calculate(e.sampling.Slice())
	if !ok {
		return 0.0, false
	}

	e.processing.Push(v)
	e.EmitUpdate(v)
	return v, true
}

// Update adds the sample and recomputes right away.
func (e *Engine) Update(v float64) {
	e.AddSample(v)
	e.Recompute()
}

// CurrentValue returns the aggregate of the processing window.
// ok is false when nothing has been processed yet.
func (e *Engine) CurrentValue() (float64, bool) {
	if e.processing.Length() == 0 {
		return 0.0, false
	}

	return e.aggregator.Aggregate(e.processing.Slice())
}

func (e *Engine) Samples() floats.Slice {
	return e.sampling.Slice()
}

func (e *Engine) ProcessedValues() floats.Slice {
	return e.processing.Slice()
}

func (e *Engine) SamplingLength() int {
	return e.sampling.Cap()
}

func (e *Engine) ProcessingLength() int {
	return e.processing.Cap()
}

func (e *Engine) IsSamplingBufferFull() bool {
	return e.sampling.IsFull()
}

func (e *Engine) IsProcessingBufferFull() bool {
	return e.processing.IsFull()
}
