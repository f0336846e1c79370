// Package bench times Fibonacci implementations and compares them.
package bench

import (
	"time"

	"github.com/dropbox/fibbench/stats"
	"github.com/dropbox/fibbench/time2"
)

// Number of calls per implementation when the caller passes a non-positive
// repeat count.
const DefaultRepeats = 5

const (
	callsMetric    = "calls"
	durationMetric = "duration_seconds"
	implTag        = "impl"
)

// Func computes fib(n).  Local and native implementations share this shape.
type Func func(n int32) int32

// Result of timing one implementation.
type Result struct {
	Name string
	// Value returned by the final call.
	Value int32
	// Arithmetic mean of Samples.
	Mean time.Duration
	// Elapsed wall-clock time of each call, in call order.
	Samples []time.Duration
}

func (r Result) MeanSeconds() float64 {
	return r.Mean.Seconds()
}

type TimerParams struct {
	// Clock used to measure each call.  Defaults to time2.DefaultClock.
	Clock time2.Clock

	// Receives a calls counter and a duration_seconds summary per
	// implementation, tagged impl=<name>.  Defaults to the no-op factory.
	Stats stats.StatsFactory
}

type Timer struct {
	clock time2.Clock
	stats stats.StatsFactory
}

func NewTimer(params TimerParams) *Timer {
	t := &Timer{
		clock: params.Clock,
		stats: params.Stats,
	}
	if t.clock == nil {
		t.clock = time2.DefaultClock
	}
	if t.stats == nil {
		t.stats = stats.NoOpStatsFactory
	}
	return t
}

// Time calls fn(n) repeats times in sequence and measures every call.  There
// is no warm-up and no outlier rejection; every call counts toward the mean.
func (t *Timer) Time(name string, fn Func, n int32, repeats int) Result {
	if repeats <= 0 {
		repeats = DefaultRepeats
	}

	tags := map[string]string{implTag: name}
	calls := t.stats.NewCounter(callsMetric, tags)
	durations := t.stats.NewSummary(durationMetric, tags)

	result := Result{
		Name:    name,
		Samples: make([]time.Duration, 0, repeats),
	}

	var total time.Duration
	for i := 0; i < repeats; i++ {
		start := t.clock.Now()
		result.Value = fn(n)
		elapsed := t.clock.Since(start)

		calls.Inc()
		durations.Observe(elapsed.Seconds())

		result.Samples = append(result.Samples, elapsed)
		total += elapsed
	}
	result.Mean = total / time.Duration(repeats)

	return result
}

// Speedup is baseline's mean divided by other's mean.  Values above 1 mean
// other is faster.  A zero mean for other yields +Inf.
func Speedup(baseline Result, other Result) float64 {
	return baseline.MeanSeconds() / other.MeanSeconds()
}
