package bench

import (
	"math"

	"github.com/dropbox/fibbench/errors"
	"github.com/dropbox/fibbench/math2/pstats"
)

// Input size used when none is configured.
const DefaultN = 35

// Implementation is a named Fibonacci function under test.
type Implementation struct {
	Name string
	Fn   Func
}

// Scenario is the fixed input shared by every implementation of a run.
type Scenario struct {
	N       int32
	Repeats int
}

func DefaultScenario() Scenario {
	return Scenario{N: DefaultN, Repeats: DefaultRepeats}
}

// Largest n whose Fibonacci number fits in an int32.
const MaxExactN = 46

// NewScenario validates user supplied values.  n must be representable as
// an int32 so that every implementation sees the same input; values above
// MaxExactN are accepted and wrap.
func NewScenario(n int, repeats int) (Scenario, error) {
	if n < 0 {
		return Scenario{}, errors.Newf("n must be non-negative, got %d", n)
	}
	if n > math.MaxInt32 {
		return Scenario{}, errors.Newf(
			"n must be at most %d, got %d", math.MaxInt32, n)
	}
	if repeats <= 0 {
		return Scenario{}, errors.Newf("runs must be positive, got %d", repeats)
	}
	return Scenario{N: int32(n), Repeats: repeats}, nil
}

// Run times each implementation in order with the same input.  The first
// implementation is the baseline for speedups.
func Run(timer *Timer, scenario Scenario, impls []Implementation) []Result {
	results := make([]Result, 0, len(impls))
	for _, impl := range impls {
		results = append(
			results,
			timer.Time(impl.Name, impl.Fn, scenario.N, scenario.Repeats))
	}
	return results
}

// Verify returns an error naming the first result whose value differs from
// the first (baseline) result.
func Verify(results []Result) error {
	if len(results) == 0 {
		return nil
	}
	baseline := results[0]
	for _, r := range results[1:] {
		if r.Value != baseline.Value {
			return errors.Newf(
				"%s returned %d but %s returned %d",
				r.Name,
				r.Value,
				baseline.Name,
				baseline.Value)
		}
	}
	return nil
}

// Percentiles reported by Summarize.
var SummaryPctls = []int{50, 90}

// Summarize computes min, max, mean and SummaryPctls over a result's
// per-call samples.
func Summarize(result Result) (*pstats.PStats, error) {
	s, err := pstats.NewPStats(result.Samples, SummaryPctls)
	if err != nil {
		return nil, errors.Wrapf(err, "summarizing %s", result.Name)
	}
	return s, nil
}
