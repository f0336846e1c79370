// Package stats defines the metric interfaces the benchmark reports through.
// Implementations are obtained from a StatsFactory so callers never depend on
// a particular backend.
package stats

type CounterStat interface {
	Inc()
	Add(float64)
}

type SummaryStat interface {
	Observe(float64)
}

type StatsFactory interface {
	NewCounter(
		metric string,
		tags map[string]string) CounterStat

	NewSummary(
		metric string,
		tags map[string]string) SummaryStat
}
