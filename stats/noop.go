package stats

var (
	NoOpStatsFactory StatsFactory
)

type noopCounter struct {
}

func (s noopCounter) Inc() {
}

func (s noopCounter) Add(v float64) {
}

type noopSummary struct {
}

func (s noopSummary) Observe(v float64) {
}

type noopStatsFactory struct {
}

func (f noopStatsFactory) NewCounter(
	metric string,
	tags map[string]string) CounterStat {

	return noopCounter{}
}

func (f noopStatsFactory) NewSummary(
	metric string,
	tags map[string]string) SummaryStat {

	return noopSummary{}
}

func init() {
	NoOpStatsFactory = noopStatsFactory{}
}
