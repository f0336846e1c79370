package stats

import (
	"sort"
	"strings"
	"sync"
)

// SampleFactory keeps every counter value and summary observation in memory,
// keyed by metric name and tags.  Metrics created twice with the same name
// and tags share state.
type SampleFactory struct {
	mu        sync.Mutex
	counters  map[string]*sampleCounter
	summaries map[string]*sampleSummary
}

func NewSampleFactory() *SampleFactory {
	return &SampleFactory{
		counters:  make(map[string]*sampleCounter),
		summaries: make(map[string]*sampleSummary),
	}
}

// MetricKey renders a metric name and its tags in a stable order, e.g.
// "calls{impl=Rust}".
func MetricKey(metric string, tags map[string]string) string {
	if len(tags) == 0 {
		return metric
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + tags[k]
	}
	return metric + "{" + strings.Join(parts, ",") + "}"
}

func (f *SampleFactory) NewCounter(
	metric string,
	tags map[string]string) CounterStat {

	key := MetricKey(metric, tags)

	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.counters[key]
	if !ok {
		c = &sampleCounter{}
		f.counters[key] = c
	}
	return c
}

func (f *SampleFactory) NewSummary(
	metric string,
	tags map[string]string) SummaryStat {

	key := MetricKey(metric, tags)

	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.summaries[key]
	if !ok {
		s = &sampleSummary{}
		f.summaries[key] = s
	}
	return s
}

// Counter returns the current value of a counter, or 0 if it was never
// created.
func (f *SampleFactory) Counter(metric string, tags map[string]string) float64 {
	f.mu.Lock()
	c, ok := f.counters[MetricKey(metric, tags)]
	f.mu.Unlock()
	if !ok {
		return 0
	}
	return c.value()
}

// Observations returns a copy of everything observed on a summary.
func (f *SampleFactory) Observations(
	metric string,
	tags map[string]string) []float64 {

	f.mu.Lock()
	s, ok := f.summaries[MetricKey(metric, tags)]
	f.mu.Unlock()
	if !ok {
		return nil
	}
	return s.values()
}

type sampleCounter struct {
	mu  sync.Mutex
	val float64
}

func (c *sampleCounter) Inc() {
	c.Add(1)
}

func (c *sampleCounter) Add(v float64) {
	c.mu.Lock()
	c.val += v
	c.mu.Unlock()
}

func (c *sampleCounter) value() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val
}

type sampleSummary struct {
	mu      sync.Mutex
	samples []float64
}

func (s *sampleSummary) Observe(v float64) {
	s.mu.Lock()
	s.samples = append(s.samples, v)
	s.mu.Unlock()
}

func (s *sampleSummary) values() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]float64, len(s.samples))
	copy(out, s.samples)
	return out
}
