package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricKey(t *testing.T) {
	assert.Equal(t, "calls", MetricKey("calls", nil))
	assert.Equal(t,
		"calls{impl=Rust,n=35}",
		MetricKey("calls", map[string]string{"n": "35", "impl": "Rust"}))
}

func TestSampleFactory(t *testing.T) {
	f := NewSampleFactory()
	tags := map[string]string{"impl": "Go"}

	f.NewCounter("calls", tags).Inc()
	f.NewCounter("calls", tags).Add(2)
	assert.Equal(t, 3.0, f.Counter("calls", tags))
	assert.Equal(t, 0.0, f.Counter("calls", map[string]string{"impl": "Rust"}))

	s := f.NewSummary("duration_seconds", tags)
	s.Observe(0.5)
	s.Observe(0.25)
	assert.Equal(t, []float64{0.5, 0.25}, f.Observations("duration_seconds", tags))
	assert.Nil(t, f.Observations("duration_seconds", nil))
}

func TestNoOpFactory(t *testing.T) {
	// Must accept metrics without recording anything or panicking.
	NoOpStatsFactory.NewCounter("calls", nil).Inc()
	NoOpStatsFactory.NewSummary("duration_seconds", nil).Observe(1)
}
