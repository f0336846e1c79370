// Package pstats summarizes a set of duration samples.
package pstats

import (
	"math"
	"sort"
	"time"

	"github.com/dropbox/fibbench/errors"
)

type PStats struct {
	Min  time.Duration
	Max  time.Duration
	Mean time.Duration
	// percentile levels desired as integers: 75 = P75, 99 = P99, 999 = P99.9, etc.
	Pctls []int
	// percentiles values (reads nicely, eg, P[99] etc).
	P map[int]time.Duration
}

// NewPStats computes min, max, mean and the requested percentiles.  Samples
// are not modified.  Percentiles use the nearest-rank-below method, so P50 of
// an even sample count is the lower middle value.
func NewPStats(samples []time.Duration, pctls []int) (
	*PStats, error) {
	if len(samples) == 0 {
		return nil, errors.New("NewPStats: no samples provided.")
	}
	if len(pctls) < 1 {
		return nil, errors.New("NewPStats: empty pctls provided.")
	}
	if pctls[0] <= 0 {
		return nil, errors.New("NewPStats: invalid pctls provided.")
	}

	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	pstats := &PStats{
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Pctls: make([]int, len(pctls)),
		P:     make(map[int]time.Duration),
	}

	var total time.Duration
	for _, s := range sorted {
		total += s
	}
	pstats.Mean = total / time.Duration(len(sorted))

	copy(pstats.Pctls, pctls)
	n := len(sorted)
	prevPctl := 0
	for _, pctl := range pctls {
		if pctl <= prevPctl {
			return nil, errors.New("NewPStats: invalid pctls provided.")
		}
		var den float64
		if pctl < 100 {
			den = 100.0
		} else {
			den = float64(int(math.Pow(10, math.Ceil(math.Log10(float64(pctl))))))
		}
		si := int(math.Floor(float64(n-1) * float64(pctl) / den))
		pstats.P[pctl] = sorted[si]
		prevPctl = pctl
	}
	return pstats, nil
}
