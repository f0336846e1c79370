// Package report renders benchmark results for the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dropbox/fibbench/bench"
	"github.com/dropbox/fibbench/math2/pstats"
)

type Printer struct {
	Out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{Out: out}
}

// FormatSpeedup renders a speedup ratio with two decimals.
func FormatSpeedup(ratio float64) string {
	return fmt.Sprintf("%.2f", ratio)
}

// FormatSeconds renders a duration in seconds with six decimals.
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%.6f", seconds)
}

func nameWidth(results []bench.Result) int {
	width := 0
	for _, r := range results {
		if len(r.Name) > width {
			width = len(r.Name)
		}
	}
	return width
}

// Print writes one line per result followed by the speedup of every result
// relative to the first one.
//
//	fib(35) over 5 runs:
//	 Go   result=9227465, avg=0.041234s
//	 C    result=9227465, avg=0.021456s
//	 Rust result=9227465, avg=0.020001s
//
//	Speedups: C ≈ 1.92×,  Rust ≈ 2.06×
func (p *Printer) Print(n int32, repeats int, results []bench.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nfib(%d) over %d runs:\n", n, repeats)
	width := nameWidth(results)
	for _, r := range results {
		fmt.Fprintf(
			&b,
			" %-*s result=%d, avg=%ss\n",
			width,
			r.Name,
			r.Value,
			FormatSeconds(r.MeanSeconds()))
	}

	if len(results) > 1 {
		speedups := make([]string, 0, len(results)-1)
		for _, r := range results[1:] {
			speedups = append(
				speedups,
				fmt.Sprintf(
					"%s ≈ %s×",
					r.Name,
					FormatSpeedup(bench.Speedup(results[0], r))))
		}
		fmt.Fprintf(&b, "\nSpeedups: %s\n", strings.Join(speedups, ",  "))
	}

	_, err := io.WriteString(p.Out, b.String())
	return err
}

// PrintSummary writes the per-call spread of one result.
func (p *Printer) PrintSummary(r bench.Result, s *pstats.PStats) error {
	_, err := fmt.Fprintf(
		p.Out,
		" %s: min=%ss p50=%ss p90=%ss max=%ss\n",
		r.Name,
		FormatSeconds(s.Min.Seconds()),
		FormatSeconds(s.P[50].Seconds()),
		FormatSeconds(s.P[90].Seconds()),
		FormatSeconds(s.Max.Seconds()))
	return err
}
