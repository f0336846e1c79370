// Command fibbench times a naive recursive Fibonacci in Go against the same
// algorithm exported from a C and a Rust shared library, and prints the mean
// time of each along with the speedups over Go.
//
// Without flags it runs fib(35) five times per implementation, loading
// ./libfibc.so and ./libfibrust.so.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dropbox/fibbench/bench"
	"github.com/dropbox/fibbench/cinterop"
	"github.com/dropbox/fibbench/dlog"
	"github.com/dropbox/fibbench/errors"
	"github.com/dropbox/fibbench/fibonacci"
	"github.com/dropbox/fibbench/report"
	"github.com/dropbox/fibbench/stats"
)

const (
	baselineName = "Go"
	cName        = "C"
	rustName     = "Rust"
)

var (
	n = flag.Int("n", bench.DefaultN,
		"Fibonacci index computed by every implementation.")
	runs = flag.Int("runs", bench.DefaultRepeats,
		"Number of timed calls per implementation.")
	cLib = flag.String("c-lib", "./libfibc.so",
		"Path of the C shared library exporting int32_t Fib(int32_t).")
	rustLib = flag.String("rust-lib", "./libfibrust.so",
		"Path of the Rust shared library exporting int32_t fib(int32_t).")
	verify = flag.Bool("verify", false,
		"Exit with status 1 if the implementations disagree.")
	verbose = flag.Bool("verbose", false,
		"Also print min/p50/p90/max of the per-call timings.")
)

func usageError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	flag.Usage()
	os.Exit(2)
}

func main() {
	flag.Parse()
	defer dlog.Close()

	scenario, err := bench.NewScenario(*n, *runs)
	if err != nil {
		usageError("%s", errors.GetMessage(err))
	}
	if scenario.N > bench.MaxExactN {
		dlog.Warningf("fib(%d) overflows int32; results will wrap", scenario.N)
	}

	bindings, err := cinterop.LoadBindings([]cinterop.Binding{
		{Name: cName, Path: *cLib, Symbol: "Fib"},
		{Name: rustName, Path: *rustLib, Symbol: "fib"},
	})
	if err != nil {
		if cinterop.IsMissingLibrary(err) {
			dlog.Fatalf("%s\n(build the native libraries with `make libs`)", err)
		}
		dlog.Fatalf("%s", err)
	}
	defer bindings.Close()

	impls := []bench.Implementation{
		{Name: baselineName, Fn: fibonacci.Recursive},
	}
	for _, name := range bindings.Names() {
		fn, _ := bindings.Func(name)
		impls = append(impls, bench.Implementation{Name: name, Fn: bench.Func(fn)})
	}

	samples := stats.NewSampleFactory()
	timer := bench.NewTimer(bench.TimerParams{
		Stats: samples,
	})
	dlog.Infof("timing fib(%d), %d runs each", scenario.N, scenario.Repeats)
	results := bench.Run(timer, scenario, impls)

	printer := report.NewPrinter(os.Stdout)
	if err := printer.Print(scenario.N, scenario.Repeats, results); err != nil {
		dlog.Fatalf("cannot write report: %s", err)
	}

	if *verbose {
		fmt.Fprintln(os.Stdout)
		for _, r := range results {
			s, err := bench.Summarize(r)
			if err != nil {
				dlog.Errorf("%s", err)
				continue
			}
			if err := printer.PrintSummary(r, s); err != nil {
				dlog.Fatalf("cannot write report: %s", err)
			}
			dlog.Infof(
				"%s: %v calls",
				r.Name,
				samples.Counter("calls", map[string]string{"impl": r.Name}))
		}
	}

	if err := bench.Verify(results); err != nil {
		dlog.Warningf("implementations disagree: %s", errors.GetMessage(err))
		if *verify {
			_ = bindings.Close()
			dlog.Fatalf("verification failed")
		}
	}
}
