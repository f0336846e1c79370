// Command fibnative prints fn(n) for an int32_t fn(int32_t) export of a
// shared library, by default fib from the Rust library:
//
//	fibnative [-lib ./libfibrust.so] [-symbol fib] [n]
//
// n defaults to 10 when absent or not an integer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dropbox/fibbench/cinterop"
	"github.com/dropbox/fibbench/errors"
)

const defaultN = 10

func parseN(args []string) int64 {
	if len(args) == 0 {
		return defaultN
	}
	n, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return defaultN
	}
	return n
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("fibnative", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lib := fs.String("lib", "./libfibrust.so",
		"Path of the shared library.")
	symbol := fs.String("symbol", "fib",
		"Exported int32_t fn(int32_t) to call.")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	n := parseN(fs.Args())
	if n < 0 {
		fmt.Fprintln(stderr, "n must be non-negative")
		return 1
	}

	l, err := cinterop.Open(*lib)
	if err != nil {
		fmt.Fprintln(stderr, errors.GetMessage(err))
		return 1
	}
	defer l.Close()

	fn, err := l.BindInt32Func(*symbol)
	if err != nil {
		fmt.Fprintln(stderr, errors.GetMessage(err))
		return 1
	}

	fmt.Fprintln(stdout, fn(int32(n)))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
