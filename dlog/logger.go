// Package dlog is a small leveled wrapper around the standard logger that
// writes to a (optionally buffered) stderr console.
package dlog

import (
	"fmt"
	"log"
	"os"
)

var (
	std = log.New(bufferedConsole, "", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// Replaced in tests.
	exit = os.Exit
)

func output(level string, format string, args ...interface{}) {
	_ = std.Output(3, level+" "+fmt.Sprintf(format, args...))
}

func Infof(format string, args ...interface{}) {
	output("INFO", format, args...)
}

func Warningf(format string, args ...interface{}) {
	output("WARNING", format, args...)
}

func Errorf(format string, args ...interface{}) {
	output("ERROR", format, args...)
}

// Fatalf logs at fatal level, closes the console and exits with status 1.
func Fatalf(format string, args ...interface{}) {
	output("FATAL", format, args...)
	_ = Close()
	exit(1)
}

// Close flushes the console and stops its background flushing.  Call it
// before the process exits.
func Close() error {
	return bufferedConsole.Close()
}
