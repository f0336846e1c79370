//go:build !darwin && !linux

package cinterop

import (
	"runtime"

	"github.com/dropbox/fibbench/errors"
)

// Int32Func is a bound native function with the C signature
// int32_t fn(int32_t).
type Int32Func func(n int32) int32

// Library is unavailable on this platform.  No value is ever returned by
// Open; the methods exist so callers compile everywhere.
type Library struct {
	path string
}

// Open always fails: purego cannot dlopen on this platform.
func Open(path string) (*Library, error) {
	return nil, unsupported(path)
}

func unsupported(path string) error {
	return errors.Newf(
		"cannot load shared library %s: dynamic loading is not supported on %s",
		path,
		runtime.GOOS)
}

// Path returns the path the library was requested with.
func (l *Library) Path() string {
	return l.path
}

// BindInt32Func always fails with the same error as Open.
func (l *Library) BindInt32Func(symbol string) (Int32Func, error) {
	return nil, unsupported(l.path)
}

// Close is a no-op.
func (l *Library) Close() error {
	return nil
}
