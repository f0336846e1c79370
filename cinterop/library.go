//go:build darwin || linux

package cinterop

import (
	"os"
	"strings"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/dropbox/fibbench/errors"
)

// Int32Func is a bound native function with the C signature
// int32_t fn(int32_t).
type Int32Func func(n int32) int32

// Library is an open handle on a shared library.  It must be closed by its
// owner once no bound function will be called again.
type Library struct {
	path string

	mu     sync.Mutex
	handle uintptr
}

// Open loads the shared library at path and resolves all of its symbols
// immediately, so a broken library fails here rather than on first call.
// Paths containing a separator are checked first so that a missing file
// surfaces as ENOENT (see IsMissingLibrary) rather than a loader string.
// Bare names are left to the loader's search path.
func Open(path string) (*Library, error) {
	if strings.ContainsRune(path, os.PathSeparator) {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, "cannot load shared library %s", path)
		}
	}

	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load shared library %s", path)
	}
	return &Library{path: path, handle: handle}, nil
}

func (l *Library) Path() string {
	return l.path
}

// BindInt32Func resolves symbol and returns it as a Go function taking and
// returning a 4-byte signed integer with the platform C calling convention.
func (l *Library) BindInt32Func(symbol string) (Int32Func, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handle == 0 {
		return nil, errors.Newf("shared library %s is closed", l.path)
	}

	sym, err := purego.Dlsym(l.handle, symbol)
	if err != nil {
		return nil, errors.Wrapf(
			err, "cannot resolve symbol %s in %s", symbol, l.path)
	}

	var fn func(int32) int32
	purego.RegisterFunc(&fn, sym)
	return fn, nil
}

// Close releases the handle.  Functions bound from the library must not be
// called afterwards.  Closing twice is a no-op.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	if err != nil {
		return errors.Wrapf(err, "cannot close shared library %s", l.path)
	}
	return nil
}
