// Package cinterop loads native shared libraries at runtime and binds their
// exported C functions as Go functions, without requiring cgo in the caller.
package cinterop

import (
	"syscall"

	"github.com/dropbox/fibbench/errors"
)

// IsMissingLibrary reports whether err, however deeply wrapped, was caused by
// a shared library file that does not exist.
func IsMissingLibrary(err error) bool {
	if err == nil {
		return false
	}
	return errors.IsError(err, syscall.ENOENT)
}

// Binding names one exported function to load.
type Binding struct {
	// Name the bound function is registered under, e.g. "Rust".
	Name string
	// Path of the shared library file.
	Path string
	// Exported symbol, e.g. "fib".
	Symbol string
}

type boundFunc struct {
	lib *Library
	fn  Int32Func
}

// Bindings owns the libraries opened by LoadBindings.
type Bindings struct {
	order []string
	funcs map[string]boundFunc
}

// LoadBindings opens every library and resolves every symbol.  A library
// shared by several bindings is opened once.  On failure all libraries opened
// so far are closed and the first error is returned.
func LoadBindings(wanted []Binding) (*Bindings, error) {
	b := &Bindings{
		funcs: make(map[string]boundFunc, len(wanted)),
	}
	libs := make(map[string]*Library)

	for _, want := range wanted {
		if _, dup := b.funcs[want.Name]; dup {
			b.closeLibs(libs)
			return nil, errors.Newf("duplicate binding name %s", want.Name)
		}

		lib, ok := libs[want.Path]
		if !ok {
			var err error
			lib, err = Open(want.Path)
			if err != nil {
				b.closeLibs(libs)
				return nil, errors.Wrapf(err, "loading %s binding", want.Name)
			}
			libs[want.Path] = lib
		}

		fn, err := lib.BindInt32Func(want.Symbol)
		if err != nil {
			b.closeLibs(libs)
			return nil, errors.Wrapf(err, "loading %s binding", want.Name)
		}

		b.order = append(b.order, want.Name)
		b.funcs[want.Name] = boundFunc{lib: lib, fn: fn}
	}
	return b, nil
}

func (b *Bindings) closeLibs(libs map[string]*Library) {
	for _, lib := range libs {
		_ = lib.Close()
	}
}

// Names returns binding names in load order.
func (b *Bindings) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Func returns the function registered under name.
func (b *Bindings) Func(name string) (Int32Func, bool) {
	bf, ok := b.funcs[name]
	return bf.fn, ok
}

// Close closes every library.  The first error is returned, but all libraries
// are closed regardless.
func (b *Bindings) Close() error {
	var firstErr error
	for _, name := range b.order {
		if err := b.funcs[name].lib.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
