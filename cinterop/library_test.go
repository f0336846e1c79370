//go:build linux

package cinterop

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	. "gopkg.in/check.v1"

	"github.com/dropbox/fibbench/errors"
	"github.com/dropbox/fibbench/fibonacci"
	. "github.com/dropbox/fibbench/gocheck2"
)

// libc exports int abs(int), which has the same ABI as the benchmark
// functions and is always present.
const libcPath = "libc.so.6"

func Test(t *testing.T) {
	TestingT(t)
}

type LibrarySuite struct{}

var _ = Suite(&LibrarySuite{})

func (s *LibrarySuite) TestBindLibcAbs(c *C) {
	lib, err := Open(libcPath)
	c.Assert(err, IsNil)
	defer lib.Close()

	c.Assert(lib.Path(), Equals, libcPath)

	abs, err := lib.BindInt32Func("abs")
	c.Assert(err, IsNil)
	c.Assert(abs(-5), Equals, int32(5))
	c.Assert(abs(7), Equals, int32(7))
	c.Assert(abs(0), Equals, int32(0))
}

func (s *LibrarySuite) TestOpenMissingFile(c *C) {
	path := filepath.Join(c.MkDir(), "libmissing.so")
	lib, err := Open(path)
	c.Assert(lib, IsNil)
	c.Assert(err, ErrorMatches, "(?s)cannot load shared library .*libmissing.so.*")
	c.Assert(IsMissingLibrary(err), IsTrue)
	c.Assert(errors.RootError(err), Equals, error(syscall.ENOENT))
}

func (s *LibrarySuite) TestOpenNotALibrary(c *C) {
	path := filepath.Join(c.MkDir(), "garbage.so")
	c.Assert(os.WriteFile(path, []byte("not an ELF file"), 0644), IsNil)

	_, err := Open(path)
	c.Assert(err, NotNil)
	c.Assert(IsMissingLibrary(err), IsFalse)
}

func (s *LibrarySuite) TestMissingSymbol(c *C) {
	lib, err := Open(libcPath)
	c.Assert(err, IsNil)
	defer lib.Close()

	fn, err := lib.BindInt32Func("definitely_not_a_fib_symbol")
	c.Assert(fn, IsNil)
	c.Assert(IsMissingLibrary(err), IsFalse)
	c.Assert(err, ErrorMatches, "(?s)cannot resolve symbol definitely_not_a_fib_symbol.*")
}

func (s *LibrarySuite) TestBindAfterClose(c *C) {
	lib, err := Open(libcPath)
	c.Assert(err, IsNil)
	c.Assert(lib.Close(), IsNil)
	c.Assert(lib.Close(), IsNil)

	_, err = lib.BindInt32Func("abs")
	c.Assert(err, ErrorMatches, "(?s).*is closed.*")
}

type BindingsSuite struct{}

var _ = Suite(&BindingsSuite{})

func (s *BindingsSuite) TestLoadBindings(c *C) {
	b, err := LoadBindings([]Binding{
		{Name: "abs", Path: libcPath, Symbol: "abs"},
		{Name: "abs2", Path: libcPath, Symbol: "abs"},
	})
	c.Assert(err, IsNil)
	defer b.Close()

	c.Assert(b.Names(), DeepEquals, []string{"abs", "abs2"})

	fn, ok := b.Func("abs2")
	c.Assert(ok, IsTrue)
	c.Assert(fn(-3), Equals, int32(3))

	_, ok = b.Func("Rust")
	c.Assert(ok, IsFalse)
}

func (s *BindingsSuite) TestLoadBindingsFailure(c *C) {
	missing := filepath.Join(c.MkDir(), "libfibrust.so")
	b, err := LoadBindings([]Binding{
		{Name: "abs", Path: libcPath, Symbol: "abs"},
		{Name: "Rust", Path: missing, Symbol: "fib"},
	})
	c.Assert(b, IsNil)
	c.Assert(err, ErrorMatches, "(?s)loading Rust binding.*libfibrust.so.*")
	c.Assert(IsMissingLibrary(err), IsTrue)

	_, err = LoadBindings([]Binding{
		{Name: "Go", Path: libcPath, Symbol: "Fib"},
	})
	c.Assert(err, ErrorMatches, "(?s)loading Go binding.*cannot resolve symbol Fib.*")
}

func (s *BindingsSuite) TestDuplicateName(c *C) {
	_, err := LoadBindings([]Binding{
		{Name: "abs", Path: libcPath, Symbol: "abs"},
		{Name: "abs", Path: libcPath, Symbol: "labs"},
	})
	c.Assert(err, ErrorMatches, "(?s)duplicate binding name abs.*")
}

// The benchmark libraries are build artifacts; point FIBBENCH_C_LIB and
// FIBBENCH_RUST_LIB at them (see the Makefile) to run this.
func (s *BindingsSuite) TestNativeFibonacciAgrees(c *C) {
	var wanted []Binding
	if path := os.Getenv("FIBBENCH_C_LIB"); path != "" {
		wanted = append(wanted, Binding{Name: "C", Path: path, Symbol: "Fib"})
	}
	if path := os.Getenv("FIBBENCH_RUST_LIB"); path != "" {
		wanted = append(wanted, Binding{Name: "Rust", Path: path, Symbol: "fib"})
	}
	if len(wanted) == 0 {
		c.Skip("FIBBENCH_C_LIB and FIBBENCH_RUST_LIB are unset")
	}

	b, err := LoadBindings(wanted)
	c.Assert(err, IsNil)
	defer b.Close()

	for _, name := range b.Names() {
		fn, _ := b.Func(name)
		for n := int32(0); n <= 20; n++ {
			c.Check(fn(n), Equals, fibonacci.Recursive(n),
				Commentf("%s fib(%d)", name, n))
		}
		c.Check(fn(10), Equals, int32(55))
		c.Check(fn(20), Equals, int32(6765))
	}
}
