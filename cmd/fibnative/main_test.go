//go:build linux

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseN(t *testing.T) {
	assert.Equal(t, int64(10), parseN(nil))
	assert.Equal(t, int64(10), parseN([]string{"ten"}))
	assert.Equal(t, int64(10), parseN([]string{"4294967301"}))
	assert.Equal(t, int64(35), parseN([]string{"35", "ignored"}))
	assert.Equal(t, int64(-2), parseN([]string{"-2"}))
}

// libc's abs has the same int32_t fn(int32_t) shape as the fib exports.
func TestRunCallsSymbol(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run([]string{"-lib", "libc.so.6", "-symbol", "abs", "7"}, stdout, stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "7\n", stdout.String())

	stdout.Reset()
	code = run([]string{"-lib", "libc.so.6", "-symbol", "abs"}, stdout, stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "10\n", stdout.String())
}

func TestRunFailures(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	missing := filepath.Join(t.TempDir(), "libfibrust.so")
	assert.Equal(t, 1, run([]string{"-lib", missing}, stdout, stderr))
	assert.Contains(t, stderr.String(), "cannot load shared library")

	stderr.Reset()
	assert.Equal(t, 1, run([]string{"-lib", "libc.so.6", "-symbol", "fib"}, stdout, stderr))
	assert.Contains(t, stderr.String(), "cannot resolve symbol fib")

	stderr.Reset()
	assert.Equal(t, 1, run([]string{"-lib", "libc.so.6", "-symbol", "abs", "--", "-3"}, stdout, stderr))
	assert.Contains(t, stderr.String(), "n must be non-negative")

	assert.Equal(t, 2, run([]string{"-no-such-flag"}, stdout, stderr))
	assert.Empty(t, stdout.String())
}
