// Package fibonacci holds the in-process baseline: a deliberately naive,
// unmemoized, doubly recursive Fibonacci.
package fibonacci

// Recursive returns fib(n) using int32 arithmetic, matching the signature of
// the exported native functions.  Results past fib(46) wrap.  Negative n is
// not guarded.
func Recursive(n int32) int32 {
	if n < 2 {
		return n
	}
	return Recursive(n-1) + Recursive(n-2)
}

// Compute is Recursive on machine ints.
func Compute(n int) int {
	if n < 2 {
		return n
	}
	return Compute(n-1) + Compute(n-2)
}
