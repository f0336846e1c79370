package fibonacci

import (
	"testing"

	. "gopkg.in/check.v1"
)

func Test(t *testing.T) {
	TestingT(t)
}

type FibonacciSuite struct{}

var _ = Suite(&FibonacciSuite{})

func (s *FibonacciSuite) TestKnownValues(c *C) {
	cases := []struct {
		n, want int
	}{
		{0, 0}, {1, 1}, {2, 1}, {5, 5}, {10, 55}, {20, 6765},
	}
	for _, tc := range cases {
		c.Check(Compute(tc.n), Equals, tc.want, Commentf("n=%d", tc.n))
		c.Check(Recursive(int32(tc.n)), Equals, int32(tc.want), Commentf("n=%d", tc.n))
	}
}

func (s *FibonacciSuite) TestRecurrence(c *C) {
	for n := int32(2); n <= 20; n++ {
		c.Assert(Recursive(n), Equals, Recursive(n-1)+Recursive(n-2))
		c.Assert(int(Recursive(n)), Equals, Compute(int(n)))
	}
}

func BenchmarkRecursive20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Recursive(20)
	}
}
