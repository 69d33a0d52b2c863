// Package examples demonstrates how to use the recheck property-based
// testing library. These examples show various testing patterns and how
// the shrinking mechanism helps find minimal counterexamples when
// properties fail.
package examples

import (
	"testing"

	"github.com/lucaskalb/recheck/gen"
	"github.com/lucaskalb/recheck/prop"
)

// Test_Int_AdditionCommutes checks commutativity of integer addition:
// drawing the operands in either role yields the same sum.
func Test_Int_AdditionCommutes(t *testing.T) {
	prop.Property(t, func(ctx *prop.Context) bool {
		x := prop.Generate(ctx, "x", gen.UniformInt64(0, 10_000))
		y := prop.Generate(ctx, "y", gen.UniformInt64(0, 10_000))
		return x+y == y+x
	})
}

// Test_Slice_SumIsOrderIndependent builds a variable-length vector with
// a derived generator and checks that summing it forward and backward
// agree. Derived generators are the compositional form: the vector's
// length and every element are separate named draws, so a failing
// vector would shrink elementwise.
func Test_Slice_SumIsOrderIndependent(t *testing.T) {
	vec := prop.Derive(func(ctx *prop.Context) []int {
		n := prop.Generate(ctx, "len", gen.UniformInt(0, 16))
		out := make([]int, n)
		for i := range out {
			out[i] = prop.Generate(ctx, "elem", gen.UniformInt(0, 200))
		}
		return out
	})

	prop.Property(t, func(ctx *prop.Context) bool {
		xs := prop.Generate(ctx, "xs", vec)
		forward := 0
		for _, x := range xs {
			forward += x
		}
		backward := 0
		for i := len(xs) - 1; i >= 0; i-- {
			backward += xs[i]
		}
		return forward == backward
	})
}
