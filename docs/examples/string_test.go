// Package examples demonstrates how to use the recheck property-based
// testing library. These examples show various testing patterns and how
// the shrinking mechanism helps find minimal counterexamples when
// properties fail.
package examples

import (
	"strings"
	"testing"

	"github.com/lucaskalb/recheck/gen"
	"github.com/lucaskalb/recheck/prop"
)

// Test_String_WithinAlphabetAndSize verifies that StringOf only emits
// characters from its alphabet and lengths inside its size range.
func Test_String_WithinAlphabetAndSize(t *testing.T) {
	prop.Property(t, func(ctx *prop.Context) bool {
		s := prop.Generate(ctx, "s", gen.StringAlphaNum(gen.Size{Min: 0, Max: 32}))
		if len(s) > 32 {
			return false
		}
		for _, c := range s {
			if !strings.ContainsRune(gen.AlphabetAlphaNum, c) {
				return false
			}
		}
		return true
	})
}

// Test_String_ConcatLength checks that concatenation adds lengths, with
// both operands drawn independently.
func Test_String_ConcatLength(t *testing.T) {
	prop.Property(t, func(ctx *prop.Context) bool {
		a := prop.Generate(ctx, "a", gen.StringAlpha(gen.Size{Min: 0, Max: 16}))
		b := prop.Generate(ctx, "b", gen.StringDigits(gen.Size{Min: 0, Max: 16}))
		return len(a+b) == len(a)+len(b)
	})
}
