// Package recheck provides property-based testing functionality for Go.
// It allows you to test properties of your code by generating random test
// cases, recording them, and automatically shrinking counterexamples when
// failures are found.
//
// This is the main entry point for the recheck library. It re-exports the
// most commonly used types and functions from the internal packages to
// provide a clean and simple API for users.
//
// Example usage:
//
//	import "github.com/lucaskalb/recheck"
//
//	func TestAdditionIdentity(t *testing.T) {
//		recheck.Property(t, func(ctx *recheck.Context) bool {
//			x := recheck.Generate(ctx, "x", recheck.UniformInt(0, 1_000))
//			return x+0 == x
//		})
//	}
package recheck

import (
	"testing"

	"github.com/lucaskalb/recheck/gen"
	"github.com/lucaskalb/recheck/gen/domain"
	"github.com/lucaskalb/recheck/prop"
	"github.com/lucaskalb/recheck/quick"
)

// =============================================================================
// PROPERTY-BASED TESTING
// =============================================================================

// Config holds the configuration for property-based testing.
type Config = prop.Config

// Default returns a default configuration for property-based testing.
// This configuration uses sensible defaults and can be customized via
// command-line flags or by modifying the returned Config struct.
func Default() Config {
	return prop.Default()
}

// Context is the object handed to a predicate; it routes every Generate
// call to whichever of the three modes the driver is currently running.
type Context = prop.Context

// Report is the outcome of a Run.
type Report = prop.Report

// UsageError signals a predicate that violates the Generate contract:
// non-determinism, or a recording replay mismatch.
type UsageError = prop.UsageError

// Generate is the only operation available inside a predicate.
func Generate[T any](c *Context, name string, g gen.Generator[T]) T {
	return prop.Generate(c, name, g)
}

// Run executes predicate under cfg directly, outside of a *testing.T,
// returning a Report. A non-deterministic predicate is reported through
// Report.UsageErr; a recording replay mismatch panics with a
// *UsageError.
func Run(cfg Config, predicate func(*Context) bool) Report {
	return prop.Run(cfg, predicate)
}

// Property runs predicate under the default Config inside a *testing.T,
// failing t on the first falsified case.
func Property(t *testing.T, predicate func(*Context) bool) {
	t.Helper()
	prop.Property(t, predicate)
}

// PropertyWith runs predicate under cfg inside a *testing.T.
func PropertyWith(t *testing.T, cfg Config, predicate func(*Context) bool) {
	t.Helper()
	prop.PropertyWith(t, cfg, predicate)
}

// Derive builds a Generator from a user function that composes further
// Generate calls - the compositional form for vectors, records, and
// other compound values.
func Derive[T any](f func(*Context) T) gen.Generator[T] {
	return prop.Derive(f)
}

// =============================================================================
// GENERATORS
// =============================================================================

// Generator is the interface that all generators must implement.
type Generator[T any] = gen.Generator[T]

// Size controls the scale and limits of generators that need a length
// or magnitude bound.
type Size = gen.Size

// UniformInt draws uniformly from [minInclusive, maxExclusive).
func UniformInt(minInclusive, maxExclusive int) gen.Generator[int] {
	return gen.UniformInt(minInclusive, maxExclusive)
}

// UniformInt8 draws uniformly from [minInclusive, maxExclusive).
func UniformInt8(minInclusive, maxExclusive int8) gen.Generator[int8] {
	return gen.UniformInt8(minInclusive, maxExclusive)
}

// UniformInt16 draws uniformly from [minInclusive, maxExclusive).
func UniformInt16(minInclusive, maxExclusive int16) gen.Generator[int16] {
	return gen.UniformInt16(minInclusive, maxExclusive)
}

// UniformInt32 draws uniformly from [minInclusive, maxExclusive).
func UniformInt32(minInclusive, maxExclusive int32) gen.Generator[int32] {
	return gen.UniformInt32(minInclusive, maxExclusive)
}

// UniformInt64 draws uniformly from [minInclusive, maxExclusive).
func UniformInt64(minInclusive, maxExclusive int64) gen.Generator[int64] {
	return gen.UniformInt64(minInclusive, maxExclusive)
}

// UniformUint draws uniformly from [minInclusive, maxExclusive).
func UniformUint(minInclusive, maxExclusive uint) gen.Generator[uint] {
	return gen.UniformUint(minInclusive, maxExclusive)
}

// UniformUint8 draws uniformly from [minInclusive, maxExclusive).
func UniformUint8(minInclusive, maxExclusive uint8) gen.Generator[uint8] {
	return gen.UniformUint8(minInclusive, maxExclusive)
}

// UniformUint16 draws uniformly from [minInclusive, maxExclusive).
func UniformUint16(minInclusive, maxExclusive uint16) gen.Generator[uint16] {
	return gen.UniformUint16(minInclusive, maxExclusive)
}

// UniformUint32 draws uniformly from [minInclusive, maxExclusive).
func UniformUint32(minInclusive, maxExclusive uint32) gen.Generator[uint32] {
	return gen.UniformUint32(minInclusive, maxExclusive)
}

// UniformUint64 draws uniformly from [minInclusive, maxExclusive).
func UniformUint64(minInclusive, maxExclusive uint64) gen.Generator[uint64] {
	return gen.UniformUint64(minInclusive, maxExclusive)
}

// StringOf generates strings of a size range drawn from alphabet.
func StringOf(alphabet string, size Size) gen.Generator[string] {
	return gen.StringOf(alphabet, size)
}

// StringAlpha generates strings using only alphabetic characters.
func StringAlpha(size Size) gen.Generator[string] { return gen.StringAlpha(size) }

// StringAlphaNum generates strings using alphanumeric characters.
func StringAlphaNum(size Size) gen.Generator[string] { return gen.StringAlphaNum(size) }

// StringDigits generates strings using only digits.
func StringDigits(size Size) gen.Generator[string] { return gen.StringDigits(size) }

// StringASCII generates strings using all printable ASCII characters.
func StringASCII(size Size) gen.Generator[string] { return gen.StringASCII(size) }

// AlphaNumeric draws a single alphanumeric byte, shrinking toward 'x'.
func AlphaNumeric() gen.Generator[byte] { return gen.AlphaNumeric() }

// StringFromExample produces mutations of seed suitable as fuzz inputs.
func StringFromExample(seed string, maxLen int) gen.Generator[string] {
	return gen.StringFromExample(seed, maxLen)
}

// Bool generates random boolean values, shrinking toward false.
func Bool() gen.Generator[bool] { return gen.Bool() }

// Placeholder draws T's zero value and never shrinks.
func Placeholder[T any]() gen.Generator[T] { return gen.Placeholder[T]() }

// =============================================================================
// COMBINATOR GENERATORS
// =============================================================================

// OneOf picks uniformly among the supplied generators on every draw.
func OneOf[T any](generators ...gen.Generator[T]) gen.Generator[T] {
	return gen.OneOf(generators...)
}

// Const always returns value and never shrinks.
func Const[T any](v T) gen.Generator[T] { return gen.Const(v) }

// Map transforms every value an underlying generator produces.
func Map[A, B any](ga gen.Generator[A], f func(A) B) gen.Generator[B] {
	return gen.Map(ga, f)
}

// Filter restricts a generator to values satisfying pred.
func Filter[T any](g gen.Generator[T], pred func(T) bool, maxAttempts int) gen.Generator[T] {
	return gen.Filter(g, pred, maxAttempts)
}

// Bind sequences two generators, the second depending on the first's draw.
func Bind[A, B any](ga gen.Generator[A], f func(A) gen.Generator[B]) gen.Generator[B] {
	return gen.Bind(ga, f)
}

// =============================================================================
// DOMAIN-SPECIFIC GENERATORS
// =============================================================================

// CPF generates valid Brazilian CPF (Cadastro de Pessoas Fisicas) numbers.
// If masked is true, returns formatted CPF (e.g., "123.456.789-01").
// If masked is false, returns raw CPF (e.g., "12345678901").
func CPF(masked bool) gen.Generator[string] { return domain.CPF(masked) }

// CPFAny generates CPF with random masking (50/50 chance).
func CPFAny() gen.Generator[string] { return domain.CPFAny() }

// ValidCPF validates if a string is a valid CPF.
func ValidCPF(s string) bool { return domain.ValidCPF(s) }

// MaskCPF formats a raw CPF with dots and dashes.
func MaskCPF(raw string) string { return domain.MaskCPF(raw) }

// UnmaskCPF removes formatting from a CPF string.
func UnmaskCPF(s string) string { return domain.UnmaskCPF(s) }

// =============================================================================
// TESTING UTILITIES
// =============================================================================

// Equal compares two values of the same type and fails the test if they
// are not equal. It uses go-cmp for deep comparison and provides a
// detailed diff when values differ.
func Equal[T any](t *testing.T, got, want T) {
	quick.Equal(t, got, want)
}
