// Package gen provides generators for property-based testing: each
// Generator[T] knows how to draw a fast, un-recorded value of T and how
// to draw a Shrinkable[T] whose attached Reducer can propose smaller
// candidates during a shrink fixpoint.
package gen

import "github.com/lucaskalb/recheck/rng"

// Size controls the scale and limits of generators that need a length
// bound. In this package the string generators (StringOf and its
// variants) take a Size; the numeric generators take an explicit
// [min, max) instead.
type Size struct {
	// Min is the minimum bound for generated values.
	Min int
	// Max is the maximum bound for generated values.
	Max int
}

// Reducer proposes smaller candidates for an already-drawn value of T.
// It is invoked once per Entry.Shrink call and is expected to run its
// entire pass schedule internally, repeatedly calling accept with
// successively "smaller" candidates under its own ordering.
//
// accept installs the candidate as the entry's current value, runs the
// driver's validator (the predicate re-run in Shrinking mode), and
// either keeps the swap (validator still fails -> returns true) or
// reverts it (validator now passes -> returns false). The Reducer must
// treat an accepted candidate as the new baseline for any further
// candidates it proposes in the same invocation.
//
// The Reducer returns whether the entry's value ultimately differs from
// the value it held when the Reducer was invoked.
type Reducer[T any] func(current *T, accept func(candidate T) bool) bool

// Shrinkable pairs a drawn value with the Reducer that can shrink it.
// The Reducer may close over whatever state the generator captured at
// draw time (bounds, alphabet, a nested Recording for derived
// generators).
type Shrinkable[T any] struct {
	Value  T
	Reduce Reducer[T]
}

// Generator is the contract every generator satisfies.
type Generator[T any] interface {
	// Draw produces a value with no bookkeeping. Used in Testing mode.
	Draw(r *rng.State) T

	// DrawShrinkable produces a value together with its Reducer. Used in
	// Recording mode.
	DrawShrinkable(r *rng.State) Shrinkable[T]
}

// funcGenerator adapts a pair of functions to the Generator interface.
type funcGenerator[T any] struct {
	draw           func(r *rng.State) T
	drawShrinkable func(r *rng.State) Shrinkable[T]
}

func (g funcGenerator[T]) Draw(r *rng.State) T { return g.draw(r) }

func (g funcGenerator[T]) DrawShrinkable(r *rng.State) Shrinkable[T] {
	return g.drawShrinkable(r)
}

// From builds a Generator from its two operations directly. Most of the
// generators in this package are built with From.
func From[T any](draw func(r *rng.State) T, drawShrinkable func(r *rng.State) Shrinkable[T]) Generator[T] {
	return funcGenerator[T]{draw: draw, drawShrinkable: drawShrinkable}
}

// noShrink builds a Reducer that never shrinks - used by generators with
// no sensible reduction (Const, Placeholder, StringFromExample).
func noShrink[T any]() Reducer[T] {
	return func(_ *T, _ func(T) bool) bool {
		return false
	}
}
