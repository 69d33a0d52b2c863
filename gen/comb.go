package gen

import "github.com/lucaskalb/recheck/rng"

// Const always returns value and never shrinks.
func Const[T any](value T) Generator[T] {
	return From(
		func(*rng.State) T { return value },
		func(*rng.State) Shrinkable[T] { return Shrinkable[T]{Value: value, Reduce: noShrink[T]()} },
	)
}

// OneOf picks uniformly among the supplied generators on every draw. Its
// reducer shrinks the picked value using the Reducer the pick happened
// to draw from - it never tries to switch which generator a value came
// from, only shrinks within it.
func OneOf[T any](gens ...Generator[T]) Generator[T] {
	if len(gens) == 0 {
		panic("gen: OneOf requires at least one generator")
	}
	return From(
		func(r *rng.State) T {
			idx := r.Rand().Intn(len(gens))
			return gens[idx].Draw(r)
		},
		func(r *rng.State) Shrinkable[T] {
			idx := r.Rand().Intn(len(gens))
			return gens[idx].DrawShrinkable(r)
		},
	)
}

// Map transforms every value an underlying generator produces. The
// mapped generator shrinks by shrinking the underlying value and
// re-applying f to each candidate before handing it to accept. Its
// reducer reports a change whenever the underlying value shrank, even
// when f maps the new underlying value to a U equal to the old one.
func Map[T, U any](g Generator[T], f func(T) U) Generator[U] {
	return From(
		func(r *rng.State) U {
			return f(g.Draw(r))
		},
		func(r *rng.State) Shrinkable[U] {
			inner := g.DrawShrinkable(r)
			return Shrinkable[U]{
				Value: f(inner.Value),
				Reduce: func(current *U, accept func(U) bool) bool {
					innerCurrent := inner.Value
					changed := inner.Reduce(&innerCurrent, func(candidate T) bool {
						return accept(f(candidate))
					})
					if changed {
						inner.Value = innerCurrent
						*current = f(innerCurrent)
					}
					return changed
				},
			}
		},
	)
}

// Filter restricts a generator to values satisfying pred, redrawing up
// to maxAttempts times per call before giving up and returning the last
// drawn value regardless.
func Filter[T any](g Generator[T], pred func(T) bool, maxAttempts int) Generator[T] {
	if maxAttempts <= 0 {
		maxAttempts = 100
	}
	return From(
		func(r *rng.State) T {
			var v T
			for i := 0; i < maxAttempts; i++ {
				v = g.Draw(r)
				if pred(v) {
					return v
				}
			}
			return v
		},
		func(r *rng.State) Shrinkable[T] {
			var sh Shrinkable[T]
			for i := 0; i < maxAttempts; i++ {
				sh = g.DrawShrinkable(r)
				if pred(sh.Value) {
					break
				}
			}
			innerReduce := sh.Reduce
			return Shrinkable[T]{
				Value: sh.Value,
				Reduce: func(current *T, accept func(T) bool) bool {
					return innerReduce(current, func(candidate T) bool {
						if !pred(candidate) {
							return false
						}
						return accept(candidate)
					})
				},
			}
		},
	)
}

// Bind sequences two generators: f receives the value drawn from g and
// returns the generator to draw the final value from. The bound
// generator's reducer only shrinks within the second generator; it does
// not attempt to vary the first draw.
func Bind[T, U any](g Generator[T], f func(T) Generator[U]) Generator[U] {
	return From(
		func(r *rng.State) U {
			t := g.Draw(r)
			return f(t).Draw(r)
		},
		func(r *rng.State) Shrinkable[U] {
			t := g.Draw(r)
			return f(t).DrawShrinkable(r)
		},
	)
}

// Placeholder draws T's zero value and never shrinks. Useful for
// stubbing out an unused slot in a derived generator during
// development.
func Placeholder[T any]() Generator[T] {
	var zero T
	return Const(zero)
}
