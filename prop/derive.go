package prop

import (
	"github.com/lucaskalb/recheck/gen"
	"github.com/lucaskalb/recheck/record"
	"github.com/lucaskalb/recheck/rng"
)

// Derive builds a Generator from a user function that itself calls
// Generate one or more times against the *Context it's given. This is
// the compositional form that lets vectors, nested records, and other
// compound values shrink coherently while preserving the top-level
// predicate.
//
// It lives in package prop rather than gen because a Derive generator's
// draw_shrinkable needs to invoke the user function against a Context -
// and Context.Generate in turn needs gen.Generator - so putting Derive
// in gen would create an import cycle. prop already depends on gen, so
// Derive composes cleanly here and is re-exported from the root package.
func Derive[T any](f func(*Context) T) gen.Generator[T] {
	return gen.From(
		func(r *rng.State) T {
			return f(newTestingContext(r))
		},
		func(r *rng.State) gen.Shrinkable[T] {
			nested := record.New()
			ctx := newRecordingContext(r, nested)
			value := f(ctx)

			return gen.Shrinkable[T]{
				Value: value,
				Reduce: func(current *T, accept func(T) bool) bool {
					changed := false
					for {
						progress := false
						for i := 0; i < nested.Len(); i++ {
							e := nested.At(i)
							for {
								innerChanged := e.Shrink(func() bool {
									candidate := f(newShrinkingContext(nested))
									return accept(candidate)
								})
								if !innerChanged {
									break
								}
								progress = true
								changed = true
							}
						}
						if !progress {
							break
						}
					}
					if changed {
						*current = f(newShrinkingContext(nested))
					}
					return changed
				},
			}
		},
	)
}
