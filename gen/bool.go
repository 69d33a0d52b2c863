package gen

import "github.com/lucaskalb/recheck/rng"

// Bool generates a uniformly distributed boolean, shrinking toward false.
func Bool() Generator[bool] {
	return From(
		func(r *rng.State) bool {
			return r.Rand().Intn(2) == 1
		},
		func(r *rng.State) Shrinkable[bool] {
			v := r.Rand().Intn(2) == 1
			return Shrinkable[bool]{Value: v, Reduce: boolReducer}
		},
	)
}

func boolReducer(current *bool, accept func(bool) bool) bool {
	if !*current {
		return false
	}
	if accept(false) {
		*current = false
		return true
	}
	return false
}
