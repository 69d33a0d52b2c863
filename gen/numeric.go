package gen

import (
	"math"

	"github.com/lucaskalb/recheck/rng"
)

// signedInt is the type constraint for every signed numeric generator.
type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// unsignedInt is the type constraint for every unsigned numeric generator.
type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// UniformInt draws uniformly from [minInclusive, maxExclusive).
func UniformInt(minInclusive, maxExclusive int) Generator[int] {
	return uniformSigned(minInclusive, maxExclusive)
}

// UniformInt8 draws uniformly from [minInclusive, maxExclusive).
func UniformInt8(minInclusive, maxExclusive int8) Generator[int8] {
	return uniformSigned(minInclusive, maxExclusive)
}

// UniformInt16 draws uniformly from [minInclusive, maxExclusive).
func UniformInt16(minInclusive, maxExclusive int16) Generator[int16] {
	return uniformSigned(minInclusive, maxExclusive)
}

// UniformInt32 draws uniformly from [minInclusive, maxExclusive).
func UniformInt32(minInclusive, maxExclusive int32) Generator[int32] {
	return uniformSigned(minInclusive, maxExclusive)
}

// UniformInt64 draws uniformly from [minInclusive, maxExclusive).
func UniformInt64(minInclusive, maxExclusive int64) Generator[int64] {
	return uniformSigned(minInclusive, maxExclusive)
}

// UniformUint draws uniformly from [minInclusive, maxExclusive).
func UniformUint(minInclusive, maxExclusive uint) Generator[uint] {
	return uniformUnsigned(minInclusive, maxExclusive)
}

// UniformUint8 draws uniformly from [minInclusive, maxExclusive).
func UniformUint8(minInclusive, maxExclusive uint8) Generator[uint8] {
	return uniformUnsigned(minInclusive, maxExclusive)
}

// UniformUint16 draws uniformly from [minInclusive, maxExclusive).
func UniformUint16(minInclusive, maxExclusive uint16) Generator[uint16] {
	return uniformUnsigned(minInclusive, maxExclusive)
}

// UniformUint32 draws uniformly from [minInclusive, maxExclusive).
func UniformUint32(minInclusive, maxExclusive uint32) Generator[uint32] {
	return uniformUnsigned(minInclusive, maxExclusive)
}

// UniformUint64 draws uniformly from [minInclusive, maxExclusive).
func UniformUint64(minInclusive, maxExclusive uint64) Generator[uint64] {
	return uniformUnsigned(minInclusive, maxExclusive)
}

func uniformSigned[T signedInt](minInclusive, maxExclusive T) Generator[T] {
	return From(
		func(r *rng.State) T {
			return drawSigned(r, minInclusive, maxExclusive)
		},
		func(r *rng.State) Shrinkable[T] {
			v := drawSigned(r, minInclusive, maxExclusive)
			return Shrinkable[T]{Value: v, Reduce: signedReducer(minInclusive)}
		},
	)
}

func uniformUnsigned[T unsignedInt](minInclusive, maxExclusive T) Generator[T] {
	return From(
		func(r *rng.State) T {
			return drawUnsigned(r, minInclusive, maxExclusive)
		},
		func(r *rng.State) Shrinkable[T] {
			v := drawUnsigned(r, minInclusive, maxExclusive)
			return Shrinkable[T]{Value: v, Reduce: unsignedReducer(minInclusive)}
		},
	)
}

func drawSigned[T signedInt](r *rng.State, minInclusive, maxExclusive T) T {
	span := int64(maxExclusive) - int64(minInclusive)
	if span <= 0 {
		return minInclusive
	}
	return T(int64(minInclusive) + r.Rand().Int63n(span))
}

func drawUnsigned[T unsignedInt](r *rng.State, minInclusive, maxExclusive T) T {
	if maxExclusive <= minInclusive {
		return minInclusive
	}
	span := int64(maxExclusive) - int64(minInclusive)
	return T(int64(minInclusive) + r.Rand().Int63n(span))
}

// signedReducer runs the three-pass shrink schedule - logarithmic, then
// halving, then unit - each pass to a fixpoint before the next begins.
// Candidates that would land below minInclusive are not proposed, so
// every candidate stays inside the generator's domain.
func signedReducer[T signedInt](minInclusive T) Reducer[T] {
	return func(current *T, accept func(T) bool) bool {
		v := *current
		changed := false

		for v > 0 && v > minInclusive {
			candidate := T(int64(math.Log10(float64(v))))
			if candidate == v || candidate < minInclusive {
				break
			}
			if !accept(candidate) {
				break
			}
			v = candidate
			changed = true
		}

		for v > minInclusive {
			candidate := v / 2
			if candidate == v || candidate < minInclusive {
				break
			}
			if !accept(candidate) {
				break
			}
			v = candidate
			changed = true
		}

		for v > minInclusive {
			candidate := v - 1
			if !accept(candidate) {
				break
			}
			v = candidate
			changed = true
		}

		if changed {
			*current = v
		}
		return changed
	}
}

// unsignedReducer is the same three-pass schedule specialized for
// domains that cannot go below zero.
func unsignedReducer[T unsignedInt](minInclusive T) Reducer[T] {
	return func(current *T, accept func(T) bool) bool {
		v := *current
		changed := false

		for v > 0 && v > minInclusive {
			candidate := T(int64(math.Log10(float64(v))))
			if candidate == v || candidate < minInclusive {
				break
			}
			if !accept(candidate) {
				break
			}
			v = candidate
			changed = true
		}

		for v > minInclusive {
			candidate := v / 2
			if candidate == v || candidate < minInclusive {
				break
			}
			if !accept(candidate) {
				break
			}
			v = candidate
			changed = true
		}

		for v > minInclusive {
			candidate := v - 1
			if !accept(candidate) {
				break
			}
			v = candidate
			changed = true
		}

		if changed {
			*current = v
		}
		return changed
	}
}
