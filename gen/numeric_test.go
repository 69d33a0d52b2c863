package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/recheck/rng"
)

func TestUniformIntWithinBounds(t *testing.T) {
	r := rng.FromSeed(1)
	g := UniformInt(0, 100)

	for i := 0; i < 200; i++ {
		v := g.Draw(r)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 100)
	}
}

func TestUniformIntDegenerateRange(t *testing.T) {
	r := rng.FromSeed(1)
	g := UniformInt(5, 5)
	assert.Equal(t, 5, g.Draw(r))
}

func TestSignedReducerShrinksTowardMin(t *testing.T) {
	r := rng.FromSeed(99)
	g := UniformInt(1, 1_000)
	sh := g.DrawShrinkable(r)

	current := sh.Value
	for {
		changed := sh.Reduce(&current, func(candidate int) bool {
			// validator: keep shrinking as long as the candidate stays
			// strictly positive (mimics an outer predicate that fails
			// for any x > 0).
			return candidate > 0
		})
		if !changed {
			break
		}
	}

	require.Equal(t, 1, current)
}

func TestSignedReducerReportsNoChangeAtMin(t *testing.T) {
	var v int = 0
	changed := signedReducer(0)(&v, func(int) bool { return true })
	assert.False(t, changed)
	assert.Equal(t, 0, v)
}

func TestUnsignedReducerNeverGoesBelowMin(t *testing.T) {
	minVal := uint(10)
	v := uint(500)
	reducer := unsignedReducer(minVal)

	changed := reducer(&v, func(uint) bool { return true })
	assert.True(t, changed)
	assert.Equal(t, minVal, v)
}

func TestUniformInt64AndUint64(t *testing.T) {
	r := rng.FromSeed(42)
	ig := UniformInt64(-50, 50)
	ug := UniformUint64(0, 50)

	for i := 0; i < 50; i++ {
		iv := ig.Draw(r)
		assert.GreaterOrEqual(t, iv, int64(-50))
		assert.Less(t, iv, int64(50))

		uv := ug.Draw(r)
		assert.Less(t, uv, uint64(50))
	}
}
