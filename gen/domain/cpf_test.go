package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/recheck/rng"
)

func TestCPFGeneratesValidUnmasked(t *testing.T) {
	r := rng.FromSeed(1)
	g := CPF(false)
	for i := 0; i < 50; i++ {
		v := g.Draw(r)
		require.Len(t, v, 11)
		assert.True(t, ValidCPF(v))
	}
}

func TestCPFGeneratesValidMasked(t *testing.T) {
	r := rng.FromSeed(2)
	g := CPF(true)
	for i := 0; i < 50; i++ {
		v := g.Draw(r)
		require.Len(t, v, 14)
		assert.True(t, ValidCPF(v))
	}
}

func TestCPFAnyProducesValidCPFs(t *testing.T) {
	r := rng.FromSeed(3)
	g := CPFAny()
	for i := 0; i < 50; i++ {
		assert.True(t, ValidCPF(g.Draw(r)))
	}
}

func TestMaskAndUnmaskRoundTrip(t *testing.T) {
	raw := "12345678909"
	masked := MaskCPF(raw)
	assert.Equal(t, "123.456.789-09", masked)
	assert.Equal(t, raw, UnmaskCPF(masked))
}

func TestValidCPFAcceptsKnownValidNumber(t *testing.T) {
	assert.True(t, ValidCPF("11144477735"))
}

func TestValidCPFRejectsAllSameDigits(t *testing.T) {
	assert.False(t, ValidCPF("11111111111"))
}

func TestValidCPFRejectsWrongVerifiers(t *testing.T) {
	assert.False(t, ValidCPF("12345678900"))
}

func TestCPFReducerShrinksTowardZeros(t *testing.T) {
	r := rng.FromSeed(4)
	g := CPF(false)
	sh := g.DrawShrinkable(r)

	current := sh.Value
	for {
		changed := sh.Reduce(&current, func(candidate string) bool {
			return ValidCPF(candidate)
		})
		if !changed {
			break
		}
	}

	assert.True(t, ValidCPF(current))
	// Every root digit but one is zeroed, and that one is decremented to
	// 1 (zeroing it too would make all nine digits the same).
	assert.Equal(t, 8, strings.Count(current[:9], "0"))
	assert.Equal(t, 1, strings.Count(current[:9], "1"))
}
