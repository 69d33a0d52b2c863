package gen

import (
	"github.com/lucaskalb/recheck/rng"
)

// Common alphabets for the string generator family.
const (
	AlphabetLower    = "abcdefghijklmnopqrstuvwxyz"
	AlphabetUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetAlpha    = AlphabetLower + AlphabetUpper
	AlphabetDigits   = "0123456789"
	AlphabetAlphaNum = AlphabetAlpha + AlphabetDigits
	AlphabetASCII    = AlphabetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~"
)

// StringOf generates strings of length chosen uniformly from
// [size.Min, size.Max], filled with a uniform sample over alphabet.
//
// Its reducer runs two passes: first truncate from the end while the
// predicate keeps failing, then tame each remaining character toward
// alphabet[0] while it keeps failing.
func StringOf(alphabet string, size Size) Generator[string] {
	if alphabet == "" {
		alphabet = AlphabetAlphaNum
	}
	if size.Max < size.Min {
		size.Max = size.Min
	}

	return From(
		func(r *rng.State) string {
			return drawString(r, alphabet, size)
		},
		func(r *rng.State) Shrinkable[string] {
			v := drawString(r, alphabet, size)
			return Shrinkable[string]{Value: v, Reduce: stringReducer(alphabet)}
		},
	)
}

// StringAlpha generates strings using only alphabetic characters.
func StringAlpha(size Size) Generator[string] { return StringOf(AlphabetAlpha, size) }

// StringAlphaNum generates strings using alphanumeric characters.
func StringAlphaNum(size Size) Generator[string] { return StringOf(AlphabetAlphaNum, size) }

// StringDigits generates strings using only digits.
func StringDigits(size Size) Generator[string] { return StringOf(AlphabetDigits, size) }

// StringASCII generates strings using all printable ASCII characters.
func StringASCII(size Size) Generator[string] { return StringOf(AlphabetASCII, size) }

func drawString(r *rng.State, alphabet string, size Size) string {
	n := size.Min
	if size.Max > size.Min {
		n += r.Rand().Intn(size.Max - size.Min + 1)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Rand().Intn(len(alphabet))]
	}
	return string(b)
}

func stringReducer(alphabet string) Reducer[string] {
	target := alphabet[0]
	return func(current *string, accept func(string) bool) bool {
		changed := false

		// pass 1: truncate from the end, one byte at a time.
		for len(*current) > 0 {
			candidate := (*current)[:len(*current)-1]
			if !accept(candidate) {
				break
			}
			*current = candidate
			changed = true
		}

		// pass 2: tame each remaining character toward alphabet[0],
		// left to right.
		runes := []byte(*current)
		for i := 0; i < len(runes); i++ {
			if runes[i] == target {
				continue
			}
			candidate := append([]byte(nil), runes...)
			candidate[i] = target
			if accept(string(candidate)) {
				*current = string(candidate)
				changed = true
				runes = candidate
			}
		}

		return changed
	}
}

// AlphaNumeric draws a single alphanumeric byte, shrinking toward the
// mid-range printable letter 'x'.
func AlphaNumeric() Generator[byte] {
	return From(
		func(r *rng.State) byte {
			return AlphabetAlphaNum[r.Rand().Intn(len(AlphabetAlphaNum))]
		},
		func(r *rng.State) Shrinkable[byte] {
			v := AlphabetAlphaNum[r.Rand().Intn(len(AlphabetAlphaNum))]
			return Shrinkable[byte]{Value: v, Reduce: alphaNumericReducer}
		},
	)
}

func alphaNumericReducer(current *byte, accept func(byte) bool) bool {
	v := *current
	changed := false

	for v > 'x' {
		candidate := v - 1
		if !accept(candidate) {
			break
		}
		v = candidate
		changed = true
	}

	for v < 'x' {
		candidate := v + 1
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

// StringFromExample produces mutations of seed suitable as fuzz inputs,
// via the byte mutator in mutate.go. No shrinker: these are example-based
// fuzz inputs, not reduced counterexamples.
func StringFromExample(seed string, maxLen int) Generator[string] {
	return From(
		func(r *rng.State) string {
			return mutateString(r, seed, maxLen)
		},
		func(r *rng.State) Shrinkable[string] {
			return Shrinkable[string]{Value: mutateString(r, seed, maxLen), Reduce: noShrink[string]()}
		},
	)
}
