// Package domain provides domain-specific generators built on top of
// gen's core contract, starting with Brazilian CPF numbers.
package domain

import (
	"errors"
	"strings"
	"unicode"

	"github.com/lucaskalb/recheck/gen"
	"github.com/lucaskalb/recheck/rng"
)

// CPF generates valid CPF numbers; masked controls the format.
func CPF(masked bool) gen.Generator[string] {
	return gen.From(
		func(r *rng.State) string {
			return generateCPF(r, masked)
		},
		func(r *rng.State) gen.Shrinkable[string] {
			cur := generateCPF(r, masked)
			return gen.Shrinkable[string]{Value: cur, Reduce: cpfReducer}
		},
	)
}

// CPFAny generates CPF numbers with 50/50 chance of being masked or unmasked.
func CPFAny() gen.Generator[string] {
	return gen.From(
		func(r *rng.State) string {
			return generateCPF(r, r.Rand().Intn(2) == 0)
		},
		func(r *rng.State) gen.Shrinkable[string] {
			cur := generateCPF(r, r.Rand().Intn(2) == 0)
			return gen.Shrinkable[string]{Value: cur, Reduce: cpfReducer}
		},
	)
}

func generateCPF(r *rng.State, masked bool) string {
	root := make([]byte, 9)
	for {
		for i := range 9 {
			root[i] = byte(r.Rand().Intn(10))
		}
		if !allSameDigits(root) {
			break
		}
	}
	cur := buildCPFString(root)
	if masked {
		cur = MaskCPF(cur)
	}
	return cur
}

// cpfReducer shrinks a CPF toward a simpler root, via two passes over
// the unmasked digits: zeroing each digit left-to-right, then
// decrementing each digit right-to-left. Masking is dropped first, since
// an unmasked failure is the simpler counterexample.
func cpfReducer(current *string, accept func(string) bool) bool {
	changed := false

	if un := UnmaskCPF(*current); un != *current {
		if accept(un) {
			*current = un
			changed = true
		}
	}

	for {
		root := rootDigits(*current)
		advanced := false
		for i := 0; i < 9; i++ {
			if root[i] == 0 {
				continue
			}
			candidate := append([]byte(nil), root...)
			candidate[i] = 0
			if allSameDigits(candidate) {
				continue
			}
			cpf := buildCPFString(candidate)
			if accept(cpf) {
				*current = cpf
				changed = true
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}
	}

	for {
		root := rootDigits(*current)
		advanced := false
		for i := 8; i >= 0; i-- {
			if root[i] == 0 {
				continue
			}
			candidate := append([]byte(nil), root...)
			candidate[i]--
			if allSameDigits(candidate) {
				continue
			}
			cpf := buildCPFString(candidate)
			if accept(cpf) {
				*current = cpf
				changed = true
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}
	}

	return changed
}

func rootDigits(cpf string) []byte {
	un := UnmaskCPF(cpf)
	root := make([]byte, 9)
	for i := range 9 {
		root[i] = un[i] - '0'
	}
	return root
}

// buildCPFString builds an unmasked CPF string from a root byte array
// of digits in [0,9].
func buildCPFString(root []byte) string {
	d1, d2 := computeCPFVerifiers(root)
	buf := make([]byte, 0, 11)
	for _, n := range root {
		buf = append(buf, '0'+n)
	}
	buf = append(buf, d1, d2)
	return string(buf)
}

// ValidCPF checks if a string is a valid CPF number.
func ValidCPF(s string) bool {
	raw := UnmaskCPF(s)
	if len(raw) != 11 {
		return false
	}
	b := []byte(raw)
	if allSame(b) {
		return false
	}
	root := make([]byte, 9)
	for i := range 9 {
		root[i] = b[i] - '0'
	}
	d1, d2 := computeCPFVerifiers(root)
	return b[9] == d1 && b[10] == d2
}

// MaskCPF formats a raw CPF string with dots and dashes.
func MaskCPF(raw string) string {
	raw = UnmaskCPF(raw)
	if len(raw) != 11 {
		panic(errors.New("MaskCPF: needs 11 digits"))
	}
	return raw[0:3] + "." + raw[3:6] + "." + raw[6:9] + "-" + raw[9:11]
}

// UnmaskCPF removes all non-digit characters from a CPF string.
func UnmaskCPF(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

func allSame(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	f := b[0]
	for _, x := range b[1:] {
		if x != f {
			return false
		}
	}
	return true
}

// allSameDigits checks if every entry in a root (digits 0-9, not ASCII)
// is the same value.
func allSameDigits(root []byte) bool {
	return allSame(root)
}

// computeCPFVerifiers calculates the verification digits for a 9-digit
// CPF root given as raw digit values (0-9), returning ASCII digit bytes.
func computeCPFVerifiers(root []byte) (d1, d2 byte) {
	if len(root) != 9 {
		panic(errors.New("computeCPFVerifiers: root len != 9"))
	}
	sum := 0
	for i := range 9 {
		sum += int(root[i]) * (10 - i)
	}
	rest := sum % 11
	if rest < 2 {
		d1 = '0'
	} else {
		d1 = byte(11-rest) + '0'
	}

	sum = 0
	for i := range 9 {
		sum += int(root[i]) * (11 - i)
	}
	sum += int(d1-'0') * 2
	rest = sum % 11
	if rest < 2 {
		d2 = '0'
	} else {
		d2 = byte(11-rest) + '0'
	}
	return
}
