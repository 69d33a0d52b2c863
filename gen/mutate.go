package gen

import "github.com/lucaskalb/recheck/rng"

// mutateString applies a handful of byte-level mutations (flip, insert,
// delete, swap) to seed, bounded to maxLen.
func mutateString(r *rng.State, seed string, maxLen int) string {
	if seed == "" {
		seed = "x"
	}
	b := []byte(seed)

	mutations := 1 + r.Rand().Intn(3)
	for i := 0; i < mutations; i++ {
		switch r.Rand().Intn(4) {
		case 0: // flip a byte
			if len(b) > 0 {
				idx := r.Rand().Intn(len(b))
				b[idx] = AlphabetASCII[r.Rand().Intn(len(AlphabetASCII))]
			}
		case 1: // insert a byte
			if maxLen <= 0 || len(b) < maxLen {
				idx := r.Rand().Intn(len(b) + 1)
				c := AlphabetASCII[r.Rand().Intn(len(AlphabetASCII))]
				b = append(b[:idx], append([]byte{c}, b[idx:]...)...)
			}
		case 2: // delete a byte
			if len(b) > 1 {
				idx := r.Rand().Intn(len(b))
				b = append(b[:idx], b[idx+1:]...)
			}
		case 3: // swap two bytes
			if len(b) > 1 {
				i, j := r.Rand().Intn(len(b)), r.Rand().Intn(len(b))
				b[i], b[j] = b[j], b[i]
			}
		}
	}

	if maxLen > 0 && len(b) > maxLen {
		b = b[:maxLen]
	}
	return string(b)
}
