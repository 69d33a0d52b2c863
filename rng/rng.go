// Package rng provides the PRNG handle shared by every generator.
//
// A State wraps a splitmix64 counter behind math/rand's Source64
// interface. The counter is a single uint64, so cloning a State is a
// cheap value copy that reproduces the original's future draws exactly -
// this is what lets the driver snapshot a State at the start of an
// iteration and replay it later for Recording mode.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand"

	"golang.org/x/crypto/chacha20"
)

// State is a cloneable PRNG handle. The zero value is not usable; use
// New or FromSeed.
type State struct {
	src *splitmix64
	r   *mathrand.Rand
}

// New seeds a State from a ChaCha20-backed entropy stream, falling back
// to crypto/rand.Reader directly if the cipher cannot be constructed.
func New() *State {
	seed, err := entropySeed()
	if err != nil {
		// crypto/rand.Reader failing is already fatal for the process;
		// a zero seed keeps New infallible rather than panicking here.
		seed = 0
	}
	return FromSeed(seed)
}

// FromSeed deterministically constructs a State from a fixed seed. Used
// by tests and by any caller that wants local reproduction of a run.
func FromSeed(seed uint64) *State {
	src := &splitmix64{state: seed}
	return &State{src: src, r: mathrand.New(src)}
}

// Clone returns an independent State whose future draws reproduce this
// State's future draws exactly, from this point forward.
func (s *State) Clone() *State {
	clone := &splitmix64{state: s.src.state}
	return &State{src: clone, r: mathrand.New(clone)}
}

// Rand returns the *rand.Rand generator code draws from.
func (s *State) Rand() *mathrand.Rand {
	return s.r
}

// entropySeed draws a uint64 seed from a ChaCha20 stream keyed from
// crypto/rand, matching the pattern used by dedicated PRNG libraries of
// keying a fast stream cipher from a cryptographic source rather than
// reading the fast path's output directly from crypto/rand on every call.
func entropySeed() (uint64, error) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return 0, err
	}
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return 0, err
	}

	var buf [8]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint64(buf[:]), nil
	}

	cipher.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// splitmix64 is a minimal, fast, resumable PRNG source. It exists because
// math/rand.Rand's default sources aren't cheaply cloneable, and no
// dependency in reach exposes a cloneable Source64 - see DESIGN.md.
type splitmix64 struct {
	state uint64
}

func (s *splitmix64) Uint64() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func (s *splitmix64) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

func (s *splitmix64) Seed(seed int64) {
	s.state = uint64(seed)
}
