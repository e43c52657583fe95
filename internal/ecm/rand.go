package ecm

import (
	"math/rand/v2"
	"time"
)

// Source draws uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it. A Source is not safe for concurrent use; give every
// factorization request its own.
type Source interface {
	Uint64N(n uint64) uint64
}

// NewSource returns a deterministic PCG source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTimeSource returns a source seeded from the wall clock.
func NewTimeSource() *rand.Rand {
	return NewSource(uint64(time.Now().UnixNano()))
}
