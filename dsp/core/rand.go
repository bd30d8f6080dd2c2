package core

import "math/rand/v2"

// NewSource returns a deterministic PCG source for the given seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// NewRand wraps NewSource(seed) in a *rand.Rand.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(NewSource(seed))
}
