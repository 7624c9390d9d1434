package core

import "math/rand/v2"

// Source produces uniform float64 values in [0, 1).
//
// *rand.Rand from math/rand/v2 satisfies Source, as does *RNG.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewEntropyRNG seeds a PCG generator from the runtime's entropy-seeded
// global source.
func NewEntropyRNG() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// FillSpins seeds buf with independent fair coin flips, one draw per cell.
func FillSpins(src Source, buf []bool) {
	for i := range buf {
		buf[i] = src.Float64() < 0.5
	}
}
