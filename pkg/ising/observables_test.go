package ising

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkerboard(size int) []bool {
	s := make([]bool, size*size)
	for i := range s {
		s[i] = (i%size+i/size)%2 == 0
	}
	return s
}

func TestObservablesUniform(t *testing.T) {
	up := NewGrid(4, allSpins(16, true))
	assert.Equal(t, 1.0, Magnetization(up))
	assert.Equal(t, -2.0, Energy(up))
	assert.Equal(t, 1.0, AlignedFraction(up))

	down := NewGrid(4, allSpins(16, false))
	assert.Equal(t, -1.0, Magnetization(down))
	assert.Equal(t, -2.0, Energy(down))
}

func TestObservablesCheckerboard(t *testing.T) {
	g := NewGrid(6, checkerboard(6))
	assert.Equal(t, 0.0, Magnetization(g))
	assert.Equal(t, 2.0, Energy(g))
	assert.Equal(t, 0.0, AlignedFraction(g))
}

func TestObservablesStripe(t *testing.T) {
	// left half up, right half down: only the two vertical domain walls
	// (one wrapping around the torus) are unaligned.
	const size = 4
	spins := make([]bool, size*size)
	for i := range spins {
		spins[i] = i%size < size/2
	}
	g := NewGrid(size, spins)
	assert.Equal(t, 0.0, Magnetization(g))
	// 32 bonds, 8 unaligned: (24-8)/16 = 1 => energy -1.
	assert.InDelta(t, -1.0, Energy(g), 1e-12)
	assert.InDelta(t, 0.75, AlignedFraction(g), 1e-12)
}

func TestObservablesEmptyGrid(t *testing.T) {
	var g Grid
	assert.Zero(t, Magnetization(g))
	assert.Zero(t, Energy(g))
	assert.Zero(t, AlignedFraction(g))
}

func TestEnergyTracksCouplingSign(t *testing.T) {
	ferro, err := New(8, 1.5, WithSeed(8))
	require.NoError(t, err)
	anti, err := New(8, -1.5, WithSeed(8))
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		ferro.Step()
		anti.Step()
	}
	assert.Less(t, Energy(ferro.Grid()), -1.0)
	assert.Greater(t, Energy(anti.Grid()), 1.0)
}

func TestAcceptanceZeroSites(t *testing.T) {
	assert.Zero(t, SweepStats{}.Acceptance())
}
