package ising

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridAccessors(t *testing.T) {
	spins := []bool{
		true, false, false,
		false, true, false,
		false, false, true,
	}
	g := NewGrid(3, spins)

	assert.Equal(t, 3, g.Size())
	assert.Equal(t, 9, g.Len())
	assert.Equal(t, 5, g.Index(2, 1))
	assert.True(t, g.At(1, 1))
	assert.False(t, g.At(2, 1))
	assert.True(t, g.Spin(8))

	// wrap-around
	assert.True(t, g.At(-1, -1))
	assert.True(t, g.At(3, 3))
	assert.False(t, g.At(4, 3))
}

func TestGridEachRasterOrder(t *testing.T) {
	g := NewGrid(2, []bool{true, false, false, true})
	type cell struct {
		x, y int
		up   bool
	}
	var got []cell
	g.Each(func(x, y int, up bool) {
		got = append(got, cell{x, y, up})
	})
	assert.Equal(t, []cell{{0, 0, true}, {1, 0, false}, {0, 1, false}, {1, 1, true}}, got)
}

func TestGridCopyIsIndependent(t *testing.T) {
	spins := []bool{true, true, true, true}
	g := NewGrid(2, spins)
	c := g.Copy()
	c[0] = false
	assert.True(t, g.Spin(0))
}

func TestNewGridPanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() { NewGrid(3, make([]bool, 8)) })
}

func TestGridZeroValue(t *testing.T) {
	var g Grid
	assert.Equal(t, 0, g.Size())
	assert.Equal(t, 0, g.Len())
	assert.False(t, g.At(0, 0))
	assert.False(t, g.At(-3, 7))
}
