package ising

// Grid is a read-only view of a square spin lattice stored in row-major
// order. The zero value is an empty grid.
type Grid struct {
	size  int
	spins []bool
}

// NewGrid wraps spins as a size×size view without copying. It panics when
// len(spins) != size*size.
func NewGrid(size int, spins []bool) Grid {
	if size < 0 || len(spins) != size*size {
		panic("ising: grid dimensions do not match spin count")
	}
	return Grid{size: size, spins: spins}
}

// Size returns the side length.
func (g Grid) Size() int { return g.size }

// Len returns the number of sites.
func (g Grid) Len() int { return len(g.spins) }

// Index returns the linear index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return x + y*g.size }

// Spin reports whether site i is up.
func (g Grid) Spin(i int) bool { return g.spins[i] }

// At reports whether the site at (x, y) is up. Coordinates wrap toroidally.
// An empty grid has no up sites.
func (g Grid) At(x, y int) bool {
	if g.size == 0 {
		return false
	}
	x = (x%g.size + g.size) % g.size
	y = (y%g.size + g.size) % g.size
	return g.spins[g.Index(x, y)]
}

// Each calls fn for every site in raster order.
func (g Grid) Each(fn func(x, y int, up bool)) {
	for i, up := range g.spins {
		fn(i%g.size, i/g.size, up)
	}
}

// Copy returns a fresh slice holding the spins.
func (g Grid) Copy() []bool {
	return append([]bool(nil), g.spins...)
}
