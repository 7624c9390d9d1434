// Package ising implements the single-spin-flip Metropolis simulation of the
// two-dimensional Ising model on a periodic square lattice.
package ising

import (
	"context"
	"fmt"
	"math"

	"ising/pkg/core"
)

// CriticalCoupling is the Onsager value of βJ at which the infinite square
// lattice orders, ln(1+√2)/2.
var CriticalCoupling = math.Log(1+math.Sqrt2) / 2

// SweepStats summarises the most recent complete sweep.
type SweepStats struct {
	Sites int
	Flips int
	Draws int
}

// Acceptance returns the fraction of sites that flipped.
func (s SweepStats) Acceptance() float64 {
	if s.Sites == 0 {
		return 0
	}
	return float64(s.Flips) / float64(s.Sites)
}

// Lattice owns a size×size torus of spins, the coupling βJ and the random
// source driving the Metropolis acceptance test.
//
// Sweeps update spins in place, so a flip early in a sweep is seen by every
// later site of the same sweep. Lattice is not safe for concurrent use.
type Lattice struct {
	size     int
	spins    []bool
	coupling float64
	rng      core.Source

	// logAcc and accept are indexed by (env*s+4)/2 where env is the signed
	// neighbour sum and s the signed spin of the visited site.
	logAcc [5]float64
	accept [5]float64

	sweeps int
	last   SweepStats
}

// Option customises lattice construction.
type Option func(*options)

type options struct {
	src   core.Source
	spins []bool
}

// WithSource injects the random source used for the initial fill and every
// acceptance draw.
func WithSource(src core.Source) Option {
	return func(o *options) { o.src = src }
}

// WithSeed uses a deterministic PCG source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.src = core.NewRNG(seed) }
}

// WithSpins sets the initial configuration instead of a random fill. The
// slice is copied; no random draws are made during construction.
func WithSpins(spins []bool) Option {
	return func(o *options) { o.spins = spins }
}

// New builds a lattice of side size with coupling βJ. Unless WithSpins is
// given, every site is seeded with an independent fair draw from the source.
func New(size int, coupling float64, opts ...Option) (*Lattice, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if math.IsNaN(coupling) || math.IsInf(coupling, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrNonFiniteCoupling, coupling)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = core.NewEntropyRNG()
	}

	n := size * size
	l := &Lattice{
		size:     size,
		spins:    make([]bool, n),
		coupling: coupling,
		rng:      o.src,
	}
	if o.spins != nil {
		if len(o.spins) != n {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrSpinCount, len(o.spins), n)
		}
		copy(l.spins, o.spins)
	} else {
		core.FillSpins(l.rng, l.spins)
	}

	l.tabulate()
	return l, nil
}

func (l *Lattice) tabulate() {
	for k := range l.logAcc {
		aligned := float64(2*k - 4)
		l.logAcc[k] = -2 * l.coupling * aligned
		l.accept[k] = math.Exp(l.logAcc[k])
	}
}

// WithCoupling returns a lattice with the same spins and sweep count at a new
// coupling. The random source moves to the returned lattice and its stream
// continues where l left off; l must not be stepped afterwards.
func (l *Lattice) WithCoupling(coupling float64) (*Lattice, error) {
	if math.IsNaN(coupling) || math.IsInf(coupling, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrNonFiniteCoupling, coupling)
	}
	next := &Lattice{
		size:     l.size,
		spins:    append([]bool(nil), l.spins...),
		coupling: coupling,
		rng:      l.rng,
		sweeps:   l.sweeps,
		last:     l.last,
	}
	next.tabulate()
	return next, nil
}

// Size returns the side length.
func (l *Lattice) Size() int { return l.size }

// Coupling returns βJ.
func (l *Lattice) Coupling() float64 { return l.coupling }

// Sweeps returns the number of complete sweeps performed.
func (l *Lattice) Sweeps() int { return l.sweeps }

// LastSweep returns the statistics of the most recent complete sweep.
func (l *Lattice) LastSweep() SweepStats { return l.last }

// Grid returns a read-only view of the current spins. The view shares storage
// with the lattice and reflects later sweeps.
func (l *Lattice) Grid() Grid { return Grid{size: l.size, spins: l.spins} }

// Snapshot returns a view over a private copy of the current spins.
func (l *Lattice) Snapshot() Grid {
	return Grid{size: l.size, spins: append([]bool(nil), l.spins...)}
}

// Neighbors returns the toroidal left, right, up and down neighbours of pos.
func (l *Lattice) Neighbors(pos int) [4]int {
	size := l.size
	x := pos % size
	y := pos / size
	left := (x + size - 1) % size
	right := (x + 1) % size
	up := (y + size - 1) % size
	down := (y + 1) % size
	return [4]int{left + y*size, right + y*size, x + up*size, x + down*size}
}

// Step performs one Metropolis sweep over every site in raster order.
func (l *Lattice) Step() {
	stats := SweepStats{Sites: len(l.spins)}
	for pos := range l.spins {
		l.visit(pos, &stats)
	}
	l.finish(stats)
}

// StepContext is Step with cancellation checked before each row. A cancelled
// sweep leaves the rows already visited updated and does not count as a
// sweep.
func (l *Lattice) StepContext(ctx context.Context) error {
	stats := SweepStats{Sites: len(l.spins)}
	for row := 0; row < l.size; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := row * l.size
		for pos := start; pos < start+l.size; pos++ {
			l.visit(pos, &stats)
		}
	}
	l.finish(stats)
	return nil
}

func (l *Lattice) visit(pos int, stats *SweepStats) {
	env := 0
	for _, n := range l.Neighbors(pos) {
		env += signed(l.spins[n])
	}
	k := (env*signed(l.spins[pos]) + 4) / 2
	if l.logAcc[k] > 0 {
		l.spins[pos] = !l.spins[pos]
		stats.Flips++
		return
	}
	stats.Draws++
	if l.rng.Float64() < l.accept[k] {
		l.spins[pos] = !l.spins[pos]
		stats.Flips++
	}
}

func (l *Lattice) finish(stats SweepStats) {
	l.sweeps++
	l.last = stats
}

func signed(up bool) int {
	if up {
		return 1
	}
	return -1
}
