package app

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ising/pkg/core"
	"ising/pkg/ising"
)

func latticeFactory(size int) Factory {
	return func(seed int64, coupling float64) (*ising.Lattice, error) {
		return ising.New(size, coupling, ising.WithSeed(seed))
	}
}

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(latticeFactory(8), 5, 0.44, 60)
	require.NoError(t, err)
	return s
}

// recordingSource forwards to a seeded RNG and keeps every value handed out.
type recordingSource struct {
	inner core.Source
	drawn []float64
}

func (r *recordingSource) Float64() float64 {
	u := r.inner.Float64()
	r.drawn = append(r.drawn, u)
	return u
}

func TestSessionStartsPaused(t *testing.T) {
	s := newSession(t)
	assert.True(t, s.Paused())
	assert.Zero(t, s.Tick(time.Now()))
	assert.Zero(t, s.Lattice().Sweeps())
}

func TestSessionStepOnceWhilePaused(t *testing.T) {
	s := newSession(t)
	s.StepOnce()
	assert.Equal(t, 1, s.Tick(time.Now()))
	assert.Zero(t, s.Tick(time.Now()))
	assert.Equal(t, 1, s.Lattice().Sweeps())
	p, ok := s.Parameters().Lookup("sweeps")
	require.True(t, ok)
	assert.Equal(t, "1", p.Value)
}

func TestSessionRunsAtFixedRate(t *testing.T) {
	s := newSession(t)
	s.Resume()
	now := time.Now()
	assert.Equal(t, 1, s.Tick(now))
	assert.Equal(t, 2, s.Tick(now.Add(34*time.Millisecond)))
	s.TogglePause()
	assert.Zero(t, s.Tick(now.Add(time.Second)))
	assert.Equal(t, 3, s.Lattice().Sweeps())
}

func TestSessionReseed(t *testing.T) {
	s := newSession(t)
	s.StepOnce()
	s.Tick(time.Now())

	require.NoError(t, s.Reseed(9))
	assert.Equal(t, int64(9), s.Seed())
	fresh, err := latticeFactory(8)(9, 0.44)
	require.NoError(t, err)
	assert.Equal(t, fresh.Grid().Copy(), s.Lattice().Grid().Copy())
	assert.Zero(t, s.Lattice().Sweeps())
}

func TestSessionAdjustCouplingKeepsSpins(t *testing.T) {
	s := newSession(t)
	s.StepOnce()
	s.Tick(time.Now())
	before := s.Lattice().Grid().Copy()

	require.NoError(t, s.AdjustCoupling(CouplingStep))
	assert.Equal(t, 0.45, s.Lattice().Coupling())
	assert.Equal(t, before, s.Lattice().Grid().Copy())
	assert.Equal(t, 1, s.Lattice().Sweeps())

	require.NoError(t, s.AdjustCoupling(-3*CouplingStep))
	assert.Equal(t, 0.42, s.Lattice().Coupling())
}

func TestSessionAdjustCouplingContinuesStream(t *testing.T) {
	const seed = 13
	var rec *recordingSource
	calls := 0
	f := func(seed int64, coupling float64) (*ising.Lattice, error) {
		calls++
		rec = &recordingSource{inner: core.NewRNG(seed)}
		return ising.New(8, coupling, ising.WithSource(rec))
	}
	s, err := NewSession(f, seed, 0.44, 60)
	require.NoError(t, err)

	s.StepOnce()
	s.Tick(time.Now())
	require.NoError(t, s.AdjustCoupling(CouplingStep))
	s.StepOnce()
	s.Tick(time.Now())
	require.NoError(t, s.AdjustCoupling(CouplingStep))
	s.StepOnce()
	s.Tick(time.Now())

	assert.Equal(t, 1, calls, "recoupling does not rebuild the source")
	shadow := core.NewRNG(seed)
	want := make([]float64, len(rec.drawn))
	for i := range want {
		want[i] = shadow.Float64()
	}
	assert.Equal(t, want, rec.drawn, "one uninterrupted stream across adjustments")
	assert.Greater(t, len(rec.drawn), 64)
	assert.NotEqual(t, rec.drawn[:3], rec.drawn[len(rec.drawn)-3:])
}

func TestSessionFactoryErrors(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	f := func(seed int64, coupling float64) (*ising.Lattice, error) {
		calls++
		if calls > 1 {
			return nil, boom
		}
		return ising.New(4, coupling, ising.WithSeed(seed))
	}
	s, err := NewSession(f, 1, 0.3, 60)
	require.NoError(t, err)
	before := s.Lattice()

	assert.ErrorIs(t, s.Reseed(2), boom)
	assert.ErrorIs(t, s.AdjustCoupling(math.NaN()), ising.ErrNonFiniteCoupling)
	assert.Same(t, before, s.Lattice())
	assert.Equal(t, int64(1), s.Seed())
	assert.Equal(t, 0.3, s.Lattice().Coupling())

	_, err = NewSession(func(int64, float64) (*ising.Lattice, error) { return nil, boom }, 1, 0.3, 60)
	assert.ErrorIs(t, err, boom)
}
