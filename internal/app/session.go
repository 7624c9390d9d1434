package app

import (
	"math"
	"time"

	"ising/internal/core"
	"ising/internal/logging"
	"ising/internal/sim"
	"ising/pkg/ising"
)

// CouplingStep is the coupling increment applied by one adjustment.
const CouplingStep = 0.01

// Factory builds a lattice with a random fill drawn from seed.
type Factory func(seed int64, coupling float64) (*ising.Lattice, error)

// Session holds the interactive state shared by the GUI: the runner, the
// pause flag and the sweep clock. It has no ebiten dependency.
type Session struct {
	runner   *sim.Runner
	factory  Factory
	seed     int64
	coupling float64
	paused   bool
	tickOnce bool
	step     *core.FixedStep
	meter    core.RateMeter
	last     sim.Sample
}

// NewSession builds the first lattice. Sessions start paused.
func NewSession(factory Factory, seed int64, coupling float64, tps int, opts ...sim.Option) (*Session, error) {
	l, err := factory(seed, coupling)
	if err != nil {
		return nil, err
	}
	return &Session{
		runner:   sim.NewRunner(l, opts...),
		factory:  factory,
		seed:     seed,
		coupling: coupling,
		paused:   true,
		step:     core.NewFixedStep(tps),
	}, nil
}

// Runner returns the underlying runner.
func (s *Session) Runner() *sim.Runner { return s.runner }

// Lattice returns the lattice currently driven.
func (s *Session) Lattice() *ising.Lattice { return s.runner.Lattice() }

// Seed returns the seed of the current lattice.
func (s *Session) Seed() int64 { return s.seed }

// Paused reports whether sweeps are suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause flips between running and paused.
func (s *Session) TogglePause() { s.setPaused(!s.paused) }

// Resume starts running.
func (s *Session) Resume() { s.setPaused(false) }

func (s *Session) setPaused(p bool) {
	if p == s.paused {
		return
	}
	s.paused = p
	s.step.Reset()
	s.meter.Reset()
}

// StepOnce queues a single sweep for the next Tick, even while paused.
func (s *Session) StepOnce() { s.tickOnce = true }

// Reseed replaces the lattice with a fresh random one drawn from seed.
func (s *Session) Reseed(seed int64) error {
	l, err := s.factory(seed, s.coupling)
	if err != nil {
		return err
	}
	s.seed = seed
	s.swap(l)
	logging.Logger().Info("lattice reseeded", "seed", seed)
	return nil
}

// AdjustCoupling changes the coupling by delta. The spins and the random
// stream carry over to the recoupled lattice.
func (s *Session) AdjustCoupling(delta float64) error {
	c := math.Round((s.coupling+delta)*1e4) / 1e4
	l, err := s.runner.Lattice().WithCoupling(c)
	if err != nil {
		return err
	}
	s.coupling = c
	s.swap(l)
	logging.Logger().Info("coupling changed", "coupling", c)
	return nil
}

func (s *Session) swap(l *ising.Lattice) {
	s.tickOnce = false
	s.last = sim.Sample{}
	s.step.Reset()
	s.meter.Reset()
	s.runner.Reset(l)
}

// Tick performs the sweeps due at now and returns how many ran.
func (s *Session) Tick(now time.Time) int {
	if s.tickOnce {
		s.tickOnce = false
		s.last = s.runner.Advance()
		return 1
	}
	if s.paused {
		return 0
	}
	n := s.step.Due(now)
	for i := 0; i < n; i++ {
		s.last = s.runner.Advance()
	}
	s.meter.Add(now, n)
	return n
}

// Parameters describes the current state for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	return sim.Describe(s.runner.Lattice(), s.last, s.meter.Rate())
}
