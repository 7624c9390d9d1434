// Package sim drives a lattice: it sweeps, hands each new grid to the
// renderers and reports per-sweep samples to observers.
package sim

import (
	"context"
	"log/slog"
	"time"

	"ising/internal/logging"
	"ising/internal/render"
	"ising/pkg/ising"
)

const historyCapacity = 600

// Sample describes the lattice right after one sweep.
type Sample struct {
	Sweep         int
	Magnetization float64
	Energy        float64
	Stats         ising.SweepStats
	Elapsed       time.Duration
}

// Observer receives every sample produced by a Runner.
type Observer interface {
	Observe(Sample)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Sample)

// Observe calls f(s).
func (f ObserverFunc) Observe(s Sample) { f(s) }

// Result summarises a Run.
type Result struct {
	Sweeps         int
	Last           Sample
	MeanAcceptance float64
	Elapsed        time.Duration
}

type target struct {
	r     render.Renderer
	every int
}

// Runner owns the driving loop around a lattice. It is single-threaded: Step
// and Draw never overlap.
type Runner struct {
	lattice   *ising.Lattice
	targets   []target
	observers []Observer
	history   *History
	log       *slog.Logger
}

// Option customises a Runner.
type Option func(*Runner)

// WithRenderer draws to r after every sweep whose number is a multiple of
// every. every <= 1 draws after each sweep.
func WithRenderer(r render.Renderer, every int) Option {
	return func(rn *Runner) {
		if every < 1 {
			every = 1
		}
		rn.targets = append(rn.targets, target{r: r, every: every})
	}
}

// WithObserver registers o for every sample.
func WithObserver(o Observer) Option {
	return func(rn *Runner) { rn.observers = append(rn.observers, o) }
}

// WithLogger overrides the shared logger.
func WithLogger(l *slog.Logger) Option {
	return func(rn *Runner) { rn.log = l }
}

// NewRunner wraps l.
func NewRunner(l *ising.Lattice, opts ...Option) *Runner {
	r := &Runner{
		lattice: l,
		history: NewHistory(historyCapacity),
		log:     logging.Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lattice returns the lattice being driven.
func (r *Runner) Lattice() *ising.Lattice { return r.lattice }

// History returns the magnetization of recent sweeps, oldest first.
func (r *Runner) History() []float64 { return r.history.Values() }

// Reset swaps in a fresh lattice, clears the history and redraws.
func (r *Runner) Reset(l *ising.Lattice) {
	r.lattice = l
	r.history.Reset()
	r.Draw()
}

// Draw hands the current grid to every renderer.
func (r *Runner) Draw() {
	g := r.lattice.Grid()
	for _, t := range r.targets {
		t.r.Draw(g)
	}
}

// Advance performs one sweep, draws and notifies observers.
func (r *Runner) Advance() Sample {
	s, _ := r.advance(context.Background())
	return s
}

// advance is Advance with cancellation checked before each lattice row. A
// cancelled sweep is neither drawn nor reported.
func (r *Runner) advance(ctx context.Context) (Sample, error) {
	start := time.Now()
	if err := r.lattice.StepContext(ctx); err != nil {
		return Sample{}, err
	}
	elapsed := time.Since(start)

	g := r.lattice.Grid()
	s := Sample{
		Sweep:         r.lattice.Sweeps(),
		Magnetization: ising.Magnetization(g),
		Energy:        ising.Energy(g),
		Stats:         r.lattice.LastSweep(),
		Elapsed:       elapsed,
	}
	r.history.Push(s.Magnetization)

	for _, t := range r.targets {
		if s.Sweep%t.every == 0 {
			t.r.Draw(g)
		}
	}
	for _, o := range r.observers {
		o.Observe(s)
	}
	r.log.Debug("sweep",
		"n", s.Sweep,
		"magnetization", s.Magnetization,
		"energy", s.Energy,
		"flips", s.Stats.Flips,
		"elapsed", elapsed)
	return s, nil
}

// Run sweeps until sweeps have completed or ctx is done. sweeps <= 0 runs
// until ctx is done. Cancellation is checked before each lattice row; an
// interrupted sweep keeps the rows it already visited but is not counted.
func (r *Runner) Run(ctx context.Context, sweeps int) (Result, error) {
	l := r.lattice
	r.log.Info("run started",
		"size", l.Size(),
		"coupling", l.Coupling(),
		"sweeps", sweeps)

	var (
		res        Result
		acceptance float64
		start      = time.Now()
	)
	finish := func() Result {
		res.Elapsed = time.Since(start)
		if res.Sweeps > 0 {
			res.MeanAcceptance = acceptance / float64(res.Sweeps)
		}
		return res
	}

	for i := 0; sweeps <= 0 || i < sweeps; i++ {
		s, err := r.advance(ctx)
		if err != nil {
			r.log.Info("run interrupted", "sweeps", res.Sweeps)
			return finish(), err
		}
		res.Sweeps++
		res.Last = s
		acceptance += s.Stats.Acceptance()
	}

	res = finish()
	r.log.Info("run finished",
		"sweeps", res.Sweeps,
		"magnetization", res.Last.Magnetization,
		"energy", res.Last.Energy,
		"acceptance", res.MeanAcceptance,
		"elapsed", res.Elapsed)
	return res, nil
}
