package sim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"ising/pkg/ising"
)

// ScanConfig describes a sweep over couplings.
type ScanConfig struct {
	Size    int
	From    float64
	To      float64
	Points  int
	Warmup  int
	Measure int
	// Seed 0 draws every point from process entropy; otherwise point i uses
	// Seed+i.
	Seed int64
}

// ScanPoint holds equilibrium averages at one coupling.
type ScanPoint struct {
	Coupling         float64
	AbsMagnetization float64
	Energy           float64
	Acceptance       float64
}

var errScanConfig = errors.New("sim: invalid scan configuration")

// Couplings returns the evenly spaced coupling values of the scan.
func (c ScanConfig) Couplings() []float64 {
	if c.Points <= 1 {
		return []float64{c.From}
	}
	out := make([]float64, c.Points)
	step := (c.To - c.From) / float64(c.Points-1)
	for i := range out {
		out[i] = c.From + float64(i)*step
	}
	out[len(out)-1] = c.To
	return out
}

func (c ScanConfig) validate() error {
	switch {
	case c.Points < 1:
		return fmt.Errorf("%w: points %d", errScanConfig, c.Points)
	case c.Warmup < 0:
		return fmt.Errorf("%w: warmup %d", errScanConfig, c.Warmup)
	case c.Measure < 1:
		return fmt.Errorf("%w: measure %d", errScanConfig, c.Measure)
	}
	return nil
}

// Scan equilibrates a fresh lattice at each coupling and averages |m|, the
// energy per site and the acceptance ratio over the measurement sweeps.
// Points run one after another; ctx is checked between sweeps.
func Scan(ctx context.Context, cfg ScanConfig) ([]ScanPoint, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	couplings := cfg.Couplings()
	points := make([]ScanPoint, 0, len(couplings))
	for i, coupling := range couplings {
		var opts []ising.Option
		if cfg.Seed != 0 {
			opts = append(opts, ising.WithSeed(cfg.Seed+int64(i)))
		}
		l, err := ising.New(cfg.Size, coupling, opts...)
		if err != nil {
			return points, err
		}
		p, err := measure(ctx, l, cfg.Warmup, cfg.Measure)
		if err != nil {
			return points, err
		}
		points = append(points, p)
	}
	return points, nil
}

func measure(ctx context.Context, l *ising.Lattice, warmup, sweeps int) (ScanPoint, error) {
	p := ScanPoint{Coupling: l.Coupling()}
	for i := 0; i < warmup+sweeps; i++ {
		if err := ctx.Err(); err != nil {
			return p, err
		}
		l.Step()
		if i < warmup {
			continue
		}
		g := l.Grid()
		p.AbsMagnetization += math.Abs(ising.Magnetization(g))
		p.Energy += ising.Energy(g)
		p.Acceptance += l.LastSweep().Acceptance()
	}
	n := float64(sweeps)
	p.AbsMagnetization /= n
	p.Energy /= n
	p.Acceptance /= n
	return p, nil
}
