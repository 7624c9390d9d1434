package core

import "time"

// maxCatchUp bounds how many overdue sweeps a single Due call may release.
const maxCatchUp = 4

// FixedStep paces sweeps at a steady rate independent of the frame rate of
// the front end calling it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep targeting tps sweeps per second.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the rate. Non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Due reports how many sweeps have become due at now. The first call primes
// the clock and releases one sweep. Backlog beyond maxCatchUp is dropped.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 1
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	if n > maxCatchUp {
		n = maxCatchUp
		f.accumulator = 0
		return n
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// Reset forgets accumulated time, e.g. after a pause.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// RateMeter tracks an exponentially smoothed events-per-second rate.
type RateMeter struct {
	last time.Time
	rate float64
}

// Add records n events at now.
func (m *RateMeter) Add(now time.Time, n int) {
	if m.last.IsZero() {
		m.last = now
		return
	}
	dt := now.Sub(m.last).Seconds()
	if dt <= 0 {
		return
	}
	m.last = now
	inst := float64(n) / dt
	if m.rate == 0 {
		m.rate = inst
		return
	}
	m.rate = 0.8*m.rate + 0.2*inst
}

// Rate returns the smoothed rate.
func (m *RateMeter) Rate() float64 { return m.rate }

// Reset clears the meter.
func (m *RateMeter) Reset() { *m = RateMeter{} }
