package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepDue(t *testing.T) {
	f := NewFixedStep(10)
	t0 := time.Unix(0, 0)

	assert.Equal(t, 1, f.Due(t0), "first call primes and releases one sweep")
	assert.Equal(t, 0, f.Due(t0.Add(50*time.Millisecond)))
	assert.Equal(t, 1, f.Due(t0.Add(100*time.Millisecond)))
	assert.Equal(t, 2, f.Due(t0.Add(300*time.Millisecond)))
}

func TestFixedStepCapsBacklog(t *testing.T) {
	f := NewFixedStep(100)
	t0 := time.Unix(0, 0)
	f.Due(t0)

	assert.Equal(t, maxCatchUp, f.Due(t0.Add(time.Second)))
	assert.Equal(t, 0, f.Due(t0.Add(time.Second+time.Millisecond)), "backlog was dropped")
}

func TestFixedStepReset(t *testing.T) {
	f := NewFixedStep(0)
	t0 := time.Unix(0, 0)
	f.Due(t0)
	f.Reset()
	assert.Equal(t, 1, f.Due(t0.Add(time.Hour)))
}

func TestRateMeter(t *testing.T) {
	var m RateMeter
	t0 := time.Unix(0, 0)
	m.Add(t0, 0)
	assert.Zero(t, m.Rate())

	m.Add(t0.Add(time.Second), 30)
	assert.InDelta(t, 30, m.Rate(), 1e-9)

	m.Add(t0.Add(2*time.Second), 80)
	assert.InDelta(t, 40, m.Rate(), 1e-9)

	m.Reset()
	assert.Zero(t, m.Rate())
}
