package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ising/internal/sim"
	"ising/pkg/ising"
)

func TestObserveAccumulates(t *testing.T) {
	c := New()
	c.Observe(sim.Sample{
		Sweep: 1, Magnetization: 0.25, Energy: -1.5,
		Stats:   ising.SweepStats{Sites: 16, Flips: 4, Draws: 10},
		Elapsed: time.Millisecond,
	})
	c.Observe(sim.Sample{
		Sweep: 2, Magnetization: -0.5, Energy: -1.0,
		Stats:   ising.SweepStats{Sites: 16, Flips: 8, Draws: 12},
		Elapsed: 2 * time.Millisecond,
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.sweeps))
	assert.Equal(t, 12.0, testutil.ToFloat64(c.flips))
	assert.Equal(t, 22.0, testutil.ToFloat64(c.draws))
	assert.Equal(t, -0.5, testutil.ToFloat64(c.magnetization))
	assert.Equal(t, -1.0, testutil.ToFloat64(c.energy))
	assert.Equal(t, 0.5, testutil.ToFloat64(c.acceptance))
	assert.Equal(t, 1, testutil.CollectAndCount(c.sweepSeconds))
}

func TestCollectorsAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.Observe(sim.Sample{Stats: ising.SweepStats{Sites: 1, Flips: 1}})
	assert.Equal(t, 1.0, testutil.ToFloat64(a.sweeps))
	assert.Zero(t, testutil.ToFloat64(b.sweeps))
}

func TestRunnerFeedsCollector(t *testing.T) {
	l, err := ising.New(8, 0.44, ising.WithSeed(1))
	require.NoError(t, err)
	c := New()
	_, err = sim.NewRunner(l, sim.WithObserver(c)).Run(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(c.sweeps))
	assert.LessOrEqual(t, float64(l.LastSweep().Flips), testutil.ToFloat64(c.flips))
	assert.Equal(t, ising.Magnetization(l.Grid()), testutil.ToFloat64(c.magnetization))
}

func TestHandlerExposesSeries(t *testing.T) {
	c := New()
	c.Observe(sim.Sample{Stats: ising.SweepStats{Sites: 4, Flips: 2, Draws: 3}})

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	for _, name := range []string{
		"ising_sweeps_total 1",
		"ising_flips_total 2",
		"ising_rng_draws_total 3",
		"ising_magnetization",
		"ising_energy_per_site",
		"ising_sweep_seconds_bucket",
	} {
		assert.Contains(t, string(body), name)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	c := New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Serve(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
