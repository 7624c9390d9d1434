// Package metrics exports sweep statistics in the Prometheus text format.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ising/internal/logging"
	"ising/internal/sim"
)

// Collector turns runner samples into Prometheus series. It owns a private
// registry so several collectors can coexist in one process.
type Collector struct {
	registry *prometheus.Registry

	sweeps        prometheus.Counter
	flips         prometheus.Counter
	draws         prometheus.Counter
	magnetization prometheus.Gauge
	energy        prometheus.Gauge
	acceptance    prometheus.Gauge
	sweepSeconds  prometheus.Histogram
}

var _ sim.Observer = (*Collector)(nil)

// New registers a fresh set of series.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		sweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ising_sweeps_total",
			Help: "Total number of completed sweeps",
		}),
		flips: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ising_flips_total",
			Help: "Total number of accepted spin flips",
		}),
		draws: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ising_rng_draws_total",
			Help: "Total number of uniform variates consumed by the acceptance test",
		}),
		magnetization: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ising_magnetization",
			Help: "Mean spin after the latest sweep",
		}),
		energy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ising_energy_per_site",
			Help: "Nearest-neighbour energy per site after the latest sweep",
		}),
		acceptance: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ising_acceptance_ratio",
			Help: "Fraction of sites flipped during the latest sweep",
		}),
		sweepSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ising_sweep_seconds",
			Help:    "Histogram of sweep durations in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
	c.registry.MustRegister(
		c.sweeps, c.flips, c.draws,
		c.magnetization, c.energy, c.acceptance,
		c.sweepSeconds,
	)
	return c
}

// Observe records one sample.
func (c *Collector) Observe(s sim.Sample) {
	c.sweeps.Inc()
	c.flips.Add(float64(s.Stats.Flips))
	c.draws.Add(float64(s.Stats.Draws))
	c.magnetization.Set(s.Magnetization)
	c.energy.Set(s.Energy)
	c.acceptance.Set(s.Stats.Acceptance())
	c.sweepSeconds.Observe(s.Elapsed.Seconds())
}

// Handler serves the registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes Handler on addr under /metrics until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logging.Logger().Info("metrics endpoint listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
