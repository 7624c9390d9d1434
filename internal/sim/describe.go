package sim

import (
	"math"

	"ising/internal/core"
	"ising/pkg/ising"
)

// Describe builds the parameter panel shown by the interactive front ends.
// rate is the measured sweeps per second.
func Describe(l *ising.Lattice, s Sample, rate float64) core.ParameterSnapshot {
	temperature := math.Inf(1)
	if l.Coupling() != 0 {
		temperature = 1 / l.Coupling()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				core.IntParam("size", "Size", l.Size()),
				core.FloatParam("coupling", "Coupling βJ", l.Coupling(), 4),
				core.FloatParam("temperature", "T/J", temperature, 3),
				core.IntParam("sweeps", "Sweeps", l.Sweeps()),
			},
		},
		{
			Name: "Observables",
			Params: []core.Parameter{
				core.FloatParam("magnetization", "Magnetization", s.Magnetization, 4),
				core.FloatParam("energy", "Energy/site", s.Energy, 4),
				core.FloatParam("aligned", "Aligned bonds", ising.AlignedFraction(l.Grid()), 3),
				core.FloatParam("acceptance", "Acceptance", s.Stats.Acceptance(), 3),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				core.FloatParam("mspt", "ms/sweep", float64(s.Elapsed.Microseconds())/1000, 2),
				core.FloatParam("rate", "Sweeps/s", rate, 1),
			},
		},
	}}
}
