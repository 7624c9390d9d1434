package config

import (
	"sort"

	"ising/pkg/ising"
)

// Preset is a named coupling with a short description.
type Preset struct {
	Coupling    float64
	Description string
}

var Presets = map[string]Preset{
	"ordered": {
		Coupling:    0.7,
		Description: "well below T_c, domains coarsen into one",
	},
	"critical": {
		Coupling:    ising.CriticalCoupling,
		Description: "Onsager point ln(1+√2)/2, clusters at every scale",
	},
	"disordered": {
		Coupling:    0.2,
		Description: "high temperature, short-lived small clusters",
	},
	"antiferro": {
		Coupling:    -0.6,
		Description: "negative coupling, checkerboard order",
	},
}

// GetPreset looks up a preset by name.
func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
