package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterSnapshotLines(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Lattice", Params: []Parameter{IntParam("size", "Size", 64)}},
		{Name: "Observables", Params: []Parameter{FloatParam("m", "Magnetization", -0.125, 3)}},
	}}
	assert.Equal(t, []string{
		"LATTICE",
		"Size           64",
		"",
		"OBSERVABLES",
		"Magnetization  -0.125",
	}, s.Lines())
}

func TestParameterSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Lattice", Params: []Parameter{FloatParam("coupling", "Coupling", 0.44, 2)}},
	}}
	p, ok := s.Lookup("coupling")
	require.True(t, ok)
	assert.Equal(t, "0.44", p.Value)
	assert.Equal(t, ParamTypeFloat, p.Type)

	_, ok = s.Lookup("size")
	assert.False(t, ok)
}
