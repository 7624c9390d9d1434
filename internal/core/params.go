package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single labelled value shown by a front end.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a front end displays for one frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam formats an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// FloatParam formats a float parameter with the given number of decimals.
func FloatParam(key, label string, value float64, decimals int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', decimals, 64)}
}

// Lookup finds a parameter by key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Lines renders the snapshot as plain text, one group header followed by
// aligned "label value" rows.
func (s ParameterSnapshot) Lines() []string {
	width := 0
	for _, g := range s.Groups {
		for _, p := range g.Params {
			width = max(width, utf8.RuneCountInString(p.Label))
		}
	}
	var out []string
	for i, g := range s.Groups {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, strings.ToUpper(g.Name))
		for _, p := range g.Params {
			out = append(out, fmt.Sprintf("%-*s  %s", width, p.Label, p.Value))
		}
	}
	return out
}
