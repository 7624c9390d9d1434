package ising

import "errors"

// Construction errors. Callers match them with errors.Is; the returned error
// carries the offending value.
var (
	// ErrInvalidSize indicates a lattice side length below one.
	ErrInvalidSize = errors.New("ising: lattice size must be positive")

	// ErrNonFiniteCoupling indicates a NaN or infinite coupling.
	ErrNonFiniteCoupling = errors.New("ising: coupling must be finite")

	// ErrSpinCount indicates initial spins whose length is not size*size.
	ErrSpinCount = errors.New("ising: initial spin count does not match lattice")
)
