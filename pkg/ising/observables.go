package ising

// Magnetization returns the mean signed spin, in [-1, 1].
func Magnetization(g Grid) float64 {
	if g.Len() == 0 {
		return 0
	}
	sum := 0
	for _, up := range g.spins {
		sum += signed(up)
	}
	return float64(sum) / float64(g.Len())
}

// Energy returns the interaction energy per site in units of J,
// -(1/N) Σ s_i s_j over nearest-neighbour bonds. Each site contributes its
// right and down bonds, so the value lies in [-2, 2].
func Energy(g Grid) float64 {
	if g.Len() == 0 {
		return 0
	}
	sum := 0
	g.eachBond(func(a, b bool) {
		sum += signed(a) * signed(b)
	})
	return -float64(sum) / float64(g.Len())
}

// AlignedFraction returns the share of nearest-neighbour bonds whose two
// spins agree.
func AlignedFraction(g Grid) float64 {
	if g.Len() == 0 {
		return 0
	}
	aligned := 0
	g.eachBond(func(a, b bool) {
		if a == b {
			aligned++
		}
	})
	return float64(aligned) / float64(2*g.Len())
}

func (g Grid) eachBond(fn func(a, b bool)) {
	size := g.size
	for y := 0; y < size; y++ {
		row := y * size
		down := ((y + 1) % size) * size
		for x := 0; x < size; x++ {
			s := g.spins[row+x]
			fn(s, g.spins[row+(x+1)%size])
			fn(s, g.spins[down+x])
		}
	}
}
