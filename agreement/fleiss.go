package agreement

// FleissKappa estimates Fleiss' generalized kappa from a
// rating-distribution table.
//
// Chance agreement is the weighted product of the category marginals:
//
//	pe = Σₖₗ W[k,l]·πₖ·πₗ
//
// A nil opts uses DefaultOptions().
func FleissKappa(ratings [][]float64, opts *Options) (Result, error) {
	rs, err := resolve(ratings, opts)
	if err != nil {
		return Result{}, err
	}
	c, err := newCore(rs)
	if err != nil {
		return Result{}, err
	}

	pe := chanceProduct(c.rs, c.pi)
	est := (c.pa - pe) / (1 - pe)

	// Pseudo-values: peᵢ is built from the symmetrized weighted marginal
	// π_w = (W·π + Wᵀ·π)/2 and subject i's own category counts.
	piW := symmetrizedMarginal(rs.w, c.pi)
	pseudo := c.paValues(pe)
	for i := range pseudo {
		var peI float64
		for k, pw := range piW {
			peI += rs.a.At(i, k) * pw
		}
		peI /= c.ri[i]
		pseudo[i] -= 2 * (1 - est) * (peI - pe) / (1 - pe)
	}

	return epilogue("Fleiss Kappa", est, c.pa, pe, c.variance(pseudo, est), rs.n, rs.conflev)
}

// chanceProduct computes Σₖₗ W[k,l]·πₖ·πₗ, the kappa-family chance
// agreement. A single category admits no chance disagreement and yields 0.
func chanceProduct(rs *resolved, pi []float64) float64 {
	if rs.q < 2 {
		return 0
	}
	var pe float64
	for k := 0; k < rs.q; k++ {
		for l := 0; l < rs.q; l++ {
			pe += rs.w.At(k, l) * pi[k] * pi[l]
		}
	}

	return pe
}
