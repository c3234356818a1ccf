package agreement

// BrennanPrediger estimates the Brennan-Prediger coefficient from a
// rating-distribution table.
//
// Chance agreement assumes a uniform category distribution:
//
//	pe = ΣW / q²
//
// Because pe does not depend on the observed marginals, the per-subject
// chance term peᵢ equals pe and the kappa-family pseudo-value correction
// vanishes; the pseudo-values are the raw per-subject coefficients.
//
// A nil opts uses DefaultOptions().
func BrennanPrediger(ratings [][]float64, opts *Options) (Result, error) {
	rs, err := resolve(ratings, opts)
	if err != nil {
		return Result{}, err
	}
	c, err := newCore(rs)
	if err != nil {
		return Result{}, err
	}

	pe := 0.0
	if rs.q > 1 { // a single category admits no chance disagreement
		q := float64(rs.q)
		pe = c.sumW / (q * q)
	}
	est := (c.pa - pe) / (1 - pe)
	pseudo := c.paValues(pe)

	return epilogue("Brennan-Prediger", est, c.pa, pe, c.variance(pseudo, est), rs.n, rs.conflev)
}
