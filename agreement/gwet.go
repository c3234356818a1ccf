package agreement

import "math"

// GwetAC estimates Gwet's agreement coefficient from a rating-distribution
// table. The result is named "AC1" for the unweighted analysis (ΣW equals
// the category count) and "AC2" otherwise.
//
// Chance agreement:
//
//	pe = ΣW · Σₖ πₖ(1−πₖ) / (q(q−1))
//
// A nil opts uses DefaultOptions().
func GwetAC(ratings [][]float64, opts *Options) (Result, error) {
	rs, err := resolve(ratings, opts)
	if err != nil {
		return Result{}, err
	}
	c, err := newCore(rs)
	if err != nil {
		return Result{}, err
	}

	q := float64(rs.q)
	pe := 0.0
	if rs.q > 1 { // a single category admits no chance disagreement
		var s float64
		for _, p := range c.pi {
			s += p * (1 - p)
		}
		pe = c.sumW * s / (q * (q - 1))
	}
	est := (c.pa - pe) / (1 - pe)

	// Pseudo-values: the raw per-subject coefficient plus the correction
	// −2(1−est)·(peᵢ−pe)/(1−pe), where peᵢ is subject i's own contribution
	// to the chance term.
	pseudo := c.paValues(pe)
	for i := range pseudo {
		peI := 0.0
		if rs.q > 1 {
			var s float64
			for k, p := range c.pi {
				s += rs.a.At(i, k) * (1 - p)
			}
			peI = c.sumW / (q * (q - 1)) * s / c.ri[i]
		}
		pseudo[i] -= 2 * (1 - est) * (peI - pe) / (1 - pe)
	}

	name := "AC2"
	if math.Abs(c.sumW-q) < 1e-12 {
		name = "AC1"
	}

	return epilogue(name, est, c.pa, pe, c.variance(pseudo, est), rs.n, rs.conflev)
}
