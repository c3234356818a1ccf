package agreement

// PercentAgreement reports the weighted percent agreement itself as the
// coefficient: pe is 0 (reported, never subtracted) and the estimate is pa.
// The variance is computed directly on the raw per-subject pa values,
// scaled by n/n₂₊ where n₂₊ counts the subjects with at least two ratings.
//
// A nil opts uses DefaultOptions().
func PercentAgreement(ratings [][]float64, opts *Options) (Result, error) {
	rs, err := resolve(ratings, opts)
	if err != nil {
		return Result{}, err
	}
	c, err := newCore(rs)
	if err != nil {
		return Result{}, err
	}

	pseudo := c.paValues(0)

	return epilogue("Percent Agreement", c.pa, c.pa, 0, c.variance(pseudo, c.pa), rs.n, rs.conflev)
}
