package agreement

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// KrippendorffAlpha estimates Krippendorff's alpha from a
// rating-distribution table.
//
// Alpha shares the kappa-family chance formula pe = Σₖₗ W[k,l]·πₖ·πₗ but
// departs from the other estimators in three ways:
//
//   - subjects with fewer than two ratings are dropped entirely before any
//     statistic is computed (they do not count toward n, π, pa or the
//     variance), not merely excluded from pa's numerator;
//   - π and the per-subject agreement are computed against the mean rater
//     count r̄ instead of each subject's own rᵢ;
//   - pa carries the finite-sample correction ε = 1/Σrᵢ:
//     pa = (1−ε)·mean(sᵢ/(r̄(rᵢ−1))) + ε.
//
// A nil opts uses DefaultOptions().
func KrippendorffAlpha(ratings [][]float64, opts *Options) (Result, error) {
	rs, err := resolve(ratings, opts)
	if err != nil {
		return Result{}, err
	}

	// Row exclusion happens upstream of every statistic: rebuild the table
	// with only the subjects carrying agreement information.
	var kept []int
	for i := 0; i < rs.n; i++ {
		if floats.Sum(rs.a.RawRowView(i)) >= 2 {
			kept = append(kept, i)
		}
	}
	if len(kept) == 0 {
		return Result{}, ErrTooFewRaters
	}
	if len(kept) < rs.n {
		a := mat.NewDense(len(kept), rs.q, nil)
		for j, i := range kept {
			a.SetRow(j, rs.a.RawRowView(i))
		}
		rs.a = a
		rs.n = len(kept)
	}

	n, q := rs.n, rs.q
	aw := mat.NewDense(n, q, nil)
	aw.Mul(rs.a, rs.w.T())

	ri := make([]float64, n)
	si := make([]float64, n)
	for i := 0; i < n; i++ {
		row := rs.a.RawRowView(i)
		ri[i] = floats.Sum(row)
		for k := 0; k < q; k++ {
			si[i] += row[k] * (aw.At(i, k) - 1)
		}
	}
	riMean := stat.Mean(ri, nil)
	eps := 1 / floats.Sum(ri)

	// Raw per-subject agreement against the mean rater count.
	paRaw := make([]float64, n)
	for i := range paRaw {
		paRaw[i] = si[i] / (riMean * (ri[i] - 1))
	}
	paMean := stat.Mean(paRaw, nil)
	pa := (1-eps)*paMean + eps

	// Marginals against r̄ rather than per-subject rᵢ.
	pi := make([]float64, q)
	for i := 0; i < n; i++ {
		row := rs.a.RawRowView(i)
		for k := 0; k < q; k++ {
			pi[k] += row[k] / riMean / float64(n)
		}
	}

	pe := chanceProduct(rs, pi)
	est := (pa - pe) / (1 - pe)

	// Pseudo-values: the raw pa values are bias-corrected for each
	// subject's deviation from the mean rater count,
	//   paᵢ = (1−ε)·(paRawᵢ − p̄·(rᵢ−r̄)/r̄) + ε,
	// then chance-corrected and shifted by −(1−est)·(peᵢ−pe)/(1−pe).
	var f float64
	if rs.popSize > 0 {
		f = float64(n) / rs.popSize
	}
	piW := symmetrizedMarginal(rs.w, pi)
	var ss float64
	for i := 0; i < n; i++ {
		paI := (1-eps)*(paRaw[i]-paMean*(ri[i]-riMean)/riMean) + eps
		alphaI := (paI - pe) / (1 - pe)
		var peI float64
		for k, pw := range piW {
			peI += rs.a.At(i, k) * pw
		}
		peI /= riMean
		x := alphaI - (1-est)*(peI-pe)/(1-pe)
		d := x - est
		ss += d * d
	}
	variance := 0.0
	if n > 1 {
		variance = (1 - f) / (float64(n) * float64(n-1)) * ss
	}

	return epilogue("Krippendorff Alpha", est, pa, pe, variance, n, rs.conflev)
}
