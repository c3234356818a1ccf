package agreement

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// epilogue converts a point estimate and its linearized variance into the
// final Result: standard error, two-sided Student-t p-value with n−1
// degrees of freedom, and the confidence interval
// estimate ± stderr·t₍1−(1−conflev)/2, n−1₎ with the upper bound capped
// at 1 (agreement cannot exceed perfect agreement).
//
// A zero variance (perfect agreement, or a single subject) leaves the
// p-value undefined: the Result is still fully populated, with PValue set
// to NaN and the interval collapsed onto the estimate, and is returned
// together with ErrDegenerateVariance so callers see an explicit marker
// instead of a silent NaN.
func epilogue(name string, est, pa, pe, variance float64, n int, conflev float64) (Result, error) {
	res := Result{
		Name:     name,
		Estimate: est,
		StdErr:   math.Sqrt(variance),
		Pa:       pa,
		Pe:       pe,
	}
	if res.StdErr == 0 {
		res.PValue = math.NaN()
		res.ConfInt = Interval{Lower: est, Upper: math.Min(1, est)}

		return res, ErrDegenerateVariance
	}

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	res.PValue = 2 * (1 - t.CDF(math.Abs(est)/res.StdErr))
	crit := t.Quantile(1 - (1-conflev)/2)
	res.ConfInt = Interval{
		Lower: est - res.StdErr*crit,
		Upper: math.Min(1, est+res.StdErr*crit),
	}

	return res, nil
}
