package agreement

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// core is the shared computational state of §"how it works" in doc.go:
// everything the five coefficients have in common. Estimator files add
// only their chance-agreement formula and pseudo-value correction.
//
// Per-subject quantities (length n):
//   - ri  — rater count Σₖ A[i,k]
//   - si  — agreement numerator Σₖ A[i,k]·(Aw[i,k]−1)
//   - den — rᵢ(rᵢ−1), with 0 replaced by −1 so the ratio sᵢ/den is always
//     computable; the value is never consumed when rᵢ < 2
//
// Global quantities:
//   - pi   — category marginals πₖ = (1/n)·Σᵢ A[i,k]/rᵢ
//   - pa   — percent agreement over the n₂₊ subjects with rᵢ ≥ 2
//   - sumW — ΣW, the grand sum of the weight matrix
//   - f    — finite-population correction n/N (0 for N = ∞)
type core struct {
	rs   *resolved
	aw   *mat.Dense
	ri   []float64
	si   []float64
	den  []float64
	pi   []float64
	pa   float64
	n2   int
	sumW float64
	f    float64
}

// newCore runs steps the estimators share: the weighted table Aw = A·Wᵀ,
// rater counts, per-subject agreement, marginals and percent agreement.
// Returns ErrTooFewRaters when no subject has two or more ratings.
func newCore(rs *resolved) (*core, error) {
	c := &core{rs: rs}
	n, q := rs.n, rs.q

	c.aw = mat.NewDense(n, q, nil)
	c.aw.Mul(rs.a, rs.w.T())
	c.sumW = mat.Sum(rs.w)

	c.ri = make([]float64, n)
	c.si = make([]float64, n)
	c.den = make([]float64, n)
	c.pi = make([]float64, q)
	for i := 0; i < n; i++ {
		row := rs.a.RawRowView(i)
		c.ri[i] = floats.Sum(row)
		for k := 0; k < q; k++ {
			c.si[i] += row[k] * (c.aw.At(i, k) - 1)
		}
		c.den[i] = c.ri[i] * (c.ri[i] - 1)
		if c.den[i] == 0 {
			c.den[i] = -1
		}
		if c.ri[i] >= 2 {
			c.n2++
			c.pa += c.si[i] / c.den[i]
		}
		for k := 0; k < q; k++ {
			c.pi[k] += row[k] / c.ri[i] / float64(n)
		}
	}
	if c.n2 == 0 {
		return nil, ErrTooFewRaters
	}
	c.pa /= float64(c.n2)

	if rs.popSize > 0 {
		c.f = float64(n) / rs.popSize
	}

	return c, nil
}

// paValues returns the per-subject raw percent-agreement values sᵢ/den,
// already scaled by n/n₂₊ and with the chance term pe zeroed for subjects
// carrying no agreement information (rᵢ < 2). These are the common first
// factor of every coefficient's pseudo-value.
func (c *core) paValues(pe float64) []float64 {
	scale := float64(c.rs.n) / float64(c.n2)
	out := make([]float64, c.rs.n)
	for i := range out {
		peR2 := pe
		if c.ri[i] < 2 {
			peR2 = 0
		}
		out[i] = scale * (c.si[i]/c.den[i] - peR2) / (1 - pe)
	}

	return out
}

// variance accumulates the linearized sampling variance
// (1−f)/(n(n−1)) · Σ(pseudoᵢ − est)². A single subject admits no variance
// estimate and yields 0, which downstream reports as degenerate.
func (c *core) variance(pseudo []float64, est float64) float64 {
	n := float64(c.rs.n)
	if n < 2 {
		return 0
	}
	var ss float64
	for _, p := range pseudo {
		d := p - est
		ss += d * d
	}

	return (1 - c.f) / (n * (n - 1)) * ss
}

// symmetrizedMarginal returns π_w = (W·π + Wᵀ·π)/2, the row/column
// symmetrized weighted marginal used by the kappa-family pseudo-values.
func symmetrizedMarginal(w *mat.Dense, pi []float64) []float64 {
	q := len(pi)
	piVec := mat.NewVecDense(q, pi)
	var wp, wtp mat.VecDense
	wp.MulVec(w, piVec)
	wtp.MulVec(w.T(), piVec)

	out := make([]float64, q)
	for k := 0; k < q; k++ {
		out[k] = (wp.AtVec(k) + wtp.AtVec(k)) / 2
	}

	return out
}
