package weights

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Every builder below maps an Axis of length q to a q×q *mat.Dense and is
// deterministic with no side effects. A single-category axis degenerates
// every distance formula (xmax−xmin = 0), so q == 1 always short-circuits
// to the 1×1 matrix [[1]].
//
// Builders require a constructed Axis (NewAxis / NominalAxis); passing the
// zero Axis is a programmer error and panics.

// Build returns the weight matrix for scheme s over axis ax.
// Out-of-range Scheme values take the identity branch.
func Build(s Scheme, ax Axis) *mat.Dense {
	switch s {
	case Quadratic:
		return QuadraticWeights(ax)
	case Linear:
		return LinearWeights(ax)
	case Radical:
		return RadicalWeights(ax)
	case Ratio:
		return RatioWeights(ax)
	case Circular:
		return CircularWeights(ax)
	case Bipolar:
		return BipolarWeights(ax)
	case Ordinal:
		return OrdinalWeights(ax)
	default:
		return IdentityWeights(ax)
	}
}

// IdentityWeights returns the q×q identity matrix: full credit for exact
// matches, none otherwise. This is the "unweighted" analysis.
func IdentityWeights(ax Axis) *mat.Dense {
	q := mustLen(ax)
	w := mat.NewDense(q, q, nil)
	for k := 0; k < q; k++ {
		w.Set(k, k, 1)
	}

	return w
}

// QuadraticWeights returns w(k,l) = 1 − (xₖ−xₗ)²/(xmax−xmin)².
func QuadraticWeights(ax Axis) *mat.Dense {
	q := mustLen(ax)
	if q == 1 {
		return one()
	}
	x := ax.vals
	span := x[q-1] - x[0]
	w := mat.NewDense(q, q, nil)
	for k := 0; k < q; k++ {
		for l := 0; l < q; l++ {
			d := x[k] - x[l]
			w.Set(k, l, 1-(d*d)/(span*span))
		}
	}

	return w
}

// LinearWeights returns w(k,l) = 1 − |xₖ−xₗ|/|xmax−xmin|.
func LinearWeights(ax Axis) *mat.Dense {
	q := mustLen(ax)
	if q == 1 {
		return one()
	}
	x := ax.vals
	span := math.Abs(x[q-1] - x[0])
	w := mat.NewDense(q, q, nil)
	for k := 0; k < q; k++ {
		for l := 0; l < q; l++ {
			w.Set(k, l, 1-math.Abs(x[k]-x[l])/span)
		}
	}

	return w
}

// RadicalWeights returns w(k,l) = 1 − √|xₖ−xₗ|/√|xmax−xmin|.
func RadicalWeights(ax Axis) *mat.Dense {
	q := mustLen(ax)
	if q == 1 {
		return one()
	}
	x := ax.vals
	span := math.Sqrt(math.Abs(x[q-1] - x[0]))
	w := mat.NewDense(q, q, nil)
	for k := 0; k < q; k++ {
		for l := 0; l < q; l++ {
			w.Set(k, l, 1-math.Sqrt(math.Abs(x[k]-x[l]))/span)
		}
	}

	return w
}

// RatioWeights returns w(k,l) = 1 − [(xₖ−xₗ)/(xₖ+xₗ)]² / [(xmax−xmin)/(xmax+xmin)]².
// Meaningful for strictly positive ratio-scale axes; an axis straddling
// zero makes xₖ+xₗ vanish for opposite pairs and the formula degenerates.
func RatioWeights(ax Axis) *mat.Dense {
	q := mustLen(ax)
	if q == 1 {
		return one()
	}
	x := ax.vals
	spanRatio := (x[q-1] - x[0]) / (x[q-1] + x[0])
	norm := spanRatio * spanRatio
	w := mat.NewDense(q, q, nil)
	for k := 0; k < q; k++ {
		for l := 0; l < q; l++ {
			r := (x[k] - x[l]) / (x[k] + x[l])
			w.Set(k, l, 1-(r*r)/norm)
		}
	}

	return w
}

// CircularWeights treats the axis as periodic with period U = xmax−xmin+1:
// raw(k,l) = sin²(π(xₖ−xₗ)/U), then w = 1 − raw/max(raw).
func CircularWeights(ax Axis) *mat.Dense {
	q := mustLen(ax)
	if q == 1 {
		return one()
	}
	x := ax.vals
	u := x[q-1] - x[0] + 1

	return normalized(q, func(k, l int) float64 {
		s := math.Sin(math.Pi * (x[k] - x[l]) / u)

		return s * s
	})
}

// BipolarWeights penalizes disagreement most strongly near the axis
// endpoints: raw(k,l) = (xₖ−xₗ)² / [((xₖ+xₗ)−2·xmin)·(2·xmax−(xₖ+xₗ))]
// for k≠l and 0 on the diagonal, then w = 1 − raw/max(raw).
func BipolarWeights(ax Axis) *mat.Dense {
	q := mustLen(ax)
	if q == 1 {
		return one()
	}
	x := ax.vals
	xmin, xmax := x[0], x[q-1]

	return normalized(q, func(k, l int) float64 {
		if k == l {
			return 0
		}
		d := x[k] - x[l]
		sum := x[k] + x[l]

		return (d * d) / ((sum - 2*xmin) * (2*xmax - sum))
	})
}

// OrdinalWeights uses rank positions only: with nₖₗ = |k−l|+1,
// raw(k,l) = nₖₗ(nₖₗ−1)/2, then w = 1 − raw/max(raw). Numeric spacing on
// the axis is deliberately ignored.
func OrdinalWeights(ax Axis) *mat.Dense {
	q := mustLen(ax)
	if q == 1 {
		return one()
	}

	return normalized(q, func(k, l int) float64 {
		n := math.Abs(float64(k-l)) + 1

		return n * (n - 1) / 2
	})
}

// normalized fills a q×q matrix with 1 − raw(k,l)/max(raw).
// Requires max(raw) > 0, which holds for every caller once q ≥ 2.
func normalized(q int, raw func(k, l int) float64) *mat.Dense {
	r := mat.NewDense(q, q, nil)
	maxRaw := 0.0
	for k := 0; k < q; k++ {
		for l := 0; l < q; l++ {
			v := raw(k, l)
			r.Set(k, l, v)
			if v > maxRaw {
				maxRaw = v
			}
		}
	}
	w := mat.NewDense(q, q, nil)
	for k := 0; k < q; k++ {
		for l := 0; l < q; l++ {
			w.Set(k, l, 1-r.At(k, l)/maxRaw)
		}
	}

	return w
}

// one returns the degenerate single-category matrix [[1]].
func one() *mat.Dense { return mat.NewDense(1, 1, []float64{1}) }

// mustLen returns the axis length, panicking on the zero Axis.
func mustLen(ax Axis) int {
	if ax.IsZero() {
		panic("weights: builder called with the zero Axis; use NewAxis or NominalAxis")
	}

	return ax.Len()
}
