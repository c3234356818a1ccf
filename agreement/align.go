package agreement

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/concord/weights"
)

// resolved is the outcome of the alignment step: a validated, possibly
// widened copy of the ratings table, the weight matrix of matching
// dimension, and the sanitized option values. Everything downstream works
// exclusively on this snapshot; the caller's slices are never mutated.
type resolved struct {
	a       *mat.Dense // aligned table, n×q
	w       *mat.Dense // weight matrix, q×q
	n, q    int
	conflev float64
	popSize float64 // 0 means infinite
}

// resolve validates the ratings table and options, widens the table with
// zero columns for declared-but-unused categories, and resolves the
// WeightSpec into a concrete matrix. It runs before any estimator math so
// the weight matrix dimension always matches the aligned table.
func resolve(ratings [][]float64, opts *Options) (*resolved, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.ConfLevel == 0 {
		o.ConfLevel = DefaultConfLevel
	}
	if o.ConfLevel <= 0 || o.ConfLevel >= 1 {
		return nil, ErrBadConfLevel
	}
	if o.PopSize < 0 {
		return nil, ErrBadPopSize
	}
	if math.IsInf(o.PopSize, 1) {
		o.PopSize = 0
	}

	n := len(ratings)
	if n == 0 || len(ratings[0]) == 0 {
		return nil, ErrEmptyTable
	}
	q := len(ratings[0])
	for _, row := range ratings {
		if len(row) != q {
			return nil, ErrRaggedTable
		}
		for _, v := range row {
			if v < 0 {
				return nil, ErrNegativeCount
			}
		}
	}

	// Category alignment: a declared axis longer than the table widens it
	// with all-zero columns, and the widened q drives the weight matrix.
	ax := o.Categories
	if ax.IsZero() {
		var err error
		if ax, err = weights.NominalAxis(q); err != nil {
			return nil, err
		}
	} else if ax.Len() < q {
		return nil, ErrCategoryCount
	}
	q2 := ax.Len()

	a := mat.NewDense(n, q2, nil)
	for i, row := range ratings {
		for k, v := range row {
			a.Set(i, k, v)
		}
	}
	q = q2

	w := o.Weights.custom
	if w == nil {
		w = weights.Build(o.Weights.scheme, ax)
	} else if r, c := w.Dims(); r != q || c != q {
		return nil, ErrWeightShape
	}

	return &resolved{a: a, w: w, n: n, q: q, conflev: o.ConfLevel, popSize: o.PopSize}, nil
}
