package agreement_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/concord/agreement"
	"github.com/katalvlaran/concord/weights"
)

// estimators runs every public entry point for validation sweeps: input
// checks happen before any coefficient-specific math, so every estimator
// must reject the same inputs identically.
var estimators = map[string]func([][]float64, *agreement.Options) (agreement.Result, error){
	"gwet":         agreement.GwetAC,
	"fleiss":       agreement.FleissKappa,
	"krippendorff": agreement.KrippendorffAlpha,
	"brennan":      agreement.BrennanPrediger,
	"percent":      agreement.PercentAgreement,
}

// TestEstimators_InputValidation sweeps the boundary errors across all
// five estimators.
func TestEstimators_InputValidation(t *testing.T) {
	good := [][]float64{{2, 0}, {0, 2}}
	cases := []struct {
		name    string
		ratings [][]float64
		opts    *agreement.Options
		want    error
	}{
		{name: "no rows", ratings: nil, want: agreement.ErrEmptyTable},
		{name: "no columns", ratings: [][]float64{{}}, want: agreement.ErrEmptyTable},
		{name: "ragged rows", ratings: [][]float64{{2, 0}, {1}}, want: agreement.ErrRaggedTable},
		{name: "negative count", ratings: [][]float64{{2, -1}}, want: agreement.ErrNegativeCount},
		{name: "conflev too high", ratings: good,
			opts: &agreement.Options{ConfLevel: 1.5}, want: agreement.ErrBadConfLevel},
		{name: "conflev negative", ratings: good,
			opts: &agreement.Options{ConfLevel: -0.5}, want: agreement.ErrBadConfLevel},
		{name: "negative population", ratings: good,
			opts: &agreement.Options{PopSize: -10}, want: agreement.ErrBadPopSize},
		{name: "short category list", ratings: good,
			opts: &agreement.Options{Categories: mustAxis(1)}, want: agreement.ErrCategoryCount},
		{name: "custom weights wrong shape", ratings: good,
			opts: &agreement.Options{Weights: agreement.Custom(mat.NewDense(3, 3, nil))},
			want: agreement.ErrWeightShape},
		{name: "no subject with two ratings", ratings: [][]float64{{1, 0}, {0, 1}},
			want: agreement.ErrTooFewRaters},
	}
	for _, tc := range cases {
		for name, estimate := range estimators {
			_, err := estimate(tc.ratings, tc.opts)
			assert.ErrorIs(t, err, tc.want, "%s / %s", name, tc.name)
		}
	}
}

// TestAlignment_WidensDeclaredCategories verifies that declaring a third,
// never-observed category widens the table and lowers Gwet's chance
// agreement accordingly: pe = ΣW·Σπ(1−π)/(q(q−1)) = 3·0.5/6 = 0.25 instead
// of the two-category 0.5.
func TestAlignment_WidensDeclaredCategories(t *testing.T) {
	table := [][]float64{{2, 0}, {0, 2}}
	res, err := agreement.GwetAC(table, &agreement.Options{Categories: mustAxis(1, 2, 3)})
	require.True(t, errors.Is(err, agreement.ErrDegenerateVariance),
		"two unanimous subjects agree perfectly, so the variance is zero")

	assert.InDelta(t, 0.25, res.Pe, 1e-12)
	assert.InDelta(t, 1.0, res.Pa, 1e-12)
	assert.InDelta(t, 1.0, res.Estimate, 1e-12)
}

// TestAlignment_CustomMatchesWidenedCount verifies a custom matrix must
// match the category count after widening, not the raw table width.
func TestAlignment_CustomMatchesWidenedCount(t *testing.T) {
	table := [][]float64{{2, 0}, {1, 1}}

	// 2×2 custom weights against 3 declared categories: mismatch.
	_, err := agreement.FleissKappa(table, &agreement.Options{
		Weights:    agreement.Custom(mat.NewDense(2, 2, []float64{1, 0, 0, 1})),
		Categories: mustAxis(1, 2, 3),
	})
	assert.ErrorIs(t, err, agreement.ErrWeightShape)

	// 3×3 identity against the same declaration: accepted.
	eye := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	_, err = agreement.FleissKappa(table, &agreement.Options{
		Weights:    agreement.Custom(eye),
		Categories: mustAxis(1, 2, 3),
	})
	assert.NoError(t, err)
}

// TestOptions_NilAndDefaultEquivalent verifies a nil *Options behaves
// exactly like DefaultOptions().
func TestOptions_NilAndDefaultEquivalent(t *testing.T) {
	table := [][]float64{{2, 0}, {0, 2}, {1, 1}}
	def := agreement.DefaultOptions()
	for name, estimate := range estimators {
		a, errA := estimate(table, nil)
		b, errB := estimate(table, &def)
		assert.Equal(t, errA, errB, name)
		assert.Equal(t, a, b, name)
	}
}

// mustAxis builds a numeric axis, panicking on construction failure
// (test data is static).
func mustAxis(vals ...float64) weights.Axis {
	ax, err := weights.NewAxis(vals)
	if err != nil {
		panic(err)
	}

	return ax
}
