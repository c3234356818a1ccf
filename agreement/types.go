// Package agreement: option and result types shared by the five estimators.
package agreement

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/concord/weights"
)

// DefaultConfLevel is the confidence level used when Options.ConfLevel is
// left at zero.
const DefaultConfLevel = 0.95

// WeightSpec selects the agreement weights for an analysis: either one of
// the named schemes or an arbitrary caller-supplied square matrix. The two
// cases are resolved exactly once, before any estimator math runs, so no
// call site ever branches on "string or matrix".
//
// The zero WeightSpec selects identity weights (the unweighted analysis).
type WeightSpec struct {
	scheme weights.Scheme
	custom *mat.Dense
}

// Named selects one of the eight named weighting schemes.
func Named(s weights.Scheme) WeightSpec { return WeightSpec{scheme: s} }

// Custom supplies an explicit q×q weight matrix. The matrix must match the
// category count after alignment (declared-but-unused categories widen the
// table); a mismatch surfaces as ErrWeightShape. Custom(nil) is equivalent
// to the zero WeightSpec.
func Custom(m *mat.Dense) WeightSpec { return WeightSpec{custom: m} }

// Options configures an estimator call.
//
// Fields:
//   - Weights    — Named(scheme) or Custom(matrix); zero value = identity.
//   - Categories — optional declared category axis of length q₂ ≥ q.
//     Categories observed in no column widen the table with zero counts.
//     The zero Axis derives 1..q from the table width.
//   - ConfLevel  — confidence level in (0,1); 0 means DefaultConfLevel.
//   - PopSize    — finite population size N for the correction f = n/N;
//     0 (or +Inf) means an infinite population.
//
// A nil *Options is equivalent to DefaultOptions().
type Options struct {
	Weights    WeightSpec
	Categories weights.Axis
	ConfLevel  float64
	PopSize    float64
}

// DefaultOptions returns the defaults: identity weights, categories derived
// from the table, 95% confidence, infinite population.
func DefaultOptions() Options {
	return Options{ConfLevel: DefaultConfLevel}
}

// Interval is a two-sided confidence interval. Upper is capped at 1, since
// an agreement coefficient cannot exceed perfect agreement; Lower is not
// floored.
type Interval struct {
	Lower, Upper float64
}

// String renders the interval with the conventional 3-decimal rounding,
// e.g. "(0.447,1.000)".
func (iv Interval) String() string {
	return fmt.Sprintf("(%.3f,%.3f)", iv.Lower, iv.Upper)
}

// Result is the immutable output record of one estimator invocation.
type Result struct {
	// Name identifies the coefficient, e.g. "AC1", "AC2", "Fleiss Kappa".
	Name string
	// Estimate is the chance-corrected coefficient (pa−pe)/(1−pe).
	Estimate float64
	// StdErr is the linearized standard error of the estimate.
	StdErr float64
	// ConfInt is the Student-t confidence interval at Options.ConfLevel.
	ConfInt Interval
	// PValue is the two-sided p-value against H₀: coefficient = 0.
	PValue float64
	// Pa is the weighted percent agreement.
	Pa float64
	// Pe is the coefficient-specific chance agreement.
	Pe float64
}

// String renders a compact one-line report row.
func (r Result) String() string {
	return fmt.Sprintf("%s: estimate=%.3f stderr=%.3f ci=%s p=%.3f pa=%.3f pe=%.3f",
		r.Name, r.Estimate, r.StdErr, r.ConfInt, r.PValue, r.Pa, r.Pe)
}
