// Package agreement estimates chance-corrected inter-rater agreement
// coefficients from an aggregated rating-distribution table: an n×q matrix
// whose cell (i,k) counts how many raters assigned subject i to category k.
//
// What:
//
//   - Five estimators sharing one signature and one engine:
//     GwetAC (AC1/AC2), FleissKappa, KrippendorffAlpha, BrennanPrediger
//     and PercentAgreement.
//   - Each returns a Result holding the point estimate, a linearized
//     standard error, a Student-t confidence interval, a two-sided
//     p-value, and the underlying percent agreement (pa) and chance
//     agreement (pe).
//   - Weighted analyses plug in any weights.Scheme or a caller-supplied
//     custom matrix through Options.Weights.
//
// How it works:
//
//	Every coefficient is (pa − pe)/(1 − pe). The estimators share the
//	whole observed-agreement pipeline (weighted table A·Wᵀ, per-subject
//	rater counts, category marginals, pa) and differ only in their
//	chance-agreement formula and a small per-subject correction term.
//	The sampling variance comes from closed-form per-subject
//	pseudo-values (a linearization, not a resampling procedure):
//	  var = (1−f)/(n(n−1)) · Σᵢ (pseudoᵢ − estimate)²
//	where f = n/N is the finite-population correction (0 for N = ∞).
//
// Degenerate cases:
//
//   - Subjects rated by fewer than two raters carry no agreement
//     information; they are excluded from pa (and, for Krippendorff's
//     alpha only, dropped from every statistic).
//   - Perfect agreement yields zero sampling variance; the estimators
//     then return the fully populated Result together with
//     ErrDegenerateVariance, with PValue set to NaN and the interval
//     collapsed onto the estimate.
//
// Concurrency: every entry point is a pure function over immutable
// input; independent calls may run in parallel without coordination.
//
// Complexity: O(n·q²) time, O(n·q) memory per estimator call.
package agreement
