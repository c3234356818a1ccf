// Package concord computes chance-corrected inter-rater agreement
// coefficients from aggregated rating-distribution tables.
//
// 🚀 What is concord?
//
//	A small, deterministic library for measuring how well multiple raters
//	agree when classifying subjects into categories, given only the n×q
//	table of rater counts per subject per category:
//	  • Gwet's AC1/AC2
//	  • Fleiss' generalized kappa
//	  • Krippendorff's alpha
//	  • Brennan-Prediger
//	  • plain percent agreement
//	Every estimator reports a point estimate, a linearized standard error,
//	a Student-t confidence interval and a two-sided p-value.
//
// ✨ Why choose concord?
//
//   - One shared engine — five coefficients differ only in their
//     chance-agreement formula, not in five copies of the bookkeeping
//   - Eight weighting schemes (identity, quadratic, linear, radical,
//     ratio, circular, bipolar, ordinal) plus custom weight matrices
//   - Closed-form variance via per-subject pseudo-values — no resampling
//   - Pure functions over immutable input; trivially parallel across calls
//
// Everything lives in two subpackages:
//
//	weights/   — category axes and agreement-weight matrix builders
//	agreement/ — the estimators, the shared engine and t-based inference
//
// Quick example:
//
//	table := [][]float64{{2, 0}, {0, 2}, {1, 1}}
//	res, err := agreement.GwetAC(table, nil)
//	// res.Estimate, res.StdErr, res.ConfInt, res.PValue, res.Pa, res.Pe
//
//	go get github.com/katalvlaran/concord
package concord
