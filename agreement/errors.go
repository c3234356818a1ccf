package agreement

import "errors"

var (
	// ErrEmptyTable indicates a ratings table with no rows or no columns.
	ErrEmptyTable = errors.New("agreement: ratings table must have at least one row and one column")
	// ErrRaggedTable indicates rows of differing lengths.
	ErrRaggedTable = errors.New("agreement: all ratings rows must have the same length")
	// ErrNegativeCount indicates a negative cell in the ratings table.
	ErrNegativeCount = errors.New("agreement: rating counts must be non-negative")
	// ErrBadConfLevel indicates a confidence level outside the open interval (0,1).
	ErrBadConfLevel = errors.New("agreement: confidence level must lie in (0,1)")
	// ErrBadPopSize indicates a negative population size.
	ErrBadPopSize = errors.New("agreement: population size must be positive or infinite")
	// ErrCategoryCount indicates a declared category list shorter than the table width.
	ErrCategoryCount = errors.New("agreement: category list must cover every table column")
	// ErrWeightShape indicates a custom weight matrix whose dimension does not
	// match the (possibly widened) category count.
	ErrWeightShape = errors.New("agreement: custom weight matrix dimension does not match category count")
	// ErrTooFewRaters indicates that no subject was rated by two or more
	// raters, leaving percent agreement undefined.
	ErrTooFewRaters = errors.New("agreement: no subject has two or more ratings")
	// ErrDegenerateVariance marks a zero sampling variance (typically perfect
	// agreement). The accompanying Result is still fully populated; only the
	// p-value (NaN) and the interval (collapsed) are affected.
	ErrDegenerateVariance = errors.New("agreement: zero sampling variance, p-value undefined")
)
