package weights

import "errors"

var (
	// ErrEmptyAxis indicates a category axis with no values.
	ErrEmptyAxis = errors.New("weights: category axis must contain at least one value")
	// ErrBadAxisLength indicates a nominal axis request with q < 1.
	ErrBadAxisLength = errors.New("weights: nominal axis length must be at least 1")
	// ErrUnknownScheme indicates a scheme name outside the recognized set.
	ErrUnknownScheme = errors.New("weights: unknown weighting scheme")
)
