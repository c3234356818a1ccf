// Package weights: the Scheme enum, its string boundary, and the Axis
// category-axis type shared by all builders.
package weights

import (
	"sort"
)

// Scheme selects one of the eight named agreement-weighting schemes.
//
// The zero value is Identity, which corresponds to the classical
// unweighted coefficients (exact matches only).
type Scheme int

const (
	// Identity awards credit for exact category matches only.
	Identity Scheme = iota
	// Quadratic decays credit with the squared category distance.
	Quadratic
	// Linear decays credit with the absolute category distance.
	Linear
	// Radical decays credit with the square root of the category distance.
	Radical
	// Ratio decays credit with the squared relative difference (xₖ−xₗ)/(xₖ+xₗ).
	Ratio
	// Circular treats the axis as periodic (first and last categories adjacent).
	Circular
	// Bipolar emphasizes disagreement near the axis endpoints.
	Bipolar
	// Ordinal uses rank positions only, ignoring numeric spacing.
	Ordinal
)

// schemeNames is indexed by Scheme; also drives String().
var schemeNames = [...]string{
	Identity:  "identity",
	Quadratic: "quadratic",
	Linear:    "linear",
	Radical:   "radical",
	Ratio:     "ratio",
	Circular:  "circular",
	Bipolar:   "bipolar",
	Ordinal:   "ordinal",
}

// String returns the conventional lowercase scheme name.
func (s Scheme) String() string {
	if s < Identity || int(s) >= len(schemeNames) {
		return "unknown"
	}

	return schemeNames[s]
}

// ParseScheme maps a scheme name to its Scheme value. Both "unweighted"
// and "identity" select Identity. Unrecognized names return
// ErrUnknownScheme: unlike implementations that silently substitute
// identity weights, the string boundary is strict so a typo cannot
// masquerade as an unweighted analysis.
func ParseScheme(name string) (Scheme, error) {
	if name == "unweighted" {
		return Identity, nil
	}
	for s, n := range schemeNames {
		if name == n {
			return Scheme(s), nil
		}
	}

	return Identity, ErrUnknownScheme
}

// Axis is a validated, immutable category axis of length q.
//
// For numeric category universes the axis holds the sorted values; for
// nominal ones it holds the positions 1..q. The zero Axis is "unset"
// (IsZero reports true) and callers treat it as "derive 1..q from the
// data". Construct via NewAxis or NominalAxis.
type Axis struct {
	vals []float64
}

// NewAxis builds an Axis from numeric category values. The input is
// copied and sorted ascending; the caller's slice is never mutated.
// Returns ErrEmptyAxis when values is empty.
func NewAxis(values []float64) (Axis, error) {
	if len(values) == 0 {
		return Axis{}, ErrEmptyAxis
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	sort.Float64s(vals)

	return Axis{vals: vals}, nil
}

// NominalAxis builds the axis 1..q used for non-numeric category
// universes, where only list order carries meaning.
// Returns ErrBadAxisLength when q < 1.
func NominalAxis(q int) (Axis, error) {
	if q < 1 {
		return Axis{}, ErrBadAxisLength
	}
	vals := make([]float64, q)
	for i := range vals {
		vals[i] = float64(i + 1)
	}

	return Axis{vals: vals}, nil
}

// Len returns the number of categories on the axis (0 for the zero Axis).
func (a Axis) Len() int { return len(a.vals) }

// IsZero reports whether the axis is unset.
func (a Axis) IsZero() bool { return a.vals == nil }

// Values returns a copy of the axis values in ascending order.
func (a Axis) Values() []float64 {
	out := make([]float64, len(a.vals))
	copy(out, a.vals)

	return out
}
