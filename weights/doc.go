// Package weights builds the q×q agreement-weight matrices used by the
// estimators in package agreement, and the category axes they derive from.
//
// What:
//
//   - Axis wraps a validated, immutable category axis: either the sorted
//     numeric category values, or the positions 1..q for nominal data.
//   - Eight builders (Identity, Quadratic, Linear, Radical, Ratio,
//     Circular, Bipolar, Ordinal) each map an Axis to a *mat.Dense whose
//     entry (k,l) is the partial credit awarded when one rater picks
//     category k and another picks category l.
//   - Build dispatches on the Scheme enum; ParseScheme maps the
//     conventional string names onto it, rejecting unknown names.
//
// Why:
//
//   - Weighted agreement coefficients (Gwet's AC2, weighted kappa,
//     Krippendorff's alpha with ordinal/interval metrics) all reduce to
//     an unweighted computation against one of these matrices.
//   - The matrices are also useful standalone, e.g. for reporting or for
//     plugging into other chance-correction schemes.
//
// Invariants (per builder, for a well-behaved axis):
//
//   - the diagonal is exactly 1 (full credit for exact agreement);
//   - Identity is the q×q identity matrix;
//   - off-diagonal entries lie in [0,1] for evenly spaced numeric axes;
//   - a single-category axis always yields the 1×1 matrix [[1]].
//
// Errors:
//
//   - ErrEmptyAxis: the category axis has no values.
//   - ErrBadAxisLength: NominalAxis called with q < 1.
//   - ErrUnknownScheme: ParseScheme saw an unrecognized scheme name.
//
// Complexity: every builder is O(q²) time and memory.
package weights
