// SPDX-License-Identifier: MIT
// Package sparse provides pure algebraic kernels over the coordinate store:
// element-wise addition and subtraction, sparse multiplication, transpose,
// and scalar scaling. All functions perform strict fail-fast validation,
// never mutate their operands, and always allocate a fresh result.
//
// Purpose:
//   - Declare the canonical kernels and their operation tags in one place.
//   - Keep sparsity load-bearing: cost scales with stored entries, never with
//     rows*cols.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via
//     sparseErrorf at the facade.
//   - Kernels traverse the insertion-order slice, so result ordering is
//     deterministic for identical operands.

package sparse

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// sparseErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil to avoid wrapping a nil cause.
// Complexity: O(1).
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and the merge
// loop.
//
// Implementation:
//   - Stage 1: ValidateBinaryNotNil, ValidateSameShape.
//   - Stage 2: allocate the result with per-axis max dimensions (redundant
//     under the equality check, kept as a guard against shapes diverging via
//     Set-driven growth between check and use).
//   - Stage 3: copy every entry of a in insertion order, then merge every
//     entry of b onto whatever the copy holds at that coordinate.
//
// Behavior highlights:
//   - The result's stored set is the union of both operands' stored sets;
//     entries that sum to zero are NOT filtered out (explicit-zero entries
//     survive arithmetic the same way they survive serialization).
//   - Result ordering: a's entries first, then b-only coordinates in b order.
//
// Complexity:
//   - Time O(nnz(a) + nnz(b)), Space O(nnz(a) + nnz(b)).
func addSub(a, b *Matrix, sign int64, tag string) (*Matrix, error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, sparseErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(tag, err)
	}

	out, err := New(max(a.rows, b.rows), max(a.cols, b.cols))
	if err != nil {
		return nil, sparseErrorf(tag, err)
	}

	// Copy a verbatim; stored coordinates are non-negative, Set cannot fail.
	for _, k := range a.order {
		_ = out.Set(k.r, k.c, a.values[k])
	}
	// Merge b with the requested sign on top of the copy.
	for _, k := range b.order {
		_ = out.Set(k.r, k.c, out.Get(k.r, k.c)+sign*b.values[k])
	}

	return out, nil
}

// Add returns a+b. Operands must have identical dimensions; neither is
// mutated. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a-b. Operands must have identical dimensions; neither is
// mutated. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul returns the sparse product a*b with dimensions (a.Rows, b.Cols).
//
// Implementation:
//   - Stage 1: ValidateBinaryNotNil, ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: group b's entries by row index once, preserving per-row
//     insertion order.
//   - Stage 3: for every entry (r1,c1,v1) of a, visit only b's row c1 and
//     accumulate v1*v2 into (r1,c2).
//
// Behavior highlights:
//   - Grouping turns the naive nnz(a)*nnz(b) cross product into
//     O(nnz(a) * avg row density of b); the accumulated values are invariant
//     to grouping since every matching pair is visited exactly once.
//   - A zero inner product is stored if any pair touched the cell; Mul does
//     not filter cancellations.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(nnz(b) + nnz(a)*rowDensity(b)), Space O(nnz(out) + nnz(b)).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	out, err := New(a.rows, b.cols)
	if err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	// Index b by row once; slices keep b's insertion order within each row.
	byRow := make(map[int][]coord, b.rows)
	for _, k := range b.order {
		byRow[k.r] = append(byRow[k.r], k)
	}

	var v1 int64
	for _, ka := range a.order { // deterministic scan of a
		v1 = a.values[ka]
		for _, kb := range byRow[ka.c] { // only matching inner indices
			_ = out.Set(ka.r, kb.c, out.Get(ka.r, kb.c)+v1*b.values[kb])
		}
	}

	return out, nil
}

// Transpose returns a fresh cols×rows matrix with every stored entry (r,c,v)
// mapped to (c,r,v), insertion order preserved. The operand is not mutated.
// Errors: ErrNilMatrix.
// Complexity: O(nnz).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}

	out, err := New(m.cols, m.rows)
	if err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}
	for _, k := range m.order {
		_ = out.Set(k.c, k.r, m.values[k])
	}

	return out, nil
}

// Scale returns a fresh matrix with every stored entry multiplied by alpha,
// insertion order and explicit zeros preserved (alpha == 0 yields a matrix of
// explicit zeros, not an empty store). The operand is not mutated.
// Errors: ErrNilMatrix.
// Complexity: O(nnz).
func Scale(m *Matrix, alpha int64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opScale, err)
	}

	out, err := New(m.rows, m.cols)
	if err != nil {
		return nil, sparseErrorf(opScale, err)
	}
	for _, k := range m.order {
		_ = out.Set(k.r, k.c, alpha*m.values[k])
	}

	return out, nil
}
