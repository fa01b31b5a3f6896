// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/coordinate checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package sparse

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Inputs: *Matrix value.
// Returns: ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil operand"
	}

	return nil
}

// ValidateBinaryNotNil ensures both operands of a binary operation are
// non-nil, left before right.
// Complexity: O(1).
func ValidateBinaryNotNil(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures the inner dimensions agree for multiplication
// (a.Cols == b.Rows).
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateCoordinate ensures row and col are non-negative. Negative indices
// are not supported by the growth logic; rejecting them here keeps Set from
// silently corrupting the dimension pair.
// Returns: nil or wrapped ErrInvalidCoordinate.
// Complexity: O(1).
func ValidateCoordinate(row, col int) error {
	if row < 0 {
		return validatorErrorf("ValidateCoordinate: Row", ErrInvalidCoordinate)
	}
	if col < 0 {
		return validatorErrorf("ValidateCoordinate: Column", ErrInvalidCoordinate)
	}

	return nil
}
