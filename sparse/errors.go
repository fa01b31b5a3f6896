// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential (line number, offending text, path),
// wrap with fmt.Errorf("ctx: %w", ErrX) at the detection site — callers will
// still use errors.Is to match.

var (
	// ErrSourceNotFound indicates that the underlying input location could not
	// be opened or read. Wraps carry the identifying path.
	ErrSourceNotFound = errors.New("sparse: source not found")

	// ErrMalformedHeader indicates that one of the two dimension lines is
	// missing or unparseable. Wraps identify which line failed.
	ErrMalformedHeader = errors.New("sparse: malformed header")

	// ErrMalformedElement indicates that a body line does not parse as an
	// (int, int, int) triple. Wraps carry the offending line's original text.
	ErrMalformedElement = errors.New("sparse: malformed element")

	// ErrInvalidCoordinate indicates a negative row or column index where only
	// non-negative coordinates are supported by the growth logic.
	ErrInvalidCoordinate = errors.New("sparse: invalid coordinate")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g., Add/Sub with different dimensions, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrWrite indicates a failure while persisting serialized text to a
	// destination. Wraps carry the identifying path.
	ErrWrite = errors.New("sparse: write failed")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil *Matrix operand was passed to an
	// operation or converter.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNonFinite signals a NaN or ±Inf value encountered during dense
	// ingestion, where only finite values can map to stored integers.
	ErrNonFinite = errors.New("sparse: NaN or Inf encountered")

	// ErrNonInteger signals a dense value with a fractional part; silent
	// truncation would corrupt the integer store, so ingestion rejects it.
	ErrNonInteger = errors.New("sparse: non-integer value")
)
