// Package sparsemat is a small home for sparse integer matrices — stored as
// coordinate/value entries, exchanged as plain text, combined with pure
// algebraic operations.
//
// 🚀 What is sparsemat?
//
//	A single-purpose library that brings together:
//		• Coordinate store: packed (row, col) keys, zero cost for zero cells
//		• Lazy dimensioning: out-of-range writes grow the matrix, never fail
//		• Algebra: Add, Sub, row-grouped Mul, Transpose, Scale — all pure
//		• Text codec: human-editable "rows=/cols=/(r, c, v)" files that
//		  round-trip byte for byte
//		• Dense bridge: export/ingest blas64.General for numeric pipelines
//
// ✨ Why choose sparsemat?
//
//   - Minimal API, clear, intuitive naming
//   - Sentinel errors everywhere – inspect with errors.Is, no panics
//   - Costs scale with stored entries, never with rows*cols
//
// Under the hood, everything is organized under two packages:
//
//	sparse/    — the Matrix type, codec, validators and algebraic kernels
//	cmd/spmat/ — a thin command-line driver: load two matrices, apply one
//	             operation, save the result
//
// Quick example of the wire format:
//
//	rows=3
//	cols=3
//	(0, 1, 5)
//	(2, 2, -4)
//
//	go get github.com/katalvlaran/sparsemat/sparse
package sparsemat
