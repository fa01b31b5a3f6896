// Package sparse implements a coordinate-keyed sparse matrix of signed
// integers with a round-trippable plain-text format.
//
// The sparse package provides:
//
//   - A dictionary-keyed store (packed (row, col) → int64) where only
//     explicitly written entries occupy memory; every other position reads
//     as zero.
//   - Lazy dimensioning: writing past the declared bounds grows the matrix
//     instead of failing, and dimensions never shrink.
//   - Pure arithmetic (Add, Sub, Mul, Transpose, Scale) whose cost scales
//     with the number of stored entries, not with rows*cols.
//   - A text codec (FromText/FromFile, ToText/Save) that preserves insertion
//     order and explicit zero entries across round trips.
//   - Dense interchange with blas64.General for BLAS-backed consumers.
//
// Storage keeps a deliberate distinction between an absent entry and an entry
// explicitly set to 0: Get reports 0 for both, but only the latter is emitted
// by serialization. Existing files depend on this, so arithmetic and the
// codec never filter zeros.
//
// All failures are package-level sentinels (errors.go) matched via errors.Is;
// the package never logs and never panics on user input.
package sparse
