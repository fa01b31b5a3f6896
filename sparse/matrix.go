// SPDX-License-Identifier: MIT

// Package sparse - coordinate-keyed storage & accessors.
//
// Purpose:
//   - Provide the dictionary-keyed element store with lazy dimension growth.
//   - Guarantee safety at the public surface: Set returns errors instead of
//     panicking, Get never fails.
//   - Keep observable behavior deterministic: serialization and arithmetic
//     traverse the insertion-order slice, never the map.
//
// Complexity quicksheet:
//   - New: O(1); Get/Set: O(1) amortized; Clone: O(nnz); String: O(nnz).

package sparse

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew = "New" // ctor tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// matrixErrorf wraps a sentinel with method context and callsite coordinates.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// New creates an empty rows×cols matrix with no stored elements.
//
// Implementation:
//   - Stage 1: validate rows >= 0 and cols >= 0; else ErrInvalidDimensions.
//   - Stage 2: allocate the empty store.
//
// Behavior highlights:
//   - Zero dimensions are legal and denote an empty matrix.
//   - Dimensions are a starting point, not a bound: Set grows them on demand.
//
// Inputs:
//   - rows, cols: non-negative logical dimensions.
//
// Returns:
//   - *Matrix: newly allocated empty matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}

	return &Matrix{
		rows:   rows,
		cols:   cols,
		values: make(map[coord]int64),
	}, nil
}

// Rows returns the logical row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the logical column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored entries, explicit zeros included.
// Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.values) }

// Get returns the stored value at (row, col), or 0 when the coordinate is
// absent. Out-of-range and negative coordinates simply read as 0; Get never
// fails and cannot distinguish an explicit zero from an absent entry.
// Complexity: O(1).
func (m *Matrix) Get(row, col int) int64 {
	return m.values[coord{r: row, c: col}] // zero value for missing keys
}

// Set stores v at (row, col), inserting or overwriting.
//
// Implementation:
//   - Stage 1: reject negative coordinates (growth logic assumes non-negative).
//   - Stage 2: grow rows/cols to row+1/col+1 when the coordinate is out of
//     range (dimensions are never shrunk).
//   - Stage 3: write into the store; record first-insertion order.
//
// Behavior highlights:
//   - Overwriting a coordinate keeps its original insertion position and
//     updates the value; serialization order is unaffected.
//   - Storing 0 is a real insertion: the entry stays in the store and is
//     emitted by ToText as an explicit zero.
//
// Inputs:
//   - row, col: non-negative coordinates.
//   - v: signed value to store.
//
// Returns:
//   - nil on success.
//
// Errors:
//   - ErrInvalidCoordinate when row < 0 or col < 0.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) per new entry.
func (m *Matrix) Set(row, col int, v int64) error {
	if err := ValidateCoordinate(row, col); err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	// Lazy dimensioning: an out-of-range write enlarges the matrix.
	if row >= m.rows {
		m.rows = row + 1
	}
	if col >= m.cols {
		m.cols = col + 1
	}

	k := coord{r: row, c: col}
	if _, exists := m.values[k]; !exists {
		m.order = append(m.order, k) // first insertion fixes the position
	}
	m.values[k] = v

	return nil
}

// Clone returns a deep copy. The returned matrix is fully independent of the
// original: mutations on either side are invisible to the other.
// Complexity: O(nnz) time and space.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{
		rows:   m.rows,
		cols:   m.cols,
		values: make(map[coord]int64, len(m.values)),
		order:  make([]coord, len(m.order)),
	}
	copy(cp.order, m.order)
	for k, v := range m.values {
		cp.values[k] = v
	}

	return cp
}

// String implements fmt.Stringer using the serialized text form, which is the
// natural human-readable dump of a sparse store. Not for hot paths.
func (m *Matrix) String() string { return m.ToText() }
