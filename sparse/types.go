// SPDX-License-Identifier: MIT

// Package sparse: domain types for the coordinate-keyed store.
// This file intentionally contains ONLY the storage types. Errors live in
// errors.go, options in options.go, per the package conventions.
package sparse

// coord is a packed (row, col) key into the element store. Using ints keeps
// the key compact and hash-friendly; a formatted string key would pay an
// allocation and a parse on every access.
// Complexity: O(1) to build; hashed in O(1) by the runtime.
type coord struct {
	r int // row index (>= 0)
	c int // column index (>= 0)
}

// Matrix is a sparse integer matrix with dictionary-keyed storage.
//
// Only explicitly stored entries are retained; every other position reads as
// zero. A position explicitly set to 0 remains in the store and round-trips
// through serialization as an explicit zero entry — absence and explicit-zero
// are distinct storage states, though Get reports 0 for both.
//
// order records first-insertion order of keys so that serialization is
// deterministic without sorting and without ranging over the map: an
// overwritten coordinate keeps its original position with the updated value.
// Invariant: order holds each key of values exactly once, and len(order) ==
// len(values).
type Matrix struct {
	rows   int             // logical row count (>= 0); grows on out-of-range Set
	cols   int             // logical column count (>= 0); grows on out-of-range Set
	values map[coord]int64 // stored entries, including explicit zeros
	order  []coord         // first-insertion order of keys in values
}
