// SPDX-License-Identifier: MIT

// Shared helpers for the sparse package tests. Helpers fail the calling test
// immediately; they never return partially constructed matrices.

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

// mustNew constructs an empty rows×cols matrix or fails the test.
func mustNew(t *testing.T, rows, cols int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(rows, cols)
	require.NoError(t, err)

	return m
}

// mustSet writes one entry or fails the test.
func mustSet(t *testing.T, m *sparse.Matrix, row, col int, v int64) {
	t.Helper()
	require.NoError(t, m.Set(row, col, v))
}

// mustFromText parses serialized text or fails the test.
func mustFromText(t *testing.T, text string) *sparse.Matrix {
	t.Helper()
	m, err := sparse.FromText(text)
	require.NoError(t, err)

	return m
}

// newFilled builds a rows×cols matrix from (row, col, value) triples in the
// given order, so tests control insertion order explicitly.
func newFilled(t *testing.T, rows, cols int, triples ...[3]int64) *sparse.Matrix {
	t.Helper()
	m := mustNew(t, rows, cols)
	for _, tr := range triples {
		mustSet(t, m, int(tr[0]), int(tr[1]), tr[2])
	}

	return m
}
