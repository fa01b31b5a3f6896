// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

// --- Add ----------------------------------------------------------------------

func TestAdd_DisjointEntries(t *testing.T) {
	t.Parallel()

	a := newFilled(t, 2, 2, [3]int64{0, 0, 1})
	b := newFilled(t, 2, 2, [3]int64{1, 1, 2})

	sum, err := sparse.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, sum.Rows())
	require.Equal(t, 2, sum.Cols())
	require.Contains(t, sum.ToText(), "(0, 0, 1)")
	require.Contains(t, sum.ToText(), "(1, 1, 2)")
}

func TestAdd_ElementwiseProperty(t *testing.T) {
	t.Parallel()

	a := newFilled(t, 3, 3, [3]int64{0, 0, 1}, [3]int64{1, 2, -4}, [3]int64{2, 2, 7})
	b := newFilled(t, 3, 3, [3]int64{0, 0, 5}, [3]int64{1, 2, 4}, [3]int64{0, 2, 3})

	sum, err := sparse.Add(a, b)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(t, a.Get(r, c)+b.Get(r, c), sum.Get(r, c), "at (%d,%d)", r, c)
		}
	}
}

func TestAdd_CancellationKeepsExplicitZero(t *testing.T) {
	t.Parallel()

	a := newFilled(t, 2, 2, [3]int64{0, 0, 5})
	b := newFilled(t, 2, 2, [3]int64{0, 0, -5})

	sum, err := sparse.Add(a, b)
	require.NoError(t, err)
	// Entries summing to zero are not filtered out of the store.
	require.Equal(t, 1, sum.NNZ())
	require.Contains(t, sum.ToText(), "(0, 0, 0)")
}

func TestAdd_DimensionMismatch_Err(t *testing.T) {
	t.Parallel()

	a := mustNew(t, 2, 2)
	b := mustNew(t, 2, 3)
	_, err := sparse.Add(a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	c := mustNew(t, 3, 2)
	_, err = sparse.Add(a, c)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestAdd_NilOperand_Err(t *testing.T) {
	t.Parallel()

	a := mustNew(t, 1, 1)
	_, err := sparse.Add(nil, a)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Add(a, nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// --- Sub ----------------------------------------------------------------------

func TestSub_ElementwiseProperty(t *testing.T) {
	t.Parallel()

	a := newFilled(t, 2, 3, [3]int64{0, 0, 10}, [3]int64{1, 2, 3})
	b := newFilled(t, 2, 3, [3]int64{0, 0, 4}, [3]int64{0, 1, -2})

	diff, err := sparse.Sub(a, b)
	require.NoError(t, err)
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(t, a.Get(r, c)-b.Get(r, c), diff.Get(r, c), "at (%d,%d)", r, c)
		}
	}
}

func TestSub_DimensionMismatch_Err(t *testing.T) {
	t.Parallel()

	a := mustNew(t, 2, 2)
	b := mustNew(t, 3, 3)
	_, err := sparse.Sub(a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// --- Mul ----------------------------------------------------------------------

func TestMul_KnownProduct(t *testing.T) {
	t.Parallel()

	// |1 2|   |4 0|   |14 12|
	// |0 3| × |5 6| = |15 18|
	a := newFilled(t, 2, 2, [3]int64{0, 0, 1}, [3]int64{0, 1, 2}, [3]int64{1, 1, 3})
	b := newFilled(t, 2, 2, [3]int64{0, 0, 4}, [3]int64{1, 0, 5}, [3]int64{1, 1, 6})

	prod, err := sparse.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, prod.Rows())
	require.Equal(t, 2, prod.Cols())
	require.EqualValues(t, 14, prod.Get(0, 0))
	require.EqualValues(t, 12, prod.Get(0, 1))
	require.EqualValues(t, 15, prod.Get(1, 0))
	require.EqualValues(t, 18, prod.Get(1, 1))
}

func TestMul_RectangularProperty(t *testing.T) {
	t.Parallel()

	a := newFilled(t, 2, 3, [3]int64{0, 0, 2}, [3]int64{0, 2, -1}, [3]int64{1, 1, 3})
	b := newFilled(t, 3, 2, [3]int64{0, 1, 4}, [3]int64{1, 0, 5}, [3]int64{2, 1, 6})

	prod, err := sparse.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, prod.Rows())
	require.Equal(t, 2, prod.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			var want int64
			for k := 0; k < 3; k++ {
				want += a.Get(r, k) * b.Get(k, c)
			}
			require.Equal(t, want, prod.Get(r, c), "at (%d,%d)", r, c)
		}
	}
}

func TestMul_SparseCellsStayAbsent(t *testing.T) {
	t.Parallel()

	// Only cells touched by a matching pair are stored.
	a := newFilled(t, 2, 2, [3]int64{0, 0, 1})
	b := newFilled(t, 2, 2, [3]int64{0, 0, 1})

	prod, err := sparse.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, prod.NNZ())
	require.EqualValues(t, 1, prod.Get(0, 0))
}

func TestMul_InnerDimensionMismatch_Err(t *testing.T) {
	t.Parallel()

	a := mustNew(t, 2, 3)
	b := mustNew(t, 2, 3)
	_, err := sparse.Mul(a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// --- purity -------------------------------------------------------------------

func TestOps_NeverMutateOperands(t *testing.T) {
	t.Parallel()

	a := newFilled(t, 2, 2, [3]int64{0, 0, 1}, [3]int64{1, 0, 2})
	b := newFilled(t, 2, 2, [3]int64{0, 0, 3}, [3]int64{0, 1, 4})
	beforeA, beforeB := a.ToText(), b.ToText()

	_, err := sparse.Add(a, b)
	require.NoError(t, err)
	_, err = sparse.Sub(a, b)
	require.NoError(t, err)
	_, err = sparse.Mul(a, b)
	require.NoError(t, err)
	_, err = sparse.Transpose(a)
	require.NoError(t, err)
	_, err = sparse.Scale(a, -3)
	require.NoError(t, err)

	require.Equal(t, beforeA, a.ToText())
	require.Equal(t, beforeB, b.ToText())
}

// --- Transpose / Scale --------------------------------------------------------

func TestTranspose_MapsCoordinates(t *testing.T) {
	t.Parallel()

	m := newFilled(t, 2, 3, [3]int64{0, 2, 5}, [3]int64{1, 0, -1})
	tr, err := sparse.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.EqualValues(t, 5, tr.Get(2, 0))
	require.EqualValues(t, -1, tr.Get(0, 1))
	require.Equal(t, m.NNZ(), tr.NNZ())
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	m := newFilled(t, 3, 2, [3]int64{2, 1, 8}, [3]int64{0, 0, -4})
	tr, err := sparse.Transpose(m)
	require.NoError(t, err)
	back, err := sparse.Transpose(tr)
	require.NoError(t, err)
	require.Equal(t, m.ToText(), back.ToText())
}

func TestScale_MultipliesEveryEntry(t *testing.T) {
	t.Parallel()

	m := newFilled(t, 2, 2, [3]int64{0, 0, 3}, [3]int64{1, 1, -2})
	sc, err := sparse.Scale(m, 4)
	require.NoError(t, err)
	require.EqualValues(t, 12, sc.Get(0, 0))
	require.EqualValues(t, -8, sc.Get(1, 1))
}

func TestScale_ByZero_KeepsExplicitZeros(t *testing.T) {
	t.Parallel()

	m := newFilled(t, 2, 2, [3]int64{0, 0, 3}, [3]int64{1, 1, -2})
	sc, err := sparse.Scale(m, 0)
	require.NoError(t, err)
	require.Equal(t, 2, sc.NNZ())
	require.Equal(t, "rows=2\ncols=2\n(0, 0, 0)\n(1, 1, 0)", sc.ToText())
}

func TestTransposeScale_Nil_Err(t *testing.T) {
	t.Parallel()

	_, err := sparse.Transpose(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Scale(nil, 2)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}
