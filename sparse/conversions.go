// SPDX-License-Identifier: MIT

// Package sparse - dense interchange with blas64.General.
//
// Purpose:
//   - Export the sparse store into the row-major blas64.General layout that
//     BLAS-backed numeric code consumes, and ingest such a layout back.
//   - Keep the boundary lossless for integer data: ingestion rejects NaN/Inf
//     and fractional values instead of truncating.
//
// Notes:
//   - These are converters at the package boundary; the kernels in ops.go
//     never materialize dense storage.
//   - blas64.General is used purely as an interchange struct here; no BLAS
//     kernel is invoked.

package sparse

import (
	"fmt"
	"math"

	"github.com/gonum/blas/blas64"
)

// ---------- error context tags ----------

const (
	ctxToGeneral   = "ToGeneral"
	ctxFromGeneral = "FromGeneral"
)

// ToGeneral materializes the matrix as a row-major blas64.General with
// Stride == Cols. Absent cells become 0.0; explicit zeros are
// indistinguishable from absent cells in the dense form.
//
// Errors:
//   - ErrNilMatrix on a nil operand.
//
// Complexity:
//   - Time O(rows*cols) for the zeroed allocation plus O(nnz) fill.
func ToGeneral(m *Matrix) (blas64.General, error) {
	if err := ValidateNotNil(m); err != nil {
		return blas64.General{}, sparseErrorf(ctxToGeneral, err)
	}

	g := blas64.General{
		Rows:   m.rows,
		Cols:   m.cols,
		Stride: m.cols,
		Data:   make([]float64, m.rows*m.cols),
	}
	for _, k := range m.order {
		g.Data[k.r*g.Stride+k.c] = float64(m.values[k])
	}

	return g, nil
}

// FromGeneral ingests a row-major blas64.General into a fresh Matrix.
//
// Implementation:
//   - Stage 1: validate shape (Rows/Cols >= 0, Stride >= Cols, Data long
//     enough for the last row).
//   - Stage 2: scan cells in row-major order; reject NaN/±Inf (ErrNonFinite)
//     and fractional values (ErrNonInteger).
//   - Stage 3: store each admitted value; zeros are skipped unless
//     WithKeepZeros was supplied.
//
// Behavior highlights:
//   - Row-major scan order fixes the insertion order of the result, so
//     serialization of ingested matrices is deterministic.
//
// Errors:
//   - ErrInvalidDimensions, ErrNonFinite, ErrNonInteger.
//
// Complexity:
//   - Time O(Rows*Cols), Space O(nnz).
func FromGeneral(g blas64.General, opts ...Option) (*Matrix, error) {
	if g.Rows < 0 || g.Cols < 0 || g.Stride < g.Cols {
		return nil, sparseErrorf(ctxFromGeneral, ErrInvalidDimensions)
	}
	if g.Rows > 0 && len(g.Data) < (g.Rows-1)*g.Stride+g.Cols {
		return nil, sparseErrorf(ctxFromGeneral, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	m, err := New(g.Rows, g.Cols)
	if err != nil {
		return nil, sparseErrorf(ctxFromGeneral, err)
	}

	var v float64
	for i := 0; i < g.Rows; i++ { // deterministic row-major scan
		for j := 0; j < g.Cols; j++ {
			v = g.Data[i*g.Stride+j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxFromGeneral, i, j, ErrNonFinite)
			}
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxFromGeneral, i, j, ErrNonInteger)
			}
			if v == 0 && !o.keepZeros {
				continue // absent, not explicit zero
			}
			_ = m.Set(i, j, int64(v))
		}
	}

	return m, nil
}
