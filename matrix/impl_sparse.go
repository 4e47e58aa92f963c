// SPDX-License-Identifier: MIT
// Package matrix - stamped assembly and compressed sparse row storage.
//
// Purpose:
//   - Assembler accumulates (row, col, value) stamps and right-hand-side
//     contributions the way a circuit simulator stamps device elements.
//   - Build compresses the stamps into CSR: rows ascending, columns ascending
//     within a row, duplicate (row, col) stamps summed.
//
// Determinism:
//   - Build sorts stamps with a stable order, so identical stamp sequences
//     produce identical CSR buffers.
//
// Complexity quicksheet:
//   - AddElement/AddRHS: O(1) amortized; Build: O(k log k) for k stamps;
//     MatVec: O(nnz); At: O(log row-nnz).

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Assembler collects stamps for a square n×n system A·x = b.
type Assembler struct {
	n     int
	rows  []int
	cols  []int
	vals  []float64
	rhs   []float64
	check bool // reject non-finite stamps
}

// NewAssembler creates an empty assembler for an n×n system.
//
// Errors:
//   - ErrInvalidDimensions when n ≤ 0.
func NewAssembler(n int, opts ...Option) (*Assembler, error) {
	if n <= 0 {
		return nil, matrixErrorf(opAssemble, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Assembler{n: n, rhs: make([]float64, n), check: o.validateNaNInf}, nil
}

// Size returns the system order n.
func (a *Assembler) Size() int { return a.n }

// AddElement stamps A[i][j] += v.
//
// Errors:
//   - ErrOutOfRange for i or j outside [0, n).
//   - ErrNaNInf for non-finite v under the default numeric policy.
func (a *Assembler) AddElement(i, j int, v float64) error {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return fmt.Errorf("%s.AddElement(%d,%d): %w", opAssemble, i, j, ErrOutOfRange)
	}
	if a.check && isNonFinite(v) {
		return fmt.Errorf("%s.AddElement(%d,%d): %w", opAssemble, i, j, ErrNaNInf)
	}
	a.rows = append(a.rows, i)
	a.cols = append(a.cols, j)
	a.vals = append(a.vals, v)

	return nil
}

// AddRHS stamps b[i] += v.
func (a *Assembler) AddRHS(i int, v float64) error {
	if i < 0 || i >= a.n {
		return fmt.Errorf("%s.AddRHS(%d): %w", opAssemble, i, ErrOutOfRange)
	}
	if a.check && isNonFinite(v) {
		return fmt.Errorf("%s.AddRHS(%d): %w", opAssemble, i, ErrNaNInf)
	}
	a.rhs[i] += v

	return nil
}

// StampConductance stamps a two-terminal conductance g between i and j:
// A[i][i] += g, A[j][j] += g, A[i][j] -= g, A[j][i] -= g.
func (a *Assembler) StampConductance(i, j int, g float64) error {
	if err := a.AddElement(i, i, g); err != nil {
		return err
	}
	if err := a.AddElement(j, j, g); err != nil {
		return err
	}
	if err := a.AddElement(i, j, -g); err != nil {
		return err
	}

	return a.AddElement(j, i, -g)
}

// Build compresses the stamps into a CSR matrix and returns a copy of the
// right-hand side. The assembler stays usable; later stamps accumulate on top.
func (a *Assembler) Build() (*CSR, []float64) {
	order := make([]int, len(a.vals))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(x, y int) bool {
		kx, ky := order[x], order[y]
		if a.rows[kx] != a.rows[ky] {
			return a.rows[kx] < a.rows[ky]
		}
		return a.cols[kx] < a.cols[ky]
	})

	m := &CSR{n: a.n, indptr: make([]int, a.n+1)}
	lastRow, lastCol := -1, -1
	for _, k := range order {
		r, c := a.rows[k], a.cols[k]
		if r == lastRow && c == lastCol {
			m.data[len(m.data)-1] += a.vals[k]
			continue
		}
		m.indices = append(m.indices, c)
		m.data = append(m.data, a.vals[k])
		m.indptr[r+1]++
		lastRow, lastCol = r, c
	}
	for i := 0; i < a.n; i++ {
		m.indptr[i+1] += m.indptr[i]
	}

	rhs := make([]float64, a.n)
	copy(rhs, a.rhs)

	return m, rhs
}

// CSR is a square compressed sparse row matrix.
// Row i occupies indices/data[indptr[i]:indptr[i+1]], columns ascending.
type CSR struct {
	n       int
	indptr  []int
	indices []int
	data    []float64
}

var _ Operator = (*CSR)(nil)

// Rows returns the order n.
func (m *CSR) Rows() int { return m.n }

// Cols returns the order n.
func (m *CSR) Cols() int { return m.n }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.data) }

// At returns A[i][j]; entries not stored are zero.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("CSR.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	cols := m.indices[m.indptr[i]:m.indptr[i+1]]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return m.data[m.indptr[i]+k], nil
	}

	return 0, nil
}

// Row returns the column indices and values of row i. The slices alias the
// matrix storage and must not be modified.
func (m *CSR) Row(i int) ([]int, []float64) {
	lo, hi := m.indptr[i], m.indptr[i+1]

	return m.indices[lo:hi], m.data[lo:hi]
}

// MatVec writes A·x into y. Complexity O(nnz).
func (m *CSR) MatVec(x, y []float64) error {
	if err := ValidateVecLen(x, m.n); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(y, m.n); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	for i := 0; i < m.n; i++ {
		var sum float64
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			sum += m.data[k] * x[m.indices[k]]
		}
		y[i] = sum
	}

	return nil
}

// Diagonal returns a fresh slice holding A[i][i] for every row.
func (m *CSR) Diagonal() []float64 {
	d := make([]float64, m.n)
	for i := range d {
		d[i], _ = m.At(i, i)
	}

	return d
}

// ToDense expands the matrix into a Dense copy.
func (m *CSR) ToDense() (*Dense, error) {
	rows := make([][]float64, m.n)
	for i := range rows {
		rows[i] = make([]float64, m.n)
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			rows[i][m.indices[k]] = m.data[k]
		}
	}
	d, err := NewDenseFrom(rows)
	if err != nil {
		return nil, matrixErrorf(opToDense, err)
	}

	return d, nil
}

// IsSymmetric reports whether |A[i][j] - A[j][i]| ≤ eps·max|A| for every
// stored entry. The tolerance comes from WithEpsilon (DefaultEpsilon otherwise)
// and is relative so it works for conductances of any magnitude.
func (m *CSR) IsSymmetric(opts ...Option) bool {
	o := gatherOptions(opts...)
	var scale float64
	for _, v := range m.data {
		scale = math.Max(scale, math.Abs(v))
	}
	tol := o.eps * scale
	for i := 0; i < m.n; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			j := m.indices[k]
			if j == i {
				continue
			}
			aji, _ := m.At(j, i)
			if math.Abs(m.data[k]-aji) > tol {
				return false
			}
		}
	}

	return true
}
