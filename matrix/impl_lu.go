// SPDX-License-Identifier: MIT
// Package matrix - LU factorization with partial pivoting.
//
// Purpose:
//   - Factor a square A into P·A = L·U (unit lower L, upper U) in one packed buffer.
//   - Solve A·x = b by forward and backward substitution against the factors.
//
// Determinism:
//   - Pivot choice is the first row holding the largest |a| in the column
//     (ties resolved by lowest row index), so results are bit-reproducible.

package matrix

import (
	"fmt"
	"math"
)

// machineEps is the float64 unit roundoff used to scale the singularity guard.
const machineEps = 2.220446049250313e-16

// LU holds a packed factorization: the strict lower triangle of lu stores L
// (unit diagonal implied), the upper triangle stores U, and piv[i] is the
// original row placed at position i.
type LU struct {
	n   int
	lu  []float64
	piv []int
}

// Factorize computes P·A = L·U with partial pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy it into a flat buffer
//     (fast path on *Dense, At fallback otherwise).
//   - Stage 2: For each column k pick the largest pivot at or below row k,
//     swap rows, then eliminate below the pivot.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when the best available pivot is ≤ n·eps·max|A|.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Factorize(m Matrix) (*LU, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFactorize, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opFactorize, err)
	}

	n := m.Rows()
	a := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(a, d.data)
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v, err := m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opFactorize, err)
				}
				a[i*n+j] = v
			}
		}
	}

	var scale float64
	for _, v := range a {
		if isNonFinite(v) {
			return nil, matrixErrorf(opFactorize, ErrNaNInf)
		}
		scale = math.Max(scale, math.Abs(v))
	}
	guard := float64(n) * machineEps * scale

	f := &LU{n: n, lu: a, piv: make([]int, n)}
	for i := range f.piv {
		f.piv[i] = i
	}

	for k := 0; k < n; k++ {
		// Stage 2a: pivot search.
		p := k
		best := math.Abs(a[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= guard || best == 0 {
			return nil, matrixErrorf(opFactorize, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j := 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			f.piv[k], f.piv[p] = f.piv[p], f.piv[k]
		}

		// Stage 2b: elimination.
		pivot := a[k*n+k]
		for i := k + 1; i < n; i++ {
			l := a[i*n+k] / pivot
			if l == 0 {
				continue // sparse rows skip the update
			}
			a[i*n+k] = l
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= l * a[k*n+j]
			}
		}
	}

	return f, nil
}

// Size returns the order n of the factored matrix.
func (f *LU) Size() int { return f.n }

// Solve returns x with A·x = b. The input b is not modified.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch when len(b) != n.
//
// Complexity: Time O(n^2), Space O(n).
func (f *LU) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.n
	x := make([]float64, n)
	for i, p := range f.piv {
		x[i] = b[p]
	}
	// Forward substitution: L·y = P·b (unit diagonal).
	for i := 1; i < n; i++ {
		sum := x[i]
		for k := 0; k < i; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward substitution: U·x = y.
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for k := i + 1; k < n; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum / f.lu[i*n+i]
	}

	return x, nil
}
