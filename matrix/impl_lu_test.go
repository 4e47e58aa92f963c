// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nv4dll-git/OpenPNM/matrix"
)

func TestFactorize_SolveNeedsPivoting(t *testing.T) {
	// A[0][0] == 0: a non-pivoting LU would fail here.
	a := MustDense(t, [][]float64{
		{0, 2, 1},
		{1, 1, 1},
		{2, 1, 3},
	})
	f, err := matrix.Factorize(a)
	require.NoError(t, err)
	require.Equal(t, 3, f.Size())

	want := []float64{1, -2, 3}
	b := make([]float64, 3)
	require.NoError(t, a.MatVec(want, b))

	x, err := f.Solve(b)
	require.NoError(t, err)
	require.InDeltaSlice(t, want, x, 1e-12)
}

func TestFactorize_Errors(t *testing.T) {
	_, err := matrix.Factorize(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Factorize(MustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	// Graph Laplacian without a boundary condition: rows sum to zero.
	lap := MustDense(t, [][]float64{
		{1, -1, 0},
		{-1, 2, -1},
		{0, -1, 1},
	})
	_, err = matrix.Factorize(lap)
	require.ErrorIs(t, err, matrix.ErrSingular)

	f, err := matrix.Factorize(MustDense(t, [][]float64{{2}}))
	require.NoError(t, err)
	_, err = f.Solve([]float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
