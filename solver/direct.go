// SPDX-License-Identifier: MIT
// Package: OpenPNM/solver
//
// direct.go — direct solves: the module's pivoted LU and gonum's mat.LU.

package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/nv4dll-git/OpenPNM/matrix"
)

// solveNativeLU expands A to Dense and solves by pivoted LU.
// Complexity: O(n^3) time, O(n^2) space.
func solveNativeLU(a *matrix.CSR, b []float64) ([]float64, error) {
	d, err := a.ToDense()
	if err != nil {
		return nil, err
	}
	f, err := matrix.Factorize(d)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}

// solveGonumLU solves through gonum's LU. An ill-conditioned or singular
// factorization (mat.Condition) is reported as matrix.ErrSingular.
func solveGonumLU(a *matrix.CSR, b []float64) ([]float64, error) {
	n := a.Rows()
	dense := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		cols, vals := a.Row(i)
		for k, j := range cols {
			dense.Set(i, j, vals[k])
		}
	}

	var lu mat.LU
	lu.Factorize(dense)
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(n, append([]float64(nil), b...))); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("gonum LU (condition %g): %w", float64(cond), matrix.ErrSingular)
		}
		return nil, err
	}

	return mat.Col(nil, 0, &x), nil
}
