// SPDX-License-Identifier: MIT
// Package: OpenPNM/solver
//
// precond.go — preconditioners M⁻¹ applied as z = M⁻¹·r.

package solver

import "github.com/nv4dll-git/OpenPNM/matrix"

type preconditioner interface {
	apply(r, z []float64)
}

// identity is the "none" preconditioner.
type identity struct{}

func (identity) apply(r, z []float64) { copy(z, r) }

// jacobi scales by the inverse diagonal. Zero diagonal entries fall back to 1.
type jacobi struct{ inv []float64 }

func (p jacobi) apply(r, z []float64) {
	for i, v := range r {
		z[i] = v * p.inv[i]
	}
}

func newPreconditioner(kind Preconditioner, a *matrix.CSR) preconditioner {
	if kind != PrecondJacobi {
		return identity{}
	}
	d := a.Diagonal()
	for i, v := range d {
		if v == 0 {
			d[i] = 1
			continue
		}
		d[i] = 1 / v
	}

	return jacobi{inv: d}
}
