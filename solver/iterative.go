// SPDX-License-Identifier: MIT
// Package: OpenPNM/solver
//
// iterative.go — preconditioned Krylov methods over a matrix.Operator.
//
// Contract:
//   • Both methods stop when ‖r‖/‖b‖ ≤ tol, where r is the recursively
//     updated residual.
//   • ctx is checked once per iteration.
//   • Breakdown (zero denominator) and exhausting maxIter both yield
//     ErrNotConverged with the iteration count and residual.
//
// Complexity:
//   • One (CG) or two (BiCGStab) MatVec per iteration; O(n) extra vectors.

package solver

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/nv4dll-git/OpenPNM/matrix"
)

// initialResidual returns x (copied from x0 or zero) and r = b − A·x.
func initialResidual(a matrix.Operator, b, x0 []float64) ([]float64, []float64) {
	n := len(b)
	x := make([]float64, n)
	r := make([]float64, n)
	if x0 == nil {
		copy(r, b)
		return x, r
	}
	copy(x, x0)
	_ = a.MatVec(x, r)
	floats.SubTo(r, b, r)

	return x, r
}

func notConverged(method string, iter int, res float64) error {
	return fmt.Errorf("%s: %d iterations, residual %.3e: %w", method, iter, res, ErrNotConverged)
}

// conjugateGradient solves a symmetric positive definite system.
func conjugateGradient(ctx context.Context, a matrix.Operator, b []float64, m preconditioner, x0 []float64, tol float64, maxIter int) ([]float64, int, error) {
	const method = "cg"
	n := len(b)
	bnorm := floats.Norm(b, 2)
	x, r := initialResidual(a, b, x0)
	if floats.Norm(r, 2)/bnorm <= tol {
		return x, 0, nil
	}

	z := make([]float64, n)
	m.apply(r, z)
	p := append([]float64(nil), z...)
	ap := make([]float64, n)
	rz := floats.Dot(r, z)

	for k := 1; k <= maxIter; k++ {
		if err := ctx.Err(); err != nil {
			return nil, k - 1, err
		}
		if err := a.MatVec(p, ap); err != nil {
			return nil, k - 1, err
		}
		pap := floats.Dot(p, ap)
		if pap <= 0 {
			return nil, k, notConverged(method+" breakdown (matrix not positive definite)", k, floats.Norm(r, 2)/bnorm)
		}
		alpha := rz / pap
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)

		res := floats.Norm(r, 2) / bnorm
		if res <= tol {
			return x, k, nil
		}

		m.apply(r, z)
		rzNext := floats.Dot(r, z)
		beta := rzNext / rz
		rz = rzNext
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
	}

	return nil, maxIter, notConverged(method, maxIter, floats.Norm(r, 2)/bnorm)
}

// biCGStab solves a general (possibly non-symmetric) system with right
// preconditioning.
func biCGStab(ctx context.Context, a matrix.Operator, b []float64, m preconditioner, x0 []float64, tol float64, maxIter int) ([]float64, int, error) {
	const method = "bicgstab"
	n := len(b)
	bnorm := floats.Norm(b, 2)
	x, r := initialResidual(a, b, x0)
	if floats.Norm(r, 2)/bnorm <= tol {
		return x, 0, nil
	}

	rhat := append([]float64(nil), r...)
	var (
		p    = make([]float64, n)
		v    = make([]float64, n)
		phat = make([]float64, n)
		s    = make([]float64, n)
		shat = make([]float64, n)
		t    = make([]float64, n)
	)
	rho, alpha, omega := 1.0, 1.0, 1.0

	for k := 1; k <= maxIter; k++ {
		if err := ctx.Err(); err != nil {
			return nil, k - 1, err
		}
		rhoNext := floats.Dot(rhat, r)
		if rhoNext == 0 {
			return nil, k, notConverged(method+" breakdown (rho=0)", k, floats.Norm(r, 2)/bnorm)
		}
		beta := (rhoNext / rho) * (alpha / omega)
		rho = rhoNext
		for i := range p {
			p[i] = r[i] + beta*(p[i]-omega*v[i])
		}
		m.apply(p, phat)
		if err := a.MatVec(phat, v); err != nil {
			return nil, k, err
		}
		den := floats.Dot(rhat, v)
		if den == 0 {
			return nil, k, notConverged(method+" breakdown (rhat·v=0)", k, floats.Norm(r, 2)/bnorm)
		}
		alpha = rho / den
		floats.AddScaledTo(s, r, -alpha, v)
		if res := floats.Norm(s, 2) / bnorm; res <= tol {
			floats.AddScaled(x, alpha, phat)
			return x, k, nil
		}

		m.apply(s, shat)
		if err := a.MatVec(shat, t); err != nil {
			return nil, k, err
		}
		tt := floats.Dot(t, t)
		if tt == 0 {
			return nil, k, notConverged(method+" breakdown (t=0)", k, floats.Norm(s, 2)/bnorm)
		}
		omega = floats.Dot(t, s) / tt
		floats.AddScaled(x, alpha, phat)
		floats.AddScaled(x, omega, shat)
		floats.AddScaledTo(r, s, -omega, t)

		res := floats.Norm(r, 2) / bnorm
		if res <= tol {
			return x, k, nil
		}
		if omega == 0 {
			return nil, k, notConverged(method+" breakdown (omega=0)", k, res)
		}
	}

	return nil, maxIter, notConverged(method, maxIter, floats.Norm(r, 2)/bnorm)
}
