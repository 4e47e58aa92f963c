// SPDX-License-Identifier: MIT
// Package: OpenPNM/solver
//
// solve.go — Solve(ctx, A, b, settings) dispatch.
//
// Contract:
//   • Settings are validated before any work.
//   • len(b) must equal the matrix order (matrix.ErrDimensionMismatch).
//   • b must be finite (matrix.ErrNaNInf).
//   • The returned Report is filled even when the solve fails, so callers
//     can log iterations and residual of a non-converged run.

package solver

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/nv4dll-git/OpenPNM/matrix"
)

const opSolve = "Solve"

// Report summarizes a finished solve.
type Report struct {
	Settings   Settings
	Iterations int           // 0 for direct solves
	Residual   float64       // final ‖b − A·x‖ / ‖b‖
	Duration   time.Duration // wall time of the solve
}

// Solve returns x with A·x ≈ b according to s.
//
// Errors:
//   - ErrBadSettings / ErrUnsupported from Settings.Validate.
//   - matrix.ErrDimensionMismatch, matrix.ErrNaNInf for a bad right-hand side.
//   - matrix.ErrSingular from direct factorization.
//   - matrix.ErrAsymmetry when CG is asked to solve a non-symmetric system.
//   - ErrNotConverged from iterative types.
//   - ctx.Err() when the context is cancelled between iterations.
func Solve(ctx context.Context, a *matrix.CSR, b []float64, s Settings, opts ...Option) ([]float64, Report, error) {
	rep := Report{Settings: s}
	if err := s.Validate(); err != nil {
		return nil, rep, solverErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, rep, solverErrorf(opSolve, err)
	}
	if err := matrix.ValidateFinite(b); err != nil {
		return nil, rep, solverErrorf(opSolve, err)
	}
	cfg := newSolveConfig(opts...)
	if cfg.x0 != nil {
		if err := matrix.ValidateVecLen(cfg.x0, a.Rows()); err != nil {
			return nil, rep, solverErrorf("Solve(x0)", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, rep, err
	}

	start := time.Now()
	n := a.Rows()
	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		rep.Duration = time.Since(start)
		return make([]float64, n), rep, nil
	}

	var (
		x   []float64
		err error
	)
	switch {
	case s.Type == TypeDirect && s.Family == FamilyGonum:
		x, err = solveGonumLU(a, b)
	case s.Type == TypeDirect:
		x, err = solveNativeLU(a, b)
	case s.Type == TypeCG:
		if !a.IsSymmetric() {
			err = fmt.Errorf("cg: %w", matrix.ErrAsymmetry)
			break
		}
		x, rep.Iterations, err = conjugateGradient(ctx, a, b, newPreconditioner(s.Preconditioner, a), cfg.x0, s.Tol, s.MaxIter)
	default:
		x, rep.Iterations, err = biCGStab(ctx, a, b, newPreconditioner(s.Preconditioner, a), cfg.x0, s.Tol, s.MaxIter)
	}
	rep.Duration = time.Since(start)
	if x != nil {
		rep.Residual = relativeResidual(a, x, b, bnorm)
	}
	if err != nil {
		cfg.logger.Debug("solve failed",
			zap.Stringer("solver", s),
			zap.Int("iterations", rep.Iterations),
			zap.Float64("residual", rep.Residual),
			zap.Error(err))
		return nil, rep, solverErrorf(opSolve, err)
	}
	cfg.logger.Debug("solve finished",
		zap.Stringer("solver", s),
		zap.Int("n", n),
		zap.Int("nnz", a.NNZ()),
		zap.Int("iterations", rep.Iterations),
		zap.Float64("residual", rep.Residual),
		zap.Duration("duration", rep.Duration))

	return x, rep, nil
}

// relativeResidual returns ‖b − A·x‖ / ‖b‖ for bnorm = ‖b‖ > 0.
func relativeResidual(a matrix.Operator, x, b []float64, bnorm float64) float64 {
	r := make([]float64, len(b))
	_ = a.MatVec(x, r) // lengths already validated
	floats.SubTo(r, b, r)

	return floats.Norm(r, 2) / bnorm
}
