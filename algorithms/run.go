// SPDX-License-Identifier: MIT
// Package: OpenPNM/algorithms
//
// run.go — Run(ctx): validate, assemble, solve, store.

package algorithms

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/solver"
)

// Run assembles and solves the transport system, then stores the quantity
// and KeyThroatRate in the result store. A failed Run leaves earlier results
// in place.
//
// Implementation:
//   - Stage 1: Snapshot boundary conditions, sources and conductances.
//   - Stage 2: Require a value BC in every cluster joined by throats of
//     non-zero conductance.
//   - Stage 3: Solve once when all sources are linear; otherwise iterate,
//     re-linearizing sources around the relaxed solution until the relative
//     change ‖Δx‖∞ / ‖x‖∞ drops below NonlinearTol.
//   - Stage 4: Publish results, with the value BCs they were solved
//     under, under the write lock.
//
// Errors:
//   - ErrBadSettings, ErrNoValueBC, ErrIsolatedCluster, ErrBadConductance.
//   - ErrNotConverged from the linear solver or the outer iteration.
//   - matrix.ErrSingular from direct solvers.
//   - ctx.Err() on cancellation.
func (t *Transport) Run(ctx context.Context) error {
	start := time.Now()
	if err := t.settings.Validate(); err != nil {
		return algoErrorf(t.name, "Run", err)
	}
	snap, err := t.takeSnapshot()
	if err != nil {
		return algoErrorf(t.name, "Run", err)
	}
	if snap.nValue == 0 {
		return algoErrorf(t.name, "Run", ErrNoValueBC)
	}
	for _, cluster := range t.net.ClustersThrough(snap.conducting()) {
		if !anyFixed(cluster, snap.fixed) {
			return algoErrorf(t.name, "Run", fmt.Errorf("cluster of %d pores starting at pore %d: %w", len(cluster), cluster[0], ErrIsolatedCluster))
		}
	}
	t.logger.Debug("assembling",
		zap.String("algorithm", t.name),
		zap.Int("pores", snap.np),
		zap.Int("throats", len(snap.conns)),
		zap.Int("value_bcs", snap.nValue),
		zap.Int("rate_bcs", snap.nRate),
		zap.Int("sources", len(snap.sources)))

	x, rep, err := t.solve(ctx, snap)
	if err != nil {
		t.logger.Warn("run failed", zap.String("algorithm", t.name), zap.Error(err))
		return algoErrorf(t.name, "Run", err)
	}

	rates := make([]float64, len(snap.conns))
	for i, c := range snap.conns {
		rates[i] = snap.g[i] * (x[c[0]] - x[c[1]])
	}
	results, err := core.NewObject(t.name, snap.np, len(snap.conns))
	if err != nil {
		return algoErrorf(t.name, "Run", err)
	}
	if err = results.Set(t.settings.Quantity, x); err != nil {
		return algoErrorf(t.name, "Run", err)
	}
	if err = results.Set(KeyThroatRate, rates); err != nil {
		return algoErrorf(t.name, "Run", err)
	}
	if err = results.Set(t.settings.Conductance, snap.g); err != nil {
		return algoErrorf(t.name, "Run", err)
	}
	rep.FreePores = snap.np - snap.nValue
	rep.ValuePores = snap.nValue
	rep.RatePores = snap.nRate

	applied := make(map[int]float64, snap.nValue)
	for p, fixed := range snap.fixed {
		if fixed {
			applied[p] = snap.values[p]
		}
	}

	t.mu.Lock()
	t.results = results
	t.solved = true
	t.report = rep
	t.applied = applied
	t.mu.Unlock()

	t.logger.Info("run finished",
		zap.String("algorithm", t.name),
		zap.Stringer("solver", rep.Linear.Settings),
		zap.Int("outer_iterations", rep.Outer),
		zap.Int("iterations", rep.Linear.Iterations),
		zap.Float64("residual", rep.Linear.Residual),
		zap.Duration("duration", time.Since(start)))

	return nil
}

// solve runs the linear solve, wrapped in the outer iteration when a source
// is nonlinear.
func (t *Transport) solve(ctx context.Context, snap *snapshot) ([]float64, Report, error) {
	var rep Report
	opts := []solver.Option{solver.WithLogger(t.logger)}
	if !snap.nonlinear() {
		a, b, err := snap.assemble(nil)
		if err != nil {
			return nil, rep, err
		}
		x, lin, err := solver.Solve(ctx, a, b, t.settings.Solver, opts...)
		rep.Linear, rep.Outer = lin, 1
		return x, rep, err
	}

	x := make([]float64, snap.np)
	for p, fixed := range snap.fixed {
		if fixed {
			x[p] = snap.values[p]
		}
	}
	relax := t.settings.Relaxation
	delta := make([]float64, snap.np)
	for iter := 1; iter <= t.settings.NonlinearMaxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, rep, err
		}
		a, b, err := snap.assemble(x)
		if err != nil {
			return nil, rep, err
		}
		next, lin, err := solver.Solve(ctx, a, b, t.settings.Solver, append(opts, solver.WithInitialGuess(x))...)
		rep.Linear, rep.Outer = lin, iter
		if err != nil {
			return nil, rep, err
		}
		floats.SubTo(delta, next, x)
		floats.AddScaled(x, relax, delta)
		change := floats.Norm(delta, math.Inf(1))
		scale := math.Max(floats.Norm(x, math.Inf(1)), math.SmallestNonzeroFloat64)
		t.logger.Debug("outer iteration",
			zap.String("algorithm", t.name),
			zap.Int("iteration", iter),
			zap.Float64("change", change/scale))
		if change/scale < t.settings.NonlinearTol {
			return x, rep, nil
		}
	}

	return nil, rep, fmt.Errorf("outer iteration after %d steps: %w", rep.Outer, ErrNotConverged)
}

func anyFixed(pores []int, fixed []bool) bool {
	for _, p := range pores {
		if fixed[p] {
			return true
		}
	}

	return false
}
