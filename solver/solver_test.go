// SPDX-License-Identifier: MIT
package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nv4dll-git/OpenPNM/matrix"
	"github.com/nv4dll-git/OpenPNM/solver"
)

// poissonChain assembles an n-node conductance chain with both ends tied to
// ground through gEnd, driven by a unit injection at node 0.
func poissonChain(t *testing.T, n int, g, gEnd float64) (*matrix.CSR, []float64) {
	t.Helper()
	asm, err := matrix.NewAssembler(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, asm.StampConductance(i, i+1, g))
	}
	require.NoError(t, asm.AddElement(0, 0, gEnd))
	require.NoError(t, asm.AddElement(n-1, n-1, gEnd))
	require.NoError(t, asm.AddRHS(0, gEnd))
	a, b := asm.Build()

	return a, b
}

func TestSettings_Validate(t *testing.T) {
	require.NoError(t, solver.DefaultSettings().Validate())

	tests := []struct {
		name   string
		mutate func(*solver.Settings)
		want   error
	}{
		{"family", func(s *solver.Settings) { s.Family = "scipy" }, solver.ErrBadSettings},
		{"type", func(s *solver.Settings) { s.Type = "gmres" }, solver.ErrBadSettings},
		{"precond", func(s *solver.Settings) { s.Preconditioner = "ilu" }, solver.ErrBadSettings},
		{"tol", func(s *solver.Settings) { s.Tol = 0 }, solver.ErrBadSettings},
		{"maxiter", func(s *solver.Settings) { s.MaxIter = -1 }, solver.ErrBadSettings},
		{"gonum iterative", func(s *solver.Settings) { s.Family, s.Type = solver.FamilyGonum, solver.TypeCG }, solver.ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := solver.DefaultSettings()
			tt.mutate(&s)
			require.ErrorIs(t, s.Validate(), tt.want)
		})
	}

	require.Equal(t, "native/direct", solver.DefaultSettings().String())
	s := solver.DefaultSettings()
	s.Type = solver.TypeCG
	require.Equal(t, "native/cg(jacobi)", s.String())
}

func TestSolve_AllMethodsAgree(t *testing.T) {
	a, b := poissonChain(t, 25, 3e-12, 1e-11)
	ref, rep, err := solver.Solve(context.Background(), a, b, solver.DefaultSettings())
	require.NoError(t, err)
	require.Zero(t, rep.Iterations)
	require.Less(t, rep.Residual, 1e-12)

	combos := []solver.Settings{
		{Family: solver.FamilyGonum, Type: solver.TypeDirect, Preconditioner: solver.PrecondNone},
		{Family: solver.FamilyNative, Type: solver.TypeCG, Preconditioner: solver.PrecondNone},
		{Family: solver.FamilyNative, Type: solver.TypeCG, Preconditioner: solver.PrecondJacobi},
		{Family: solver.FamilyNative, Type: solver.TypeBiCGStab, Preconditioner: solver.PrecondNone},
		{Family: solver.FamilyNative, Type: solver.TypeBiCGStab, Preconditioner: solver.PrecondJacobi},
	}
	for _, s := range combos {
		s.Tol, s.MaxIter = 1e-12, 1000
		t.Run(s.String(), func(t *testing.T) {
			x, rep, err := solver.Solve(context.Background(), a, b, s)
			require.NoError(t, err)
			require.InDeltaSlice(t, ref, x, 1e-8)
			require.LessOrEqual(t, rep.Residual, 1e-10)
		})
	}
}

func TestSolve_NonSymmetricBiCGStab(t *testing.T) {
	asm, err := matrix.NewAssembler(3)
	require.NoError(t, err)
	for _, e := range []struct {
		i, j int
		v    float64
	}{{0, 0, 4}, {0, 1, 1}, {1, 0, 2}, {1, 1, 5}, {1, 2, 1}, {2, 1, 3}, {2, 2, 6}} {
		require.NoError(t, asm.AddElement(e.i, e.j, e.v))
	}
	require.NoError(t, asm.AddRHS(0, 1))
	require.NoError(t, asm.AddRHS(2, 2))
	a, b := asm.Build()

	ref, _, err := solver.Solve(context.Background(), a, b, solver.DefaultSettings())
	require.NoError(t, err)

	s := solver.DefaultSettings()
	s.Type, s.Tol = solver.TypeBiCGStab, 1e-12
	x, _, err := solver.Solve(context.Background(), a, b, s)
	require.NoError(t, err)
	require.InDeltaSlice(t, ref, x, 1e-9)
}

func TestSolve_Failures(t *testing.T) {
	ctx := context.Background()
	a, b := poissonChain(t, 30, 1, 1)

	s := solver.DefaultSettings()
	s.Type, s.MaxIter = solver.TypeCG, 1
	_, rep, err := solver.Solve(ctx, a, b, s)
	require.ErrorIs(t, err, solver.ErrNotConverged)
	require.Equal(t, 1, rep.Iterations)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = solver.Solve(cancelled, a, b, solver.DefaultSettings())
	require.ErrorIs(t, err, context.Canceled)

	_, _, err = solver.Solve(ctx, a, b[:3], solver.DefaultSettings())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	bad := solver.DefaultSettings()
	bad.Tol = -1
	_, _, err = solver.Solve(ctx, a, b, bad)
	require.ErrorIs(t, err, solver.ErrBadSettings)

	// Floating Laplacian: no ground, singular.
	asm, err := matrix.NewAssembler(3)
	require.NoError(t, err)
	require.NoError(t, asm.StampConductance(0, 1, 1))
	require.NoError(t, asm.StampConductance(1, 2, 1))
	require.NoError(t, asm.AddRHS(0, 1))
	lap, rhs := asm.Build()
	for _, fam := range []solver.Family{solver.FamilyNative, solver.FamilyGonum} {
		s := solver.DefaultSettings()
		s.Family = fam
		_, _, err = solver.Solve(ctx, lap, rhs, s)
		require.ErrorIs(t, err, matrix.ErrSingular, string(fam))
	}

	// CG refuses a non-symmetric system; the direct solve accepts it.
	skew, err := matrix.NewAssembler(3)
	require.NoError(t, err)
	require.NoError(t, skew.StampConductance(0, 1, 1))
	require.NoError(t, skew.StampConductance(1, 2, 1))
	require.NoError(t, skew.AddElement(0, 0, 1))
	require.NoError(t, skew.AddElement(0, 2, 0.3))
	require.NoError(t, skew.AddRHS(0, 1))
	asym, rhs := skew.Build()
	cg := solver.DefaultSettings()
	cg.Type = solver.TypeCG
	_, _, err = solver.Solve(ctx, asym, rhs, cg)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	_, _, err = solver.Solve(ctx, asym, rhs, solver.DefaultSettings())
	require.NoError(t, err)
}

func TestSolve_ZeroRHSAndInitialGuess(t *testing.T) {
	a, b := poissonChain(t, 10, 1, 1)
	x, rep, err := solver.Solve(context.Background(), a, make([]float64, 10), solver.DefaultSettings())
	require.NoError(t, err)
	require.Equal(t, make([]float64, 10), x)
	require.Zero(t, rep.Iterations)

	ref, _, err := solver.Solve(context.Background(), a, b, solver.DefaultSettings())
	require.NoError(t, err)
	s := solver.DefaultSettings()
	s.Type = solver.TypeCG
	_, rep, err = solver.Solve(context.Background(), a, b, s, solver.WithInitialGuess(ref))
	require.NoError(t, err)
	require.Zero(t, rep.Iterations, "exact initial guess converges immediately")

	_, _, err = solver.Solve(context.Background(), a, b, s, solver.WithInitialGuess([]float64{1}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolve_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a, b := poissonChain(t, 5, 1, 1)
	_, _, err := solver.Solve(context.Background(), a, b, solver.DefaultSettings(), solver.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("solve finished").Len())

	require.Panics(t, func() { solver.WithLogger(nil) })
}
