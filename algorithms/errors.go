// SPDX-License-Identifier: MIT
// Package: OpenPNM/algorithms
//
// errors.go — sentinel errors for transport algorithms.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w via algoErrorf.
//   • Solver and matrix failures (solver.ErrNotConverged, matrix.ErrSingular)
//     pass through wrapped and remain matchable.

package algorithms

import (
	"errors"
	"fmt"

	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/solver"
)

var (
	// ErrPoreOutOfRange indicates a pore index outside [0, Np).
	ErrPoreOutOfRange = core.ErrPoreOutOfRange

	// ErrNoPores indicates a boundary condition or source set on no pores.
	ErrNoPores = errors.New("algorithms: no pores given")

	// ErrValuesMismatch indicates values that neither match the pores in
	// length nor are a single scalar.
	ErrValuesMismatch = errors.New("algorithms: values do not align with pores")

	// ErrNonFinite indicates a NaN or ±Inf boundary value.
	ErrNonFinite = errors.New("algorithms: non-finite value")

	// ErrNoValueBC indicates Run without any value boundary condition.
	ErrNoValueBC = errors.New("algorithms: at least one value boundary condition is required")

	// ErrIsolatedCluster indicates a connected cluster without a value
	// boundary condition, which leaves the system singular.
	ErrIsolatedCluster = errors.New("algorithms: cluster has no value boundary condition")

	// ErrBadConductance indicates a missing, negative or non-finite throat
	// conductance.
	ErrBadConductance = errors.New("algorithms: invalid throat conductance")

	// ErrNotRun indicates results were requested before a successful Run.
	ErrNotRun = errors.New("algorithms: algorithm has not been run")

	// ErrNonUniformBC indicates inlet or outlet pores at different values
	// when computing an effective property.
	ErrNonUniformBC = errors.New("algorithms: inlet or outlet values are not uniform")

	// ErrBadDomain indicates a non-positive domain area or length, or a
	// domain that cannot be inferred.
	ErrBadDomain = errors.New("algorithms: invalid domain size")

	// ErrUnknownRateMode indicates a Rate mode other than group or single.
	ErrUnknownRateMode = errors.New("algorithms: unknown rate mode")

	// ErrNilSource indicates SetSourceTerm with a nil Source.
	ErrNilSource = errors.New("algorithms: nil source term")

	// ErrBadSettings indicates invalid algorithm or solver settings.
	ErrBadSettings = solver.ErrBadSettings

	// ErrNotConverged indicates the linear or the outer nonlinear iteration
	// did not converge.
	ErrNotConverged = solver.ErrNotConverged
)

// algoErrorf wraps err with the algorithm name and method:
// "<name>.<Method>: <err>".
func algoErrorf(name, method string, err error) error {
	return fmt.Errorf("%s.%s: %w", name, method, err)
}
