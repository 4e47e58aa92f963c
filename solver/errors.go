// SPDX-License-Identifier: MIT
// Package: OpenPNM/solver
//
// errors.go — sentinel errors for the solver package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Factorization failures surface matrix.ErrSingular unchanged.

package solver

import (
	"errors"
	"fmt"
)

// ErrBadSettings indicates an unknown family/type/preconditioner name or a
// non-positive tolerance or iteration cap.
var ErrBadSettings = errors.New("solver: invalid settings")

// ErrUnsupported indicates a valid combination this family cannot run,
// e.g. an iterative type under the gonum family.
var ErrUnsupported = errors.New("solver: unsupported solver combination")

// ErrNotConverged indicates an iterative method hit MaxIter or broke down
// before reaching Tol.
var ErrNotConverged = errors.New("solver: did not converge")

// solverErrorf wraps err with the operation context: "<op>: <err>".
func solverErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
