// SPDX-License-Identifier: MIT
// Package: OpenPNM/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w via builderErrorf.
//   • Constructors never panic at runtime; option constructors may.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPores indicates a lattice dimension smaller than one.
var ErrTooFewPores = errors.New("builder: lattice dimension too small")

// ErrBadSpacing indicates a non-positive or non-finite lattice spacing.
var ErrBadSpacing = errors.New("builder: spacing must be finite and > 0")

// ErrBadImage indicates a ragged or empty template image.
var ErrBadImage = errors.New("builder: template image must be a non-empty box")

// ErrNotLattice indicates AsArray was given a network whose coordinates do
// not form a full lattice.
var ErrNotLattice = errors.New("builder: network is not a full lattice")

// builderErrorf wraps err with the method context: "<Method>: <detail>: <err>".
func builderErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
