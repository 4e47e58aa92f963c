// SPDX-License-Identifier: MIT
// Package: OpenPNM/solver
//
// settings.go — solver selection and stopping criteria.

package solver

import (
	"fmt"
	"math"
)

// Family selects the implementation providing the kernels.
type Family string

// Type selects the solution method.
type Type string

// Preconditioner selects the preconditioner of iterative types.
type Preconditioner string

const (
	FamilyNative Family = "native"
	FamilyGonum  Family = "gonum"

	TypeDirect   Type = "direct"
	TypeCG       Type = "cg"
	TypeBiCGStab Type = "bicgstab"

	PrecondNone   Preconditioner = "none"
	PrecondJacobi Preconditioner = "jacobi"
)

// Defaults.
const (
	DefaultTol     = 1e-8
	DefaultMaxIter = 5000
)

// Settings configures one solve.
type Settings struct {
	Family         Family         `yaml:"family" json:"family"`
	Type           Type           `yaml:"type" json:"type"`
	Preconditioner Preconditioner `yaml:"preconditioner" json:"preconditioner"`
	Tol            float64        `yaml:"tol" json:"tol"`
	MaxIter        int            `yaml:"max_iter" json:"max_iter"`
}

// DefaultSettings returns native/direct/jacobi with Tol=1e-8, MaxIter=5000.
func DefaultSettings() Settings {
	return Settings{
		Family:         FamilyNative,
		Type:           TypeDirect,
		Preconditioner: PrecondJacobi,
		Tol:            DefaultTol,
		MaxIter:        DefaultMaxIter,
	}
}

// Validate reports the first invalid field wrapped in ErrBadSettings, or
// ErrUnsupported for a valid but unavailable family/type pairing.
func (s Settings) Validate() error {
	switch s.Family {
	case FamilyNative, FamilyGonum:
	default:
		return fmt.Errorf("family %q: %w", s.Family, ErrBadSettings)
	}
	switch s.Type {
	case TypeDirect, TypeCG, TypeBiCGStab:
	default:
		return fmt.Errorf("type %q: %w", s.Type, ErrBadSettings)
	}
	switch s.Preconditioner {
	case PrecondNone, PrecondJacobi:
	default:
		return fmt.Errorf("preconditioner %q: %w", s.Preconditioner, ErrBadSettings)
	}
	if !(s.Tol > 0) || math.IsInf(s.Tol, 0) {
		return fmt.Errorf("tol %g: %w", s.Tol, ErrBadSettings)
	}
	if s.MaxIter <= 0 {
		return fmt.Errorf("max_iter %d: %w", s.MaxIter, ErrBadSettings)
	}
	if s.Family == FamilyGonum && s.Type != TypeDirect {
		return fmt.Errorf("%s/%s: %w", s.Family, s.Type, ErrUnsupported)
	}

	return nil
}

// String renders "family/type(preconditioner)".
func (s Settings) String() string {
	if s.Type == TypeDirect {
		return fmt.Sprintf("%s/%s", s.Family, s.Type)
	}

	return fmt.Sprintf("%s/%s(%s)", s.Family, s.Type, s.Preconditioner)
}
