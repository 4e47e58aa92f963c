// SPDX-License-Identifier: MIT
// Package: OpenPNM/algorithms
//
// settings.go — algorithm settings and functional options.

package algorithms

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/solver"
)

// Defaults for the outer (nonlinear source) iteration.
const (
	DefaultNonlinearTol     = 1e-6
	DefaultNonlinearMaxIter = 100
	DefaultRelaxation       = 1.0
)

// Settings configures a transport algorithm.
//   - Quantity: pore key of the solved field, e.g. "pore.concentration".
//   - Conductance: throat key read from the phase.
//   - Solver: linear solver selection; zero fields take solver defaults.
//   - NonlinearTol, NonlinearMaxIter, Relaxation: outer iteration used when
//     a nonlinear source term is present.
type Settings struct {
	Quantity         string          `yaml:"quantity" json:"quantity"`
	Conductance      string          `yaml:"conductance" json:"conductance"`
	Solver           solver.Settings `yaml:"solver" json:"solver"`
	NonlinearTol     float64         `yaml:"nonlinear_tol" json:"nonlinear_tol"`
	NonlinearMaxIter int             `yaml:"nonlinear_max_iter" json:"nonlinear_max_iter"`
	Relaxation       float64         `yaml:"relaxation" json:"relaxation"`
}

// normalize fills zero values with defaults.
func (s *Settings) normalize() {
	def := solver.DefaultSettings()
	if s.Solver.Family == "" {
		s.Solver.Family = def.Family
	}
	if s.Solver.Type == "" {
		s.Solver.Type = def.Type
	}
	if s.Solver.Preconditioner == "" {
		s.Solver.Preconditioner = def.Preconditioner
	}
	if s.Solver.Tol == 0 {
		s.Solver.Tol = def.Tol
	}
	if s.Solver.MaxIter == 0 {
		s.Solver.MaxIter = def.MaxIter
	}
	if s.NonlinearTol == 0 {
		s.NonlinearTol = DefaultNonlinearTol
	}
	if s.NonlinearMaxIter == 0 {
		s.NonlinearMaxIter = DefaultNonlinearMaxIter
	}
	if s.Relaxation == 0 {
		s.Relaxation = DefaultRelaxation
	}
}

// Validate reports the first invalid field.
func (s Settings) Validate() error {
	if el, _, err := core.SplitKey(s.Quantity); err != nil || el != core.Pore {
		return fmt.Errorf("quantity %q must be a pore key: %w", s.Quantity, ErrBadSettings)
	}
	if el, _, err := core.SplitKey(s.Conductance); err != nil || el != core.Throat {
		return fmt.Errorf("conductance %q must be a throat key: %w", s.Conductance, ErrBadSettings)
	}
	if err := s.Solver.Validate(); err != nil {
		return err
	}
	if !(s.NonlinearTol > 0) || math.IsInf(s.NonlinearTol, 0) {
		return fmt.Errorf("nonlinear_tol %g: %w", s.NonlinearTol, ErrBadSettings)
	}
	if s.NonlinearMaxIter <= 0 {
		return fmt.Errorf("nonlinear_max_iter %d: %w", s.NonlinearMaxIter, ErrBadSettings)
	}
	if !(s.Relaxation > 0 && s.Relaxation <= 1) {
		return fmt.Errorf("relaxation %g must be in (0, 1]: %w", s.Relaxation, ErrBadSettings)
	}

	return nil
}

// Option customizes an algorithm at construction.
type Option func(*Transport)

// WithName overrides the algorithm name. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("algorithms: WithName(\"\")")
	}
	return func(t *Transport) { t.name = name }
}

// WithSolver selects the linear solver; zero fields take solver defaults.
func WithSolver(s solver.Settings) Option {
	return func(t *Transport) { t.settings.Solver = s }
}

// WithConductance reads conductances from key instead of the kind's default.
func WithConductance(key string) Option {
	return func(t *Transport) { t.settings.Conductance = key }
}

// WithNonlinear sets the outer iteration tolerance, cap and relaxation.
func WithNonlinear(tol float64, maxIter int, relaxation float64) Option {
	return func(t *Transport) {
		t.settings.NonlinearTol = tol
		t.settings.NonlinearMaxIter = maxIter
		t.settings.Relaxation = relaxation
	}
}

// WithLogger routes run diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(t *Transport) {
		if l != nil {
			t.logger = l
		}
	}
}
