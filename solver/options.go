// SPDX-License-Identifier: MIT
// Package: OpenPNM/solver
//
// options.go — functional options for Solve.

package solver

import "go.uber.org/zap"

type solveConfig struct {
	logger *zap.Logger
	x0     []float64
}

// Option customizes a single Solve call.
type Option func(*solveConfig)

// WithLogger routes solver diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}
	return func(c *solveConfig) { c.logger = l }
}

// WithInitialGuess starts iterative methods from x0 instead of zero.
// Direct methods ignore it; a length mismatch is reported by Solve.
func WithInitialGuess(x0 []float64) Option {
	return func(c *solveConfig) { c.x0 = x0 }
}

func newSolveConfig(opts ...Option) solveConfig {
	cfg := solveConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
