// SPDX-License-Identifier: MIT
// Package: OpenPNM/algorithms
//
// bc.go — boundary conditions.
//
// Contract:
//   • A pore holds at most one boundary condition; the last write wins,
//     whatever its kind.
//   • values is either one scalar broadcast to every pore or one value per
//     pore, aligned by position.
//   • A failed call leaves the existing boundary conditions untouched.

package algorithms

import (
	"fmt"
	"math"
)

// SetValueBC fixes the quantity at pores (Dirichlet condition).
//
// Errors:
//   - ErrNoPores, ErrPoreOutOfRange, ErrValuesMismatch, ErrNonFinite.
func (t *Transport) SetValueBC(pores []int, values ...float64) error {
	return t.setBC("SetValueBC", bcValue, pores, values)
}

// SetRateBC imposes a net inflow rate at pores (Neumann condition). The
// rate enters the right-hand side of each pore's balance; positive values
// inject material.
//
// Errors:
//   - ErrNoPores, ErrPoreOutOfRange, ErrValuesMismatch, ErrNonFinite.
func (t *Transport) SetRateBC(pores []int, values ...float64) error {
	return t.setBC("SetRateBC", bcRate, pores, values)
}

func (t *Transport) setBC(method string, kind bcKind, pores []int, values []float64) error {
	vals, err := t.alignValues(pores, values)
	if err != nil {
		return algoErrorf(t.name, method, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i, p := range pores {
		t.bcs[p] = boundary{kind: kind, value: vals[i]}
	}
	t.logger.Debug("boundary condition set")

	return nil
}

// alignValues checks pores and broadcasts values to len(pores).
func (t *Transport) alignValues(pores []int, values []float64) ([]float64, error) {
	if len(pores) == 0 {
		return nil, ErrNoPores
	}
	np := t.net.Np()
	for _, p := range pores {
		if p < 0 || p >= np {
			return nil, fmt.Errorf("pore %d with Np=%d: %w", p, np, ErrPoreOutOfRange)
		}
	}
	switch len(values) {
	case 1:
		v := values[0]
		values = make([]float64, len(pores))
		for i := range values {
			values[i] = v
		}
	case len(pores):
		values = append([]float64(nil), values...)
	default:
		return nil, fmt.Errorf("%d values for %d pores: %w", len(values), len(pores), ErrValuesMismatch)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("value %g at pore %d: %w", v, pores[i], ErrNonFinite)
		}
	}

	return values, nil
}

// RemoveBC clears the boundary conditions at pores; with no pores it clears
// all of them. Pores without a condition are ignored.
func (t *Transport) RemoveBC(pores ...int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(pores) == 0 {
		t.bcs = make(map[int]boundary)
		return
	}
	for _, p := range pores {
		delete(t.bcs, p)
	}
}
