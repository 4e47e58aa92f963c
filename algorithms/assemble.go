// SPDX-License-Identifier: MIT
// Package: OpenPNM/algorithms
//
// assemble.go — building A·x = b from conductances, boundary conditions and
// source terms.
//
// Model:
//   • Each throat t=(i,j) with conductance g stamps the two-terminal pattern
//     A_ii += g, A_jj += g, A_ij −= g, A_ji −= g.
//   • Value pores are eliminated symmetrically: their row becomes d·x_i = d·v_i
//     with d the mean diagonal of the free pores, and each coupling to a free
//     neighbor j moves to that neighbor as A_jj += g, b_j += g·v_i. The matrix
//     stays symmetric positive definite, so CG applies.
//   • Rate pores add their rate to b. Sources linearized as S1·x + S2 add
//     A_pp −= S1 and b_p += S2 on free pores.

package algorithms

import (
	"fmt"
	"math"

	"github.com/nv4dll-git/OpenPNM/matrix"
)

// snapshot is the immutable input of one Run, copied under the read lock.
type snapshot struct {
	np      int
	conns   [][2]int
	g       []float64
	fixed   []bool
	values  []float64 // value BCs at fixed pores
	rates   []float64 // rate BCs, zero elsewhere
	sources map[int]Source
	nValue  int
	nRate   int
}

// nonlinear reports whether any active source depends on x.
func (s *snapshot) nonlinear() bool {
	for p, src := range s.sources {
		if !s.fixed[p] && !src.Linear() {
			return true
		}
	}

	return false
}

// conducting marks the throats with non-zero conductance.
func (s *snapshot) conducting() []bool {
	active := make([]bool, len(s.g))
	for t, g := range s.g {
		active[t] = g > 0
	}

	return active
}

// takeSnapshot copies boundary conditions and sources, and reads and checks
// the conductance array from the phase.
func (t *Transport) takeSnapshot() (*snapshot, error) {
	g, err := t.conductance()
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	np := t.net.Np()
	s := &snapshot{
		np:      np,
		conns:   t.net.Conns(),
		g:       g,
		fixed:   make([]bool, np),
		values:  make([]float64, np),
		rates:   make([]float64, np),
		sources: make(map[int]Source, len(t.sources)),
	}
	for p, bc := range t.bcs {
		switch bc.kind {
		case bcValue:
			s.fixed[p] = true
			s.values[p] = bc.value
			s.nValue++
		case bcRate:
			s.rates[p] = bc.value
			s.nRate++
		}
	}
	for p, src := range t.sources {
		s.sources[p] = src
	}

	return s, nil
}

// conductance reads settings.Conductance from the phase and checks it.
func (t *Transport) conductance() ([]float64, error) {
	key := t.settings.Conductance
	if !t.phase.Has(key) {
		return nil, fmt.Errorf("%s not found on phase %q: %w", key, t.phase.Name(), ErrBadConductance)
	}
	g, err := t.phase.Get(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	if len(g) != t.net.Nt() {
		return nil, fmt.Errorf("%s has %d values for Nt=%d: %w", key, len(g), t.net.Nt(), ErrBadConductance)
	}
	for i, v := range g {
		if !(v >= 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s[%d]=%g: %w", key, i, v, ErrBadConductance)
		}
	}

	return g, nil
}

// assemble builds the system linearized around x (nil for the first pass).
//
// Implementation:
//   - Stage 1: StampConductance for free–free throats; fold free–fixed
//     throats into the free pore's diagonal and right-hand side.
//   - Stage 2: Add rate BCs and linearized sources on free pores.
//   - Stage 3: Write the scaled identity rows of fixed pores.
//
// Complexity: O(Nt + Np) stamps, O(k log k) to compress.
func (s *snapshot) assemble(x []float64) (*matrix.CSR, []float64, error) {
	asm, err := matrix.NewAssembler(s.np)
	if err != nil {
		return nil, nil, err
	}
	// diag is the full diagonal, used for the fixed-row scale; self holds
	// the part not yet stamped by StampConductance.
	diag := make([]float64, s.np)
	self := make([]float64, s.np)
	for t, c := range s.conns {
		i, j, g := c[0], c[1], s.g[t]
		if g == 0 {
			continue
		}
		switch {
		case s.fixed[i] && s.fixed[j]:
			continue
		case s.fixed[i]:
			diag[j] += g
			self[j] += g
			err = asm.AddRHS(j, g*s.values[i])
		case s.fixed[j]:
			diag[i] += g
			self[i] += g
			err = asm.AddRHS(i, g*s.values[j])
		default:
			diag[i] += g
			diag[j] += g
			err = asm.StampConductance(i, j, g)
		}
		if err != nil {
			return nil, nil, err
		}
	}

	for p, src := range s.sources {
		if s.fixed[p] {
			continue
		}
		var xp float64
		if x != nil {
			xp = x[p]
		}
		s1, s2 := src.Linearize(xp)
		diag[p] -= s1
		self[p] -= s1
		if err = asm.AddRHS(p, s2); err != nil {
			return nil, nil, fmt.Errorf("source at pore %d: %w", p, err)
		}
	}

	var sum float64
	var free int
	for p := 0; p < s.np; p++ {
		if s.fixed[p] {
			continue
		}
		if s.rates[p] != 0 {
			if err = asm.AddRHS(p, s.rates[p]); err != nil {
				return nil, nil, err
			}
		}
		sum += math.Abs(diag[p])
		free++
	}
	scale := 1.0
	if free > 0 && sum > 0 {
		scale = sum / float64(free)
	}
	for p := 0; p < s.np; p++ {
		if s.fixed[p] {
			self[p] = scale
			if err = asm.AddRHS(p, scale*s.values[p]); err != nil {
				return nil, nil, err
			}
		}
		if err = asm.AddElement(p, p, self[p]); err != nil {
			return nil, nil, err
		}
	}
	a, b := asm.Build()

	return a, b, nil
}
