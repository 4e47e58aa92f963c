// SPDX-License-Identifier: MIT
// Package: OpenPNM/algorithms
//
// source.go — source terms.
//
// A source term is a rate R(x) added to a pore balance. It is supplied in
// linearized form R ≈ S1·x + S2 around the current solution, so that the
// balance row gains A_pp −= S1 and b_p += S2. Linear sources need a single
// solve; nonlinear ones drive the outer iteration in Run.

package algorithms

import "math"

// Source produces the linearization coefficients of a source term.
type Source interface {
	// Linearize returns S1 and S2 evaluated at the pore values x.
	Linearize(x float64) (s1, s2 float64)
	// Linear reports whether S1 and S2 are independent of x.
	Linear() bool
}

// LinearSource is R = S1·x + S2.
type LinearSource struct {
	S1, S2 float64
}

// Linearize implements Source.
func (s LinearSource) Linearize(float64) (float64, float64) { return s.S1, s.S2 }

// Linear implements Source.
func (LinearSource) Linear() bool { return true }

// PowerLawSource is R = A1·x^A2 + A3, linearized by a first-order Taylor
// expansion: S1 = A1·A2·x^(A2−1), S2 = A1·x^A2·(1−A2) + A3.
type PowerLawSource struct {
	A1, A2, A3 float64
}

// Linearize implements Source. Negative x is clamped to zero so fractional
// exponents stay real.
func (s PowerLawSource) Linearize(x float64) (float64, float64) {
	if x < 0 {
		x = 0
	}
	xa := math.Pow(x, s.A2)
	var s1 float64
	if x > 0 || s.A2 >= 1 {
		s1 = s.A1 * s.A2 * math.Pow(x, s.A2-1)
	}

	return s1, s.A1*xa*(1-s.A2) + s.A3
}

// Linear implements Source.
func (s PowerLawSource) Linear() bool { return s.A2 == 0 || s.A2 == 1 }

// SetSourceTerm attaches src to pores, replacing any source already there.
// Sources at pores that also carry a value boundary condition are ignored
// by Run.
//
// Errors:
//   - ErrNilSource, ErrNoPores, ErrPoreOutOfRange.
func (t *Transport) SetSourceTerm(src Source, pores ...int) error {
	if src == nil {
		return algoErrorf(t.name, "SetSourceTerm", ErrNilSource)
	}
	if _, err := t.alignValues(pores, []float64{0}); err != nil {
		return algoErrorf(t.name, "SetSourceTerm", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range pores {
		t.sources[p] = src
	}

	return nil
}

// RemoveSource detaches sources from pores; with no pores it removes all.
func (t *Transport) RemoveSource(pores ...int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(pores) == 0 {
		t.sources = make(map[int]Source)
		return
	}
	for _, p := range pores {
		delete(t.sources, p)
	}
}
