// SPDX-License-Identifier: MIT
// Package: OpenPNM/algorithms
//
// effective.go — bulk effective coefficients from a solved field.
//
// Model:
//   • A sample of length L and cross-section A carries net rate Q between an
//     inlet held at x_in and an outlet held at x_out. The generic effective
//     conductivity is σ = Q·L / (A·Δx), Δx = x_in − x_out.
//   • Fick: D_eff = σ / c̄ with c̄ the mean phase molar density, since the
//     diffusive conductance already carries c.
//   • Darcy: K = σ·μ̄ with μ̄ the mean phase viscosity.

package algorithms

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/models"
)

// Domain describes the sample an effective property refers to. Inlets and
// Outlets default to the value-BC pores with the highest and lowest value.
type Domain struct {
	Area    float64
	Length  float64
	Inlets  []int
	Outlets []int
}

// InferDomain estimates the sample size of a lattice-like network from its
// inlet and outlet faces. The flow axis is the one along which the face
// centroids are furthest apart; L spans the pore coordinates along it plus
// one spacing, and A is the product of the same spans on the other axes.
//
// Errors:
//   - ErrNoPores, ErrPoreOutOfRange, ErrBadDomain.
func InferDomain(net *core.Network, inlets, outlets []int) (Domain, error) {
	if len(inlets) == 0 || len(outlets) == 0 {
		return Domain{}, fmt.Errorf("InferDomain: %w", ErrNoPores)
	}
	coords := net.Coords()
	for _, p := range append(append([]int(nil), inlets...), outlets...) {
		if p < 0 || p >= len(coords) {
			return Domain{}, fmt.Errorf("InferDomain: pore %d: %w", p, ErrPoreOutOfRange)
		}
	}

	centroid := func(pores []int, axis int) float64 {
		v := make([]float64, len(pores))
		for i, p := range pores {
			v[i] = coords[p][axis]
		}
		return stat.Mean(v, nil)
	}
	axis, best := -1, 0.0
	for a := 0; a < 3; a++ {
		if d := math.Abs(centroid(inlets, a) - centroid(outlets, a)); d > best {
			axis, best = a, d
		}
	}
	if axis < 0 {
		return Domain{}, fmt.Errorf("InferDomain: inlet and outlet faces coincide: %w", ErrBadDomain)
	}

	var span [3]float64
	for a := 0; a < 3; a++ {
		lo, hi, step := axisExtent(axisValues(coords, a))
		if step == 0 {
			// A single layer along this axis takes the flow-axis spacing.
			continue
		}
		span[a] = hi - lo + step
	}
	_, _, flowStep := axisExtent(axisValues(coords, axis))
	for a := 0; a < 3; a++ {
		if span[a] == 0 {
			span[a] = flowStep
		}
	}
	area := 1.0
	for a := 0; a < 3; a++ {
		if a != axis {
			area *= span[a]
		}
	}
	d := Domain{Area: area, Length: span[axis], Inlets: inlets, Outlets: outlets}
	if !(d.Area > 0) || !(d.Length > 0) {
		return Domain{}, fmt.Errorf("InferDomain: area %g, length %g: %w", d.Area, d.Length, ErrBadDomain)
	}

	return d, nil
}

func axisValues(coords [][3]float64, axis int) []float64 {
	vals := make([]float64, len(coords))
	for p, c := range coords {
		vals[p] = c[axis]
	}

	return vals
}

// axisExtent returns min, max and the smallest positive gap of vals.
func axisExtent(vals []float64) (lo, hi, step float64) {
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	lo, hi = s[0], s[len(s)-1]
	for i := 1; i < len(s); i++ {
		if gap := s[i] - s[i-1]; gap > 1e-12*math.Max(math.Abs(hi), 1) && (step == 0 || gap < step) {
			step = gap
		}
	}

	return lo, hi, step
}

// CalcEffectiveConductivity returns Q·L / (A·Δx) for the domain.
//
// Errors:
//   - ErrNotRun, ErrBadDomain, ErrNonUniformBC, plus Rate errors.
func (t *Transport) CalcEffectiveConductivity(d Domain) (float64, error) {
	if !(d.Area > 0) || !(d.Length > 0) || math.IsInf(d.Area, 0) || math.IsInf(d.Length, 0) {
		return 0, algoErrorf(t.name, "CalcEffectiveConductivity", fmt.Errorf("area %g, length %g: %w", d.Area, d.Length, ErrBadDomain))
	}
	if !t.Solved() {
		return 0, algoErrorf(t.name, "CalcEffectiveConductivity", ErrNotRun)
	}
	inlets, outlets := d.Inlets, d.Outlets
	if len(inlets) == 0 || len(outlets) == 0 {
		inlets, outlets = t.defaultFaces()
		if len(outlets) == 0 {
			return 0, algoErrorf(t.name, "CalcEffectiveConductivity", fmt.Errorf("value BCs hold a single value: %w", ErrNonUniformBC))
		}
	}
	vin, err := t.uniformValue(inlets)
	if err != nil {
		return 0, algoErrorf(t.name, "CalcEffectiveConductivity", err)
	}
	vout, err := t.uniformValue(outlets)
	if err != nil {
		return 0, algoErrorf(t.name, "CalcEffectiveConductivity", err)
	}
	delta := vin - vout
	if delta == 0 {
		return 0, algoErrorf(t.name, "CalcEffectiveConductivity", fmt.Errorf("zero driving difference: %w", ErrNonUniformBC))
	}
	q, err := t.Rate(inlets)
	if err != nil {
		return 0, err
	}

	return q[0] * d.Length / (d.Area * delta), nil
}

// defaultFaces returns the pores of the last run's value BCs holding the
// highest and lowest value.
func (t *Transport) defaultFaces() (inlets, outlets []int) {
	pores, values := t.appliedValueBCs()
	if len(pores) == 0 {
		return nil, nil
	}
	hi, lo := floats.Max(values), floats.Min(values)
	if hi == lo {
		return pores, nil
	}
	for i, p := range pores {
		switch values[i] {
		case hi:
			inlets = append(inlets, p)
		case lo:
			outlets = append(outlets, p)
		}
	}

	return inlets, outlets
}

// appliedValueBCs returns the value BCs of the last successful Run sorted by
// pore. Boundary conditions set since then are ignored.
func (t *Transport) appliedValueBCs() ([]int, []float64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	pores := make([]int, 0, len(t.applied))
	for p := range t.applied {
		pores = append(pores, p)
	}
	sort.Ints(pores)
	values := make([]float64, len(pores))
	for i, p := range pores {
		values[i] = t.applied[p]
	}

	return pores, values
}

// uniformValue returns the common value at pores: the value BC the last run
// applied where there was one, the solved value elsewhere.
func (t *Transport) uniformValue(pores []int) (float64, error) {
	if len(pores) == 0 {
		return 0, ErrNoPores
	}
	x, err := t.Get(t.settings.Quantity)
	if err != nil {
		return 0, err
	}
	vals := make([]float64, len(pores))
	t.mu.RLock()
	for i, p := range pores {
		if p < 0 || p >= len(x) {
			t.mu.RUnlock()
			return 0, fmt.Errorf("pore %d: %w", p, ErrPoreOutOfRange)
		}
		vals[i] = x[p]
		if v, ok := t.applied[p]; ok {
			vals[i] = v
		}
	}
	t.mu.RUnlock()

	lo, hi := floats.Min(vals), floats.Max(vals)
	if hi-lo > 1e-9*math.Max(math.Abs(lo), math.Abs(hi)) {
		return 0, fmt.Errorf("values in [%g, %g]: %w", lo, hi, ErrNonUniformBC)
	}

	return vals[0], nil
}

// phaseMean returns the mean of a pore property of the phase, or fallback
// when the phase lacks it.
func (t *Transport) phaseMean(key string, fallback float64) (float64, error) {
	if !t.phase.Has(key) {
		return fallback, nil
	}
	v, err := t.phase.Get(key)
	if err != nil {
		return 0, err
	}
	if len(v) == 0 {
		return fallback, nil
	}

	return stat.Mean(v, nil), nil
}

// effectiveDiffusivity divides the effective conductivity by the mean molar
// density.
func (t *Transport) effectiveDiffusivity(d Domain) (float64, error) {
	sigma, err := t.CalcEffectiveConductivity(d)
	if err != nil {
		return 0, err
	}
	c, err := t.phaseMean(models.KeyMolarDensity, 1)
	if err != nil {
		return 0, algoErrorf(t.name, "CalcEffectiveDiffusivity", err)
	}

	return sigma / c, nil
}

// effectivePermeability multiplies the effective conductivity by the mean
// viscosity.
func (t *Transport) effectivePermeability(d Domain) (float64, error) {
	sigma, err := t.CalcEffectiveConductivity(d)
	if err != nil {
		return 0, err
	}
	mu, err := t.phaseMean(models.KeyViscosity, 1)
	if err != nil {
		return 0, algoErrorf(t.name, "CalcEffectivePermeability", err)
	}

	return sigma * mu, nil
}
