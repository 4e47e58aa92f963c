// SPDX-License-Identifier: MIT
// Package: OpenPNM/algorithms
//
// rate.go — net rates across pore sets from the solved field.

package algorithms

import (
	"fmt"
	"sort"
)

// RateMode selects how Rate aggregates.
type RateMode string

const (
	// RateGroup returns one value: the net rate out of the pore set.
	// Throats internal to the set cancel.
	RateGroup RateMode = "group"
	// RateSingle returns one value per pore, in the order given.
	RateSingle RateMode = "single"
)

// Rate returns the net rate Σ g_t·(x_i − x_j) over throats t=(i,j) leaving
// each pore i. A positive rate means material leaves the pores into the
// network, so the inlet of a diffusion run has a positive rate and the
// outlet the opposite one. Mode defaults to RateGroup.
//
// Errors:
//   - ErrNotRun before a successful Run.
//   - ErrNoPores, ErrPoreOutOfRange, ErrUnknownRateMode.
func (t *Transport) Rate(pores []int, mode ...RateMode) ([]float64, error) {
	m := RateGroup
	if len(mode) > 0 {
		m = mode[0]
	}
	if m != RateGroup && m != RateSingle {
		return nil, algoErrorf(t.name, "Rate", fmt.Errorf("%q: %w", m, ErrUnknownRateMode))
	}
	if _, err := t.alignValues(pores, []float64{0}); err != nil {
		return nil, algoErrorf(t.name, "Rate", err)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.solved {
		return nil, algoErrorf(t.name, "Rate", ErrNotRun)
	}
	x, err := t.results.Get(t.settings.Quantity)
	if err != nil {
		return nil, algoErrorf(t.name, "Rate", err)
	}
	g, err := t.results.Get(t.settings.Conductance)
	if err != nil {
		return nil, algoErrorf(t.name, "Rate", err)
	}

	if m == RateSingle {
		out := make([]float64, len(pores))
		for k, p := range pores {
			out[k] = t.poreRate(p, x, g, nil)
		}
		return out, nil
	}

	set := make(map[int]bool, len(pores))
	uniq := make([]int, 0, len(pores))
	for _, p := range pores {
		if !set[p] {
			set[p] = true
			uniq = append(uniq, p)
		}
	}
	sort.Ints(uniq)
	var total float64
	for _, p := range uniq {
		total += t.poreRate(p, x, g, set)
	}

	return []float64{total}, nil
}

// poreRate sums g·(x_p − x_q) over throats of p whose far end q is not in
// skip.
func (t *Transport) poreRate(p int, x, g []float64, skip map[int]bool) float64 {
	ts, _ := t.net.IncidentThroats(p)
	var r float64
	for _, th := range ts {
		q := t.net.Other(th, p)
		if skip[q] {
			continue
		}
		r += g[th] * (x[p] - x[q])
	}

	return r
}
