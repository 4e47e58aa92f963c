// SPDX-License-Identifier: MIT
//
// File: queries.go
// Role: Neighbor queries over the immutable topology.
// Concurrency:
//   - Topology never changes after NewNetwork, so these methods take no locks.

package core

import "fmt"

// FindNeighborPores returns the pores adjacent to the input set, excluding the
// inputs themselves.
//
// Modes:
//   - ModeOr:   neighbors of any input pore.
//   - ModeXor:  neighbors of exactly one input pore.
//   - ModeXnor: neighbors shared by two or more input pores.
//
// Errors: ErrPoreOutOfRange, ErrUnknownMode.
// Complexity: O(Np + Σ deg(p)).
func (n *Network) FindNeighborPores(pores []int, mode Mode) ([]int, error) {
	np := n.Np()
	if err := checkRange(Pore, pores, np); err != nil {
		return nil, fmt.Errorf("FindNeighborPores: %w", err)
	}
	keep, err := neighborFilter(mode)
	if err != nil {
		return nil, fmt.Errorf("FindNeighborPores: %w", err)
	}

	inSet := make([]bool, np)
	for _, p := range pores {
		inSet[p] = true
	}
	counts := make([]int, np)
	for p := 0; p < np; p++ {
		if !inSet[p] {
			continue
		}
		for _, t := range n.poreThroats[p] {
			counts[n.other(t, p)]++
		}
	}
	out := make([]int, 0)
	for p, c := range counts {
		if !inSet[p] && keep(c, 2) {
			out = append(out, p)
		}
	}

	return out, nil
}

// FindNeighborThroats returns the throats touching the input pores.
//
// Modes:
//   - ModeOr:   throats with at least one end in the set.
//   - ModeXor:  throats with exactly one end in the set (the set's boundary).
//   - ModeXnor: throats with both ends in the set (internal throats).
//
// Errors: ErrPoreOutOfRange, ErrUnknownMode.
// Complexity: O(Np + Nt).
func (n *Network) FindNeighborThroats(pores []int, mode Mode) ([]int, error) {
	if err := checkRange(Pore, pores, n.Np()); err != nil {
		return nil, fmt.Errorf("FindNeighborThroats: %w", err)
	}
	keep, err := neighborFilter(mode)
	if err != nil {
		return nil, fmt.Errorf("FindNeighborThroats: %w", err)
	}

	inSet := make([]bool, n.Np())
	for _, p := range pores {
		inSet[p] = true
	}
	out := make([]int, 0)
	for t, c := range n.conns {
		ends := 0
		if inSet[c[0]] {
			ends++
		}
		if inSet[c[1]] {
			ends++
		}
		if keep(ends, 2) {
			out = append(out, t)
		}
	}

	return out, nil
}

// FindConnectingThroat returns the throat joining pores a and b, if any.
// With parallel throats the lowest index wins.
func (n *Network) FindConnectingThroat(a, b int) (int, bool) {
	if a < 0 || a >= n.Np() || b < 0 || b >= n.Np() {
		return 0, false
	}
	for _, t := range n.poreThroats[a] {
		if n.other(t, a) == b {
			return t, true
		}
	}

	return 0, false
}

// IncidentThroats returns the throats touching pore p, ascending.
func (n *Network) IncidentThroats(p int) ([]int, error) {
	if p < 0 || p >= n.Np() {
		return nil, fmt.Errorf("IncidentThroats(%d): %w", p, ErrPoreOutOfRange)
	}

	return append([]int(nil), n.poreThroats[p]...), nil
}

// Other returns the pore at the opposite end of throat t from pore p.
// The caller guarantees that t touches p.
func (n *Network) Other(t, p int) int { return n.other(t, p) }

func (n *Network) other(t, p int) int {
	c := n.conns[t]
	if c[0] == p {
		return c[1]
	}

	return c[0]
}

// NumNeighbors returns the coordination number of each given pore.
func (n *Network) NumNeighbors(pores []int) ([]int, error) {
	if err := checkRange(Pore, pores, n.Np()); err != nil {
		return nil, fmt.Errorf("NumNeighbors: %w", err)
	}
	out := make([]int, len(pores))
	for i, p := range pores {
		out[i] = len(n.poreThroats[p])
	}

	return out, nil
}

// neighborFilter maps a neighbor mode to a count predicate. max is the
// highest count that can be considered "shared" (2 for throat ends).
func neighborFilter(mode Mode) (func(count, max int) bool, error) {
	switch mode {
	case ModeOr:
		return func(c, _ int) bool { return c >= 1 }, nil
	case ModeXor:
		return func(c, _ int) bool { return c == 1 }, nil
	case ModeXnor:
		return func(c, max int) bool { return c >= max }, nil
	default:
		return nil, fmt.Errorf("mode %q: %w", mode, ErrUnknownMode)
	}
}
