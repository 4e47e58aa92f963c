// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Network construction, topology accessors and label queries.
// Determinism:
//   - Incidence lists are built in ascending throat order, so every query
//     returns ascending, duplicate-free indices.

package core

import (
	"fmt"
	"strings"
)

// Network is an Object with fixed topology: pore coordinates and throat
// connections. conns[t] holds the two pore indices joined by throat t.
// poreThroats[p] lists the throats incident to pore p in ascending order.
type Network struct {
	*Object

	coords      [][3]float64
	conns       [][2]int
	poreThroats [][]int
}

// NewNetwork validates the topology and builds a Network.
//
// Implementation:
//   - Stage 1: Validate each throat (both ends in range, no self-loop).
//   - Stage 2: Allocate the Object (Np=len(coords), Nt=len(conns)).
//   - Stage 3: Build incidence lists in ascending throat order.
//
// Errors:
//   - ErrEmptyName, ErrPoreOutOfRange, ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(Np + Nt), Space O(Np + Nt).
func NewNetwork(name string, coords [][3]float64, conns [][2]int) (*Network, error) {
	np := len(coords)
	for t, c := range conns {
		if c[0] < 0 || c[0] >= np || c[1] < 0 || c[1] >= np {
			return nil, fmt.Errorf("NewNetwork: throat %d joins (%d,%d) with Np=%d: %w", t, c[0], c[1], np, ErrPoreOutOfRange)
		}
		if c[0] == c[1] {
			return nil, fmt.Errorf("NewNetwork: throat %d at pore %d: %w", t, c[0], ErrLoopNotAllowed)
		}
	}
	obj, err := NewObject(name, np, len(conns))
	if err != nil {
		return nil, err
	}

	n := &Network{
		Object:      obj,
		coords:      append([][3]float64(nil), coords...),
		conns:       append([][2]int(nil), conns...),
		poreThroats: make([][]int, np),
	}
	for t, c := range n.conns {
		n.poreThroats[c[0]] = append(n.poreThroats[c[0]], t)
		n.poreThroats[c[1]] = append(n.poreThroats[c[1]], t)
	}

	return n, nil
}

// Conns returns a copy of the throat connections.
func (n *Network) Conns() [][2]int {
	return append([][2]int(nil), n.conns...)
}

// Conn returns the two pores joined by throat t.
func (n *Network) Conn(t int) ([2]int, error) {
	if t < 0 || t >= len(n.conns) {
		return [2]int{}, fmt.Errorf("Conn(%d): %w", t, ErrThroatOutOfRange)
	}

	return n.conns[t], nil
}

// Coords returns a copy of the pore coordinates.
func (n *Network) Coords() [][3]float64 {
	return append([][3]float64(nil), n.coords...)
}

// Clone returns a deep copy of the network and its dictionary.
func (n *Network) Clone(name string) *Network {
	return &Network{
		Object:      n.Object.Clone(name),
		coords:      append([][3]float64(nil), n.coords...),
		conns:       append([][2]int(nil), n.conns...),
		poreThroats: cloneLists(n.poreThroats),
	}
}

// Pores returns the ascending pore indices selected by labels under mode.
// Labels may be bare ("left") or prefixed ("pore.left"). With no labels the
// result is every pore.
func (n *Network) Pores(mode Mode, labels ...string) ([]int, error) {
	return n.Locations(Pore, mode, labels...)
}

// Throats is the throat counterpart of Pores.
func (n *Network) Throats(mode Mode, labels ...string) ([]int, error) {
	return n.Locations(Throat, mode, labels...)
}

// Locations combines boolean labels of one element under mode.
//
// Modes:
//   - ModeOr:  any label set.
//   - ModeAnd: every label set.
//   - ModeXor: exactly one label set.
//   - ModeNor: no label set.
//
// Errors:
//   - ErrKeyNotFound for an unknown label, ErrUnknownMode otherwise.
//
// Complexity: O(N · len(labels)).
func (o *Object) Locations(el Element, mode Mode, labels ...string) ([]int, error) {
	if len(labels) == 0 {
		labels = []string{LabelAll}
	}
	o.mu.RLock()
	defer o.mu.RUnlock()

	n := o.count(el)
	hits := make([]int, n)
	for _, lbl := range labels {
		key := lbl
		if !strings.HasPrefix(lbl, string(el)+".") {
			key = Key(el, lbl)
		}
		mask, ok := o.labels[key]
		if !ok {
			return nil, fmt.Errorf("Locations(%s): %w", key, ErrKeyNotFound)
		}
		for i, set := range mask {
			if set {
				hits[i]++
			}
		}
	}

	var keep func(h int) bool
	switch mode {
	case ModeOr:
		keep = func(h int) bool { return h > 0 }
	case ModeAnd:
		keep = func(h int) bool { return h == len(labels) }
	case ModeXor:
		keep = func(h int) bool { return h == 1 }
	case ModeNor:
		keep = func(h int) bool { return h == 0 }
	default:
		return nil, fmt.Errorf("Locations(%q): %w", mode, ErrUnknownMode)
	}
	out := make([]int, 0, n)
	for i, h := range hits {
		if keep(h) {
			out = append(out, i)
		}
	}

	return out, nil
}

func cloneLists(in [][]int) [][]int {
	out := make([][]int, len(in))
	for i, l := range in {
		out[i] = append([]int(nil), l...)
	}

	return out
}
