// SPDX-License-Identifier: MIT

package core

import "sort"

// Clusters finds all connected groups of pores. Each cluster is an ascending
// slice of pore indices; clusters are ordered by their smallest pore.
// An isolated pore forms a cluster of size one.
//
// Time:   O(Np + Nt), breadth-first from each unvisited pore.
// Memory: O(Np) for visited flags and the queue.
func (n *Network) Clusters() [][]int {
	return n.ClustersThrough(nil)
}

// ClustersThrough is Clusters restricted to the throats t with active[t]
// set; a nil mask keeps every throat. Pores joined only by inactive throats
// fall into separate clusters.
//
// Errors: none; a mask shorter than Nt treats the missing throats as inactive.
func (n *Network) ClustersThrough(active []bool) [][]int {
	np := n.Np()
	seen := make([]bool, np)
	var comps [][]int

	for p0 := 0; p0 < np; p0++ {
		if seen[p0] {
			continue
		}
		queue := []int{p0}
		seen[p0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, t := range n.poreThroats[u] {
				if active != nil && (t >= len(active) || !active[t]) {
					continue
				}
				v := n.other(t, u)
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}

// Health summarizes topology problems that make transport systems singular
// or ill-posed.
type Health struct {
	IsolatedPores    []int   // pores with no throats
	Clusters         [][]int // every cluster when more than one exists
	DuplicateThroats [][]int // groups of throats joining the same pore pair
}

// Healthy reports whether no problem was found.
func (h Health) Healthy() bool {
	return len(h.IsolatedPores) == 0 && len(h.Clusters) == 0 && len(h.DuplicateThroats) == 0
}

// CheckHealth inspects the topology for isolated pores, disconnected clusters
// and parallel throats.
// Complexity: O(Np + Nt).
func (n *Network) CheckHealth() Health {
	var h Health
	for p, ts := range n.poreThroats {
		if len(ts) == 0 {
			h.IsolatedPores = append(h.IsolatedPores, p)
		}
	}
	if comps := n.Clusters(); len(comps) > 1 {
		h.Clusters = comps
	}

	groups := make(map[[2]int][]int)
	var order [][2]int
	for t, c := range n.conns {
		key := c
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], t)
	}
	for _, key := range order {
		if ts := groups[key]; len(ts) > 1 {
			h.DuplicateThroats = append(h.DuplicateThroats, ts)
		}
	}

	return h
}
