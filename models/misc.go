// SPDX-License-Identifier: MIT
// Package: OpenPNM/models
//
// misc.go — element-agnostic models: constants, seeds, neighbor lookups.

package models

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nv4dll-git/OpenPNM/core"
)

// NeighborMode reduces the two pore values at the ends of a throat.
type NeighborMode string

const (
	NeighborMax  NeighborMode = "max"
	NeighborMin  NeighborMode = "min"
	NeighborMean NeighborMode = "mean"
)

// Constant assigns v everywhere.
func Constant(v float64) Model {
	return func(_ Env, _ core.Element, locs []int) ([]float64, error) {
		out := make([]float64, len(locs))
		for i := range out {
			out[i] = v
		}
		return out, nil
	}
}

// RandomSeed draws uniform values in [lo, hi) from a PCG stream seeded with
// seed. The same seed and locations always produce the same values.
func RandomSeed(seed uint64, lo, hi float64) Model {
	return func(_ Env, _ core.Element, locs []int) ([]float64, error) {
		u := distuv.Uniform{Min: lo, Max: hi, Src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
		out := make([]float64, len(locs))
		for i := range out {
			out[i] = u.Rand()
		}
		return out, nil
	}
}

// Scaled multiplies key by factor at the same locations.
func Scaled(key string, factor float64) Model {
	return func(env Env, el core.Element, locs []int) ([]float64, error) {
		vals, err := lookupAt(env, el, key, locs)
		if err != nil {
			return nil, err
		}
		for i := range vals {
			vals[i] *= factor
		}
		return vals, nil
	}
}

// Neighbor computes a throat value from the pore values of poreKey at its
// two ends.
func Neighbor(poreKey string, mode NeighborMode) Model {
	return func(env Env, el core.Element, locs []int) ([]float64, error) {
		if el != core.Throat {
			return nil, ErrWrongElement
		}
		ends, err := throatEnds(env, poreKey, locs)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(locs))
		for i, e := range ends {
			switch mode {
			case NeighborMax:
				out[i] = max(e[0], e[1])
			case NeighborMin:
				out[i] = min(e[0], e[1])
			case NeighborMean:
				out[i] = (e[0] + e[1]) / 2
			default:
				return nil, fmt.Errorf("neighbor mode %q: %w", mode, core.ErrUnknownMode)
			}
		}
		return out, nil
	}
}

// throatEnds returns the poreKey values at both ends of every throat in locs.
func throatEnds(env Env, poreKey string, locs []int) ([][2]float64, error) {
	if el, _, err := core.SplitKey(poreKey); err != nil || el != core.Pore {
		return nil, fmt.Errorf("%s is not a pore property: %w", poreKey, ErrWrongElement)
	}
	vals, err := env.Lookup(poreKey)
	if err != nil {
		return nil, err
	}
	out := make([][2]float64, len(locs))
	for i, t := range locs {
		c, err := env.Network.Conn(t)
		if err != nil {
			return nil, err
		}
		out[i] = [2]float64{vals[c[0]], vals[c[1]]}
	}

	return out, nil
}

// lookupAt returns key at locs. The key must belong to element el.
func lookupAt(env Env, el core.Element, key string, locs []int) ([]float64, error) {
	kel, _, err := core.SplitKey(key)
	if err != nil {
		return nil, err
	}
	if kel != el {
		return nil, fmt.Errorf("%s read at %s locations: %w", key, el, ErrWrongElement)
	}
	vals, err := env.Lookup(key)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(locs))
	for i, l := range locs {
		out[i] = vals[l]
	}

	return out, nil
}
