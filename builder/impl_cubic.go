// SPDX-License-Identifier: MIT
// Package: OpenPNM/builder
//
// impl_cubic.go — implementation of Cubic(shape, spacing).
//
// Contract:
//   • shape[i] ≥ 1 for every axis (else ErrTooFewPores).
//   • spacing finite and > 0 (else ErrBadSpacing).
//   • Pores in row-major (x, y, z) order; throats axis by axis.
//
// Complexity:
//   • Time O(N) pores + O(3N) throats, Space O(N) for coords/conns.

package builder

import (
	"fmt"
	"math"

	"github.com/nv4dll-git/OpenPNM/core"
)

const (
	methodCubic = "Cubic"
	minLattice  = 1
)

// Face label names, one pair per axis.
var faceLabels = [3][2]string{
	{"front", "back"},
	{"left", "right"},
	{"bottom", "top"},
}

// Surface and internal label names.
const (
	LabelSurface  = "surface"
	LabelInternal = "internal"
)

// Cubic builds a shape[0]×shape[1]×shape[2] lattice network.
func Cubic(shape [3]int, spacing float64, opts ...BuilderOption) (*core.Network, error) {
	cfg := newBuilderConfig(defaultCubicName, opts...)

	return lattice(methodCubic, shape, spacing, cfg)
}

// lattice is the shared constructor of Cubic and Template.
//
// Implementation:
//   - Stage 1: Validate shape and spacing (fail fast; no partial work).
//   - Stage 2: Emit coordinates in row-major order.
//   - Stage 3: Emit throats for x, y, z neighbors.
//   - Stage 4: Apply face/surface/internal labels.
func lattice(method string, shape [3]int, spacing float64, cfg builderConfig) (*core.Network, error) {
	for axis, n := range shape {
		if n < minLattice {
			return nil, builderErrorf(method, fmt.Sprintf("shape[%d]=%d (must be ≥ %d)", axis, n, minLattice), ErrTooFewPores)
		}
	}
	step := cfg.spacing
	if step == ([3]float64{}) {
		if !(spacing > 0) || math.IsInf(spacing, 0) {
			return nil, builderErrorf(method, fmt.Sprintf("spacing=%g", spacing), ErrBadSpacing)
		}
		step = [3]float64{spacing, spacing, spacing}
	}

	nx, ny, nz := shape[0], shape[1], shape[2]
	np := nx * ny * nz
	index := func(x, y, z int) int { return x*ny*nz + y*nz + z }

	coords := make([][3]float64, 0, np)
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			for z := 0; z < nz; z++ {
				coords = append(coords, [3]float64{
					(float64(x) + 0.5) * step[0],
					(float64(y) + 0.5) * step[1],
					(float64(z) + 0.5) * step[2],
				})
			}
		}
	}

	conns := make([][2]int, 0, 3*np)
	offsets := [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, d := range offsets {
		for x := 0; x+d[0] < nx; x++ {
			for y := 0; y+d[1] < ny; y++ {
				for z := 0; z+d[2] < nz; z++ {
					conns = append(conns, [2]int{index(x, y, z), index(x+d[0], y+d[1], z+d[2])})
				}
			}
		}
	}

	net, err := core.NewNetwork(cfg.name, coords, conns)
	if err != nil {
		return nil, builderErrorf(method, "NewNetwork", err)
	}
	if !cfg.labels {
		return net, nil
	}

	var faces [3][2][]int
	surface := make([]bool, np)
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			for z := 0; z < nz; z++ {
				p := index(x, y, z)
				pos := [3]int{x, y, z}
				for axis := 0; axis < 3; axis++ {
					if pos[axis] == 0 {
						faces[axis][0] = append(faces[axis][0], p)
						surface[p] = true
					}
					if pos[axis] == shape[axis]-1 {
						faces[axis][1] = append(faces[axis][1], p)
						surface[p] = true
					}
				}
			}
		}
	}
	for axis := 0; axis < 3; axis++ {
		for side := 0; side < 2; side++ {
			key := core.Key(core.Pore, faceLabels[axis][side])
			if err = net.SetLabel(key, faces[axis][side]); err != nil {
				return nil, builderErrorf(method, "SetLabel("+key+")", err)
			}
		}
	}
	internal := make([]bool, np)
	for p, s := range surface {
		internal[p] = !s
	}
	if err = net.SetMask(core.Key(core.Pore, LabelSurface), surface); err != nil {
		return nil, builderErrorf(method, "SetMask(surface)", err)
	}
	if err = net.SetMask(core.Key(core.Pore, LabelInternal), internal); err != nil {
		return nil, builderErrorf(method, "SetMask(internal)", err)
	}

	return net, nil
}
