// SPDX-License-Identifier: MIT
// Package: OpenPNM/builder
//
// impl_template.go — lattice networks generated from a voxel image.
//
// Model:
//   • Every voxel becomes a pore; voxel values land in "pore.values".
//   • A 2-D image is treated as a single z-slice (nz = 1).
//   • AsArray reverses the mapping using the distinct coordinate values
//     of each axis, so it works for any lattice regardless of spacing.

package builder

import (
	"fmt"
	"sort"

	"github.com/nv4dll-git/OpenPNM/core"
)

const (
	methodTemplate = "Template"
	methodAsArray  = "AsArray"

	// KeyValues stores the voxel value of each template pore.
	KeyValues = "pore.values"
)

// Template builds a lattice with one pore per voxel of image[x][y][z].
func Template(image [][][]float64, spacing float64, opts ...BuilderOption) (*core.Network, error) {
	shape, err := boxShape(image)
	if err != nil {
		return nil, builderErrorf(methodTemplate, "image", err)
	}
	cfg := newBuilderConfig(defaultTemplateName, opts...)
	net, err := lattice(methodTemplate, shape, spacing, cfg)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, net.Np())
	for x := range image {
		for y := range image[x] {
			values = append(values, image[x][y]...)
		}
	}
	if err = net.Set(KeyValues, values); err != nil {
		return nil, builderErrorf(methodTemplate, "Set(pore.values)", err)
	}

	return net, nil
}

// Template2D is Template for a flat image[x][y].
func Template2D(image [][]float64, spacing float64, opts ...BuilderOption) (*core.Network, error) {
	vol := make([][][]float64, len(image))
	for x, row := range image {
		vol[x] = make([][]float64, len(row))
		for y, v := range row {
			vol[x][y] = []float64{v}
		}
	}

	return Template(vol, spacing, opts...)
}

// AsArray projects one value per pore onto the lattice grid implied by the
// network coordinates. A nil values slice projects the pore indices.
//
// Errors:
//   - ErrLengthMismatch (core) when len(values) != Np.
//   - ErrNotLattice when the distinct coordinates do not account for Np pores.
//
// Complexity: O(Np log Np).
func AsArray(net *core.Network, values []float64) ([][][]float64, error) {
	np := net.Np()
	if values == nil {
		values = make([]float64, np)
		for i := range values {
			values[i] = float64(i)
		}
	}
	if len(values) != np {
		return nil, builderErrorf(methodAsArray, fmt.Sprintf("%d values for %d pores", len(values), np), core.ErrLengthMismatch)
	}

	coords := net.Coords()
	var axisIndex [3]map[float64]int
	var shape [3]int
	for axis := 0; axis < 3; axis++ {
		seen := make(map[float64]struct{})
		for _, c := range coords {
			seen[c[axis]] = struct{}{}
		}
		distinct := make([]float64, 0, len(seen))
		for v := range seen {
			distinct = append(distinct, v)
		}
		sort.Float64s(distinct)
		axisIndex[axis] = make(map[float64]int, len(distinct))
		for i, v := range distinct {
			axisIndex[axis][v] = i
		}
		shape[axis] = len(distinct)
	}
	if shape[0]*shape[1]*shape[2] != np {
		return nil, builderErrorf(methodAsArray, fmt.Sprintf("grid %v for %d pores", shape, np), ErrNotLattice)
	}

	out := make([][][]float64, shape[0])
	for x := range out {
		out[x] = make([][]float64, shape[1])
		for y := range out[x] {
			out[x][y] = make([]float64, shape[2])
		}
	}
	for p, c := range coords {
		out[axisIndex[0][c[0]]][axisIndex[1][c[1]]][axisIndex[2][c[2]]] = values[p]
	}

	return out, nil
}

// boxShape validates that image is a non-empty, non-ragged box.
func boxShape(image [][][]float64) ([3]int, error) {
	if len(image) == 0 || len(image[0]) == 0 || len(image[0][0]) == 0 {
		return [3]int{}, ErrBadImage
	}
	shape := [3]int{len(image), len(image[0]), len(image[0][0])}
	for x := range image {
		if len(image[x]) != shape[1] {
			return [3]int{}, ErrBadImage
		}
		for y := range image[x] {
			if len(image[x][y]) != shape[2] {
				return [3]int{}, ErrBadImage
			}
		}
	}

	return shape, nil
}
