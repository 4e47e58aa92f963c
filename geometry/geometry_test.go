// SPDX-License-Identifier: MIT
package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nv4dll-git/OpenPNM/builder"
	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/geometry"
	"github.com/nv4dll-git/OpenPNM/models"
)

func TestSpheres_Deterministic(t *testing.T) {
	build := func() *core.Network {
		net, err := builder.Cubic([3]int{4, 4, 1}, 1e-4)
		require.NoError(t, err)
		ps, _ := net.Pores(core.ModeOr)
		ts, _ := net.Throats(core.ModeOr)
		geo, err := geometry.Spheres(net, ps, ts, 7)
		require.NoError(t, err)
		require.Equal(t, "spheres", geo.Name())
		return net
	}
	a, b := build(), build()
	da, err := a.Get(models.KeyPoreDiameter)
	require.NoError(t, err)
	db, _ := b.Get(models.KeyPoreDiameter)
	require.Equal(t, da, db)

	for _, d := range da {
		require.Greater(t, d, 0.0)
		require.Less(t, d, 1e-4, "pores fit inside the lattice cell")
	}
	td, _ := a.Get(models.KeyThroatDiameter)
	tl, _ := a.Get(models.KeyThroatLength)
	for i := range td {
		require.Greater(t, td[i], 0.0)
		require.Greater(t, tl[i], 0.0)
	}
}

func TestBoundary_Recipe(t *testing.T) {
	net, err := builder.Cubic([3]int{3, 1, 1}, 1e-4)
	require.NoError(t, err)

	// Pore 0 is a boundary pore; pores 1 and 2 are interior spheres.
	_, err = geometry.Spheres(net, []int{1, 2}, []int{1}, 3, geometry.WithSpacing(1e-4))
	require.NoError(t, err)
	bnd, err := geometry.Boundary(net, []int{0}, []int{0}, geometry.WithName("left-boundary"))
	require.NoError(t, err)
	require.Equal(t, "left-boundary", bnd.Name())
	require.Same(t, net, bnd.Network())

	pd, _ := net.Get(models.KeyPoreDiameter)
	require.Zero(t, pd[0])
	td, _ := net.Get(models.KeyThroatDiameter)
	require.Equal(t, pd[1], td[0], "boundary throat takes the interior pore size")

	tl, _ := net.Get(models.KeyThroatLength)
	require.InDelta(t, 1e-4-pd[1]/2, tl[0], 1e-15)

	pa, _ := net.Get(models.KeyPoreArea)
	require.Equal(t, 1.0, pa[0])
	tv, _ := net.Get(models.KeyThroatVolume)
	require.Zero(t, tv[0])
	seed, _ := net.Get(models.KeyThroatSeed)
	require.Equal(t, 0.9999, seed[0])
	require.Equal(t, models.KeyPoreSeed, bnd.Props()[0])
	sa, _ := net.Get(models.KeyThroatSurfaceArea)
	require.InDelta(t, math.Pi*td[0]*tl[0], sa[0], 1e-20)

	require.NoError(t, bnd.Regenerate())
}

func TestSpheres_NoSpacing(t *testing.T) {
	net, err := builder.Cubic([3]int{2, 1, 1}, 1)
	require.NoError(t, err)
	_, err = geometry.Spheres(net, []int{0}, nil, 1)
	require.ErrorIs(t, err, geometry.ErrNoSpacing)
	require.Panics(t, func() { geometry.WithSpacing(-1) })
}
