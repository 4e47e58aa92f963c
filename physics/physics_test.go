// SPDX-License-Identifier: MIT
package physics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nv4dll-git/OpenPNM/builder"
	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/geometry"
	"github.com/nv4dll-git/OpenPNM/models"
	"github.com/nv4dll-git/OpenPNM/phase"
	"github.com/nv4dll-git/OpenPNM/physics"
)

func TestStandard(t *testing.T) {
	net, err := builder.Cubic([3]int{3, 3, 1}, 1e-4)
	require.NoError(t, err)
	ps, _ := net.Pores(core.ModeOr)
	ts, _ := net.Throats(core.ModeOr)
	geo, err := geometry.Spheres(net, ps, ts, 11)
	require.NoError(t, err)
	water, err := phase.Water(net)
	require.NoError(t, err)

	phys, err := physics.Standard(water, []*geometry.Geometry{geo})
	require.NoError(t, err)
	require.Equal(t, "standard_water", phys.Name())
	require.Same(t, water, phys.Phase())
	require.Equal(t, []string{
		models.KeyDiffusiveConductance,
		models.KeyHydraulicConductance,
		models.KeyElectricalConductance,
		models.KeyThermalConductance,
	}, phys.Props())

	area, _ := net.Get(models.KeyThroatArea)
	length, _ := net.Get(models.KeyThroatLength)
	g, err := water.Get(models.KeyDiffusiveConductance)
	require.NoError(t, err)
	require.Len(t, g, net.Nt())
	for i := range g {
		require.InEpsilon(t, 55340*2.3e-9*area[i]/length[i], g[i], 1e-12)
	}
	require.False(t, net.Has(models.KeyDiffusiveConductance), "conductances live on the phase")

	// Regenerate after a geometry change picks up the new sizes.
	require.NoError(t, geo.Add(models.KeyThroatArea, models.Constant(1e-10)))
	require.NoError(t, phys.Regenerate())
	g, _ = water.Get(models.KeyDiffusiveConductance)
	require.InEpsilon(t, 55340*2.3e-9*1e-10/length[0], g[0], 1e-12)
}

func TestStandard_AllThroatsWithoutGeometry(t *testing.T) {
	net, err := builder.Cubic([3]int{2, 1, 1}, 1)
	require.NoError(t, err)
	require.NoError(t, net.SetScalar(models.KeyThroatArea, 2))
	require.NoError(t, net.SetScalar(models.KeyThroatLength, 4))
	require.NoError(t, net.SetScalar(models.KeyThroatDiameter, 2))
	air, err := phase.Air(net)
	require.NoError(t, err)

	_, err = physics.Standard(air, nil, physics.WithName("p"))
	require.NoError(t, err)
	g, err := air.Get(models.KeyThermalConductance)
	require.NoError(t, err)
	require.InDelta(t, 0.0262*0.5, g[0], 1e-15)
	h, _ := air.Get(models.KeyHydraulicConductance)
	require.InDelta(t, math.Pi/(8*1.85e-5*4), h[0], 1e-6)
}
