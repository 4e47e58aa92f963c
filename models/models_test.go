// SPDX-License-Identifier: MIT
package models_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nv4dll-git/OpenPNM/builder"
	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/models"
)

// line returns a 3-pore chain with spacing 1e-4 and the set covering it.
func line(t *testing.T) (*core.Network, *models.Set) {
	t.Helper()
	net, err := builder.Cubic([3]int{3, 1, 1}, 1e-4)
	require.NoError(t, err)
	set := models.NewSet("geo", models.Env{Network: net}, net.Object, []int{0, 1, 2}, []int{0, 1})

	return net, set
}

func TestSet_AddAndRegenerateInOrder(t *testing.T) {
	net, set := line(t)
	require.NoError(t, set.Add("pore.diameter", models.Constant(2e-5)))
	require.NoError(t, set.Add("throat.diameter", models.Neighbor("pore.diameter", models.NeighborMax)))
	require.Equal(t, []string{"pore.diameter", "throat.diameter"}, set.Props())

	td, err := net.Get("throat.diameter")
	require.NoError(t, err)
	require.Equal(t, []float64{2e-5, 2e-5}, td)

	// Replacing the first model keeps its position; Regenerate propagates.
	require.NoError(t, set.Add("pore.diameter", models.Constant(4e-5)))
	require.Equal(t, []string{"pore.diameter", "throat.diameter"}, set.Props())
	require.NoError(t, set.Regenerate())
	td, _ = net.Get("throat.diameter")
	require.Equal(t, []float64{4e-5, 4e-5}, td)
}

func TestSet_SubsetLeavesOthersNaN(t *testing.T) {
	net, err := builder.Cubic([3]int{3, 1, 1}, 1)
	require.NoError(t, err)
	set := models.NewSet("part", models.Env{Network: net}, net.Object, []int{1}, nil)
	require.NoError(t, set.Add("pore.seed", models.Constant(0.5)))
	require.NoError(t, set.Add("throat.seed", models.Constant(1))) // no throats: no-op

	seed, err := net.Get("pore.seed")
	require.NoError(t, err)
	require.True(t, math.IsNaN(seed[0]))
	require.Equal(t, 0.5, seed[1])
	require.False(t, net.Has("throat.seed"))
}

func TestSet_Errors(t *testing.T) {
	_, set := line(t)
	require.ErrorIs(t, set.Add("pore.x", nil), models.ErrNilModel)
	require.ErrorIs(t, set.Add("x", models.Constant(1)), core.ErrBadKey)
	require.ErrorIs(t, set.Add("pore.bad", models.Neighbor("pore.diameter", models.NeighborMax)), models.ErrWrongElement)

	short := func(models.Env, core.Element, []int) ([]float64, error) { return []float64{1}, nil }
	require.ErrorIs(t, set.Add("pore.short", short), models.ErrBadResult)

	require.NoError(t, set.Add("pore.diameter", models.Constant(1)))
	require.ErrorIs(t, set.Add("throat.d", models.Neighbor("pore.diameter", "median")), core.ErrUnknownMode)
	require.ErrorIs(t, set.Add("throat.missing", models.Neighbor("pore.nothing", models.NeighborMin)), core.ErrKeyNotFound)

	net, err := builder.Cubic([3]int{2, 1, 1}, 1)
	require.NoError(t, err)
	oob := models.NewSet("oob", models.Env{Network: net}, net.Object, []int{5}, nil)
	require.ErrorIs(t, oob.Add("pore.x", models.Constant(1)), core.ErrPoreOutOfRange)
}

func TestRandomSeed_Deterministic(t *testing.T) {
	m := models.RandomSeed(42, 0.2, 0.8)
	a, err := m(models.Env{}, core.Pore, []int{0, 1, 2, 3})
	require.NoError(t, err)
	b, err := m(models.Env{}, core.Pore, []int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, a, b)
	for _, v := range a {
		require.GreaterOrEqual(t, v, 0.2)
		require.Less(t, v, 0.8)
	}
	c, _ := models.RandomSeed(43, 0.2, 0.8)(models.Env{}, core.Pore, []int{0, 1, 2, 3})
	require.NotEqual(t, a, c)
}

func TestGeometryModels(t *testing.T) {
	net, set := line(t)
	require.NoError(t, set.Add(models.KeyPoreSeed, models.Constant(0.5)))
	require.NoError(t, set.Add(models.KeyPoreDiameter,
		models.PoreDiameterFromSeed(models.KeyPoreSeed, distuv.Uniform{Min: 0, Max: 4e-5})))
	require.NoError(t, set.Add(models.KeyPoreVolume, models.SphereVolume(models.KeyPoreDiameter)))
	require.NoError(t, set.Add(models.KeyThroatDiameter, models.Neighbor(models.KeyPoreDiameter, models.NeighborMin)))
	require.NoError(t, set.Add(models.KeyThroatLength, models.StraightLength(models.KeyPoreDiameter)))
	require.NoError(t, set.Add(models.KeyThroatArea, models.CylinderArea(models.KeyThroatDiameter)))
	require.NoError(t, set.Add(models.KeyThroatSurfaceArea, models.CylinderSurfaceArea(models.KeyThroatDiameter, models.KeyThroatLength)))
	require.NoError(t, set.Add(models.KeyThroatVolume, models.CylinderVolume(models.KeyThroatDiameter, models.KeyThroatLength)))

	d := 2e-5
	get := func(key string) float64 {
		v, err := net.Get(key)
		require.NoError(t, err)
		return v[0]
	}
	require.InDelta(t, d, get(models.KeyPoreDiameter), 1e-18)
	require.InDelta(t, math.Pi*d*d*d/6, get(models.KeyPoreVolume), 1e-27)
	require.InDelta(t, 1e-4-d, get(models.KeyThroatLength), 1e-15)
	require.InDelta(t, math.Pi*d*d/4, get(models.KeyThroatArea), 1e-22)
	require.InDelta(t, math.Pi*d*(1e-4-d), get(models.KeyThroatSurfaceArea), 1e-20)
	require.InDelta(t, math.Pi*d*d*(1e-4-d)/4, get(models.KeyThroatVolume), 1e-25)
}

func TestStraightLength_Overlap(t *testing.T) {
	net, set := line(t)
	require.NoError(t, set.Add(models.KeyPoreDiameter, models.Constant(5e-4))) // larger than spacing
	require.NoError(t, set.Add(models.KeyThroatLength, models.StraightLength(models.KeyPoreDiameter)))
	l, err := net.Get(models.KeyThroatLength)
	require.NoError(t, err)
	require.Greater(t, l[0], 0.0)
}

func TestConductanceModels(t *testing.T) {
	net, geo := line(t)
	require.NoError(t, geo.SetValue(models.KeyThroatArea, 2e-10))
	require.NoError(t, geo.SetValue(models.KeyThroatLength, 5e-5))
	require.NoError(t, geo.SetValue(models.KeyThroatDiameter, 2e-5))

	ph, err := core.NewObject("phase", net.Np(), net.Nt())
	require.NoError(t, err)
	require.NoError(t, ph.SetScalar(models.KeyMolarDensity, 40))
	require.NoError(t, ph.SetScalar(models.KeyDiffusivity, 2e-5))
	require.NoError(t, ph.SetScalar(models.KeyViscosity, 1e-3))
	require.NoError(t, ph.SetScalar(models.KeyElectricalConductivity, 3))

	phys := models.NewSet("phys", models.Env{Network: net, Sources: []*core.Object{ph}}, ph, nil, []int{0, 1})
	require.NoError(t, phys.Add("throat.diffusive_conductance", models.OrdinaryDiffusion()))
	require.NoError(t, phys.Add("throat.hydraulic_conductance", models.HagenPoiseuille()))
	require.NoError(t, phys.Add("throat.electrical_conductance", models.GenericConductance(models.KeyElectricalConductivity)))

	g, err := ph.Get("throat.diffusive_conductance")
	require.NoError(t, err)
	require.InDelta(t, 40*2e-5*2e-10/5e-5, g[1], 1e-20)

	g, _ = ph.Get("throat.hydraulic_conductance")
	r := 1e-5
	require.InDelta(t, math.Pi*r*r*r*r/(8*1e-3*5e-5), g[0], 1e-20)

	g, _ = ph.Get("throat.electrical_conductance")
	require.InDelta(t, 3*2e-10/5e-5, g[0], 1e-18)

	require.ErrorIs(t, phys.Add("throat.x", models.GenericConductance("pore.absent")), core.ErrKeyNotFound)
}

func TestScaled(t *testing.T) {
	net, set := line(t)
	require.NoError(t, set.Add("throat.size", models.Constant(4)))
	require.NoError(t, set.Add("throat.half", models.Scaled("throat.size", 0.5)))
	v, err := net.Get("throat.half")
	require.NoError(t, err)
	require.Equal(t, []float64{2, 2}, v)
	require.ErrorIs(t, set.Add("throat.bad", models.Scaled("pore.seed", 2)), models.ErrWrongElement)
}
