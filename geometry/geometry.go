// SPDX-License-Identifier: MIT
// Package: OpenPNM/geometry
//
// geometry.go — geometry recipes bound to pore and throat subsets.
//
// Contract:
//   • A Geometry writes its properties onto the network, only at its own
//     pores and throats; other locations keep their values (NaN if unset).
//   • Recipes are ordered model lists; Regenerate re-evaluates them in order.

// Package geometry assigns pore and throat sizes to parts of a network.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/models"
)

// ErrNoSpacing indicates Spheres could not infer a lattice spacing because
// it covers no throats and none was given.
var ErrNoSpacing = errors.New("geometry: cannot infer spacing")

// Weibull shape of the Spheres pore-size distribution.
const weibullShape = 2.77

// Geometry is a named recipe of size models bound to locations.
type Geometry struct {
	*models.Set
	net *core.Network
}

// Network returns the network the geometry writes to.
func (g *Geometry) Network() *core.Network { return g.net }

// Option customizes a recipe.
type Option func(*config)

type config struct {
	name    string
	spacing float64
	logger  *zap.Logger
}

// WithName overrides the recipe name.
func WithName(name string) Option {
	if name == "" {
		panic("geometry: WithName(\"\")")
	}
	return func(c *config) { c.name = name }
}

// WithSpacing fixes the lattice spacing Spheres scales its sizes by.
func WithSpacing(spacing float64) Option {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		panic("geometry: WithSpacing: must be finite and > 0")
	}
	return func(c *config) { c.spacing = spacing }
}

// WithLogger routes model diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(name string, opts ...Option) config {
	c := config{name: name, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

type step struct {
	key   string
	model models.Model
}

func build(net *core.Network, pores, throats []int, cfg config, recipe []step) (*Geometry, error) {
	set := models.NewSet(cfg.name, models.Env{Network: net}, net.Object, pores, throats, models.WithLogger(cfg.logger))
	for _, s := range recipe {
		if err := set.Add(s.key, s.model); err != nil {
			return nil, fmt.Errorf("geometry %s: %w", cfg.name, err)
		}
	}

	return &Geometry{Set: set, net: net}, nil
}

// Boundary is the recipe for boundary pores: zero-size pores whose throats
// take their size from the interior neighbor.
func Boundary(net *core.Network, pores, throats []int, opts ...Option) (*Geometry, error) {
	cfg := newConfig("boundary", opts...)

	return build(net, pores, throats, cfg, []step{
		{models.KeyPoreSeed, models.Constant(0.9999)},
		{models.KeyPoreDiameter, models.Constant(0)},
		{models.KeyThroatSeed, models.Neighbor(models.KeyPoreSeed, models.NeighborMax)},
		{models.KeyThroatDiameter, models.Neighbor(models.KeyPoreDiameter, models.NeighborMax)},
		{models.KeyPoreVolume, models.Constant(0)},
		{models.KeyThroatLength, models.StraightLength(models.KeyPoreDiameter)},
		{models.KeyThroatVolume, models.Constant(0)},
		{models.KeyThroatArea, models.CylinderArea(models.KeyThroatDiameter)},
		{models.KeyThroatSurfaceArea, models.CylinderSurfaceArea(models.KeyThroatDiameter, models.KeyThroatLength)},
		{models.KeyPoreArea, models.Constant(1)},
	})
}

// Spheres is a stick-and-ball recipe: seeded Weibull pore diameters,
// throats half the smaller neighbor pore, straight cylindrical throats.
// The same seed always yields the same sizes.
func Spheres(net *core.Network, pores, throats []int, seed uint64, opts ...Option) (*Geometry, error) {
	cfg := newConfig("spheres", opts...)
	if cfg.spacing == 0 {
		s, err := meanSpacing(net, throats)
		if err != nil {
			return nil, fmt.Errorf("geometry %s: %w", cfg.name, err)
		}
		cfg.spacing = s
	}
	size := distuv.Weibull{K: weibullShape, Lambda: 0.3 * cfg.spacing}

	return build(net, pores, throats, cfg, []step{
		{models.KeyPoreSeed, models.RandomSeed(seed, 0, 0.95)},
		{models.KeyPoreDiameter, models.PoreDiameterFromSeed(models.KeyPoreSeed, size)},
		{models.KeyPoreVolume, models.SphereVolume(models.KeyPoreDiameter)},
		{models.KeyPoreArea, models.CylinderArea(models.KeyPoreDiameter)},
		{models.KeyThroatSeed, models.Neighbor(models.KeyPoreSeed, models.NeighborMin)},
		{"throat.max_size", models.Neighbor(models.KeyPoreDiameter, models.NeighborMin)},
		{models.KeyThroatDiameter, models.Scaled("throat.max_size", 0.5)},
		{models.KeyThroatLength, models.StraightLength(models.KeyPoreDiameter)},
		{models.KeyThroatArea, models.CylinderArea(models.KeyThroatDiameter)},
		{models.KeyThroatSurfaceArea, models.CylinderSurfaceArea(models.KeyThroatDiameter, models.KeyThroatLength)},
		{models.KeyThroatVolume, models.CylinderVolume(models.KeyThroatDiameter, models.KeyThroatLength)},
	})
}

// meanSpacing returns the mean center-to-center distance over throats.
func meanSpacing(net *core.Network, throats []int) (float64, error) {
	if len(throats) == 0 {
		return 0, ErrNoSpacing
	}
	coords := net.Coords()
	var sum float64
	for _, t := range throats {
		c, err := net.Conn(t)
		if err != nil {
			return 0, err
		}
		a, b := coords[c[0]], coords[c[1]]
		sum += math.Sqrt((a[0]-b[0])*(a[0]-b[0]) + (a[1]-b[1])*(a[1]-b[1]) + (a[2]-b[2])*(a[2]-b[2]))
	}

	return sum / float64(len(throats)), nil
}
