// SPDX-License-Identifier: MIT
// Package: OpenPNM/physics
//
// physics.go — conductance recipes binding a phase to network geometry.
//
// Contract:
//   • Physics writes throat conductances onto the phase, at the throats of
//     the geometries it is bound to (all throats when none are given).
//   • Phase properties are looked up on the phase first, then the network.

// Package physics computes pore-scale transport properties of a phase.
package physics

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/geometry"
	"github.com/nv4dll-git/OpenPNM/models"
	"github.com/nv4dll-git/OpenPNM/phase"
)

// Physics is a named recipe of conductance models bound to a phase.
type Physics struct {
	*models.Set
	phase *phase.Phase
}

// Phase returns the phase the physics writes to.
func (p *Physics) Phase() *phase.Phase { return p.phase }

// Option customizes a recipe.
type Option func(*config)

type config struct {
	name   string
	logger *zap.Logger
}

// WithName overrides the recipe name.
func WithName(name string) Option {
	if name == "" {
		panic("physics: WithName(\"\")")
	}
	return func(c *config) { c.name = name }
}

// WithLogger routes model diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Standard adds diffusive, hydraulic, electrical and thermal conductance
// models for ph over the throats of geoms.
func Standard(ph *phase.Phase, geoms []*geometry.Geometry, opts ...Option) (*Physics, error) {
	cfg := config{name: "standard_" + ph.Name(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	net := ph.Network()
	pores, throats, err := locations(net, geoms)
	if err != nil {
		return nil, fmt.Errorf("physics %s: %w", cfg.name, err)
	}

	set := models.NewSet(cfg.name, models.Env{Network: net, Sources: []*core.Object{ph.Object}},
		ph.Object, pores, throats, models.WithLogger(cfg.logger))
	recipe := []struct {
		key   string
		model models.Model
	}{
		{models.KeyDiffusiveConductance, models.OrdinaryDiffusion()},
		{models.KeyHydraulicConductance, models.HagenPoiseuille()},
		{models.KeyElectricalConductance, models.GenericConductance(models.KeyElectricalConductivity)},
		{models.KeyThermalConductance, models.GenericConductance(models.KeyThermalConductivity)},
	}
	for _, r := range recipe {
		if err = set.Add(r.key, r.model); err != nil {
			return nil, fmt.Errorf("physics %s: %w", cfg.name, err)
		}
	}

	return &Physics{Set: set, phase: ph}, nil
}

// locations unions the pores and throats of geoms, or returns every
// location of net when geoms is empty.
func locations(net *core.Network, geoms []*geometry.Geometry) ([]int, []int, error) {
	if len(geoms) == 0 {
		pores, err := net.Pores(core.ModeOr)
		if err != nil {
			return nil, nil, err
		}
		throats, err := net.Throats(core.ModeOr)
		return pores, throats, err
	}
	ps, ts := map[int]struct{}{}, map[int]struct{}{}
	for _, g := range geoms {
		for _, p := range g.Pores() {
			ps[p] = struct{}{}
		}
		for _, t := range g.Throats() {
			ts[t] = struct{}{}
		}
	}

	return sortedSet(ps), sortedSet(ts), nil
}

func sortedSet(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
