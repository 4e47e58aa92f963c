// SPDX-License-Identifier: MIT
// Package: OpenPNM/phase
//
// phase.go — named fluids with constant thermophysical properties.
//
// Contract:
//   • A Phase is a core.Object sized like its network (Np, Nt).
//   • Properties are pore-level constants; conductance models (physics)
//     write throat properties onto the phase.

// Package phase defines the fluids transport algorithms run against.
package phase

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/models"
)

// GasConstant is the molar gas constant R in J/(mol·K).
const GasConstant = 8.314462618

// Common property keys beyond those read by the conductance models.
const (
	KeyTemperature    = "pore.temperature"
	KeyPressure       = "pore.pressure"
	KeySurfaceTension = "pore.surface_tension"
	KeyContactAngle   = "pore.contact_angle"
	KeyMolecularMass  = "pore.molecular_weight"
)

// ErrBadProperty indicates a non-pore key or a non-finite value in New.
var ErrBadProperty = errors.New("phase: invalid property")

// Phase is a named fluid bound to a network.
type Phase struct {
	*core.Object
	net *core.Network
}

// Option adjusts the state a built-in phase is evaluated at.
type Option func(*state)

type state struct {
	temperature float64 // K
	pressure    float64 // Pa
}

// WithTemperature sets the temperature in kelvin. Panics when T ≤ 0.
func WithTemperature(kelvin float64) Option {
	if !(kelvin > 0) || math.IsInf(kelvin, 0) {
		panic("phase: WithTemperature: must be finite and > 0")
	}
	return func(s *state) { s.temperature = kelvin }
}

// WithPressure sets the pressure in pascal. Panics when P ≤ 0.
func WithPressure(pascal float64) Option {
	if !(pascal > 0) || math.IsInf(pascal, 0) {
		panic("phase: WithPressure: must be finite and > 0")
	}
	return func(s *state) { s.pressure = pascal }
}

func newState(opts ...Option) state {
	s := state{temperature: 298.0, pressure: 101325.0}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// New creates a phase named name holding the given pore-level constants.
// Keys may be given with or without the "pore." prefix.
//
// Errors:
//   - ErrBadProperty for throat keys or non-finite values.
func New(net *core.Network, name string, props map[string]float64) (*Phase, error) {
	obj, err := core.NewObject(name, net.Np(), net.Nt())
	if err != nil {
		return nil, fmt.Errorf("phase.New: %w", err)
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := props[k]
		key := k
		if _, _, err := core.SplitKey(k); err != nil {
			key = core.Key(core.Pore, k)
		}
		if el, _, _ := core.SplitKey(key); el != core.Pore {
			return nil, fmt.Errorf("phase.New(%s): %q: %w", name, k, ErrBadProperty)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("phase.New(%s): %q=%g: %w", name, k, v, ErrBadProperty)
		}
		if err = obj.SetScalar(key, v); err != nil {
			return nil, fmt.Errorf("phase.New(%s): %w", name, err)
		}
	}

	return &Phase{Object: obj, net: net}, nil
}

// Network returns the network the phase is bound to.
func (p *Phase) Network() *core.Network { return p.net }

// Air returns dry air with ideal-gas molar density P/(R·T) and the
// diffusivity of oxygen in nitrogen.
func Air(net *core.Network, opts ...Option) (*Phase, error) {
	s := newState(opts...)

	return New(net, "air", map[string]float64{
		KeyTemperature:                   s.temperature,
		KeyPressure:                      s.pressure,
		KeyMolecularMass:                 0.0291,
		models.KeyMolarDensity:           s.pressure / (GasConstant * s.temperature),
		models.KeyDiffusivity:            2.09e-5,
		models.KeyViscosity:              1.85e-5,
		models.KeyThermalConductivity:    0.0262,
		models.KeyElectricalConductivity: 0,
		KeySurfaceTension:                0,
		KeyContactAngle:                  0,
	})
}

// Water returns liquid water with the self-diffusivity of water.
func Water(net *core.Network, opts ...Option) (*Phase, error) {
	s := newState(opts...)

	return New(net, "water", map[string]float64{
		KeyTemperature:                   s.temperature,
		KeyPressure:                      s.pressure,
		KeyMolecularMass:                 0.01802,
		models.KeyMolarDensity:           55340,
		models.KeyDiffusivity:            2.3e-9,
		models.KeyViscosity:              8.9e-4,
		models.KeyThermalConductivity:    0.606,
		models.KeyElectricalConductivity: 5.5e-6,
		KeySurfaceTension:                0.072,
		KeyContactAngle:                  110,
	})
}
