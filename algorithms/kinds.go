// SPDX-License-Identifier: MIT
// Package: OpenPNM/algorithms
//
// kinds.go — the named transport algorithms. Each one is a Transport with
// fixed default keys plus the effective property its physics defines.

package algorithms

import (
	"context"
	"fmt"

	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/models"
)

// Default result keys of the named algorithms.
const (
	KeyConcentration = "pore.concentration"
	KeyPressure      = "pore.pressure"
	KeyVoltage       = "pore.voltage"
	KeyTemperature   = "pore.temperature"
)

// FickianDiffusion solves steady binary diffusion for pore.concentration.
type FickianDiffusion struct{ *Transport }

// NewFickianDiffusion reads throat.diffusive_conductance from phase.
func NewFickianDiffusion(net *core.Network, phase PropertySource, opts ...Option) (*FickianDiffusion, error) {
	t, err := NewTransport("fickian_diffusion", net, phase,
		Settings{Quantity: KeyConcentration, Conductance: models.KeyDiffusiveConductance}, opts...)
	if err != nil {
		return nil, err
	}

	return &FickianDiffusion{t}, nil
}

// CalcEffectiveDiffusivity returns D_eff = Q·L / (A·ΔC·c̄), c̄ being the
// mean phase molar density (1 when the phase has none).
func (f *FickianDiffusion) CalcEffectiveDiffusivity(d Domain) (float64, error) {
	return f.effectiveDiffusivity(d)
}

// FormationFactor returns D_AB / D_eff with D_AB the mean phase diffusivity.
func (f *FickianDiffusion) FormationFactor(d Domain) (float64, error) {
	deff, err := f.effectiveDiffusivity(d)
	if err != nil {
		return 0, err
	}
	if !f.phase.Has(models.KeyDiffusivity) {
		return 0, algoErrorf(f.name, "FormationFactor", fmt.Errorf("%s: %w", models.KeyDiffusivity, core.ErrKeyNotFound))
	}
	dab, err := f.phaseMean(models.KeyDiffusivity, 0)
	if err != nil {
		return 0, algoErrorf(f.name, "FormationFactor", err)
	}
	if deff == 0 {
		return 0, algoErrorf(f.name, "FormationFactor", fmt.Errorf("zero effective diffusivity: %w", ErrBadDomain))
	}

	return dab / deff, nil
}

// StokesFlow solves steady creeping flow for pore.pressure.
type StokesFlow struct{ *Transport }

// NewStokesFlow reads throat.hydraulic_conductance from phase.
func NewStokesFlow(net *core.Network, phase PropertySource, opts ...Option) (*StokesFlow, error) {
	t, err := NewTransport("stokes_flow", net, phase,
		Settings{Quantity: KeyPressure, Conductance: models.KeyHydraulicConductance}, opts...)
	if err != nil {
		return nil, err
	}

	return &StokesFlow{t}, nil
}

// CalcEffectivePermeability returns K = Q·μ̄·L / (A·ΔP) (Darcy's law).
func (s *StokesFlow) CalcEffectivePermeability(d Domain) (float64, error) {
	return s.effectivePermeability(d)
}

// OhmicConduction solves for pore.voltage with throat.electrical_conductance.
type OhmicConduction struct{ *Transport }

// NewOhmicConduction builds an OhmicConduction.
func NewOhmicConduction(net *core.Network, phase PropertySource, opts ...Option) (*OhmicConduction, error) {
	t, err := NewTransport("ohmic_conduction", net, phase,
		Settings{Quantity: KeyVoltage, Conductance: models.KeyElectricalConductance}, opts...)
	if err != nil {
		return nil, err
	}

	return &OhmicConduction{t}, nil
}

// FourierConduction solves for pore.temperature with throat.thermal_conductance.
type FourierConduction struct{ *Transport }

// NewFourierConduction builds a FourierConduction.
func NewFourierConduction(net *core.Network, phase PropertySource, opts ...Option) (*FourierConduction, error) {
	t, err := NewTransport("fourier_conduction", net, phase,
		Settings{Quantity: KeyTemperature, Conductance: models.KeyThermalConductance}, opts...)
	if err != nil {
		return nil, err
	}

	return &FourierConduction{t}, nil
}

// Algorithm is the run lifecycle shared by every kind, used by callers that
// drive several algorithms uniformly.
type Algorithm interface {
	Name() string
	Quantity() string
	SetValueBC(pores []int, values ...float64) error
	SetRateBC(pores []int, values ...float64) error
	Run(ctx context.Context) error
	Rate(pores []int, mode ...RateMode) ([]float64, error)
	Get(key string) ([]float64, error)
	CalcEffectiveConductivity(d Domain) (float64, error)
}

// New builds the named algorithm kind: "fickian_diffusion", "stokes_flow",
// "ohmic_conduction" or "fourier_conduction".
func New(kind string, net *core.Network, phase PropertySource, opts ...Option) (Algorithm, error) {
	var (
		alg Algorithm
		err error
	)
	switch kind {
	case "fickian_diffusion":
		alg, err = NewFickianDiffusion(net, phase, opts...)
	case "stokes_flow":
		alg, err = NewStokesFlow(net, phase, opts...)
	case "ohmic_conduction":
		alg, err = NewOhmicConduction(net, phase, opts...)
	case "fourier_conduction":
		alg, err = NewFourierConduction(net, phase, opts...)
	default:
		return nil, fmt.Errorf("New(%q): unknown algorithm: %w", kind, ErrBadSettings)
	}
	if err != nil {
		return nil, err
	}

	return alg, nil
}
