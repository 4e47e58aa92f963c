// SPDX-License-Identifier: MIT
// Package: OpenPNM/models
//
// physics.go — throat conductance models.
//
// Every conductance model averages the pore-level phase property over the
// throat's two ends and combines it with the throat geometry (area, length,
// diameter). Results are in SI units of the corresponding transport law.

package models

import (
	"math"

	"github.com/nv4dll-git/OpenPNM/core"
)

// Phase property keys read by the conductance models.
const (
	KeyMolarDensity           = "pore.molar_density"
	KeyDiffusivity            = "pore.diffusivity"
	KeyViscosity              = "pore.viscosity"
	KeyElectricalConductivity = "pore.electrical_conductivity"
	KeyThermalConductivity    = "pore.thermal_conductivity"
)

// Conductance keys written by the standard physics recipe.
const (
	KeyDiffusiveConductance  = "throat.diffusive_conductance"
	KeyHydraulicConductance  = "throat.hydraulic_conductance"
	KeyElectricalConductance = "throat.electrical_conductance"
	KeyThermalConductance    = "throat.thermal_conductance"
)

// OrdinaryDiffusion computes g = c·D·A/L (mol/s per mol/m³ of driving force
// scaled by c), with c and D averaged over the throat ends.
func OrdinaryDiffusion() Model {
	return func(env Env, el core.Element, locs []int) ([]float64, error) {
		c, err := throatMean(env, el, KeyMolarDensity, locs)
		if err != nil {
			return nil, err
		}
		d, err := throatMean(env, el, KeyDiffusivity, locs)
		if err != nil {
			return nil, err
		}
		shape, err := areaOverLength(env, el, locs)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(locs))
		for i := range out {
			out[i] = c[i] * d[i] * shape[i]
		}
		return out, nil
	}
}

// HagenPoiseuille computes g = π·r⁴/(8·μ·L) with r = throat.diameter/2 and
// μ averaged over the throat ends.
func HagenPoiseuille() Model {
	return func(env Env, el core.Element, locs []int) ([]float64, error) {
		mu, err := throatMean(env, el, KeyViscosity, locs)
		if err != nil {
			return nil, err
		}
		dia, err := lookupAt(env, el, KeyThroatDiameter, locs)
		if err != nil {
			return nil, err
		}
		length, err := lookupAt(env, el, KeyThroatLength, locs)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(locs))
		for i := range out {
			r := dia[i] / 2
			out[i] = math.Pi * r * r * r * r / (8 * mu[i] * length[i])
		}
		return out, nil
	}
}

// GenericConductance computes g = σ·A/L with σ the throat-end mean of
// conductivityKey (electrical or thermal).
func GenericConductance(conductivityKey string) Model {
	return func(env Env, el core.Element, locs []int) ([]float64, error) {
		sigma, err := throatMean(env, el, conductivityKey, locs)
		if err != nil {
			return nil, err
		}
		shape, err := areaOverLength(env, el, locs)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(locs))
		for i := range out {
			out[i] = sigma[i] * shape[i]
		}
		return out, nil
	}
}

// throatMean averages a pore property over the ends of each throat.
func throatMean(env Env, el core.Element, poreKey string, locs []int) ([]float64, error) {
	if el != core.Throat {
		return nil, ErrWrongElement
	}
	ends, err := throatEnds(env, poreKey, locs)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(locs))
	for i, e := range ends {
		out[i] = (e[0] + e[1]) / 2
	}

	return out, nil
}

// areaOverLength returns throat.area / throat.length.
func areaOverLength(env Env, el core.Element, locs []int) ([]float64, error) {
	area, err := lookupAt(env, el, KeyThroatArea, locs)
	if err != nil {
		return nil, err
	}
	length, err := lookupAt(env, el, KeyThroatLength, locs)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(locs))
	for i := range out {
		out[i] = area[i] / length[i]
	}

	return out, nil
}
