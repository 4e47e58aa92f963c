// SPDX-License-Identifier: MIT
// Package: OpenPNM/models
//
// geometry.go — pore and throat size models.
//
// Conventions:
//   • Lengths in metres, areas in m², volumes in m³.
//   • Throat models read throat properties at their own index and pore
//     properties at the throat's two ends.

package models

import (
	"math"

	"github.com/nv4dll-git/OpenPNM/core"
)

// Property keys written and read by the geometry models.
const (
	KeyPoreSeed          = "pore.seed"
	KeyPoreDiameter      = "pore.diameter"
	KeyPoreVolume        = "pore.volume"
	KeyPoreArea          = "pore.area"
	KeyThroatSeed        = "throat.seed"
	KeyThroatDiameter    = "throat.diameter"
	KeyThroatLength      = "throat.length"
	KeyThroatArea        = "throat.area"
	KeyThroatSurfaceArea = "throat.surface_area"
	KeyThroatVolume      = "throat.volume"
)

// minLengthFraction bounds StraightLength below by this fraction of the
// center-to-center distance, so overlapping pores keep a finite conductance.
const minLengthFraction = 1e-6

// Quantiler maps a probability in [0, 1] to a value (inverse CDF); every
// gonum distuv distribution satisfies it.
type Quantiler interface {
	Quantile(p float64) float64
}

// PoreDiameterFromSeed maps seeds in seedKey through dist's inverse CDF.
func PoreDiameterFromSeed(seedKey string, dist Quantiler) Model {
	return func(env Env, el core.Element, locs []int) ([]float64, error) {
		seeds, err := lookupAt(env, el, seedKey, locs)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(locs))
		for i, s := range seeds {
			out[i] = dist.Quantile(s)
		}
		return out, nil
	}
}

// SphereVolume computes π·d³/6 from diameterKey.
func SphereVolume(diameterKey string) Model {
	return func(env Env, el core.Element, locs []int) ([]float64, error) {
		d, err := lookupAt(env, el, diameterKey, locs)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(locs))
		for i, v := range d {
			out[i] = math.Pi * v * v * v / 6
		}
		return out, nil
	}
}

// StraightLength computes the throat length as the pore center-to-center
// distance minus the two pore radii from poreDiameterKey.
func StraightLength(poreDiameterKey string) Model {
	return func(env Env, el core.Element, locs []int) ([]float64, error) {
		if el != core.Throat {
			return nil, ErrWrongElement
		}
		ends, err := throatEnds(env, poreDiameterKey, locs)
		if err != nil {
			return nil, err
		}
		coords := env.Network.Coords()
		out := make([]float64, len(locs))
		for i, t := range locs {
			c, _ := env.Network.Conn(t) // validated by throatEnds
			a, b := coords[c[0]], coords[c[1]]
			ctc := math.Sqrt((a[0]-b[0])*(a[0]-b[0]) + (a[1]-b[1])*(a[1]-b[1]) + (a[2]-b[2])*(a[2]-b[2]))
			out[i] = max(ctc-(ends[i][0]+ends[i][1])/2, minLengthFraction*ctc)
		}
		return out, nil
	}
}

// CylinderArea computes the cross-section π·d²/4 from diameterKey.
func CylinderArea(diameterKey string) Model {
	return func(env Env, el core.Element, locs []int) ([]float64, error) {
		d, err := lookupAt(env, el, diameterKey, locs)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(locs))
		for i, v := range d {
			out[i] = math.Pi * v * v / 4
		}
		return out, nil
	}
}

// CylinderSurfaceArea computes the lateral area π·d·L.
func CylinderSurfaceArea(diameterKey, lengthKey string) Model {
	return func(env Env, el core.Element, locs []int) ([]float64, error) {
		d, err := lookupAt(env, el, diameterKey, locs)
		if err != nil {
			return nil, err
		}
		l, err := lookupAt(env, el, lengthKey, locs)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(locs))
		for i := range out {
			out[i] = math.Pi * d[i] * l[i]
		}
		return out, nil
	}
}

// CylinderVolume computes π·d²·L/4.
func CylinderVolume(diameterKey, lengthKey string) Model {
	return func(env Env, el core.Element, locs []int) ([]float64, error) {
		d, err := lookupAt(env, el, diameterKey, locs)
		if err != nil {
			return nil, err
		}
		l, err := lookupAt(env, el, lengthKey, locs)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(locs))
		for i := range out {
			out[i] = math.Pi * d[i] * d[i] * l[i] / 4
		}
		return out, nil
	}
}
