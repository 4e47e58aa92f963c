package algorithms_test

import (
	"context"
	"fmt"
	"math"

	"github.com/nv4dll-git/OpenPNM/algorithms"
	"github.com/nv4dll-git/OpenPNM/builder"
	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/geometry"
	"github.com/nv4dll-git/OpenPNM/phase"
	"github.com/nv4dll-git/OpenPNM/physics"
)

// ExampleFickianDiffusion walks the full lifecycle: network, geometry,
// phase, physics, then a diffusion run between the left and right faces.
func ExampleFickianDiffusion() {
	net, err := builder.Cubic([3]int{1, 10, 10}, 1e-4)
	if err != nil {
		panic(err)
	}
	ps, _ := net.Pores(core.ModeOr)
	ts, _ := net.Throats(core.ModeOr)
	geo, err := geometry.Spheres(net, ps, ts, 42)
	if err != nil {
		panic(err)
	}
	air, err := phase.Air(net)
	if err != nil {
		panic(err)
	}
	if _, err = physics.Standard(air, []*geometry.Geometry{geo}); err != nil {
		panic(err)
	}

	fd, err := algorithms.NewFickianDiffusion(net, air)
	if err != nil {
		panic(err)
	}
	inlet, _ := net.Pores(core.ModeOr, "left")
	outlet, _ := net.Pores(core.ModeOr, "right")
	_ = fd.SetValueBC(inlet, 1)
	_ = fd.SetValueBC(outlet, 0)
	if err = fd.Run(context.Background()); err != nil {
		panic(err)
	}

	c, _ := fd.Get(algorithms.KeyConcentration)
	in, _ := fd.Rate(inlet)
	out, _ := fd.Rate(outlet)
	fmt.Printf("inlet %.2f outlet %.2f\n", c[inlet[0]], c[outlet[0]])
	fmt.Println("inflow > 0:", in[0] > 0)
	fmt.Println("balanced:", math.Abs(in[0]+out[0]) < 1e-9*in[0])
	// Output:
	// inlet 1.00 outlet 0.00
	// inflow > 0: true
	// balanced: true
}

// ExampleStokesFlow computes a permeability on a straight channel.
func ExampleStokesFlow() {
	net, _ := builder.Cubic([3]int{5, 1, 1}, 1)
	water, _ := phase.New(net, "water", map[string]float64{"viscosity": 1e-3})
	_ = water.SetScalar("throat.hydraulic_conductance", 2e-9)

	sf, _ := algorithms.NewStokesFlow(net, water)
	front, _ := net.Pores(core.ModeOr, "front")
	back, _ := net.Pores(core.ModeOr, "back")
	_ = sf.SetValueBC(front, 101325+400)
	_ = sf.SetValueBC(back, 101325)
	if err := sf.Run(context.Background()); err != nil {
		panic(err)
	}

	dom, _ := algorithms.InferDomain(net, front, back)
	k, _ := sf.CalcEffectivePermeability(dom)
	fmt.Printf("L=%g A=%g K=%.3g\n", dom.Length, dom.Area, k)
	// Output:
	// L=5 A=1 K=2.5e-12
}
