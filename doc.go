// Package openpnm is a pore network modeling toolkit: it computes steady
// transport (diffusion, creeping flow, electrical and heat conduction)
// through networks of pores and throats that stand in for a porous solid.
//
// 🚀 What is in the box?
//
//	A thread-safe, deterministic library that brings together:
//		• Core primitives: pores, throats, labels, pore.*/throat.* arrays
//		• Builders: Cubic lattices and voxel Templates
//		• Pore-scale models: seeded sizes, shapes and conductances
//		• Phases, geometries and physics bound to network subsets
//		• Sparse assembly, LU and Krylov solvers
//		• Transport algorithms: Fickian, Stokes, Ohmic, Fourier
//		• Run storage (SQLite), YAML configs and the pnm CLI
//
// Packages:
//
//	core/       — Object property store and Network topology
//	builder/    — Cubic, Template, AsArray
//	models/     — model registry (Set) and model functions
//	phase/      — Air, Water, custom phases
//	geometry/   — Spheres and Boundary recipes
//	physics/    — Standard conductance models
//	matrix/     — Dense, LU, Assembler, CSR
//	solver/     — direct / cg / bicgstab over native or gonum kernels
//	algorithms/ — BCs, Run, Rate, effective properties
//	store/      — SQLite persistence of runs
//	config/     — simulation config with PNM_* overrides
//	release/    — commit-message version bumps
//	cmd/pnm     — run, bump, version
//
// Quick ASCII example (1×3×1 lattice, inlet left, outlet right):
//
//	c=1 ──g── c=½ ──g── c=0
//
// The middle pore settles halfway and the inlet rate is g/2.
package openpnm
