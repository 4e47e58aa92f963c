// Package models holds pore-scale models and the ordered registry that runs
// them.
//
// A Model computes one value per location (pore or throat) from an Env: the
// network plus any property sources such as a phase. A Set binds models to a
// target object and a subset of its pores and throats; Add evaluates a model
// immediately and Regenerate re-evaluates every model in insertion order, so
// later models can depend on properties written by earlier ones.
//
// Geometry models (seeds, diameters, lengths, areas, volumes) and physics
// models (diffusive, hydraulic and generic conductances) live in this
// package; the geometry and physics packages assemble them into recipes.
package models
