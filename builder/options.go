// SPDX-License-Identifier: MIT
// Package: OpenPNM/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • newBuilderConfig applies options in order (later overrides earlier).

package builder

import "math"

// Deterministic defaults.
const (
	defaultCubicName    = "cubic"
	defaultTemplateName = "template"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	name    string
	spacing [3]float64 // zero means "use the scalar argument"
	labels  bool       // emit face/surface/internal labels
}

// BuilderOption customizes a constructor before the network is built.
type BuilderOption func(*builderConfig)

// WithName sets the network name. Panics on an empty name.
func WithName(name string) BuilderOption {
	if name == "" {
		panic("builder: WithName(\"\")")
	}
	return func(c *builderConfig) { c.name = name }
}

// WithAnisotropicSpacing overrides the scalar spacing with one value per axis.
// Panics when any component is non-finite or not positive.
func WithAnisotropicSpacing(s [3]float64) BuilderOption {
	for _, v := range s {
		if !(v > 0) || math.IsInf(v, 0) {
			panic("builder: WithAnisotropicSpacing: components must be finite and > 0")
		}
	}
	return func(c *builderConfig) { c.spacing = s }
}

// WithoutLabels skips the face, surface and internal labels.
func WithoutLabels() BuilderOption {
	return func(c *builderConfig) { c.labels = false }
}

// newBuilderConfig resolves options against defaults. Complexity O(len(opts)).
func newBuilderConfig(defaultName string, opts ...BuilderOption) builderConfig {
	cfg := builderConfig{name: defaultName, labels: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
