// SPDX-License-Identifier: MIT
// Package: OpenPNM/config
//
// config.go — simulation configuration: YAML file plus PNM_* environment
// overrides.

// Package config loads the description of a simulation: the network, the
// phase, the geometry seed, the algorithms to run and where to store them.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/nv4dll-git/OpenPNM/solver"
)

// ErrInvalid indicates a configuration field out of range.
var ErrInvalid = errors.New("config: invalid configuration")

// Config describes one simulation.
type Config struct {
	Network    NetworkConfig     `yaml:"network"`
	Phase      string            `yaml:"phase" env:"PNM_PHASE"`
	Seed       uint64            `yaml:"seed" env:"PNM_SEED"`
	Solver     solver.Settings   `yaml:"solver" env:"-"`
	Algorithms []AlgorithmConfig `yaml:"algorithms" env:"-"`
	Database   string            `yaml:"database" env:"PNM_DATABASE"`
	LogLevel   string            `yaml:"log_level" env:"PNM_LOG_LEVEL"`
}

// NetworkConfig describes a Cubic lattice.
type NetworkConfig struct {
	Shape   [3]int  `yaml:"shape"`
	Spacing float64 `yaml:"spacing" env:"PNM_SPACING"`
}

// AlgorithmConfig describes one transport run between two labelled faces.
type AlgorithmConfig struct {
	Kind        string  `yaml:"kind"`
	Name        string  `yaml:"name"`
	Inlet       string  `yaml:"inlet"`
	Outlet      string  `yaml:"outlet"`
	InletValue  float64 `yaml:"inlet_value"`
	OutletValue float64 `yaml:"outlet_value"`
}

// Known phases and algorithm kinds.
var (
	Phases = []string{"air", "water"}
	Kinds  = []string{"fickian_diffusion", "stokes_flow", "ohmic_conduction", "fourier_conduction"}
)

// Default returns the 1×10×10 air diffusion example.
func Default() Config {
	return Config{
		Network: NetworkConfig{Shape: [3]int{1, 10, 10}, Spacing: 1e-4},
		Phase:   "air",
		Seed:    1,
		Solver:  solver.DefaultSettings(),
		Algorithms: []AlgorithmConfig{{
			Kind: "fickian_diffusion", Inlet: "left", Outlet: "right", InletValue: 1, OutletValue: 0,
		}},
		LogLevel: "info",
	}
}

// Load reads path over Default and then applies the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = ApplyEnv(&cfg, nil); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overlays PNM_* variables on cfg. A nil environ reads the
// process environment.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	var opts env.Options
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	for axis, n := range c.Network.Shape {
		if n < 1 {
			return fmt.Errorf("network.shape[%d]=%d: %w", axis, n, ErrInvalid)
		}
	}
	if !(c.Network.Spacing > 0) || math.IsInf(c.Network.Spacing, 0) {
		return fmt.Errorf("network.spacing=%g: %w", c.Network.Spacing, ErrInvalid)
	}
	if !contains(Phases, c.Phase) {
		return fmt.Errorf("phase %q (want one of %s): %w", c.Phase, strings.Join(Phases, ", "), ErrInvalid)
	}
	if err := c.Solver.Validate(); err != nil {
		return fmt.Errorf("solver: %w", err)
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("no algorithms: %w", ErrInvalid)
	}
	names := make(map[string]bool)
	for i, a := range c.Algorithms {
		if !contains(Kinds, a.Kind) {
			return fmt.Errorf("algorithms[%d].kind %q: %w", i, a.Kind, ErrInvalid)
		}
		if a.Inlet == "" || a.Outlet == "" || a.Inlet == a.Outlet {
			return fmt.Errorf("algorithms[%d] needs distinct inlet and outlet labels: %w", i, ErrInvalid)
		}
		if a.InletValue == a.OutletValue {
			return fmt.Errorf("algorithms[%d] needs distinct inlet and outlet values: %w", i, ErrInvalid)
		}
		name := a.RunName()
		if names[name] {
			return fmt.Errorf("algorithms[%d] name %q repeated: %w", i, name, ErrInvalid)
		}
		names[name] = true
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}

	return nil
}

// RunName returns Name, or Kind when Name is empty.
func (a AlgorithmConfig) RunName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Kind
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
