// SPDX-License-Identifier: MIT
// Package: OpenPNM/models
//
// set.go — the ordered model registry.
//
// Contract:
//   • Add(key, m) evaluates m at once and writes the result at the set's
//     locations of key's element; re-adding a key replaces the model in place.
//     A model that fails on Add is not registered.
//   • Regenerate evaluates all models in insertion order.
//   • Locations outside the set are never written.

package models

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/nv4dll-git/OpenPNM/core"
)

// Env is what a model reads: the network topology plus property sources.
type Env struct {
	Network *core.Network
	// Sources are searched before the network by Lookup (e.g. a phase).
	Sources []*core.Object
}

// Lookup returns a copy of key from the first source holding it, falling
// back to the network.
func (e Env) Lookup(key string) ([]float64, error) {
	for _, src := range e.Sources {
		if src != nil && src.Has(key) {
			return src.Get(key)
		}
	}

	return e.Network.Get(key)
}

// Model computes len(locs) values for the given locations of element el.
type Model func(env Env, el core.Element, locs []int) ([]float64, error)

type entry struct {
	key   string
	model Model
}

// Set is an ordered list of models bound to a target object and locations.
type Set struct {
	mu      sync.Mutex
	name    string
	env     Env
	target  *core.Object
	pores   []int
	throats []int
	entries []entry
	logger  *zap.Logger
}

// SetOption customizes NewSet.
type SetOption func(*Set)

// WithLogger routes model diagnostics to l.
func WithLogger(l *zap.Logger) SetOption {
	return func(s *Set) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSet binds a registry named name to target at the given locations.
func NewSet(name string, env Env, target *core.Object, pores, throats []int, opts ...SetOption) *Set {
	s := &Set{
		name:    name,
		env:     env,
		target:  target,
		pores:   append([]int(nil), pores...),
		throats: append([]int(nil), throats...),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the registry name.
func (s *Set) Name() string { return s.name }

// Pores returns a copy of the pore locations.
func (s *Set) Pores() []int { return append([]int(nil), s.pores...) }

// Throats returns a copy of the throat locations.
func (s *Set) Throats() []int { return append([]int(nil), s.throats...) }

// Add registers m under key and evaluates it.
func (s *Set) Add(key string, m Model) error {
	if m == nil {
		return modelErrorf(key, ErrNilModel)
	}
	if _, _, err := core.SplitKey(key); err != nil {
		return modelErrorf(key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.run(entry{key: key, model: m}); err != nil {
		return err
	}
	replaced := false
	for i := range s.entries {
		if s.entries[i].key == key {
			s.entries[i].model = m
			replaced = true
			break
		}
	}
	if !replaced {
		s.entries = append(s.entries, entry{key: key, model: m})
	}
	s.logger.Debug("model added", zap.String("set", s.name), zap.String("prop", key))

	return nil
}

// SetValue writes a constant at the set's locations without registering a
// model, like assigning a fixed property.
func (s *Set) SetValue(key string, v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.run(entry{key: key, model: Constant(v)})
}

// Props returns the registered keys in evaluation order.
func (s *Set) Props() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.key
	}

	return out
}

// Regenerate re-evaluates every model in insertion order and stops at the
// first failure.
func (s *Set) Regenerate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if err := s.run(e); err != nil {
			return err
		}
	}
	s.logger.Debug("models regenerated", zap.String("set", s.name), zap.Int("count", len(s.entries)))

	return nil
}

// run evaluates e and writes its result. Callers hold s.mu.
func (s *Set) run(e entry) error {
	el, _, err := core.SplitKey(e.key)
	if err != nil {
		return modelErrorf(e.key, err)
	}
	locs := s.pores
	if el == core.Throat {
		locs = s.throats
	}
	if len(locs) == 0 {
		return nil
	}
	n := s.target.Count(el)
	for _, l := range locs {
		if l < 0 || l >= n {
			oob := core.ErrPoreOutOfRange
			if el == core.Throat {
				oob = core.ErrThroatOutOfRange
			}
			return modelErrorf(e.key, fmt.Errorf("location %d of %d: %w", l, n, oob))
		}
	}
	vals, err := e.model(s.env, el, locs)
	if err != nil {
		return modelErrorf(e.key, err)
	}
	if len(vals) != len(locs) {
		return modelErrorf(e.key, fmt.Errorf("%d values for %d locations: %w", len(vals), len(locs), ErrBadResult))
	}
	if err = s.target.SetAt(e.key, locs, vals); err != nil {
		return modelErrorf(e.key, err)
	}

	return nil
}
