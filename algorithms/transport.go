// SPDX-License-Identifier: MIT
// Package: OpenPNM/algorithms
//
// transport.go — the Transport type: state, construction and results.
//
// Contract:
//   • A Transport only reads its network and phase; all mutable state
//     (boundary conditions, sources, results) is private and guarded by mu.
//   • Results are stored in a core.Object sized like the network and named
//     after the algorithm; getters return copies.
//   • Changing boundary conditions or sources after Run keeps the previous
//     results readable until the next successful Run replaces them.

package algorithms

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/solver"
)

// KeyThroatRate is the result key of the per-throat rate g·(x_head − x_tail).
const KeyThroatRate = "throat.rate"

// PropertySource is the read side of a phase: conductances and the fluid
// properties used by effective-property calculations.
type PropertySource interface {
	Name() string
	Has(key string) bool
	Get(key string) ([]float64, error)
}

// bcKind tags a boundary condition.
type bcKind int

const (
	bcValue bcKind = iota + 1
	bcRate
)

func (k bcKind) String() string {
	if k == bcValue {
		return "value"
	}
	return "rate"
}

type boundary struct {
	kind  bcKind
	value float64
}

// Report summarizes the last successful Run.
type Report struct {
	Linear     solver.Report // report of the final linear solve
	Outer      int           // outer iterations (1 without nonlinear sources)
	FreePores  int           // unknowns after value-BC elimination
	ValuePores int
	RatePores  int
}

// Transport is a steady-state transport algorithm over a network and phase.
type Transport struct {
	mu       sync.RWMutex
	name     string
	net      *core.Network
	phase    PropertySource
	settings Settings
	logger   *zap.Logger

	bcs     map[int]boundary
	sources map[int]Source

	results *core.Object
	solved  bool
	report  Report
	applied map[int]float64 // value BCs the last successful Run solved with
}

// NewTransport builds an algorithm solving settings.Quantity with
// conductances settings.Conductance. Zero settings fields take defaults;
// options are applied after.
//
// Errors:
//   - ErrBadSettings for invalid keys or solver settings.
func NewTransport(name string, net *core.Network, phase PropertySource, settings Settings, opts ...Option) (*Transport, error) {
	t := &Transport{
		name:     name,
		net:      net,
		phase:    phase,
		settings: settings,
		logger:   zap.NewNop(),
		bcs:      make(map[int]boundary),
		sources:  make(map[int]Source),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.settings.normalize()
	if err := t.settings.Validate(); err != nil {
		return nil, algoErrorf(t.name, "New", err)
	}
	results, err := core.NewObject(t.name, net.Np(), net.Nt())
	if err != nil {
		return nil, algoErrorf(t.name, "New", err)
	}
	t.results = results

	return t, nil
}

// GenericTransport builds an algorithm over arbitrary quantity and
// conductance keys, named "generic_transport" unless WithName is given.
func GenericTransport(net *core.Network, phase PropertySource, quantity, conductance string, opts ...Option) (*Transport, error) {
	return NewTransport("generic_transport", net, phase, Settings{Quantity: quantity, Conductance: conductance}, opts...)
}

// Name returns the algorithm name.
func (t *Transport) Name() string { return t.name }

// Network returns the network the algorithm runs on.
func (t *Transport) Network() *core.Network { return t.net }

// Phase returns the phase the algorithm reads conductances from.
func (t *Transport) Phase() PropertySource { return t.phase }

// Settings returns a copy of the effective settings.
func (t *Transport) Settings() Settings { return t.settings }

// Quantity returns the result key of the solved field.
func (t *Transport) Quantity() string { return t.settings.Quantity }

// Solved reports whether results from a successful Run are available.
func (t *Transport) Solved() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.solved
}

// Report returns the summary of the last successful Run.
func (t *Transport) Report() (Report, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.solved {
		return Report{}, algoErrorf(t.name, "Report", ErrNotRun)
	}

	return t.report, nil
}

// Get returns a copy of result key, e.g. the quantity or KeyThroatRate.
//
// Errors:
//   - ErrNotRun before a successful Run.
//   - core.ErrKeyNotFound for an unknown key.
func (t *Transport) Get(key string) ([]float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.solved {
		return nil, algoErrorf(t.name, "Get", ErrNotRun)
	}
	v, err := t.results.Get(key)
	if err != nil {
		return nil, algoErrorf(t.name, "Get", err)
	}

	return v, nil
}

// Results returns copies of every stored result array keyed by name.
func (t *Transport) Results() (map[string][]float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.solved {
		return nil, algoErrorf(t.name, "Results", ErrNotRun)
	}
	out := make(map[string][]float64)
	for _, key := range t.results.Keys() {
		if v, err := t.results.Get(key); err == nil {
			out[key] = v
		}
	}

	return out, nil
}

// ValueBCs returns the value boundary conditions sorted by pore.
func (t *Transport) ValueBCs() ([]int, []float64) { return t.boundaries(bcValue) }

// RateBCs returns the rate boundary conditions sorted by pore.
func (t *Transport) RateBCs() ([]int, []float64) { return t.boundaries(bcRate) }

func (t *Transport) boundaries(kind bcKind) ([]int, []float64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	pores := make([]int, 0, len(t.bcs))
	for p, bc := range t.bcs {
		if bc.kind == kind {
			pores = append(pores, p)
		}
	}
	sort.Ints(pores)
	values := make([]float64, len(pores))
	for i, p := range pores {
		values[i] = t.bcs[p].value
	}

	return pores, values
}

// String renders "<name>(<quantity> via <conductance>)".
func (t *Transport) String() string {
	return fmt.Sprintf("%s(%s via %s)", t.name, t.settings.Quantity, t.settings.Conductance)
}
