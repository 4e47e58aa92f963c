// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for core operations.
var (
	// ErrBadKey indicates a property key without a "pore." or "throat." prefix.
	ErrBadKey = errors.New("core: key must start with 'pore.' or 'throat.'")

	// ErrLengthMismatch indicates an array whose length does not match Np or Nt.
	ErrLengthMismatch = errors.New("core: array length does not match element count")

	// ErrKeyNotFound indicates a property or label that is not stored on the object.
	ErrKeyNotFound = errors.New("core: key not found")

	// ErrPoreOutOfRange indicates a pore index outside [0, Np).
	ErrPoreOutOfRange = errors.New("core: pore index out of range")

	// ErrThroatOutOfRange indicates a throat index outside [0, Nt).
	ErrThroatOutOfRange = errors.New("core: throat index out of range")

	// ErrLoopNotAllowed indicates a throat connecting a pore to itself.
	ErrLoopNotAllowed = errors.New("core: throat connects a pore to itself")

	// ErrUnknownMode indicates an unsupported label or neighbor query mode.
	ErrUnknownMode = errors.New("core: unknown query mode")

	// ErrEmptyName indicates an object constructed without a name.
	ErrEmptyName = errors.New("core: object name is empty")
)

// Element selects the pore or throat domain of a key.
type Element string

const (
	// Pore is the element prefix for per-pore arrays.
	Pore Element = "pore"

	// Throat is the element prefix for per-throat arrays.
	Throat Element = "throat"
)

// Label names present on every object.
const (
	LabelAll = "all"
)

// Mode selects how label or neighbor queries combine their inputs.
type Mode string

const (
	// ModeOr returns locations matching any input (union).
	ModeOr Mode = "or"

	// ModeAnd returns locations matching every input (intersection).
	ModeAnd Mode = "and"

	// ModeXor returns locations matching exactly one input.
	ModeXor Mode = "xor"

	// ModeNor returns locations matching none of the inputs.
	ModeNor Mode = "nor"

	// ModeXnor returns locations matching two or more inputs
	// (neighbor queries only: pores shared by several inputs, or throats
	// with both ends inside the input set).
	ModeXnor Mode = "xnor"
)

// Key joins an element and a property name into a dictionary key.
//
//	Key(Pore, "diameter") == "pore.diameter"
func Key(el Element, prop string) string {
	return string(el) + "." + prop
}

// SplitKey parses "pore.x" or "throat.x" into its element and property name.
// Returns ErrBadKey when the prefix is missing or the name is empty.
func SplitKey(key string) (Element, string, error) {
	el, prop, ok := strings.Cut(key, ".")
	if !ok || prop == "" {
		return "", "", ErrBadKey
	}
	switch Element(el) {
	case Pore, Throat:
		return Element(el), prop, nil
	default:
		return "", "", ErrBadKey
	}
}

// Object is a named, thread-safe dictionary of pore and throat arrays.
//
// Float properties and boolean labels live in separate maps; a key may not be
// both. mu guards props and labels. np and nt never change after creation.
type Object struct {
	mu sync.RWMutex // guards props and labels

	name string
	np   int // pore count
	nt   int // throat count

	props  map[string][]float64 // "pore.x" -> len np, "throat.x" -> len nt
	labels map[string][]bool    // same sizing rules as props
}

// Stats is a read-only snapshot of an object's shape and catalog.
type Stats struct {
	Name       string
	Np         int
	Nt         int
	Properties []string // sorted keys
	Labels     []string // sorted keys
}
