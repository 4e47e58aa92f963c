// Package core defines the central Object and Network types of a pore network
// model, and provides thread-safe primitives for storing, querying, and cloning
// pore and throat data.
//
// An Object is a named dictionary of arrays. Every key is prefixed with the
// element it describes:
//
//	"pore.diameter"    - one float64 per pore
//	"throat.length"    - one float64 per throat
//	"pore.left"        - boolean label, one flag per pore
//
// A Network is an Object that additionally owns the topology: pore coordinates
// and throat connections (each throat joins exactly two distinct pores). The
// topology is fixed at construction; properties and labels remain mutable.
//
// Concurrency:
//
//	All Object methods take an internal sync.RWMutex. Getters return copies, so
//	callers may mutate returned slices freely. Network topology is immutable,
//	so neighbor queries run without locks after construction.
//
// Quick ASCII example (a 2×2 lattice, pores 0..3, throats t0..t3):
//
//	0 ─t0─ 1
//	│      │
//	t1     t2
//	│      │
//	2 ─t3─ 3
//
// Errors:
//
//	ErrBadKey, ErrLengthMismatch, ErrKeyNotFound, ErrPoreOutOfRange,
//	ErrThroatOutOfRange, ErrLoopNotAllowed, ErrUnknownMode, ErrEmptyName.
package core
