// SPDX-License-Identifier: MIT
//
// File: object.go
// Role: Object construction and dictionary access (properties and labels).
// Concurrency:
//   - Writers take mu.Lock, readers mu.RLock. Every slice crossing the API
//     boundary is copied, so no caller can alias internal storage.

package core

import (
	"fmt"
	"math"
	"sort"
)

// NewObject creates an empty Object sized for np pores and nt throats.
// The "pore.all" and "throat.all" labels are created with every flag set.
//
// Errors:
//   - ErrEmptyName if name is empty.
//   - ErrLengthMismatch if np or nt is negative.
//
// Complexity: O(np + nt).
func NewObject(name string, np, nt int) (*Object, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if np < 0 || nt < 0 {
		return nil, fmt.Errorf("NewObject(%s): np=%d nt=%d: %w", name, np, nt, ErrLengthMismatch)
	}
	o := &Object{
		name:   name,
		np:     np,
		nt:     nt,
		props:  make(map[string][]float64),
		labels: make(map[string][]bool),
	}
	o.labels[Key(Pore, LabelAll)] = filledMask(np)
	o.labels[Key(Throat, LabelAll)] = filledMask(nt)

	return o, nil
}

// Name returns the object's name.
func (o *Object) Name() string { return o.name }

// Np returns the number of pores the object is sized for.
func (o *Object) Np() int { return o.np }

// Nt returns the number of throats the object is sized for.
func (o *Object) Nt() int { return o.nt }

// count returns Np or Nt for the element.
func (o *Object) count(el Element) int {
	if el == Pore {
		return o.np
	}
	return o.nt
}

// Count returns Np for Pore and Nt for Throat.
func (o *Object) Count(el Element) int { return o.count(el) }

// Set stores a full-length copy of values under key, replacing any previous
// property. A label stored under the same key is removed.
//
// Errors:
//   - ErrBadKey, ErrLengthMismatch.
//
// Complexity: O(len(values)).
func (o *Object) Set(key string, values []float64) error {
	el, _, err := SplitKey(key)
	if err != nil {
		return fmt.Errorf("Set(%q): %w", key, err)
	}
	if len(values) != o.count(el) {
		return fmt.Errorf("Set(%q): got %d values, want %d: %w", key, len(values), o.count(el), ErrLengthMismatch)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.props[key] = append([]float64(nil), values...)
	delete(o.labels, key)

	return nil
}

// SetScalar stores value at every location of key's element.
func (o *Object) SetScalar(key string, value float64) error {
	el, _, err := SplitKey(key)
	if err != nil {
		return fmt.Errorf("SetScalar(%q): %w", key, err)
	}
	values := make([]float64, o.count(el))
	for i := range values {
		values[i] = value
	}

	return o.Set(key, values)
}

// SetAt writes values at the given locations of key. Missing properties are
// created and filled with NaN, marking the locations no model has covered.
// A single value is broadcast to every location.
//
// Errors:
//   - ErrBadKey.
//   - ErrPoreOutOfRange / ErrThroatOutOfRange for a bad location.
//   - ErrLengthMismatch when len(values) is neither 1 nor len(locs).
//
// Complexity: O(len(locs)), plus O(N) when the property is created.
func (o *Object) SetAt(key string, locs []int, values []float64) error {
	el, _, err := SplitKey(key)
	if err != nil {
		return fmt.Errorf("SetAt(%q): %w", key, err)
	}
	if len(values) != 1 && len(values) != len(locs) {
		return fmt.Errorf("SetAt(%q): %d values for %d locations: %w", key, len(values), len(locs), ErrLengthMismatch)
	}
	n := o.count(el)
	if err = checkRange(el, locs, n); err != nil {
		return fmt.Errorf("SetAt(%q): %w", key, err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	arr, ok := o.props[key]
	if !ok {
		arr = make([]float64, n)
		for i := range arr {
			arr[i] = math.NaN()
		}
		o.props[key] = arr
		delete(o.labels, key)
	}
	for i, loc := range locs {
		if len(values) == 1 {
			arr[loc] = values[0]
		} else {
			arr[loc] = values[i]
		}
	}

	return nil
}

// Get returns a copy of the property stored under key.
// Errors: ErrBadKey, ErrKeyNotFound.
func (o *Object) Get(key string) ([]float64, error) {
	if _, _, err := SplitKey(key); err != nil {
		return nil, fmt.Errorf("Get(%q): %w", key, err)
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	arr, ok := o.props[key]
	if !ok {
		return nil, fmt.Errorf("Get(%q): %w", key, ErrKeyNotFound)
	}

	return append([]float64(nil), arr...), nil
}

// GetAt returns the property values at the given locations.
func (o *Object) GetAt(key string, locs []int) ([]float64, error) {
	el, _, err := SplitKey(key)
	if err != nil {
		return nil, fmt.Errorf("GetAt(%q): %w", key, err)
	}
	if err = checkRange(el, locs, o.count(el)); err != nil {
		return nil, fmt.Errorf("GetAt(%q): %w", key, err)
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	arr, ok := o.props[key]
	if !ok {
		return nil, fmt.Errorf("GetAt(%q): %w", key, ErrKeyNotFound)
	}
	out := make([]float64, len(locs))
	for i, loc := range locs {
		out[i] = arr[loc]
	}

	return out, nil
}

// Has reports whether a property or label is stored under key.
func (o *Object) Has(key string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if _, ok := o.props[key]; ok {
		return true
	}
	_, ok := o.labels[key]

	return ok
}

// Delete removes a property or label. The "all" labels cannot be removed;
// deleting them is a no-op.
func (o *Object) Delete(key string) {
	if key == Key(Pore, LabelAll) || key == Key(Throat, LabelAll) {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.props, key)
	delete(o.labels, key)
}

// SetLabel marks locs as carrying label key. Existing flags are kept
// (labels accumulate); use ClearLabel to reset.
//
// Errors: ErrBadKey, ErrPoreOutOfRange / ErrThroatOutOfRange.
func (o *Object) SetLabel(key string, locs []int) error {
	el, _, err := SplitKey(key)
	if err != nil {
		return fmt.Errorf("SetLabel(%q): %w", key, err)
	}
	n := o.count(el)
	if err = checkRange(el, locs, n); err != nil {
		return fmt.Errorf("SetLabel(%q): %w", key, err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	mask, ok := o.labels[key]
	if !ok {
		mask = make([]bool, n)
		o.labels[key] = mask
		delete(o.props, key)
	}
	for _, loc := range locs {
		mask[loc] = true
	}

	return nil
}

// SetMask stores a full boolean mask as label key.
func (o *Object) SetMask(key string, mask []bool) error {
	el, _, err := SplitKey(key)
	if err != nil {
		return fmt.Errorf("SetMask(%q): %w", key, err)
	}
	if len(mask) != o.count(el) {
		return fmt.Errorf("SetMask(%q): got %d flags, want %d: %w", key, len(mask), o.count(el), ErrLengthMismatch)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.labels[key] = append([]bool(nil), mask...)
	delete(o.props, key)

	return nil
}

// ClearLabel removes every flag of label key but keeps the key.
func (o *Object) ClearLabel(key string) error {
	el, _, err := SplitKey(key)
	if err != nil {
		return fmt.Errorf("ClearLabel(%q): %w", key, err)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.labels[key] = make([]bool, o.count(el))

	return nil
}

// Mask returns a copy of the boolean label stored under key.
func (o *Object) Mask(key string) ([]bool, error) {
	if _, _, err := SplitKey(key); err != nil {
		return nil, fmt.Errorf("Mask(%q): %w", key, err)
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	mask, ok := o.labels[key]
	if !ok {
		return nil, fmt.Errorf("Mask(%q): %w", key, ErrKeyNotFound)
	}

	return append([]bool(nil), mask...), nil
}

// Keys returns the sorted property keys.
func (o *Object) Keys() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return sortedKeys(o.props)
}

// Labels returns the sorted label keys, including "pore.all" and "throat.all".
func (o *Object) Labels() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return sortedKeys(o.labels)
}

// Stats produces a deterministic snapshot of the object's shape and catalog.
// Complexity: O(K log K) for K keys.
func (o *Object) Stats() Stats {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return Stats{
		Name:       o.name,
		Np:         o.np,
		Nt:         o.nt,
		Properties: sortedKeys(o.props),
		Labels:     sortedKeys(o.labels),
	}
}

// Clone returns a deep copy of the object under a new name.
// An empty name keeps the original one.
func (o *Object) Clone(name string) *Object {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if name == "" {
		name = o.name
	}
	c := &Object{
		name:   name,
		np:     o.np,
		nt:     o.nt,
		props:  make(map[string][]float64, len(o.props)),
		labels: make(map[string][]bool, len(o.labels)),
	}
	for k, v := range o.props {
		c.props[k] = append([]float64(nil), v...)
	}
	for k, v := range o.labels {
		c.labels[k] = append([]bool(nil), v...)
	}

	return c
}

// checkRange validates every index in locs against [0, n).
func checkRange(el Element, locs []int, n int) error {
	for _, loc := range locs {
		if loc < 0 || loc >= n {
			if el == Pore {
				return fmt.Errorf("index %d (Np=%d): %w", loc, n, ErrPoreOutOfRange)
			}
			return fmt.Errorf("index %d (Nt=%d): %w", loc, n, ErrThroatOutOfRange)
		}
	}

	return nil
}

func filledMask(n int) []bool {
	m := make([]bool, n)
	for i := range m {
		m[i] = true
	}

	return m
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
