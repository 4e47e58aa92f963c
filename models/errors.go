// SPDX-License-Identifier: MIT
// Package: OpenPNM/models
//
// errors.go — sentinel errors for the models package.

package models

import (
	"errors"
	"fmt"
)

// ErrWrongElement indicates a model evaluated on the wrong element kind,
// e.g. a throat-only model registered under a "pore.*" key.
var ErrWrongElement = errors.New("models: model does not apply to this element")

// ErrBadResult indicates a model returned a slice of the wrong length.
var ErrBadResult = errors.New("models: model returned wrong number of values")

// ErrNilModel indicates Add was called with a nil Model.
var ErrNilModel = errors.New("models: nil model")

func modelErrorf(prop string, err error) error {
	return fmt.Errorf("model %q: %w", prop, err)
}
