// SPDX-License-Identifier: MIT

// Package release decides version bumps from commit messages.
//
// A message containing "#major", "#minor" or "#patch" requests the matching
// bump; when several appear the largest wins. Without a keyword nothing is
// bumped.
package release

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Kind is a semantic version component.
type Kind int

const (
	None Kind = iota
	Patch
	Minor
	Major
)

var kindNames = [...]string{"none", "patch", "minor", "major"}

func (k Kind) String() string {
	if k < None || k > Major {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ErrBadVersion indicates a version that is not canonical MAJOR.MINOR.PATCH.
var ErrBadVersion = errors.New("release: invalid semantic version")

// BumpKind returns the largest bump requested in message.
func BumpKind(message string) Kind {
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "#major"):
		return Major
	case strings.Contains(msg, "#minor"):
		return Minor
	case strings.Contains(msg, "#patch"):
		return Patch
	}

	return None
}

// Bump returns version incremented by kind, keeping a leading "v" when the
// input has one. Pre-release and build suffixes are dropped. None returns
// the input unchanged.
//
// Errors:
//   - ErrBadVersion when version is not MAJOR.MINOR.PATCH.
func Bump(version string, kind Kind) (string, error) {
	raw := strings.TrimSpace(version)
	prefixed := strings.HasPrefix(raw, "v")
	v := raw
	if !prefixed {
		v = "v" + raw
	}
	// semver accepts the "v1" and "v1.2" shorthands; a VERSION file may not.
	numeric, _, _ := strings.Cut(v[1:], "-")
	numeric, _, _ = strings.Cut(numeric, "+")
	if !semver.IsValid(v) || strings.Count(numeric, ".") != 2 {
		return "", fmt.Errorf("Bump(%q): %w", version, ErrBadVersion)
	}
	if kind == None {
		return raw, nil
	}

	core := strings.TrimPrefix(semver.Canonical(v), "v")
	core = strings.TrimSuffix(core, semver.Prerelease(v))
	parts := strings.Split(core, ".")
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("Bump(%q): %w", version, ErrBadVersion)
		}
		nums[i] = n
	}
	switch kind {
	case Major:
		nums = []int{nums[0] + 1, 0, 0}
	case Minor:
		nums = []int{nums[0], nums[1] + 1, 0}
	case Patch:
		nums[2]++
	default:
		return "", fmt.Errorf("Bump(%q): kind %s: %w", version, kind, ErrBadVersion)
	}

	out := fmt.Sprintf("%d.%d.%d", nums[0], nums[1], nums[2])
	if prefixed {
		out = "v" + out
	}

	return out, nil
}
