// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obscured

import "strconv"

// RekeyPolicy decides when a [Value] replaces its key.
type RekeyPolicy int

const (
	// NeverAfterConstruction draws the key once. Writes re-encode under the
	// same key for the life of the container.
	NeverAfterConstruction RekeyPolicy = iota

	// AlwaysOnWrite draws a new key for every write, which makes a write
	// indistinguishable from building a new container.
	AlwaysOnWrite

	// ExplicitOnly re-encodes writes under the current key and replaces the
	// key only through [Value.Rekey].
	ExplicitOnly
)

func (p RekeyPolicy) String() string {
	switch p {
	case NeverAfterConstruction:
		return "never-after-construction"
	case AlwaysOnWrite:
		return "always-on-write"
	case ExplicitOnly:
		return "explicit-only"
	default:
		return "RekeyPolicy(" + strconv.Itoa(int(p)) + ")"
	}
}
