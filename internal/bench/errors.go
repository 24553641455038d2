// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bench

import "errors"

var (
	// ErrIntegrity is returned when a decoded container differs from the
	// plaintext it is expected to hold.
	ErrIntegrity = errors.New("obscured value diverged from plaintext")
	// ErrUnknownKind is returned for a scenario kind the runner cannot build.
	ErrUnknownKind = errors.New("unknown scenario kind")
)
