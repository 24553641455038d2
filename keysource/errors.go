// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keysource

import "errors"

// ErrInitialization is returned when a key source cannot be seeded. Callers
// must abort construction of the container that needed the key.
var ErrInitialization = errors.New("key source initialization failed")
