// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keysource produces the per-instance key material used by the
// obscured value containers.
//
// The default implementation, [Stream], is a chacha20 keystream seeded from
// the operating system CSPRNG. [Default] returns a lazily created
// process-wide instance; [NewSeeded] builds a deterministic stream for tests
// and reproducible benchmark runs.
//
// Key material only has to be unpredictable enough that two containers built
// back to back get different keys. It is not meant to withstand an attacker
// who can read process memory.
package keysource
