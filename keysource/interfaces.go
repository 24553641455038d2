// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keysource

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/keysource_mock.go -package=mock

// Source supplies fresh key material to obscured containers.
//
// Every container draws its own key from a Source at construction (and, for
// some rekey policies, on write or on explicit rotation). Two draws made in
// quick succession must differ with high probability; the material does not
// need to be cryptographically secure.
//
// Implementations must be safe for concurrent use: a single process-wide
// Source is shared by every container in the program.
type Source interface {
	// Bytes returns n fresh key bytes. n <= 0 yields an empty, non-nil slice.
	Bytes(n int) []byte

	// AffinePair returns an additive key in [0, MaxAddend) and a
	// multiplicative key in [MinMultiplier, MaxMultiplier). The multiplier is
	// never zero, so the affine codec can always divide by it.
	AffinePair() (add, mul float64)
}
