// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "github.com/MKhiriev/go-obscured/keysource"

// Codec is an encode/decode transform for plaintexts of type T under keys of
// type K, producing ciphertexts of type C.
//
// For every key k returned by NewKey, Decode(Encode(p, k), k) must equal p
// (modulo the codec's documented rounding rule).
type Codec[T, K, C any] interface {
	// NewKey draws fresh key material for one container from src.
	NewKey(src keysource.Source) K

	// Encode transforms plain into ciphertext under key.
	Encode(plain T, key K) C

	// Decode recovers the plaintext from cipher under key.
	Decode(cipher C, key K) T
}
