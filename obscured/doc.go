// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package obscured provides drop-in containers for integers, floating-point
// numbers and text that keep only ciphertext resident in memory. The
// plaintext exists only for the duration of a single read or computation.
//
// The goal is to make casual memory scanning (cheat tools, grepping a core
// dump) more expensive. It is not encryption: the key sits next to the
// ciphertext, and anyone who reads both recovers the value.
//
// All kinds share one engine, [Value], configured with a [RekeyPolicy]:
//
//	Kind       Codec         Policy
//	[Int]      affine        ExplicitOnly            (RotateKeys on request)
//	[Float64]  8-byte XOR    AlwaysOnWrite           (immutable, replaced)
//	[String]   text XOR      NeverAfterConstruction  (key fixed for life)
//
// Arithmetic and comparison decode the operands, compute in the plaintext
// domain with the primitive's own semantics ([Domain]) and either return a
// plain result or wrap it in a new container with a fresh key.
//
// Containers are not safe for concurrent use. Each one is meant to have a
// single logical owner; callers that share one must guard it themselves.
// The key source behind the containers is safe for concurrent use.
//
// Tampering is not detected: a corrupted key or ciphertext decodes to a
// wrong value without any error.
package obscured
