// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec holds the encode/decode transforms used by obscured
// containers.
//
// Two families are provided:
//   - stream XOR ([XOR], [Text], [Float64]) for byte and text payloads and
//     for the IEEE-754 bits of a float64;
//   - affine ([Affine]) for bounded integers carried as a float64:
//     cipher = (plain + a) * m.
//
// None of the codecs authenticate their input. Decoding a ciphertext under
// the wrong key silently yields garbage; this is a known limitation and is
// never reported as an error.
package codec
