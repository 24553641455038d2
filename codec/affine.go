// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"math"

	"github.com/MKhiriev/go-obscured/keysource"
)

// AffineKey is the key of the affine codec.
type AffineKey struct {
	// Add is added to the plaintext before scaling.
	Add float64
	// Mul scales the shifted plaintext. It must never be zero;
	// [keysource.Source.AffinePair] guarantees Mul >= keysource.MinMultiplier.
	Mul float64
}

// Affine is the additive-multiplicative codec for int32 payloads carried as
// float64: cipher = (plain + Add) * Mul, plain = cipher / Mul - Add.
//
// Floating arithmetic leaves a small error on decode, so the result is
// rounded to the nearest integer with ties going to the even neighbour.
// Over the whole int32 range and the key ranges of [keysource] the error
// stays far below one half.
type Affine struct{}

var _ Codec[int32, AffineKey, float64] = Affine{}

// NewKey implements [Codec].
func (Affine) NewKey(src keysource.Source) AffineKey {
	add, mul := src.AffinePair()
	return AffineKey{Add: add, Mul: mul}
}

// Encode implements [Codec].
func (Affine) Encode(plain int32, key AffineKey) float64 {
	return (float64(plain) + key.Add) * key.Mul
}

// Decode implements [Codec].
func (Affine) Decode(cipher float64, key AffineKey) int32 {
	return int32(roundPlain(cipher/key.Mul - key.Add))
}

// roundPlain is the affine rounding rule: nearest integer, ties to even.
func roundPlain(x float64) float64 {
	return math.RoundToEven(x)
}
