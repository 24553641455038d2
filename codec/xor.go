// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/binary"
	"math"

	"github.com/MKhiriev/go-obscured/keysource"
)

// TextKeyLen is the key length drawn for text payloads. It does not depend
// on the payload length: longer payloads reuse key bytes (index modulo
// TextKeyLen). The repetition weakens the transform and is kept on purpose.
const TextKeyLen = 100

// XOR returns data XOR key, repeating key when data is longer:
// out[i] = data[i] ^ key[i % len(key)]. It is its own inverse.
//
// A nil data slice (absent plaintext) or an empty key yields nil.
func XOR(data, key []byte) []byte {
	if data == nil || len(key) == 0 {
		return nil
	}

	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ key[i%len(key)]
	}
	return out
}

// Text is the stream XOR codec for byte payloads (UTF-8 text). The zero
// value uses TextKeyLen.
type Text struct {
	KeyLen int
}

var _ Codec[[]byte, []byte, []byte] = Text{}

// NewKey implements [Codec].
func (c Text) NewKey(src keysource.Source) []byte {
	n := c.KeyLen
	if n <= 0 {
		n = TextKeyLen
	}
	return src.Bytes(n)
}

// Encode implements [Codec]. A nil plain encodes to a nil cipher.
func (Text) Encode(plain, key []byte) []byte {
	return XOR(plain, key)
}

// Decode implements [Codec]. A nil cipher decodes to a nil plain.
func (Text) Decode(cipher, key []byte) []byte {
	return XOR(cipher, key)
}

// Float64 is the stream XOR codec for float64 payloads: the eight
// little-endian bytes of the IEEE-754 encoding are each XORed with one key
// byte. Every bit pattern, NaN payloads included, round-trips exactly.
type Float64 struct{}

var _ Codec[float64, [8]byte, [8]byte] = Float64{}

// NewKey implements [Codec].
func (Float64) NewKey(src keysource.Source) (key [8]byte) {
	copy(key[:], src.Bytes(len(key)))
	return key
}

// Encode implements [Codec].
func (Float64) Encode(plain float64, key [8]byte) (cipher [8]byte) {
	binary.LittleEndian.PutUint64(cipher[:], math.Float64bits(plain))
	for i := range cipher {
		cipher[i] ^= key[i]
	}
	return cipher
}

// Decode implements [Codec].
func (Float64) Decode(cipher, key [8]byte) float64 {
	var plain [8]byte
	for i := range plain {
		plain[i] = cipher[i] ^ key[i]
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(plain[:]))
}
