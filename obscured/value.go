// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obscured

import (
	"fmt"

	"github.com/MKhiriev/go-obscured/codec"
	"github.com/MKhiriev/go-obscured/keysource"
)

// Value is the obscuring engine shared by every container kind. It owns
// exactly one key and one ciphertext; the plaintext is recomputed on every
// [Value.Read].
//
// After every public method returns, Decode(cipher, key) equals the last
// value written. Key and ciphertext are always replaced together.
type Value[T, K, C any] struct {
	codec  codec.Codec[T, K, C]
	src    keysource.Source
	policy RekeyPolicy

	key    K
	cipher C
}

// NewValue draws a fresh key from src and encodes plain under it.
func NewValue[T, K, C any](c codec.Codec[T, K, C], policy RekeyPolicy, src keysource.Source, plain T) *Value[T, K, C] {
	key := c.NewKey(src)
	cipher := c.Encode(plain, key)

	return &Value[T, K, C]{
		codec:  c,
		src:    src,
		policy: policy,
		key:    key,
		cipher: cipher,
	}
}

// Read decodes and returns the current plaintext. It never changes state.
func (v *Value[T, K, C]) Read() T {
	return v.codec.Decode(v.cipher, v.key)
}

// Write stores plain. Under AlwaysOnWrite a new key is drawn first; the
// other policies re-encode under the current key.
func (v *Value[T, K, C]) Write(plain T) {
	key := v.key
	if v.policy == AlwaysOnWrite {
		key = v.codec.NewKey(v.src)
	}

	cipher := v.codec.Encode(plain, key)
	v.key, v.cipher = key, cipher
}

// Rekey re-encodes the current plaintext under a new key without changing
// the observed value. Only ExplicitOnly values can be rekeyed; other
// policies return [ErrRekeyNotSupported].
func (v *Value[T, K, C]) Rekey() error {
	if v.policy != ExplicitOnly {
		return fmt.Errorf("%w: %s", ErrRekeyNotSupported, v.policy)
	}

	v.rotate()
	return nil
}

// rotate replaces the key and re-encodes the current plaintext under it.
func (v *Value[T, K, C]) rotate() {
	plain := v.Read()
	key := v.codec.NewKey(v.src)
	cipher := v.codec.Encode(plain, key)
	v.key, v.cipher = key, cipher
}

// Policy returns the rekey policy the value was built with.
func (v *Value[T, K, C]) Policy() RekeyPolicy {
	return v.policy
}

// Source returns the key source the value draws from. Containers derived
// from this one (arithmetic results) use the same source.
func (v *Value[T, K, C]) Source() keysource.Source {
	return v.src
}
