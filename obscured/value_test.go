// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obscured

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/go-obscured/codec"
	"github.com/MKhiriev/go-obscured/internal/mock"
	"github.com/MKhiriev/go-obscured/keysource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSource(t *testing.T) keysource.Source {
	t.Helper()
	src, err := keysource.NewSeeded([]byte(t.Name()))
	require.NoError(t, err)
	return src
}

// ── ExplicitOnly ──────────────────────────────────────────────────────────────

// TestValue_ExplicitOnly_KeyChangesOnlyOnRekey verifies that writes reuse
// the current key and Rekey draws exactly one new key while keeping the
// value.
func TestValue_ExplicitOnly_KeyChangesOnlyOnRekey(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mock.NewMockSource(ctrl)

	gomock.InOrder(
		src.EXPECT().AffinePair().Return(2.0, 3.0),
		src.EXPECT().AffinePair().Return(4.0, 5.0),
	)

	v := NewValue[int32, codec.AffineKey, float64](codec.Affine{}, ExplicitOnly, src, 5)
	assert.Equal(t, codec.AffineKey{Add: 2, Mul: 3}, v.key)
	assert.Equal(t, 21.0, v.cipher)
	assert.EqualValues(t, 5, v.Read())

	v.Write(7)
	assert.Equal(t, codec.AffineKey{Add: 2, Mul: 3}, v.key)
	assert.Equal(t, 27.0, v.cipher)
	assert.EqualValues(t, 7, v.Read())

	require.NoError(t, v.Rekey())
	assert.Equal(t, codec.AffineKey{Add: 4, Mul: 5}, v.key)
	assert.Equal(t, 55.0, v.cipher)
	assert.EqualValues(t, 7, v.Read())
}

// ── NeverAfterConstruction ────────────────────────────────────────────────────

// TestValue_NeverAfterConstruction_KeyFixed verifies that the key is drawn
// once and that Rekey is refused.
func TestValue_NeverAfterConstruction_KeyFixed(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mock.NewMockSource(ctrl)

	key := bytes.Repeat([]byte{0x5a}, codec.TextKeyLen)
	src.EXPECT().Bytes(codec.TextKeyLen).Return(key).Times(1)

	v := NewValue[[]byte, []byte, []byte](codec.Text{}, NeverAfterConstruction, src, []byte("hello"))
	assert.Equal(t, []byte("hello"), v.Read())

	v.Write([]byte("world"))
	assert.Equal(t, []byte("world"), v.Read())
	assert.Equal(t, key, v.key)
	assert.Equal(t, codec.XOR([]byte("world"), key), v.cipher)

	err := v.Rekey()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRekeyNotSupported)
	assert.Equal(t, []byte("world"), v.Read())
}

// ── AlwaysOnWrite ─────────────────────────────────────────────────────────────

// TestValue_AlwaysOnWrite_FreshKeyPerWrite verifies that every write draws a
// new key and Rekey is refused.
func TestValue_AlwaysOnWrite_FreshKeyPerWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mock.NewMockSource(ctrl)

	k1 := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	k2 := []byte{9, 10, 11, 12, 13, 14, 15, 16}
	gomock.InOrder(
		src.EXPECT().Bytes(8).Return(k1),
		src.EXPECT().Bytes(8).Return(k2),
	)

	v := NewValue[float64, [8]byte, [8]byte](codec.Float64{}, AlwaysOnWrite, src, 1.5)
	assert.Equal(t, [8]byte(k1), v.key)

	v.Write(-2.25)
	assert.Equal(t, [8]byte(k2), v.key)
	assert.Equal(t, -2.25, v.Read())

	assert.ErrorIs(t, v.Rekey(), ErrRekeyNotSupported)
}

// ── write-then-read across policies ───────────────────────────────────────────

// TestValue_WriteThenRead verifies that after write(v2) a value built with v1
// reads v2 under every policy.
func TestValue_WriteThenRead(t *testing.T) {
	src := newTestSource(t)

	for _, policy := range []RekeyPolicy{NeverAfterConstruction, AlwaysOnWrite, ExplicitOnly} {
		t.Run(policy.String(), func(t *testing.T) {
			iv := NewValue[int32, codec.AffineKey, float64](codec.Affine{}, policy, src, 100)
			iv.Write(-42)
			assert.EqualValues(t, -42, iv.Read())

			fv := NewValue[float64, [8]byte, [8]byte](codec.Float64{}, policy, src, 0.1)
			fv.Write(0.2)
			assert.Equal(t, 0.2, fv.Read())

			tv := NewValue[[]byte, []byte, []byte](codec.Text{}, policy, src, []byte("first"))
			tv.Write([]byte("second"))
			assert.Equal(t, []byte("second"), tv.Read())
			assert.Equal(t, policy, tv.Policy())
		})
	}
}

// TestValue_ReadHasNoSideEffects verifies that repeated reads neither change
// the key nor the ciphertext.
func TestValue_ReadHasNoSideEffects(t *testing.T) {
	v := NewValue[int32, codec.AffineKey, float64](codec.Affine{}, ExplicitOnly, newTestSource(t), 99)
	key, cipher := v.key, v.cipher

	for range 10 {
		assert.EqualValues(t, 99, v.Read())
	}
	assert.Equal(t, key, v.key)
	assert.Equal(t, cipher, v.cipher)
}

// TestValue_NilTextPropagates verifies that an absent plaintext survives the
// engine without panicking.
func TestValue_NilTextPropagates(t *testing.T) {
	v := NewValue[[]byte, []byte, []byte](codec.Text{}, NeverAfterConstruction, newTestSource(t), nil)
	assert.Nil(t, v.cipher)
	assert.Nil(t, v.Read())

	v.Write([]byte("now present"))
	assert.Equal(t, []byte("now present"), v.Read())
}

func TestValue_Source(t *testing.T) {
	src := newTestSource(t)
	v := NewValue[int32, codec.AffineKey, float64](codec.Affine{}, ExplicitOnly, src, 1)
	assert.Same(t, src, v.Source())
}

func TestRekeyPolicy_String(t *testing.T) {
	assert.Equal(t, "never-after-construction", NeverAfterConstruction.String())
	assert.Equal(t, "always-on-write", AlwaysOnWrite.String())
	assert.Equal(t, "explicit-only", ExplicitOnly.String())
	assert.Equal(t, "RekeyPolicy(9)", RekeyPolicy(9).String())
}

// TestValue_RotateIgnoresPolicy verifies that the internal rotation path
// used by Int.RotateKeys swaps the key for any policy while the public
// Rekey stays policy checked.
func TestValue_RotateIgnoresPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mock.NewMockSource(ctrl)

	gomock.InOrder(
		src.EXPECT().AffinePair().Return(1.0, 2.0),
		src.EXPECT().AffinePair().Return(3.0, 4.0),
	)

	v := NewValue[int32, codec.AffineKey, float64](codec.Affine{}, NeverAfterConstruction, src, 9)
	require.ErrorIs(t, v.Rekey(), ErrRekeyNotSupported)

	v.rotate()
	assert.Equal(t, codec.AffineKey{Add: 3, Mul: 4}, v.key)
	assert.Equal(t, 48.0, v.cipher)
	assert.EqualValues(t, 9, v.Read())
}
