// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obscured

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/go-obscured/codec"
	"github.com/MKhiriev/go-obscured/keysource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustString(t *testing.T, src keysource.Source, s string) *String {
	t.Helper()
	str, err := NewString(s, WithKeySource(src))
	require.NoError(t, err)
	return str
}

// TestString_HelloWorld covers the canonical flow: write replaces the value,
// and two independently built containers differ in memory but compare equal.
func TestString_HelloWorld(t *testing.T) {
	src := newTestSource(t)

	s := mustString(t, src, "hello")
	s.Set("world")
	assert.Equal(t, "world", s.Value())
	assert.NotEqual(t, "hello", s.Value())

	a, b := mustString(t, src, "world"), mustString(t, src, "world")
	assert.NotEqual(t, a.v.cipher, b.v.cipher)
	assert.Equal(t, a.Value(), b.Value())
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(s))
}

// TestString_KeyFixedForLife verifies that writes never replace the key.
func TestString_KeyFixedForLife(t *testing.T) {
	s := mustString(t, newTestSource(t), "first")
	key := bytes.Clone(s.v.key)

	s.Set("second")
	s.Set(strings.Repeat("x", 3*codec.TextKeyLen))
	require.NoError(t, s.ReplaceAt(0, 'y'))

	assert.Equal(t, key, s.v.key)
	assert.Len(t, s.v.key, codec.TextKeyLen)
	assert.ErrorIs(t, s.v.Rekey(), ErrRekeyNotSupported)
}

// TestString_CipherHidesPlain verifies that the resident bytes do not contain
// the plaintext.
func TestString_CipherHidesPlain(t *testing.T) {
	s := mustString(t, newTestSource(t), "player-score-1337")
	assert.False(t, bytes.Contains(s.v.cipher, []byte("1337")))
}

func TestString_Null(t *testing.T) {
	src := newTestSource(t)

	null, err := NewNullString(WithKeySource(src))
	require.NoError(t, err)
	empty := mustString(t, src, "")

	assert.True(t, null.IsNull())
	assert.False(t, empty.IsNull())
	assert.Equal(t, "", null.Value())
	assert.Equal(t, 0, null.Len())
	assert.Nil(t, null.Bytes())

	other, err := NewNullString(WithKeySource(src))
	require.NoError(t, err)
	assert.True(t, null.Equal(other))
	assert.False(t, null.Equal(empty))
	assert.False(t, null.EqualString(""))
	assert.True(t, empty.EqualString(""))
	assert.Equal(t, -1, null.Compare(empty))
	assert.Equal(t, 1, empty.Compare(null))
	assert.Equal(t, 0, null.Compare(other))

	assert.Equal(t, "abc", null.Append("abc").Value())
	assert.Equal(t, "", null.Concat(other).Value())
	assert.False(t, null.Concat(other).IsNull())

	null.Set("set")
	assert.False(t, null.IsNull())
	assert.Equal(t, "set", null.Value())
}

// TestString_At verifies byte indexing and the out-of-range error.
func TestString_At(t *testing.T) {
	s := mustString(t, newTestSource(t), "abc")

	tests := []struct {
		name    string
		index   int
		want    byte
		wantErr error
	}{
		{name: "first", index: 0, want: 'a'},
		{name: "last", index: 2, want: 'c'},
		{name: "past end", index: 3, wantErr: ErrIndexOutOfRange},
		{name: "negative", index: -1, wantErr: ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.At(tt.index)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString_ReplaceAt(t *testing.T) {
	s := mustString(t, newTestSource(t), "cat")

	require.NoError(t, s.ReplaceAt(0, 'b'))
	assert.Equal(t, "bat", s.Value())
	assert.ErrorIs(t, s.ReplaceAt(3, 'x'), ErrIndexOutOfRange)
	assert.Equal(t, "bat", s.Value())
}

// TestString_ConcatIsNewContainer verifies that concatenation leaves the
// operands alone and returns a container with its own key.
func TestString_ConcatIsNewContainer(t *testing.T) {
	src := newTestSource(t)
	a, b := mustString(t, src, "foo"), mustString(t, src, "bar")
	aCipher := bytes.Clone(a.v.cipher)

	c := a.Concat(b)
	assert.Equal(t, "foobar", c.Value())
	assert.Equal(t, "foo", a.Value())
	assert.Equal(t, "bar", b.Value())
	assert.Equal(t, aCipher, a.v.cipher)
	assert.NotEqual(t, a.v.key, c.v.key)

	assert.Equal(t, "foo!", a.Append("!").Value())
}

func TestString_LongTextWrapsKey(t *testing.T) {
	long := strings.Repeat("0123456789", 35)
	s := mustString(t, newTestSource(t), long)

	assert.Equal(t, long, s.Value())
	assert.Equal(t, len(long), s.Len())
	// positions one key length apart hold equal plaintext and therefore
	// equal ciphertext
	assert.Equal(t, s.v.cipher[:10], s.v.cipher[codec.TextKeyLen:codec.TextKeyLen+10])
}

func TestString_Constructors(t *testing.T) {
	src := newTestSource(t)

	r, err := NewStringFromRunes([]rune("héllo"), WithKeySource(src))
	require.NoError(t, err)
	assert.Equal(t, "héllo", r.Value())
	assert.Equal(t, []rune("héllo"), r.Runes())
	assert.Equal(t, 6, r.Len())

	rep, err := NewRepeatedString('z', 4, WithKeySource(src))
	require.NoError(t, err)
	assert.Equal(t, "zzzz", rep.Value())

	_, err = NewRepeatedString('z', -1, WithKeySource(src))
	assert.ErrorIs(t, err, ErrInvalidCount)

	def, err := NewString("default source")
	require.NoError(t, err)
	assert.Equal(t, "default source", def.Value())
}

func TestString_Compare(t *testing.T) {
	src := newTestSource(t)
	apple, banana := mustString(t, src, "apple"), mustString(t, src, "banana")

	assert.Equal(t, -1, apple.Compare(banana))
	assert.Equal(t, 1, banana.Compare(apple))
	assert.Equal(t, 0, apple.Compare(mustString(t, src, "apple")))
	assert.True(t, apple.EqualString("apple"))
	assert.False(t, apple.EqualString("Apple"))
}

func TestString_Format(t *testing.T) {
	s := mustString(t, newTestSource(t), "go")

	assert.Equal(t, "go", fmt.Sprint(s))
	assert.Equal(t, `"go"`, fmt.Sprintf("%q", s))
	assert.Equal(t, "  go", fmt.Sprintf("%4s", s))
	assert.Equal(t, "676f", fmt.Sprintf("%x", s))
	assert.Equal(t, "go", s.String())
}

// TestString_BytesIsCopy verifies that mutating the returned bytes does not
// affect the container.
func TestString_BytesIsCopy(t *testing.T) {
	s := mustString(t, newTestSource(t), "keep")
	b := s.Bytes()
	clear(b)

	assert.Equal(t, "keep", s.Value())
}

// TestString_ZeroValue verifies that a declared but unconstructed String
// holds "" rather than null.
func TestString_ZeroValue(t *testing.T) {
	var s String
	assert.False(t, s.IsNull())
	assert.Equal(t, "", s.Value())
	assert.Equal(t, 0, s.Len())

	s.Set("ready")
	assert.Equal(t, "ready", s.Value())

	var other String
	assert.Equal(t, "ready", s.Concat(&other).Value())
	assert.Equal(t, 1, s.Compare(&other))
}

func TestNewStringFromRuneRange(t *testing.T) {
	src := newTestSource(t)
	runes := []rune("héllo wörld")

	tests := []struct {
		name          string
		start, length int
		want          string
		wantErr       error
	}{
		{name: "prefix", start: 0, length: 5, want: "héllo"},
		{name: "suffix", start: 6, length: 5, want: "wörld"},
		{name: "empty", start: 3, length: 0, want: ""},
		{name: "whole", start: 0, length: len(runes), want: "héllo wörld"},
		{name: "past end", start: 8, length: 5, wantErr: ErrIndexOutOfRange},
		{name: "negative start", start: -1, length: 2, wantErr: ErrIndexOutOfRange},
		{name: "negative length", start: 1, length: -1, wantErr: ErrIndexOutOfRange},
		{name: "length beyond input", start: 0, length: 100, wantErr: ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStringFromRuneRange(runes, tt.start, tt.length, WithKeySource(src))
			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
			assert.False(t, got.IsNull())
		})
	}
}

// TestString_IsNullLeavesStateAlone verifies that checking for null neither
// changes the key nor the ciphertext.
func TestString_IsNullLeavesStateAlone(t *testing.T) {
	s := mustString(t, newTestSource(t), "secret")
	key, cipher := bytes.Clone(s.v.key), bytes.Clone(s.v.cipher)

	assert.False(t, s.IsNull())
	assert.Equal(t, key, s.v.key)
	assert.Equal(t, cipher, s.v.cipher)
	assert.Equal(t, "secret", s.Value())
}
