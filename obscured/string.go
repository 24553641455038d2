// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obscured

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-obscured/codec"
	"github.com/MKhiriev/go-obscured/keysource"
)

// String is obscured text. Its UTF-8 bytes are kept XORed with a
// codec.TextKeyLen byte key drawn once at construction; the key is reused
// cyclically for longer texts and never changes for the life of the
// container.
//
// A String can also be null (absent), which is distinct from the empty
// string. Indexing and length follow Go string semantics and work on bytes.
//
// The zero String holds "" (not null) and draws its key from
// [keysource.Default] on first use.
type String struct {
	v *Value[[]byte, []byte, []byte]
}

// NewString returns a String holding s.
func NewString(s string, opts ...Option) (*String, error) {
	src, err := resolveSource(opts)
	if err != nil {
		return nil, err
	}
	return newString(s, src), nil
}

// NewNullString returns a null String.
func NewNullString(opts ...Option) (*String, error) {
	src, err := resolveSource(opts)
	if err != nil {
		return nil, err
	}
	return &String{v: newTextValue(nil, src)}, nil
}

// NewStringFromRunes returns a String holding the UTF-8 encoding of r.
func NewStringFromRunes(r []rune, opts ...Option) (*String, error) {
	return NewString(string(r), opts...)
}

// NewRepeatedString returns a String holding r repeated count times. A
// negative count returns [ErrInvalidCount].
func NewRepeatedString(r rune, count int, opts ...Option) (*String, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	return NewString(strings.Repeat(string(r), count), opts...)
}

// NewStringFromRuneRange returns a String holding r[start:start+length].
// A range outside r returns [ErrIndexOutOfRange].
func NewStringFromRuneRange(r []rune, start, length int, opts ...Option) (*String, error) {
	if start < 0 || length < 0 || start > len(r)-length {
		return nil, fmt.Errorf("%w: start %d, length %d, runes %d", ErrIndexOutOfRange, start, length, len(r))
	}
	return NewStringFromRunes(r[start:start+length], opts...)
}

func newString(s string, src keysource.Source) *String {
	plain := plainBytes(s)
	defer clear(plain)

	return &String{v: newTextValue(plain, src)}
}

func newTextValue(plain []byte, src keysource.Source) *Value[[]byte, []byte, []byte] {
	return NewValue[[]byte, []byte, []byte](codec.Text{KeyLen: codec.TextKeyLen}, NeverAfterConstruction, src, plain)
}

// plainBytes copies s into a non-nil slice, so "" stays distinct from null.
func plainBytes(s string) []byte {
	b := make([]byte, len(s))
	copy(b, s)
	return b
}

// engine returns the backing value, building an empty one on first use of a
// zero String.
func (s *String) engine() *Value[[]byte, []byte, []byte] {
	if s.v == nil {
		s.v = newString("", defaultSource()).v
	}
	return s.v
}

// Value returns the plaintext. A null String returns "".
func (s *String) Value() string {
	plain := s.engine().Read()
	defer clear(plain)

	return string(plain)
}

// Set assigns text under the existing key. A null String stops being null.
func (s *String) Set(text string) {
	plain := plainBytes(text)
	defer clear(plain)

	s.engine().Write(plain)
}

// IsNull reports whether the String is null.
func (s *String) IsNull() bool {
	plain := s.engine().Read()
	defer clear(plain)

	return plain == nil
}

// Len returns the length of the plaintext in bytes.
func (s *String) Len() int {
	plain := s.engine().Read()
	defer clear(plain)

	return len(plain)
}

// At returns the byte at index i, or [ErrIndexOutOfRange].
func (s *String) At(i int) (byte, error) {
	plain := s.engine().Read()
	defer clear(plain)

	if i < 0 || i >= len(plain) {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(plain))
	}
	return plain[i], nil
}

// ReplaceAt overwrites the byte at index i in place, or returns
// [ErrIndexOutOfRange].
func (s *String) ReplaceAt(i int, c byte) error {
	plain := s.engine().Read()
	defer clear(plain)

	if i < 0 || i >= len(plain) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(plain))
	}
	plain[i] = c
	s.engine().Write(plain)

	return nil
}

// Concat returns a new String holding s followed by o. Null operands
// concatenate as "".
func (s *String) Concat(o *String) *String {
	left, right := s.engine().Read(), o.engine().Read()
	defer clear(left)
	defer clear(right)

	joined := make([]byte, 0, len(left)+len(right))
	joined = append(joined, left...)
	joined = append(joined, right...)
	defer clear(joined)

	return &String{v: newTextValue(joined, s.engine().Source())}
}

// Append returns a new String holding s followed by text.
func (s *String) Append(text string) *String {
	left := s.engine().Read()
	defer clear(left)

	joined := make([]byte, 0, len(left)+len(text))
	joined = append(joined, left...)
	joined = append(joined, text...)
	defer clear(joined)

	return &String{v: newTextValue(joined, s.engine().Source())}
}

// Equal compares the decoded plaintexts; keys and ciphertexts are never
// compared. Two null Strings are equal; null never equals a non-null one.
func (s *String) Equal(o *String) bool {
	left, right := s.engine().Read(), o.engine().Read()
	defer clear(left)
	defer clear(right)

	if left == nil || right == nil {
		return left == nil && right == nil
	}
	return bytes.Equal(left, right)
}

// EqualString reports whether s holds text. A null String equals no text.
func (s *String) EqualString(text string) bool {
	plain := s.engine().Read()
	defer clear(plain)

	return plain != nil && string(plain) == text
}

// Compare orders the plaintexts bytewise. Null sorts before every non-null
// String, including "".
func (s *String) Compare(o *String) int {
	left, right := s.engine().Read(), o.engine().Read()
	defer clear(left)
	defer clear(right)

	switch {
	case left == nil && right == nil:
		return 0
	case left == nil:
		return -1
	case right == nil:
		return 1
	}
	return bytes.Compare(left, right)
}

// Bytes returns a copy of the plaintext bytes (nil for a null String). The
// caller owns the slice and should clear it when done.
func (s *String) Bytes() []byte {
	return s.engine().Read()
}

// Runes returns the plaintext decoded into runes.
func (s *String) Runes() []rune {
	plain := s.engine().Read()
	defer clear(plain)

	return bytes.Runes(plain)
}

func (s *String) String() string {
	return s.Value()
}

// Format implements [fmt.Formatter] over the plaintext, so %s, %q, %x and
// width flags behave as for a string.
func (s *String) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), s.Value())
}
