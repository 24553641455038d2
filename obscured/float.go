// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obscured

import (
	"fmt"
	"math"
	"strconv"

	"github.com/MKhiriev/go-obscured/codec"
	"github.com/MKhiriev/go-obscured/keysource"
)

var floatDomain = FloatDomain[float64]()

// Float64 is an obscured float64. Its eight IEEE-754 bytes are kept XORed
// with an eight-byte random key.
//
// A Float64 is immutable: arithmetic never touches the operands and returns
// a new container with a freshly drawn key.
//
// The zero Float64 holds 0 and draws its key from [keysource.Default] on
// first use.
type Float64 struct {
	v *Value[float64, [8]byte, [8]byte]
}

// NewFloat64 returns a Float64 holding v.
func NewFloat64(v float64, opts ...Option) (*Float64, error) {
	src, err := resolveSource(opts)
	if err != nil {
		return nil, err
	}
	return newFloat64(v, src), nil
}

func newFloat64(v float64, src keysource.Source) *Float64 {
	return &Float64{v: NewValue[float64, [8]byte, [8]byte](codec.Float64{}, AlwaysOnWrite, src, v)}
}

func (f *Float64) engine() *Value[float64, [8]byte, [8]byte] {
	if f.v == nil {
		f.v = newFloat64(0, defaultSource()).v
	}
	return f.v
}

// Value returns the plaintext.
func (f *Float64) Value() float64 {
	return f.engine().Read()
}

// Apply returns a new Float64 holding f op o.
func (f *Float64) Apply(op Op, o *Float64) (*Float64, error) {
	return f.ApplyPlain(op, o.Value())
}

// ApplyPlain returns a new Float64 holding f op x.
func (f *Float64) ApplyPlain(op Op, x float64) (*Float64, error) {
	r, err := floatDomain.Apply(op, f.Value(), x)
	if err != nil {
		return nil, fmt.Errorf("float %s: %w", op, err)
	}
	return newFloat64(r, f.engine().Source()), nil
}

// Add returns a new Float64 holding f + o.
func (f *Float64) Add(o *Float64) *Float64 {
	return newFloat64(floatDomain.Add(f.Value(), o.Value()), f.engine().Source())
}

// Sub returns a new Float64 holding f - o.
func (f *Float64) Sub(o *Float64) *Float64 {
	return newFloat64(floatDomain.Sub(f.Value(), o.Value()), f.engine().Source())
}

// Mul returns a new Float64 holding f * o.
func (f *Float64) Mul(o *Float64) *Float64 {
	return newFloat64(floatDomain.Mul(f.Value(), o.Value()), f.engine().Source())
}

// Div returns a new Float64 holding f / o. Division by zero follows IEEE-754.
func (f *Float64) Div(o *Float64) *Float64 {
	r, _ := floatDomain.Div(f.Value(), o.Value())
	return newFloat64(r, f.engine().Source())
}

// Mod returns a new Float64 holding math.Mod(f, o).
func (f *Float64) Mod(o *Float64) *Float64 {
	r, _ := floatDomain.Mod(f.Value(), o.Value())
	return newFloat64(r, f.engine().Source())
}

// Equal reports whether both plaintexts compare equal with ==, so NaN is
// never equal to anything.
func (f *Float64) Equal(o *Float64) bool {
	return f.EqualPlain(o.Value())
}

// EqualPlain reports whether f == x.
func (f *Float64) EqualPlain(x float64) bool {
	return floatDomain.Equal(f.Value(), x)
}

// Compare orders the plaintexts like [cmp.Compare]: NaN sorts before every
// other value.
func (f *Float64) Compare(o *Float64) int {
	return f.ComparePlain(o.Value())
}

// ComparePlain compares f with a plain float64, ordering NaN first.
func (f *Float64) ComparePlain(x float64) int {
	return floatDomain.Compare(f.Value(), x)
}

// IsNaN reports whether the plaintext is NaN.
func (f *Float64) IsNaN() bool {
	return math.IsNaN(f.Value())
}

// Int64 returns the plaintext truncated toward zero. Out-of-range values
// convert as in Go.
func (f *Float64) Int64() int64 {
	return int64(f.Value())
}

func (f *Float64) String() string {
	return strconv.FormatFloat(f.Value(), 'g', -1, 64)
}

// Format implements [fmt.Formatter] over the plaintext.
func (f *Float64) Format(s fmt.State, verb rune) {
	switch verb {
	case 's', 'q':
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.String())
	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.Value())
	}
}
