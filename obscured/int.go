// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obscured

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-obscured/codec"
	"github.com/MKhiriev/go-obscured/keysource"
)

var intDomain = IntegerDomain[int32]()

// Int is an obscured int32. The value is kept as an affine-transformed
// float64 under a random (add, mul) key pair.
//
// Assignment re-encodes under the current key; keys change only through
// [Int.RotateKeys]. Rotating once at application start is recommended so
// that keys differ from run to run, but nothing enforces it.
//
// The zero Int holds 0 and draws its key from [keysource.Default] on first
// use.
type Int struct {
	v *Value[int32, codec.AffineKey, float64]
}

// NewInt returns an Int holding v.
func NewInt(v int32, opts ...Option) (*Int, error) {
	src, err := resolveSource(opts)
	if err != nil {
		return nil, err
	}
	return newInt(v, src), nil
}

func newInt(v int32, src keysource.Source) *Int {
	return &Int{v: NewValue[int32, codec.AffineKey, float64](codec.Affine{}, ExplicitOnly, src, v)}
}

// engine returns the backing value, building it on first use of a zero Int.
func (i *Int) engine() *Value[int32, codec.AffineKey, float64] {
	if i.v == nil {
		i.v = newInt(0, defaultSource()).v
	}
	return i.v
}

// Value returns the plaintext.
func (i *Int) Value() int32 {
	return i.engine().Read()
}

// Set assigns v under the current key.
func (i *Int) Set(v int32) {
	i.engine().Write(v)
}

// RotateKeys draws a new key pair and re-encodes the current value under it.
// The observed value does not change.
func (i *Int) RotateKeys() {
	i.engine().rotate()
}

// Inc adds one in place, wrapping on overflow.
func (i *Int) Inc() {
	i.Set(intDomain.Add(i.Value(), 1))
}

// Dec subtracts one in place, wrapping on overflow.
func (i *Int) Dec() {
	i.Set(intDomain.Sub(i.Value(), 1))
}

// Apply returns a new Int holding i op o. Division and remainder by a zero
// divisor return [ErrDivisionByZero].
func (i *Int) Apply(op Op, o *Int) (*Int, error) {
	return i.ApplyPlain(op, o.Value())
}

// ApplyPlain returns a new Int holding i op x.
func (i *Int) ApplyPlain(op Op, x int32) (*Int, error) {
	r, err := intDomain.Apply(op, i.Value(), x)
	if err != nil {
		return nil, fmt.Errorf("int %s: %w", op, err)
	}
	return newInt(r, i.engine().Source()), nil
}

// Add returns a new Int holding i + o.
func (i *Int) Add(o *Int) *Int {
	return newInt(intDomain.Add(i.Value(), o.Value()), i.engine().Source())
}

// Sub returns a new Int holding i - o.
func (i *Int) Sub(o *Int) *Int {
	return newInt(intDomain.Sub(i.Value(), o.Value()), i.engine().Source())
}

// Mul returns a new Int holding i * o.
func (i *Int) Mul(o *Int) *Int {
	return newInt(intDomain.Mul(i.Value(), o.Value()), i.engine().Source())
}

// Div returns a new Int holding i / o, truncated toward zero.
func (i *Int) Div(o *Int) (*Int, error) {
	return i.Apply(OpDiv, o)
}

// Mod returns a new Int holding i % o.
func (i *Int) Mod(o *Int) (*Int, error) {
	return i.Apply(OpMod, o)
}

// Equal reports whether both containers hold the same plaintext.
func (i *Int) Equal(o *Int) bool {
	return i.EqualPlain(o.Value())
}

// EqualPlain reports whether i holds x.
func (i *Int) EqualPlain(x int32) bool {
	return intDomain.Equal(i.Value(), x)
}

// Compare returns -1, 0 or +1 as i is less than, equal to or greater than o.
func (i *Int) Compare(o *Int) int {
	return i.ComparePlain(o.Value())
}

// ComparePlain compares i with a plain int32.
func (i *Int) ComparePlain(x int32) int {
	return intDomain.Compare(i.Value(), x)
}

// Int64 returns the plaintext widened to int64.
func (i *Int) Int64() int64 {
	return int64(i.Value())
}

// Float64 returns the plaintext converted to float64.
func (i *Int) Float64() float64 {
	return float64(i.Value())
}

// Promote returns an obscured float holding the same value, for mixed
// integer/float arithmetic in the wider kind.
func (i *Int) Promote() *Float64 {
	return newFloat64(i.Float64(), i.engine().Source())
}

// String returns the decimal plaintext.
func (i *Int) String() string {
	return strconv.FormatInt(int64(i.Value()), 10)
}

// Format implements [fmt.Formatter] over the plaintext, so %d, %x, %5v and
// friends behave as for an int32.
func (i *Int) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'q':
		fmt.Fprintf(f, fmt.FormatString(f, verb), i.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), i.Value())
	}
}
