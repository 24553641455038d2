// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obscured

import (
	"cmp"
	"fmt"
	"math"
)

// Op is an arithmetic operator of the plaintext domain.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Integer is the set of Go integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of Go floating-point types.
type Float interface {
	~float32 | ~float64
}

// Domain is the plaintext-domain capability of a primitive type: its
// operators, expressed once, so every container kind dispatches through the
// same code instead of one function per operand pairing.
type Domain[T any] struct {
	Add     func(x, y T) T
	Sub     func(x, y T) T
	Mul     func(x, y T) T
	Div     func(x, y T) (T, error)
	Mod     func(x, y T) (T, error)
	Compare func(x, y T) int
	// Equal is the primitive's == (NaN never equals anything).
	Equal func(x, y T) bool
}

// Apply evaluates x op y.
func (d Domain[T]) Apply(op Op, x, y T) (T, error) {
	switch op {
	case OpAdd:
		return d.Add(x, y), nil
	case OpSub:
		return d.Sub(x, y), nil
	case OpMul:
		return d.Mul(x, y), nil
	case OpDiv:
		return d.Div(x, y)
	case OpMod:
		return d.Mod(x, y)
	}

	var zero T
	return zero, fmt.Errorf("%w: %s", ErrUnknownOp, op)
}

// IntegerDomain returns the domain of an integer type. Overflow wraps as in
// Go; division and remainder by zero return [ErrDivisionByZero] instead of
// panicking.
func IntegerDomain[T Integer]() Domain[T] {
	return Domain[T]{
		Add: func(x, y T) T { return x + y },
		Sub: func(x, y T) T { return x - y },
		Mul: func(x, y T) T { return x * y },
		Div: func(x, y T) (T, error) {
			if y == 0 {
				return 0, ErrDivisionByZero
			}
			return x / y, nil
		},
		Mod: func(x, y T) (T, error) {
			if y == 0 {
				return 0, ErrDivisionByZero
			}
			return x % y, nil
		},
		Compare: cmp.Compare[T],
		Equal:   equal[T],
	}
}

// FloatDomain returns the domain of a floating-point type. Division follows
// IEEE-754 (x/0 is ±Inf or NaN) and the remainder is [math.Mod]; neither
// returns an error.
func FloatDomain[T Float]() Domain[T] {
	return Domain[T]{
		Add: func(x, y T) T { return x + y },
		Sub: func(x, y T) T { return x - y },
		Mul: func(x, y T) T { return x * y },
		Div: func(x, y T) (T, error) { return x / y, nil },
		Mod: func(x, y T) (T, error) {
			return T(math.Mod(float64(x), float64(y))), nil
		},
		Compare: cmp.Compare[T],
		Equal:   equal[T],
	}
}

func equal[T Integer | Float](x, y T) bool {
	return x == y
}
