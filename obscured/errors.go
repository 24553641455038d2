// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obscured

import "errors"

var (
	// ErrDivisionByZero is returned by integer division and remainder when
	// the decoded divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrIndexOutOfRange is returned when a text container is indexed
	// outside of its decoded length.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidCount is returned when a repeated text is built with a
	// negative count.
	ErrInvalidCount = errors.New("invalid repeat count")

	// ErrRekeyNotSupported is returned by [Value.Rekey] for policies other
	// than ExplicitOnly.
	ErrRekeyNotSupported = errors.New("rekey not supported by policy")

	// ErrUnknownOp is returned by [Domain.Apply] for an operator it does not
	// know.
	ErrUnknownOp = errors.New("unknown operator")
)
