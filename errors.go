// Copyright 2024 The stringdecimal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringdecimal

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors covering the fixed set of named failures this package
// raises. These are returned (and recorded on Sd.failure) as-is, or
// wrapped with position context by the evaluator via WrapAt.
var (
	ErrNumberTooLong   = errors.New("Number too long")
	ErrDivisionByZero  = errors.New("Division by zero")
	ErrPowerNotPosInt  = errors.New("Power must be positive integer")
	ErrMissingOperand  = errors.New("Missing operand")
	ErrMissingOperator = errors.New("Missing/unknown operator")
	ErrTooManyClose    = errors.New("Too many close brackets")
	ErrUnclosed        = errors.New("Unclosed brackets")
	ErrGeneric         = errors.New("Error")

	// ErrMallocFailed is kept for API completeness; Go's garbage-collected
	// allocator never returns this to calling code, so it is never raised
	// by anything in this module.
	ErrMallocFailed = errors.New("Malloc failed")
)

// positionalError renders as "<cause> at <snippet>", the form the CLI
// prints failures in, while still unwrapping to the original sentinel
// for errors.Is/errors.As.
type positionalError struct {
	cause   error
	snippet string
}

func (e *positionalError) Error() string { return e.cause.Error() + " at " + e.snippet }
func (e *positionalError) Unwrap() error { return e.cause }

// WrapAt annotates err with up to the first 10 runes of the text at the
// failing position, in the style of cockroachdb/apd's Context condition
// plumbing: pkgerrors.WithStack keeps a trace for %+v debugging while
// Unwrap still exposes the original sentinel to errors.Is.
func WrapAt(err error, snippet string) error {
	if err == nil {
		return nil
	}
	r := []rune(snippet)
	if len(r) > 10 {
		r = r[:10]
	}
	return &positionalError{cause: pkgerrors.WithStack(err), snippet: string(r)}
}

// FailureString renders err the way the evaluator and CLI do: a "!!"
// prefix followed by the error text, or "" if err is nil.
func FailureString(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("!!%s", err.Error())
}
