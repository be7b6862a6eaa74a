// Copyright 2024 The stringdecimal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stringdecimal implements arbitrary-precision decimal arithmetic
directly on textual numeric representations.

Values are parsed from, and rendered back to, plain decimal text: an
optional sign, integer and fractional digits, an optional scientific
exponent, optional thousands grouping, and an optional SI, binary, or
Unicode vulgar-fraction suffix. Arithmetic (add, subtract, multiply,
divide, integer power) is performed on an internal rational
representation that defers division, so a chain of operations like

	a, _, _ := stringdecimal.Parse("1", nil)
	b, _, _ := stringdecimal.Parse("3", nil)
	c := a.Div(b) // exact 1/3, no division performed yet
	d := c.Mul(b) // exactly 1 again

keeps values exact until a result is finally rendered to text, at which
point a choice of six rounding modes and seven output layouts applies.
A failure encountered anywhere in a chain (division by zero, a
non-integer power) sticks to the result and is reported by Err rather
than an error return, so chained expressions never need a check after
every step.

The zero value of Config is ready to use and selects the package
defaults (comma thousands separator, dot decimal point, no length
limit, banker's rounding). There are no mutable package-level globals;
every entry point takes an explicit *Config (nil selects the default).

Package eval (stringdecimal/eval) builds an infix expression evaluator
on top of this package, adding relational, logical, conditional, and
absolute-value operators to the four arithmetic ones.
*/
package stringdecimal
