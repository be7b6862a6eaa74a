// Copyright 2024 The stringdecimal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eval implements an infix expression evaluator over
// stringdecimal.Sd values: arithmetic, relational and logical operators,
// a ternary conditional, absolute-value bars, and parenthesised
// grouping, built on top of the generic operator-precedence driver in
// internal/oppar.
package eval

import (
	"sort"
	"unicode"

	sd "github.com/revk/stringdecimal"
	"github.com/revk/stringdecimal/internal/oppar"
)

// symbols lists every operator/bracket spelling the tokenizer recognises,
// longest first so that e.g. ">=" is matched before ">".
var symbols = sortedSymbols()

func sortedSymbols() []string {
	set := map[string]bool{
		"-": true, "!": true, "¬": true,
		"^": true, "×": true, "÷": true, "*": true, "/": true,
		"+": true, "−": true,
		">=": true, "≥": true, "<=": true, "≤": true,
		"!=": true, "≠": true, "≰": true, "≱": true, ">": true, "<": true,
		"==": true, "=": true,
		"&&": true, "∧": true, "||": true, "∨": true,
		"?": true, ":": true, "(": true, ")": true, "|": true,
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return len([]rune(out[i])) > len([]rune(out[j])) })
	return out
}

func boolSd(v bool) *sd.Sd {
	if v {
		return sd.NewInt(1)
	}
	return sd.NewInt(0)
}

func cmpOp(f func(c int) bool) func(a, b *sd.Sd) (*sd.Sd, error) {
	return func(a, b *sd.Sd) (*sd.Sd, error) {
		return boolSd(f(a.Cmp(b))), nil
	}
}

// evaluator holds the rune source and the driver bound to it.
type evaluator struct {
	src []rune
	cfg *sd.Config
	drv *oppar.Driver[*sd.Sd]
}

func (e *evaluator) skipSpace(pos int) int {
	for pos < len(e.src) && unicode.IsSpace(e.src[pos]) {
		pos++
	}
	return pos
}

func (e *evaluator) peek(pos int) (string, int) {
	pos = e.skipSpace(pos)
	for _, s := range symbols {
		r := []rune(s)
		if pos+len(r) > len(e.src) {
			continue
		}
		match := true
		for i, ru := range r {
			if e.src[pos+i] != ru {
				match = false
				break
			}
		}
		if match {
			return s, pos + len(r)
		}
	}
	return "", pos
}

func (e *evaluator) parseOperand(pos int) (*sd.Sd, int, error) {
	pos = e.skipSpace(pos)
	text := string(e.src[pos:])
	v, rest, err := sd.Parse(text, e.cfg)
	if err != nil {
		return v, pos, err
	}
	consumed := len([]rune(text)) - len([]rune(rest))
	return v, pos + consumed, nil
}

func newDriver(e *evaluator) *oppar.Driver[*sd.Sd] {
	d := &oppar.Driver[*sd.Sd]{
		ParseOperand: e.parseOperand,
		Peek:         e.peek,
		StrayClose:   sd.ErrTooManyClose,
		Unclosed:     sd.ErrUnclosed,
	}

	neg := func(a *sd.Sd) (*sd.Sd, error) { return a.Neg(), nil }
	not := func(a *sd.Sd) (*sd.Sd, error) { return boolSd(a.IsZero()), nil }
	d.Prefix = map[string]oppar.Op[*sd.Sd]{
		"-": {Prec: 14, Apply1: neg},
		"−": {Prec: 14, Apply1: neg},
		"!": {Prec: 14, Apply1: not},
		"¬": {Prec: 14, Apply1: not},
	}

	arith := func(f func(a, b *sd.Sd) *sd.Sd) func(a, b *sd.Sd) (*sd.Sd, error) {
		return func(a, b *sd.Sd) (*sd.Sd, error) { return f(a, b), nil }
	}

	d.Binary = map[string]oppar.Op[*sd.Sd]{
		"^": {Prec: 14, RightAssoc: true, Apply2: arith((*sd.Sd).Pow)},

		"*": {Prec: 13, Apply2: arith((*sd.Sd).Mul)},
		"×": {Prec: 13, Apply2: arith((*sd.Sd).Mul)},
		"/": {Prec: 13, Apply2: arith((*sd.Sd).Div)},
		"÷": {Prec: 13, Apply2: arith((*sd.Sd).Div)},

		"+": {Prec: 12, Apply2: arith((*sd.Sd).Add)},
		"-": {Prec: 12, Apply2: arith((*sd.Sd).Sub)},
		"−": {Prec: 12, Apply2: arith((*sd.Sd).Sub)},

		">=": {Prec: 10, Apply2: cmpOp(func(c int) bool { return c >= 0 })},
		"≥":  {Prec: 10, Apply2: cmpOp(func(c int) bool { return c >= 0 })},
		"<=": {Prec: 10, Apply2: cmpOp(func(c int) bool { return c <= 0 })},
		"≤":  {Prec: 10, Apply2: cmpOp(func(c int) bool { return c <= 0 })},
		"!=": {Prec: 10, Apply2: cmpOp(func(c int) bool { return c != 0 })},
		"≠":  {Prec: 10, Apply2: cmpOp(func(c int) bool { return c != 0 })},
		">":  {Prec: 10, Apply2: cmpOp(func(c int) bool { return c > 0 })},
		"<":  {Prec: 10, Apply2: cmpOp(func(c int) bool { return c < 0 })},
		// ≰ ("not <=") and ≱ ("not >=") are the complements of <= and >=.
		"≰": {Prec: 10, Apply2: cmpOp(func(c int) bool { return c > 0 })},
		"≱": {Prec: 10, Apply2: cmpOp(func(c int) bool { return c < 0 })},

		"==": {Prec: 9, Apply2: cmpOp(func(c int) bool { return c == 0 })},
		"=":  {Prec: 9, Apply2: cmpOp(func(c int) bool { return c == 0 })},

		"&&": {Prec: 5, Apply2: func(a, b *sd.Sd) (*sd.Sd, error) {
			if a.IsZero() {
				return a, nil
			}
			return b, nil
		}},
		"∧": {Prec: 5, Apply2: func(a, b *sd.Sd) (*sd.Sd, error) {
			if a.IsZero() {
				return a, nil
			}
			return b, nil
		}},

		"||": {Prec: 4, Apply2: func(a, b *sd.Sd) (*sd.Sd, error) {
			if !a.IsZero() {
				return a, nil
			}
			return b, nil
		}},
		"∨": {Prec: 4, Apply2: func(a, b *sd.Sd) (*sd.Sd, error) {
			if !a.IsZero() {
				return a, nil
			}
			return b, nil
		}},
	}

	d.Ternary = map[string]oppar.Op[*sd.Sd]{
		"?": {Prec: 3, Mid: ":", Apply3: func(cond, mid, right *sd.Sd) (*sd.Sd, error) {
			if !cond.IsZero() {
				return mid, nil
			}
			return right, nil
		}},
	}

	d.Brackets = []oppar.Bracket[*sd.Sd]{
		{Open: "(", Close: ")", Wrap: func(v *sd.Sd) (*sd.Sd, error) { return v, nil }},
		{Open: "|", Close: "|", Wrap: func(v *sd.Sd) (*sd.Sd, error) { return v.Abs(), nil }},
	}

	return d
}

// Eval parses and evaluates expr in full, returning an *sd.Sd whose
// failure field (if any) records the first error encountered. Syntax
// errors are wrapped with up to 10 characters of the source text from
// the failing position; arithmetic failures such as division by zero
// are recorded unwrapped. Trailing
// characters that do not parse as a continuation of the expression are
// reported as a missing or unknown operator; a stray close bracket or
// an unclosed one is reported as such.
func Eval(expr string, cfg *sd.Config) *sd.Sd {
	e := &evaluator{src: []rune(expr), cfg: cfg}
	e.drv = newDriver(e)

	result, pos, err := e.drv.Parse(0)
	if err != nil {
		return failWith(err, string(e.src[pos:]))
	}
	pos = e.skipSpace(pos)
	if pos < len(e.src) {
		rest := string(e.src[pos:])
		if sym, _ := e.peek(pos); isCloseBracket(e.drv, sym) {
			return failWith(sd.ErrTooManyClose, rest)
		}
		return failWith(sd.ErrMissingOperator, rest)
	}
	return result
}

func isCloseBracket(d *oppar.Driver[*sd.Sd], sym string) bool {
	for _, br := range d.Brackets {
		if sym == br.Close {
			return true
		}
	}
	return false
}

func failWith(err error, snippet string) *sd.Sd {
	v := sd.NewInt(0)
	v.SetFailure(sd.WrapAt(err, snippet))
	return v
}

// EvalString is the string-to-string convenience form of Eval, rendering
// the result (or its failure) through cfg's configured format.
func EvalString(expr string, cfg *sd.Config) string {
	return Eval(expr, cfg).Format(cfg)
}
