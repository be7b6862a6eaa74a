// Copyright 2024 The stringdecimal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringdecimal

import "strconv"

// Sd is a rational arbitrary-precision decimal value: a signed
// numerator, an optional denominator (absent means 1), the widest
// fractional precision seen in any literal that fed into it, and the
// first failure (if any) recorded against it. Division is deferred —
// Div builds a fraction rather than performing long division — so a chain of
// operations stays exact until something finally asks for text.
//
// The zero value is the number 0. Sd is not safe for concurrent mutation;
// read-only use (Cmp, Format, …) from multiple goroutines is fine as long
// as nothing is mutating the same value concurrently.
type Sd struct {
	num     SignedMag
	den     *Mag // nil means 1
	places  int
	failure error
}

// tidy restores invariants T1 (den never negative — true by construction
// here, since Mag never carries a sign) and T2 (a denominator that is
// exactly a power of ten is absorbed into num's magnitude and dropped).
func (s *Sd) tidy() *Sd {
	if s.den != nil {
		if s.den.sig() == 1 && s.den.digit(0) == 1 {
			s.num.Mag = s.num.Mag.shift(-s.den.mag)
			s.den = nil
		}
	}
	return s
}

func denOrOne(d *Mag) Mag {
	if d == nil {
		return magOne
	}
	return *d
}

func denPtr(m Mag) *Mag {
	mm := m
	return &mm
}

// NewInt returns an exact Sd for the integer n.
func NewInt(n int64) *Sd {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	return &Sd{num: signed(uintToMag(u), neg)}
}

func uintToMag(u uint64) Mag {
	if u == 0 {
		return Mag{}
	}
	s := strconv.FormatUint(u, 10)
	d := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		d[i] = s[i] - '0'
	}
	return Mag{mag: len(s) - 1, digits: d}.norm()
}

// FromFloat64 converts f to an Sd via a textual round-trip at 32
// significant digits, rendering through text rather than decoding the
// binary mantissa bit by bit; exactness beyond 32 significant digits is
// not promised.
func FromFloat64(f float64, cfg *Config) *Sd {
	sd, _, err := Parse(strconv.FormatFloat(f, 'g', 32, 64), cfg)
	if err != nil {
		return &Sd{failure: err}
	}
	return sd
}

// Clone returns an independent copy of s.
func (s *Sd) Clone() *Sd {
	c := &Sd{num: s.num.clone(), places: s.places, failure: s.failure}
	if s.den != nil {
		d := s.den.clone()
		c.den = &d
	}
	return c
}

// IsZero, IsNeg, IsPos are the sign predicates.
func (s *Sd) IsZero() bool { return s.num.isZero() }
func (s *Sd) IsNeg() bool  { return s.num.neg }
func (s *Sd) IsPos() bool  { return !s.num.isZero() && !s.num.neg }

// Places returns the widest fractional precision seen in any literal
// that fed into s.
func (s *Sd) Places() int { return s.places }

// Err returns the first failure recorded against s, or nil.
func (s *Sd) Err() error { return s.failure }

// SetFailure records err as s's failure. It exists for callers outside
// this package (the evaluator) that need to build a failed result from a
// syntax error the value itself never participated in.
func (s *Sd) SetFailure(err error) *Sd {
	s.failure = err
	return s
}

// debugNum and debugDen render the raw numerator/denominator as plain
// text for diagnostics; kept unexported since nothing outside this
// package needs to see a value's internal fraction representation.
func (s *Sd) debugNum() string {
	if s.num.neg {
		return "-" + s.num.Mag.String()
	}
	return s.num.Mag.String()
}

func (s *Sd) debugDen() string {
	return denOrOne(s.den).String()
}

func firstErr(a, b *Sd) error {
	if a.failure != nil {
		return a.failure
	}
	if b != nil && b.failure != nil {
		return b.failure
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// cross cross-multiplies numerators onto a common denominator when the
// two operands carry unequal denominators: l.den*r.den becomes the common
// denominator; equal or absent denominators are left alone.
func cross(l, r *Sd) (ln, rn SignedMag, den *Mag) {
	if l.den == nil && r.den == nil {
		return l.num, r.num, nil
	}
	if l.den != nil && r.den != nil && ucmp(*l.den, *r.den, 0) == 0 {
		return l.num, r.num, l.den
	}
	ld, rd := denOrOne(l.den), denOrOne(r.den)
	ln = signed(umul(l.num.Mag, rd), l.num.neg)
	rn = signed(umul(r.num.Mag, ld), r.num.neg)
	d := umul(ld, rd)
	return ln, rn, &d
}

// Add returns a + b.
func (a *Sd) Add(b *Sd) *Sd {
	if err := firstErr(a, b); err != nil {
		return &Sd{failure: err}
	}
	ln, rn, den := cross(a, b)
	r := &Sd{num: sadd(ln, rn), den: den, places: maxInt(a.places, b.places)}
	return r.tidy()
}

func flipSign(x SignedMag) SignedMag {
	if x.isZero() {
		return x
	}
	return SignedMag{Mag: x.Mag, neg: !x.neg}
}

// Sub returns a - b, implemented as add with the right-hand sign
// flipped.
func (a *Sd) Sub(b *Sd) *Sd {
	if err := firstErr(a, b); err != nil {
		return &Sd{failure: err}
	}
	ln, rn, den := cross(a, b)
	r := &Sd{num: sadd(ln, flipSign(rn)), den: den, places: maxInt(a.places, b.places)}
	return r.tidy()
}

func mulDen(a, b *Mag) *Mag {
	if a == nil && b == nil {
		return nil
	}
	d := umul(denOrOne(a), denOrOne(b))
	return &d
}

// Mul returns a * b, cancelling a numerator against the other operand's
// denominator when they are exactly equal.
func (a *Sd) Mul(b *Sd) *Sd {
	if err := firstErr(a, b); err != nil {
		return &Sd{failure: err}
	}
	neg := a.num.neg != b.num.neg
	var numMag Mag
	var den *Mag
	switch {
	case b.den != nil && ucmp(a.num.Mag, *b.den, 0) == 0:
		numMag, den = b.num.Mag, a.den
	case a.den != nil && ucmp(b.num.Mag, *a.den, 0) == 0:
		numMag, den = a.num.Mag, b.den
	default:
		numMag, den = umul(a.num.Mag, b.num.Mag), mulDen(a.den, b.den)
	}
	r := &Sd{num: signed(numMag, neg), den: den, places: maxInt(a.places, b.places)}
	return r.tidy()
}

// InvI inverts s in place: numerator and denominator swap, with any sign
// moving to the new numerator and a missing denominator treated as an
// implicit 1.
func (s *Sd) InvI() *Sd {
	if s.num.isZero() {
		s.failure = ErrDivisionByZero
		return s
	}
	neg := s.num.neg
	oldNum := s.num.Mag
	s.num = signed(denOrOne(s.den), neg)
	s.den = denPtr(oldNum)
	return s.tidy()
}

// Div returns a / b. When neither side carries a denominator yet, Div
// builds the fraction a.num/b.num directly rather than performing long
// division — division stays deferred until Format or Round actually
// needs digits. Otherwise, b is inverted and multiplied in.
func (a *Sd) Div(b *Sd) *Sd {
	if err := firstErr(a, b); err != nil {
		return &Sd{failure: err}
	}
	if b.num.isZero() {
		return &Sd{failure: ErrDivisionByZero}
	}
	if a.den == nil && b.den == nil {
		r := &Sd{
			num:    signed(a.num.Mag, a.num.neg != b.num.neg),
			den:    denPtr(b.num.Mag),
			places: maxInt(a.places, b.places),
		}
		return r.tidy()
	}
	return a.Mul(b.Clone().InvI())
}

func magToUint64(m Mag) (uint64, bool) {
	if m.isZero() {
		return 0, true
	}
	trail := m.mag - (m.sig() - 1)
	if trail < 0 || m.sig()+trail > 19 {
		return 0, false
	}
	var v uint64
	for i := 0; i < m.sig(); i++ {
		v = v*10 + uint64(m.digit(i))
	}
	for i := 0; i < trail; i++ {
		v *= 10
	}
	return v, true
}

// Pow returns a**r. r must be a non-negative integer (after exact
// division of its own numerator by denominator); anything else fails
// with ErrPowerNotPosInt. Computed by binary
// exponentiation, squaring the base and multiplying into the result on
// set bits of the exponent, low to high.
func (a *Sd) Pow(r *Sd) *Sd {
	if err := firstErr(a, r); err != nil {
		return &Sd{failure: err}
	}
	if r.num.neg {
		return &Sd{failure: ErrPowerNotPosInt}
	}
	exp := r.num.Mag
	if r.den != nil {
		q, rem, err := udiv(r.num.Mag, *r.den, 0, RoundTruncate, false, true)
		if err != nil || !rem.isZero() {
			return &Sd{failure: ErrPowerNotPosInt}
		}
		exp = q
	}
	n, ok := magToUint64(exp)
	if !ok {
		return &Sd{failure: ErrPowerNotPosInt}
	}
	result := NewInt(1)
	base := a.Clone()
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		if n >>= 1; n > 0 {
			base = base.Mul(base)
		}
	}
	result.places = a.places
	return result
}

// Cmp compares a and b: -1 if a<b, 0 if equal, 1 if a>b.
func (a *Sd) Cmp(b *Sd) int {
	ln, rn, _ := cross(a, b)
	return scmp(ln, rn)
}

// AbsCmp compares |a| and |b|.
func (a *Sd) AbsCmp(b *Sd) int {
	ln, rn, _ := cross(a, b)
	return ucmp(ln.Mag, rn.Mag, 0)
}

// NegI negates s in place (a no-op on zero, preserving invariant S1).
func (s *Sd) NegI() *Sd {
	if !s.num.isZero() {
		s.num.neg = !s.num.neg
	}
	return s
}

// AbsI clears s's sign in place.
func (s *Sd) AbsI() *Sd {
	s.num.neg = false
	return s
}

// Shift10I multiplies s by 10**k in place, by shifting the numerator's
// magnitude — division by a power of ten already reduces to this via
// tidy's T2 absorption, so no digit rewriting is needed either way.
func (s *Sd) Shift10I(k int) *Sd {
	s.num.Mag = s.num.Mag.shift(k)
	return s
}

// Neg, Abs, Inv, Shift10 are the non-mutating counterparts of the _I
// mutators: clone, then mutate the clone.
func (s *Sd) Neg() *Sd     { return s.Clone().NegI() }
func (s *Sd) Abs() *Sd     { return s.Clone().AbsI() }
func (s *Sd) Inv() *Sd     { return s.Clone().InvI() }
func (s *Sd) Shift10(k int) *Sd { return s.Clone().Shift10I(k) }

// Consume variants let call sites chain (AddConsume(MulConsume(a, b), c))
// without defensive copies, by documenting that the receiver and/or
// argument may be reused as scratch space by the operation and must not
// be read afterwards. Each is currently a plain alias of the
// non-consuming op; the distinction is the aliasing contract on the
// caller, not the implementation.
func (a *Sd) AddConsume(b *Sd) *Sd { return a.Add(b) }
func (a *Sd) SubConsume(b *Sd) *Sd { return a.Sub(b) }
func (a *Sd) MulConsume(b *Sd) *Sd { return a.Mul(b) }
func (a *Sd) DivConsume(b *Sd) *Sd { return a.Div(b) }
func (a *Sd) PowConsume(b *Sd) *Sd { return a.Pow(b) }
