package stringdecimal

// Low-level unsigned primitives on Mag. Every primitive here takes an
// explicit boff that shifts b's magnitude for the duration of the
// operation, so multiplication and division can reuse add/sub without
// materialising shifted copies of their operands.

// ucmp compares magnitudes, b shifted left by boff decimal places.
func ucmp(a, b Mag, boff int) int {
	if a.isZero() || b.isZero() {
		switch {
		case a.isZero() && b.isZero():
			return 0
		case a.isZero():
			return -1
		}
		return 1
	}
	amag, bmag := a.mag, boff+b.mag
	if amag > bmag {
		return 1
	}
	if amag < bmag {
		return -1
	}
	asig, bsig := a.sig(), b.sig()
	sig := asig
	if bsig < sig {
		sig = bsig
	}
	p := 0
	for p < sig && a.digit(p) == b.digit(p) {
		p++
	}
	if p < sig {
		if a.digit(p) < b.digit(p) {
			return -1
		}
		return 1
	}
	if asig > p {
		return 1
	}
	if bsig > p {
		return -1
	}
	return 0
}

// uadd returns a + shift(b, boff).
func uadd(a, b Mag, boff int) Mag {
	mag := a.mag
	if boff+b.mag > mag {
		mag = boff + b.mag
	}
	mag++ // room for carry out of the top digit
	end := a.mag - a.sig()
	if e2 := boff + b.mag - b.sig(); e2 < end {
		end = e2
	}
	r := newMag(mag, mag-end)
	c := 0
	for p := end + 1; p <= mag; p++ {
		v := c
		if p <= a.mag && p > a.mag-a.sig() {
			v += int(a.digit(a.mag - p))
		}
		if p <= boff+b.mag && p > boff+b.mag-b.sig() {
			v += int(b.digit(boff + b.mag - p))
		}
		c = 0
		if v >= 10 {
			c = 1
			v -= 10
		}
		r.digits[r.mag-p] = uint8(v)
	}
	return r.norm()
}

// usub returns a - shift(b, boff). Precondition: a >= shift(b, boff);
// callers (the signed layer) must establish ordering first, exactly as
// the C original documents for its usub.
func usub(a, b Mag, boff int) Mag {
	mag := a.mag
	if boff+b.mag > mag {
		mag = boff + b.mag
	}
	end := a.mag - a.sig()
	if e2 := boff + b.mag - b.sig(); e2 < end {
		end = e2
	}
	r := newMag(mag, mag-end)
	c := 0
	for p := end + 1; p <= mag; p++ {
		v := c
		if p <= a.mag && p > a.mag-a.sig() {
			v += int(a.digit(a.mag - p))
		}
		if p <= boff+b.mag && p > boff+b.mag-b.sig() {
			v -= int(b.digit(boff + b.mag - p))
		}
		c = 0
		if v < 0 {
			c = -1
			v += 10
		}
		r.digits[r.mag-p] = uint8(v)
	}
	return r.norm()
}

// makeBase returns the multiples 1*b .. 9*b of b, used by both umul and
// udiv to turn each cross-digit product into a single add/compare.
func makeBase(b Mag) [9]Mag {
	var base [9]Mag
	base[0] = b.clone()
	for n := 1; n < 9; n++ {
		base[n] = uadd(base[n-1], b, 0)
	}
	return base
}

// umul returns a * b, unsigned schoolbook multiplication using the
// digit-multiple cache from makeBase.
func umul(a, b Mag) Mag {
	if a.isZero() || b.isZero() {
		return Mag{}
	}
	base := makeBase(b)
	c := Mag{}
	for p := 0; p < a.sig(); p++ {
		d := a.digit(p)
		if d == 0 {
			continue
		}
		c = uadd(c, base[d-1], a.mag-p)
	}
	return c.norm()
}

// udiv performs unsigned long division a/b to places fractional digits,
// applying round when the division does not terminate exactly. neg is
// the sign the signed layer has already decided the quotient will carry
// — needed here only to mirror Floor/Ceiling's direction-relative-to-
// zero semantics using the result's already-assigned sign. wantRem
// requests the magnitude of the exact remainder (after any rounding
// adjustment) back; otherwise the second return value is the remainder
// left before any rounding adjustment.
//
// The quotient-digit search below uses ">=" (accepts n when n*b <= the
// running remainder), which is required because n*b may equal the
// remainder exactly.
func udiv(a, b Mag, places int, round RoundMode, neg, wantRem bool) (q, rem Mag, err error) {
	if b.isZero() {
		return Mag{}, Mag{}, ErrDivisionByZero
	}
	base := makeBase(b)
	mag := a.mag - b.mag
	if mag < -places {
		mag = -places
	}
	sig := mag + places + 1
	if sig < 1 {
		sig = 1
	}
	r := newMag(mag, sig)
	v := a.clone()
	for p := mag; p > mag-sig; p-- {
		n := 0
		for n < 9 && ucmp(v, base[n], p) >= 0 {
			n++
		}
		if n > 0 {
			v = usub(v, base[n-1], p)
		}
		r.digits[mag-p] = uint8(n)
		if v.isZero() {
			break
		}
	}

	if round != RoundTruncate && !v.isZero() {
		mode := round
		if mode == 0 {
			mode = RoundBanking
		}
		if neg {
			switch mode {
			case RoundFloor:
				mode = RoundCeiling
			case RoundCeiling:
				mode = RoundFloor
			}
		}
		shift := mag - sig
		diff := ucmp(v, base[4], shift) // base[4] == 5*b

		up := (mode == RoundUp || mode == RoundCeiling) ||
			(mode == RoundRound && diff >= 0) ||
			(mode == RoundBanking && diff > 0) ||
			(mode == RoundBanking && diff == 0 && r.digits[len(r.digits)-1]&1 == 1)

		if up {
			if wantRem {
				v = usub(base[0].shift(shift+1), v, 0)
			}
			r = uadd(r, magOne, r.mag-r.sig()+1)
		}
	}

	return r.norm(), v, nil
}
